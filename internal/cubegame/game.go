// Package cubegame checks colored-cube draws against a bag and finds the
// smallest bag each game could have come from.
package cubegame

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMalformedGame = errors.New("cubegame: malformed game")
	ErrMalformedDraw = errors.New("cubegame: malformed draw")
	ErrUnknownColor  = errors.New("cubegame: unknown color")
)

// Draw is one handful of cubes. Colors not mentioned are zero.
type Draw struct {
	Red   int
	Green int
	Blue  int
}

// DefaultBag is the bag part one checks draws against.
var DefaultBag = Draw{Red: 12, Green: 13, Blue: 14}

// FitsIn reports whether every color of d is at most the same color of bag.
// Draws are only partially ordered: two draws may not fit in each other.
func (d Draw) FitsIn(bag Draw) bool {
	return d.Red <= bag.Red && d.Green <= bag.Green && d.Blue <= bag.Blue
}

func (d Draw) Power() int64 {
	return int64(d.Red) * int64(d.Green) * int64(d.Blue)
}

type Game struct {
	ID    int
	Draws []Draw
}

// Possible reports whether every draw of the game fits in bag.
func (g Game) Possible(bag Draw) bool {
	for _, d := range g.Draws {
		if !d.FitsIn(bag) {
			return false
		}
	}
	return true
}

// MinimalBag is the per-color maximum across all draws.
func (g Game) MinimalBag() Draw {
	var out Draw
	for _, d := range g.Draws {
		out.Red = max(out.Red, d.Red)
		out.Green = max(out.Green, d.Green)
		out.Blue = max(out.Blue, d.Blue)
	}
	return out
}

// ParseGame parses "Game <id>: <draw>; <draw>; ...".
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing ':' in %q", ErrMalformedGame, line)
	}
	rawID, ok := strings.CutPrefix(strings.TrimSpace(head), "Game ")
	if !ok {
		return Game{}, fmt.Errorf("%w: missing 'Game' prefix in %q", ErrMalformedGame, head)
	}
	id, err := strconv.Atoi(strings.TrimSpace(rawID))
	if err != nil {
		return Game{}, fmt.Errorf("%w: bad id %q", ErrMalformedGame, rawID)
	}
	g := Game{ID: id}
	for _, raw := range strings.Split(body, ";") {
		d, err := ParseDraw(raw)
		if err != nil {
			return Game{}, err
		}
		g.Draws = append(g.Draws, d)
	}
	return g, nil
}

// ParseDraw parses "<n> <color>, <n> <color>, ...". Colors are case-insensitive.
func ParseDraw(raw string) (Draw, error) {
	var d Draw
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return d, nil
	}
	for _, part := range strings.Split(raw, ",") {
		fields := strings.Fields(strings.ToLower(part))
		if len(fields) != 2 {
			return Draw{}, fmt.Errorf("%w: %q", ErrMalformedDraw, part)
		}
		n, err := strconv.Atoi(fields[0])
		if err != nil || n < 0 {
			return Draw{}, fmt.Errorf("%w: bad count %q", ErrMalformedDraw, fields[0])
		}
		switch fields[1] {
		case "red":
			d.Red = n
		case "green":
			d.Green = n
		case "blue":
			d.Blue = n
		default:
			return Draw{}, fmt.Errorf("%w: %q", ErrUnknownColor, fields[1])
		}
	}
	return d, nil
}
