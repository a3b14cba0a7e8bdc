// Package schematic scans an engine schematic for part numbers and gears.
package schematic

import (
	"fmt"
	"strconv"
)

// Position is an inclusive column span on one line.
type Position struct {
	Line  int
	Start int
	End   int
}

// Touches reports whether p and other are adjacent, diagonals included.
func (p Position) Touches(other Position) bool {
	if abs(p.Line-other.Line) > 1 {
		return false
	}
	return other.Start <= p.End+1 && other.End >= p.Start-1
}

type Number struct {
	Value int64
	Pos   Position
}

type Symbol struct {
	Value byte
	Pos   Position
}

// Tokens is the scan result of a schematic.
type Tokens struct {
	Numbers []Number
	Symbols []Symbol
}

// Scan splits lines into number tokens (maximal digit runs) and symbol tokens
// (any other byte except '.').
func Scan(lines []string) (Tokens, error) {
	var out Tokens
	for ln, line := range lines {
		start := -1
		flush := func(end int) error {
			if start < 0 {
				return nil
			}
			v, err := strconv.ParseInt(line[start:end+1], 10, 64)
			if err != nil {
				return fmt.Errorf("line %d: %w", ln+1, err)
			}
			out.Numbers = append(out.Numbers, Number{
				Value: v,
				Pos:   Position{Line: ln, Start: start, End: end},
			})
			start = -1
			return nil
		}
		for col := 0; col < len(line); col++ {
			c := line[col]
			if isDigit(c) {
				if start < 0 {
					start = col
				}
				continue
			}
			if err := flush(col - 1); err != nil {
				return Tokens{}, err
			}
			if c != '.' {
				out.Symbols = append(out.Symbols, Symbol{
					Value: c,
					Pos:   Position{Line: ln, Start: col, End: col},
				})
			}
		}
		if err := flush(len(line) - 1); err != nil {
			return Tokens{}, err
		}
	}
	return out, nil
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
