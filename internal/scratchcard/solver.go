package scratchcard

import (
	"io"
	"strings"

	"github.com/danmuck/aocctl/internal/logging"
	"github.com/danmuck/aocctl/internal/puzzle"
)

type Solver struct{}

func New() Solver { return Solver{} }

func (Solver) Name() string  { return "four" }
func (Solver) Title() string { return "scratch card cascade" }

func (Solver) Solve(r io.Reader, part puzzle.Part) (int64, error) {
	cards, err := readCards(r)
	if err != nil {
		return 0, err
	}
	if part == puzzle.PartOne {
		var sum int64
		for _, c := range cards {
			sum += c.Score()
		}
		return sum, nil
	}
	return CascadeCount(cards), nil
}

// CascadeCount returns how many cards are held once every card with m matches
// has won one copy of each of the next m cards. Wins past the last card are
// dropped.
func CascadeCount(cards []Card) int64 {
	copies := make([]int64, len(cards))
	for i := range copies {
		copies[i] = 1
	}
	var total int64
	for i, c := range cards {
		total += copies[i]
		m := c.Matches()
		if i+m >= len(cards) {
			logging.Debugf("scratchcard: card=%d wins past end matches=%d", c.Number, m)
		}
		for j := i + 1; j <= i+m && j < len(cards); j++ {
			copies[j] += copies[i]
		}
	}
	return total
}

func readCards(r io.Reader) ([]Card, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	cards := make([]Card, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		c, err := ParseCard(line)
		if err != nil {
			return nil, puzzle.LineError(i+1, err)
		}
		cards = append(cards, c)
	}
	return cards, nil
}
