package cubegame

import (
	"io"
	"strings"

	"github.com/danmuck/aocctl/internal/puzzle"
)

type Solver struct {
	Bag Draw
}

func New() Solver { return Solver{Bag: DefaultBag} }

// NewWithBag builds a solver whose part one checks against bag.
func NewWithBag(bag Draw) Solver { return Solver{Bag: bag} }

func (Solver) Name() string  { return "two" }
func (Solver) Title() string { return "cube game constraints" }

// Solve sums ids of possible games (part one) or powers of minimal bags (part two).
func (s Solver) Solve(r io.Reader, part puzzle.Part) (int64, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return 0, err
	}
	var sum int64
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		g, err := ParseGame(line)
		if err != nil {
			return 0, puzzle.LineError(i+1, err)
		}
		switch part {
		case puzzle.PartOne:
			if g.Possible(s.Bag) {
				sum += int64(g.ID)
			}
		default:
			sum += g.MinimalBag().Power()
		}
	}
	return sum, nil
}
