package camelcards

import (
	"io"
	"slices"
	"strings"

	"github.com/danmuck/aocctl/internal/puzzle"
)

type Solver struct{}

func New() Solver { return Solver{} }

func (Solver) Name() string  { return "seven" }
func (Solver) Title() string { return "camel card ranking" }

// Solve ranks every hand (part two with jokers) and returns the total winnings.
func (Solver) Solve(r io.Reader, part puzzle.Part) (int64, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return 0, err
	}
	jokers := part == puzzle.PartTwo
	hands := make([]Hand, 0, len(lines))
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		h, err := ParseHand(line, jokers)
		if err != nil {
			return 0, puzzle.LineError(i+1, err)
		}
		hands = append(hands, h)
	}
	return Winnings(hands), nil
}

// Winnings sorts hands weakest first and sums rank*bid, ranks starting at 1.
func Winnings(hands []Hand) int64 {
	sorted := slices.Clone(hands)
	slices.SortStableFunc(sorted, Compare)
	var total int64
	for i, h := range sorted {
		total += int64(i+1) * h.Bid
	}
	return total
}
