package almanac

import (
	"io"

	"github.com/danmuck/aocctl/internal/logging"
	"github.com/danmuck/aocctl/internal/puzzle"
)

type Solver struct{}

func New() Solver { return Solver{} }

func (Solver) Name() string  { return "five" }
func (Solver) Title() string { return "almanac range remapping" }

// Solve returns the lowest location for individual seeds (part one) or for
// seed ranges (part two).
func (Solver) Solve(r io.Reader, part puzzle.Part) (int64, error) {
	a, err := Parse(r)
	if err != nil {
		return 0, err
	}
	if part == puzzle.PartOne {
		return a.LowestSeedLocation(), nil
	}
	return a.LowestRangeLocation()
}

func (a Almanac) LowestSeedLocation() int64 {
	lowest := a.Pipeline.Map(a.Seeds[0])
	for _, seed := range a.Seeds[1:] {
		lowest = min(lowest, a.Pipeline.Map(seed))
	}
	return lowest
}

func (a Almanac) LowestRangeLocation() (int64, error) {
	seeds, err := a.SeedRanges()
	if err != nil {
		return 0, err
	}
	if len(seeds) == 0 {
		return 0, ErrNoSeeds
	}
	locations := a.Pipeline.MapRanges(seeds)
	logging.Debugf("almanac: seed_ranges=%d location_ranges=%d", len(seeds), len(locations))
	lowest := locations[0].Start
	for _, r := range locations[1:] {
		lowest = min(lowest, r.Start)
	}
	return lowest, nil
}
