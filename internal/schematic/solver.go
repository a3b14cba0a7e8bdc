package schematic

import (
	"io"
	"strings"

	"github.com/danmuck/aocctl/internal/puzzle"
)

const gear = '*'

type Solver struct{}

func New() Solver { return Solver{} }

func (Solver) Name() string  { return "three" }
func (Solver) Title() string { return "engine schematic adjacency" }

func (Solver) Solve(r io.Reader, part puzzle.Part) (int64, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return 0, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}
	tokens, err := Scan(lines)
	if err != nil {
		return 0, err
	}
	if part == puzzle.PartOne {
		return tokens.PartNumberSum(), nil
	}
	return tokens.GearRatioSum(), nil
}

// PartNumberSum adds every number that touches at least one symbol.
func (t Tokens) PartNumberSum() int64 {
	var sum int64
	for _, n := range t.Numbers {
		for _, s := range t.Symbols {
			if n.Pos.Touches(s.Pos) {
				sum += n.Value
				break
			}
		}
	}
	return sum
}

// GearRatioSum adds, for every '*' touching at least two numbers, the product
// of those numbers.
func (t Tokens) GearRatioSum() int64 {
	var sum int64
	for _, s := range t.Symbols {
		if s.Value != gear {
			continue
		}
		count := 0
		ratio := int64(1)
		for _, n := range t.Numbers {
			if s.Pos.Touches(n.Pos) {
				count++
				ratio *= n.Value
			}
		}
		if count >= 2 {
			sum += ratio
		}
	}
	return sum
}
