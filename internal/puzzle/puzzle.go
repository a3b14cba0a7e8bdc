// Package puzzle defines the solver contract and the name-keyed registry the
// dispatcher resolves exercises from.
package puzzle

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	ErrUnknownExercise = errors.New("puzzle: unknown exercise")
	ErrInvalidPart     = errors.New("puzzle: invalid part")
)

// Part selects which half of an exercise to answer.
type Part int

const (
	PartOne Part = 1
	PartTwo Part = 2
)

func (p Part) String() string {
	switch p {
	case PartOne:
		return "1"
	case PartTwo:
		return "2"
	default:
		return fmt.Sprintf("Part(%d)", int(p))
	}
}

// ParsePart accepts 1, 2, one or two.
func ParsePart(raw string) (Part, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "1", "one":
		return PartOne, nil
	case "2", "two":
		return PartTwo, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPart, raw)
	}
}

// Parts lists both parts in order.
func Parts() []Part {
	return []Part{PartOne, PartTwo}
}

// Solver answers one exercise. Implementations keep no state between calls.
type Solver interface {
	Name() string
	Title() string
	Solve(r io.Reader, part Part) (int64, error)
}

// SolverFunc adapts a plain function into a Solver.
type SolverFunc struct {
	ID   string
	Desc string
	Fn   func(r io.Reader, part Part) (int64, error)
}

func (f SolverFunc) Name() string  { return f.ID }
func (f SolverFunc) Title() string { return f.Desc }

func (f SolverFunc) Solve(r io.Reader, part Part) (int64, error) {
	return f.Fn(r, part)
}
