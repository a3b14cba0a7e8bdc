// Package intervals implements half-open integer ranges.
package intervals

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Range is the half-open interval [Start, End).
type Range[T constraints.Integer] struct {
	Start T
	End   T
}

// New builds the range covering length values beginning at start.
func New[T constraints.Integer](start, length T) Range[T] {
	return Range[T]{Start: start, End: start + length}
}

func (r Range[T]) Len() T {
	if r.Empty() {
		return 0
	}
	return r.End - r.Start
}

func (r Range[T]) Empty() bool {
	return r.End <= r.Start
}

func (r Range[T]) Contains(v T) bool {
	return v >= r.Start && v < r.End
}

// Intersect returns the overlap of r and other. ok is false when they share no value.
func (r Range[T]) Intersect(other Range[T]) (Range[T], bool) {
	out := Range[T]{Start: max(r.Start, other.Start), End: min(r.End, other.End)}
	if out.Empty() {
		return Range[T]{}, false
	}
	return out, true
}

// Subtract returns the parts of r not covered by other, low piece first.
func (r Range[T]) Subtract(other Range[T]) []Range[T] {
	if r.Empty() {
		return nil
	}
	inter, ok := r.Intersect(other)
	if !ok {
		return []Range[T]{r}
	}
	out := make([]Range[T], 0, 2)
	if inter.Start > r.Start {
		out = append(out, Range[T]{Start: r.Start, End: inter.Start})
	}
	if inter.End < r.End {
		out = append(out, Range[T]{Start: inter.End, End: r.End})
	}
	return out
}

// Shift moves the range by delta.
func (r Range[T]) Shift(delta T) Range[T] {
	return Range[T]{Start: r.Start + delta, End: r.End + delta}
}

func (r Range[T]) String() string {
	return fmt.Sprintf("[%d,%d)", r.Start, r.End)
}
