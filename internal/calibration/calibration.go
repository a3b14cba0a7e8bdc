// Package calibration recovers two-digit calibration values hidden in lines of
// text, optionally treating spelled-out digits as digits.
package calibration

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/danmuck/aocctl/internal/logging"
	"github.com/danmuck/aocctl/internal/puzzle"
)

var ErrNoDigits = errors.New("calibration: line has no digits")

var spelled = [...]string{"one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

type Solver struct{}

func New() Solver { return Solver{} }

func (Solver) Name() string  { return "one" }
func (Solver) Title() string { return "calibration digits" }

func (Solver) Solve(r io.Reader, part puzzle.Part) (int64, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return 0, err
	}
	words := part == puzzle.PartTwo
	var sum int64
	for i, line := range lines {
		v, err := Value(line, words)
		if err != nil {
			logging.Debugf("calibration: skip line=%d err=%v", i+1, err)
			continue
		}
		sum += int64(v)
	}
	return sum, nil
}

// Value returns 10*first+last over the digits found in line. With words set,
// spelled digits count too and may overlap ("eightwo" is 8 then 2).
func Value(line string, words bool) (int, error) {
	first, last := -1, -1
	for i := 0; i < len(line); i++ {
		d, ok := digitAt(line, i, words)
		if !ok {
			continue
		}
		if first < 0 {
			first = d
		}
		last = d
	}
	if first < 0 {
		return 0, fmt.Errorf("%w: %q", ErrNoDigits, line)
	}
	return first*10 + last, nil
}

func digitAt(line string, i int, words bool) (int, bool) {
	if c := line[i]; c >= '0' && c <= '9' {
		return int(c - '0'), true
	}
	if !words {
		return 0, false
	}
	for j, w := range spelled {
		if strings.HasPrefix(line[i:], w) {
			return j + 1, true
		}
	}
	return 0, false
}
