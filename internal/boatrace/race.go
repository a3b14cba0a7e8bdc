// Package boatrace counts the button-hold times that beat each toy boat
// race record.
package boatrace

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/danmuck/aocctl/internal/puzzle"
)

var (
	ErrMissingLine    = errors.New("boatrace: missing Time or Distance line")
	ErrCountMismatch  = errors.New("boatrace: time and distance counts differ")
	ErrMalformedValue = errors.New("boatrace: malformed value")
)

// Race is one race: Time milliseconds long, Record millimeters to beat.
type Race struct {
	Time   int64
	Record int64
}

func (r Race) distance(hold int64) int64 {
	return hold * (r.Time - hold)
}

func (r Race) beats(hold int64) bool {
	return hold >= 0 && hold <= r.Time && r.distance(hold) > r.Record
}

// Ways counts integer hold times whose distance strictly beats the record.
// The quadratic roots give a first guess that is then corrected exactly.
func (r Race) Ways() int64 {
	disc := float64(r.Time)*float64(r.Time) - 4*float64(r.Record)
	if disc < 0 {
		return 0
	}
	root := math.Sqrt(disc)
	lo := int64(math.Floor((float64(r.Time) - root) / 2))
	hi := int64(math.Ceil((float64(r.Time) + root) / 2))
	lo = max(lo, 0)
	hi = min(hi, r.Time)

	for lo <= hi && !r.beats(lo) {
		lo++
	}
	for lo > 0 && r.beats(lo-1) {
		lo--
	}
	for hi >= lo && !r.beats(hi) {
		hi--
	}
	for hi < r.Time && r.beats(hi+1) {
		hi++
	}
	if hi < lo {
		return 0
	}
	return hi - lo + 1
}

// Parse reads "Time:" and "Distance:" lines. With joined set, the digits on
// each line are concatenated into a single race.
func Parse(r io.Reader, joined bool) ([]Race, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return nil, err
	}
	var times, records []int64
	var seenTime, seenDist bool
	for i, line := range lines {
		label, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		vals, err := parseValues(rest, joined)
		if err != nil {
			return nil, puzzle.LineError(i+1, err)
		}
		switch strings.TrimSpace(label) {
		case "Time":
			times, seenTime = vals, true
		case "Distance":
			records, seenDist = vals, true
		}
	}
	if !seenTime || !seenDist {
		return nil, ErrMissingLine
	}
	if len(times) != len(records) {
		return nil, fmt.Errorf("%w: %d vs %d", ErrCountMismatch, len(times), len(records))
	}
	races := make([]Race, len(times))
	for i := range times {
		races[i] = Race{Time: times[i], Record: records[i]}
	}
	return races, nil
}

func parseValues(raw string, joined bool) ([]int64, error) {
	fields := strings.Fields(raw)
	if joined {
		fields = []string{strings.Join(fields, "")}
	}
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil || v < 0 {
			return nil, fmt.Errorf("%w: %q", ErrMalformedValue, f)
		}
		out = append(out, v)
	}
	return out, nil
}

type Solver struct{}

func New() Solver { return Solver{} }

func (Solver) Name() string  { return "six" }
func (Solver) Title() string { return "boat race margins" }

// Solve multiplies the ways to win across races. Part two reads each line as
// one race with its digits joined.
func (Solver) Solve(r io.Reader, part puzzle.Part) (int64, error) {
	races, err := Parse(r, part == puzzle.PartTwo)
	if err != nil {
		return 0, err
	}
	product := int64(1)
	for _, race := range races {
		product *= race.Ways()
	}
	return product, nil
}
