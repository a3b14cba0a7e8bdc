package almanac

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/danmuck/aocctl/internal/intervals"
	"github.com/danmuck/aocctl/internal/puzzle"
)

var (
	ErrNoSeeds       = errors.New("almanac: no seeds")
	ErrOddSeedRanges = errors.New("almanac: seed ranges need start/length pairs")
	ErrEmptyTable    = errors.New("almanac: map has no rules")
	ErrMalformedRule = errors.New("almanac: malformed rule")
	ErrBadNumber     = errors.New("almanac: bad number")
	ErrMalformedLine = errors.New("almanac: unexpected line")
)

const (
	seedsPrefix = "seeds:"
	mapSuffix   = "map:"
)

type Almanac struct {
	Seeds    []int64
	Pipeline Pipeline
}

// SeedRanges pairs up Seeds as (start, length). Zero-length pairs are dropped.
func (a Almanac) SeedRanges() ([]Range, error) {
	if len(a.Seeds)%2 != 0 {
		return nil, fmt.Errorf("%w: got %d values", ErrOddSeedRanges, len(a.Seeds))
	}
	out := make([]Range, 0, len(a.Seeds)/2)
	for i := 0; i < len(a.Seeds); i += 2 {
		r := intervals.New(a.Seeds[i], a.Seeds[i+1])
		if r.Empty() {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

// Parse reads a seeds line followed by map blocks.
func Parse(r io.Reader) (Almanac, error) {
	lines, err := puzzle.Lines(r)
	if err != nil {
		return Almanac{}, err
	}
	var (
		out     Almanac
		current *Table
		header  int
	)
	closeTable := func() error {
		if current == nil {
			return nil
		}
		if len(current.Rules) == 0 {
			return puzzle.LineError(header, fmt.Errorf("%w: %s-to-%s", ErrEmptyTable, current.From, current.To))
		}
		out.Pipeline = append(out.Pipeline, *current)
		current = nil
		return nil
	}
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case line == "":
			if err := closeTable(); err != nil {
				return Almanac{}, err
			}
		case strings.HasPrefix(line, seedsPrefix):
			seeds, err := parseInts(strings.TrimPrefix(line, seedsPrefix))
			if err != nil {
				return Almanac{}, puzzle.LineError(i+1, err)
			}
			out.Seeds = append(out.Seeds, seeds...)
		case strings.HasSuffix(line, mapSuffix):
			if err := closeTable(); err != nil {
				return Almanac{}, err
			}
			from, to := splitHeader(strings.TrimSpace(strings.TrimSuffix(line, mapSuffix)))
			current = &Table{From: from, To: to}
			header = i + 1
		case current != nil:
			rule, err := ParseRule(line)
			if err != nil {
				return Almanac{}, puzzle.LineError(i+1, err)
			}
			current.Rules = append(current.Rules, rule)
		default:
			return Almanac{}, puzzle.LineError(i+1, fmt.Errorf("%w: %q", ErrMalformedLine, line))
		}
	}
	if err := closeTable(); err != nil {
		return Almanac{}, err
	}
	if len(out.Seeds) == 0 {
		return Almanac{}, ErrNoSeeds
	}
	return out, nil
}

// ParseRule parses "<dst> <src> <len>".
func ParseRule(line string) (Rule, error) {
	vals, err := parseInts(line)
	if err != nil {
		return Rule{}, err
	}
	if len(vals) != 3 || vals[2] < 0 {
		return Rule{}, fmt.Errorf("%w: %q", ErrMalformedRule, line)
	}
	return Rule{
		Src: intervals.New(vals[1], vals[2]),
		Dst: intervals.New(vals[0], vals[2]),
	}, nil
}

func parseInts(raw string) ([]int64, error) {
	fields := strings.Fields(raw)
	out := make([]int64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadNumber, f)
		}
		out = append(out, v)
	}
	return out, nil
}

func splitHeader(name string) (string, string) {
	from, to, ok := strings.Cut(name, "-to-")
	if !ok {
		return name, ""
	}
	return from, to
}
