// Package almanac pushes seeds and seed ranges through an ordered pipeline of
// range-remapping tables.
package almanac

import (
	"github.com/danmuck/aocctl/internal/intervals"
)

type Range = intervals.Range[int64]

// Rule maps its source range onto a destination range of the same length.
type Rule struct {
	Src Range
	Dst Range
}

// Offset is the translation applied to values inside Src.
func (r Rule) Offset() int64 {
	return r.Dst.Start - r.Src.Start
}

// Table is one "<from>-to-<to> map" block. Rules are tried in file order.
type Table struct {
	From  string
	To    string
	Rules []Rule
}

// Map translates v through the first rule whose source contains it, or
// returns v unchanged.
func (t Table) Map(v int64) int64 {
	for _, rule := range t.Rules {
		if rule.Src.Contains(v) {
			return v + rule.Offset()
		}
	}
	return v
}

// MapRange translates every value of in. Rules are applied in order; the part
// of each pending remainder covered by a rule is translated, the rest stays
// pending for later rules and finally passes through unchanged.
func (t Table) MapRange(in Range) []Range {
	if in.Empty() {
		return nil
	}
	pending := []Range{in}
	var mapped []Range
	for _, rule := range t.Rules {
		next := make([]Range, 0, len(pending)+1)
		for _, r := range pending {
			inter, ok := r.Intersect(rule.Src)
			if !ok {
				next = append(next, r)
				continue
			}
			mapped = append(mapped, inter.Shift(rule.Offset()))
			next = append(next, r.Subtract(inter)...)
		}
		pending = next
		if len(pending) == 0 {
			break
		}
	}
	return append(mapped, pending...)
}

// Pipeline is the ordered chain of tables from seed to location.
type Pipeline []Table

func (p Pipeline) Map(v int64) int64 {
	for _, t := range p {
		v = t.Map(v)
	}
	return v
}

// MapRanges pushes every range through every table in order.
func (p Pipeline) MapRanges(in []Range) []Range {
	ranges := in
	for _, t := range p {
		next := make([]Range, 0, len(ranges))
		for _, r := range ranges {
			next = append(next, t.MapRange(r)...)
		}
		ranges = next
	}
	return ranges
}
