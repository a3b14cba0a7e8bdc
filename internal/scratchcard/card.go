// Package scratchcard scores scratch cards and counts the copies a pile of
// cards cascades into.
package scratchcard

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrMalformedCard = errors.New("scratchcard: malformed card")

type Card struct {
	Number  int
	Winning []int
	Drawn   []int
}

// Matches counts drawn numbers that appear among the winning numbers.
func (c Card) Matches() int {
	winning := make(map[int]struct{}, len(c.Winning))
	for _, n := range c.Winning {
		winning[n] = struct{}{}
	}
	count := 0
	for _, n := range c.Drawn {
		if _, ok := winning[n]; ok {
			count++
		}
	}
	return count
}

// Score is 0 without a match and doubles for every match after the first.
func (c Card) Score() int64 {
	m := c.Matches()
	if m == 0 {
		return 0
	}
	return int64(1) << (m - 1)
}

// ParseCard parses "Card <n>: <winning...> | <drawn...>".
func ParseCard(line string) (Card, error) {
	head, body, ok := strings.Cut(line, ":")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing ':' in %q", ErrMalformedCard, line)
	}
	rawNumber, ok := strings.CutPrefix(strings.TrimSpace(head), "Card")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing 'Card' prefix in %q", ErrMalformedCard, head)
	}
	number, err := strconv.Atoi(strings.TrimSpace(rawNumber))
	if err != nil {
		return Card{}, fmt.Errorf("%w: bad card number %q", ErrMalformedCard, rawNumber)
	}
	rawWinning, rawDrawn, ok := strings.Cut(body, "|")
	if !ok {
		return Card{}, fmt.Errorf("%w: missing '|' in %q", ErrMalformedCard, body)
	}
	winning, err := parseNumbers(rawWinning)
	if err != nil {
		return Card{}, err
	}
	drawn, err := parseNumbers(rawDrawn)
	if err != nil {
		return Card{}, err
	}
	return Card{Number: number, Winning: winning, Drawn: drawn}, nil
}

func parseNumbers(raw string) ([]int, error) {
	fields := strings.Fields(raw)
	out := make([]int, 0, len(fields))
	for _, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrMalformedCard, f)
		}
		out = append(out, n)
	}
	return out, nil
}
