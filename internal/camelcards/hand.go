// Package camelcards ranks five-card hands, optionally treating J as a joker,
// and totals the winnings of a set of bids.
package camelcards

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrUnknownCard   = errors.New("camelcards: unknown card")
	ErrHandSize      = errors.New("camelcards: hand must have 5 cards")
	ErrMalformedHand = errors.New("camelcards: malformed hand")
)

const (
	// labels ordered strongest first
	labels   = "AKQJT98765432"
	joker    = 'J'
	handSize = 5
)

// Kind is the category of a hand. Higher values beat lower ones.
type Kind int

const (
	HighCard Kind = iota
	OnePair
	TwoPair
	ThreeOfAKind
	FullHouse
	FourOfAKind
	FiveOfAKind
)

func (k Kind) String() string {
	switch k {
	case HighCard:
		return "high card"
	case OnePair:
		return "one pair"
	case TwoPair:
		return "two pair"
	case ThreeOfAKind:
		return "three of a kind"
	case FullHouse:
		return "full house"
	case FourOfAKind:
		return "four of a kind"
	case FiveOfAKind:
		return "five of a kind"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Hand is a parsed hand with its bid. Strengths holds per-card tie-break
// strengths; Kind is classified once at parse time.
type Hand struct {
	Cards     string
	Bid       int64
	Kind      Kind
	Strengths [handSize]int
}

// Strength is the tie-break value of a card label; higher is stronger. In
// joker mode J is weaker than every other card.
func Strength(card byte, jokers bool) (int, error) {
	if jokers && card == joker {
		return 0, nil
	}
	idx := strings.IndexByte(labels, card)
	if idx < 0 {
		return 0, fmt.Errorf("%w: %q", ErrUnknownCard, card)
	}
	return len(labels) - idx, nil
}

// Classify returns the kind of cards. In joker mode the jokers join the
// largest group of other cards; five jokers is five of a kind.
func Classify(cards string, jokers bool) Kind {
	counts := make(map[byte]int, handSize)
	for i := 0; i < len(cards); i++ {
		counts[cards[i]]++
	}
	wild := 0
	if jokers {
		wild = counts[joker]
		delete(counts, joker)
	}
	groups := make([]int, 0, len(counts))
	for _, n := range counts {
		groups = append(groups, n)
	}
	if len(groups) == 0 {
		return FiveOfAKind
	}
	slices.Sort(groups)
	slices.Reverse(groups)
	first := groups[0] + wild
	second := 0
	if len(groups) > 1 {
		second = groups[1]
	}

	switch {
	case first >= 5:
		return FiveOfAKind
	case first == 4:
		return FourOfAKind
	case first == 3 && second == 2:
		return FullHouse
	case first == 3:
		return ThreeOfAKind
	case first == 2 && second == 2:
		return TwoPair
	case first == 2:
		return OnePair
	default:
		return HighCard
	}
}

// ParseHand parses "<cards> <bid>".
func ParseHand(line string, jokers bool) (Hand, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return Hand{}, fmt.Errorf("%w: %q", ErrMalformedHand, line)
	}
	cards := fields[0]
	if len(cards) != handSize {
		return Hand{}, fmt.Errorf("%w: %q", ErrHandSize, cards)
	}
	bid, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return Hand{}, fmt.Errorf("%w: bad bid %q", ErrMalformedHand, fields[1])
	}
	h := Hand{Cards: cards, Bid: bid, Kind: Classify(cards, jokers)}
	for i := 0; i < handSize; i++ {
		s, err := Strength(cards[i], jokers)
		if err != nil {
			return Hand{}, err
		}
		h.Strengths[i] = s
	}
	return h, nil
}

// Compare orders hands by kind, then card by card from the left.
func Compare(a, b Hand) int {
	if a.Kind != b.Kind {
		return int(a.Kind) - int(b.Kind)
	}
	for i := range a.Strengths {
		if a.Strengths[i] != b.Strengths[i] {
			return a.Strengths[i] - b.Strengths[i]
		}
	}
	return 0
}
