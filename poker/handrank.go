package poker

import (
	"fmt"
	"strings"
)

// Category enumerates the poker hand categories ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns a human-readable category name.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	default:
		return "Unknown"
	}
}

// Categories lists every category from strongest to weakest.
var Categories = []Category{
	RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush,
	Straight, ThreeOfAKind, TwoPair, OnePair, HighCard,
}

// HandRank is the strength of a made hand: a category plus the tie-break ranks
// that order hands inside it. Unused tie-break slots are zero, so HandRank values
// are directly comparable with ==.
type HandRank struct {
	Category Category
	Ranks    [5]Rank
}

// NewHighCard builds a high-card rank from five descending ranks.
func NewHighCard(a, b, c, d, e Rank) HandRank {
	return HandRank{Category: HighCard, Ranks: [5]Rank{a, b, c, d, e}}
}

// NewOnePair builds a one-pair rank with three descending kickers.
func NewOnePair(pair, k1, k2, k3 Rank) HandRank {
	return HandRank{Category: OnePair, Ranks: [5]Rank{pair, k1, k2, k3}}
}

// NewTwoPair builds a two-pair rank.
func NewTwoPair(high, low, kicker Rank) HandRank {
	return HandRank{Category: TwoPair, Ranks: [5]Rank{high, low, kicker}}
}

// NewThreeOfAKind builds a trips rank with two descending kickers.
func NewThreeOfAKind(trips, k1, k2 Rank) HandRank {
	return HandRank{Category: ThreeOfAKind, Ranks: [5]Rank{trips, k1, k2}}
}

// NewStraight builds a straight rank from its high card (Five for the wheel).
func NewStraight(high Rank) HandRank {
	return HandRank{Category: Straight, Ranks: [5]Rank{high}}
}

// NewFlush builds a flush rank from five descending ranks.
func NewFlush(a, b, c, d, e Rank) HandRank {
	return HandRank{Category: Flush, Ranks: [5]Rank{a, b, c, d, e}}
}

// NewFullHouse builds a full house rank: trips over pair.
func NewFullHouse(trips, pair Rank) HandRank {
	return HandRank{Category: FullHouse, Ranks: [5]Rank{trips, pair}}
}

// NewFourOfAKind builds a quads rank with its kicker.
func NewFourOfAKind(quad, kicker Rank) HandRank {
	return HandRank{Category: FourOfAKind, Ranks: [5]Rank{quad, kicker}}
}

// NewStraightFlush builds a straight flush rank from its high card.
func NewStraightFlush(high Rank) HandRank {
	return HandRank{Category: StraightFlush, Ranks: [5]Rank{high}}
}

// NewRoyalFlush returns the royal flush rank.
func NewRoyalFlush() HandRank {
	return HandRank{Category: RoyalFlush}
}

// Compare returns 1 if h is stronger, -1 if other is stronger, 0 if equal
func (h HandRank) Compare(other HandRank) int {
	return Compare(h, other)
}

// Compare orders two hand ranks: category first, then tie-break ranks in order.
// It returns 1 if a wins, -1 if b wins and 0 for a tie.
func Compare(a, b HandRank) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	for i := range a.Ranks {
		switch {
		case a.Ranks[i] > b.Ranks[i]:
			return 1
		case a.Ranks[i] < b.Ranks[i]:
			return -1
		}
	}
	return 0
}

// String describes the hand, e.g. "Full House (A over K)".
func (h HandRank) String() string {
	r := h.Ranks
	switch h.Category {
	case RoyalFlush:
		return h.Category.String()
	case StraightFlush, Straight:
		return fmt.Sprintf("%s (%s high)", h.Category, r[0])
	case FourOfAKind:
		return fmt.Sprintf("%s (%s, %s kicker)", h.Category, r[0], r[1])
	case FullHouse:
		return fmt.Sprintf("%s (%s over %s)", h.Category, r[0], r[1])
	case ThreeOfAKind:
		return fmt.Sprintf("%s (%s, %s)", h.Category, r[0], joinRanks(r[1:3]))
	case TwoPair:
		return fmt.Sprintf("%s (%s and %s, %s kicker)", h.Category, r[0], r[1], r[2])
	case OnePair:
		return fmt.Sprintf("%s (%s, %s)", h.Category, r[0], joinRanks(r[1:4]))
	case Flush, HighCard:
		return fmt.Sprintf("%s (%s)", h.Category, joinRanks(r[:]))
	default:
		return h.Category.String()
	}
}

func joinRanks(ranks []Rank) string {
	var b strings.Builder
	for _, r := range ranks {
		b.WriteString(r.String())
	}
	return b.String()
}
