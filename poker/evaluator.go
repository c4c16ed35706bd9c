package poker

import (
	"slices"
)

const (
	// MinHandCards is the fewest cards Evaluate accepts.
	MinHandCards = 5
	// MaxHandCards is the most cards Evaluate accepts (hole cards plus a full board).
	MaxHandCards = 7
)

// royalRanks are the ranks a royal flush must contain.
var royalRanks = [...]Rank{Ten, Jack, Queen, King, Ace}

// EvaluateHand ranks the best hand made from hole cards and board.
func EvaluateHand(hole, board []Card) HandRank {
	var buf [MaxHandCards]Card
	cards := append(buf[:0], hole...)
	cards = append(cards, board...)
	return Evaluate(cards)
}

// Evaluate ranks the best five-card hand within 5 to 7 cards.
// Any other card count panics with ErrInvariant, as does a rank seen more than four times.
func Evaluate(cards []Card) HandRank {
	if len(cards) < MinHandCards || len(cards) > MaxHandCards {
		panic(invariantf("evaluate needs %d-%d cards, got %d", MinHandCards, MaxHandCards, len(cards)))
	}

	// Flush first: with at most seven cards a flush rules out quads and full houses.
	if flush := DetectFlush(cards); flush != nil {
		return rankFlush(flush)
	}

	m := DetectMultiples(cards)

	if m.HasQuad() {
		kicker := topKickers(1, m.Trips, m.Pairs, m.Singles)
		return NewFourOfAKind(m.Quad, kicker[0])
	}

	if len(m.Trips) >= 2 || (len(m.Trips) == 1 && len(m.Pairs) >= 1) {
		return rankFullHouse(m)
	}

	if highs := DetectStraights(cards); highs != nil {
		return NewStraight(highs[0])
	}

	if len(m.Trips) == 1 {
		k := topKickers(2, m.Pairs, m.Singles)
		return NewThreeOfAKind(m.Trips[0], k[0], k[1])
	}

	switch {
	case len(m.Pairs) >= 2:
		k := topKickers(1, m.Pairs[2:], m.Singles)
		return NewTwoPair(m.Pairs[0], m.Pairs[1], k[0])
	case len(m.Pairs) == 1:
		k := topKickers(3, m.Singles)
		return NewOnePair(m.Pairs[0], k[0], k[1], k[2])
	default:
		k := topKickers(5, m.Singles)
		return NewHighCard(k[0], k[1], k[2], k[3], k[4])
	}
}

// rankFlush looks for straights inside the flush suit only; a straight across
// mixed suits alongside a flush is still just a flush.
func rankFlush(flush []Card) HandRank {
	if highs := DetectStraights(flush); highs != nil {
		if highs[0] == Ace && containsRanks(flush, royalRanks[:]) {
			return NewRoyalFlush()
		}
		return NewStraightFlush(highs[0])
	}
	return NewFlush(flush[0].Rank, flush[1].Rank, flush[2].Rank, flush[3].Rank, flush[4].Rank)
}

// rankFullHouse uses the highest trips for the three-card slot and the best
// remaining rank (second trips or top pair) for the pair slot.
func rankFullHouse(m Multiples) HandRank {
	trips := m.Trips[0]
	var pair Rank
	if len(m.Trips) >= 2 {
		pair = m.Trips[1]
	}
	if len(m.Pairs) > 0 && m.Pairs[0] > pair {
		pair = m.Pairs[0]
	}
	return NewFullHouse(trips, pair)
}

// topKickers merges rank groups and returns the n highest, descending.
func topKickers(n int, groups ...[]Rank) []Rank {
	var buf [MaxHandCards]Rank
	ranks := buf[:0]
	for _, g := range groups {
		ranks = append(ranks, g...)
	}
	if len(ranks) < n {
		panic(invariantf("need %d kickers, only %d available", n, len(ranks)))
	}
	slices.SortFunc(ranks, func(a, b Rank) int {
		return int(b) - int(a)
	})
	out := make([]Rank, n)
	copy(out, ranks[:n])
	return out
}

func containsRanks(cards []Card, ranks []Rank) bool {
	for _, r := range ranks {
		found := false
		for _, c := range cards {
			if c.Rank == r {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
