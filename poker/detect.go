package poker

import (
	"slices"
)

// Multiples partitions the ranks of a card set by how often they occur.
// Every rank present appears in exactly one bucket; buckets are sorted descending.
type Multiples struct {
	Quad    Rank // zero when there is no four of a kind
	Trips   []Rank
	Pairs   []Rank
	Singles []Rank
}

// HasQuad reports whether a rank occurs four times.
func (m Multiples) HasQuad() bool {
	return m.Quad != 0
}

// CategorySignals is the raw material the ranker works from.
type CategorySignals struct {
	// Flush holds every card of the flush suit (not just five), rank descending,
	// or nil when no suit has five cards.
	Flush []Card
	// Straights holds the high card of every straight, descending, or nil.
	Straights []Rank
	Multiples
}

// Detect builds the full signal view over a card set.
func Detect(cards []Card) CategorySignals {
	return CategorySignals{
		Flush:     DetectFlush(cards),
		Straights: DetectStraights(cards),
		Multiples: DetectMultiples(cards),
	}
}

// DetectFlush returns all cards of a suit holding at least five cards, sorted by
// rank descending. All of them are returned because a straight flush may use a
// different five than the top five by rank.
func DetectFlush(cards []Card) []Card {
	var counts [NumSuits]int
	for _, c := range cards {
		counts[c.Suit]++
	}

	for suit, n := range counts {
		if n < 5 {
			continue
		}
		flush := make([]Card, 0, n)
		for _, c := range cards {
			if c.Suit == Suit(suit) {
				flush = append(flush, c)
			}
		}
		slices.SortFunc(flush, func(a, b Card) int {
			return int(b.Rank) - int(a.Rank)
		})
		return flush
	}
	return nil
}

// DetectStraights returns the high rank of every five-long run of distinct ranks,
// descending. An Ace also counts as rank one, so A-2-3-4-5 reports a high of Five.
// Longer runs report one high per extra card: 2 through 8 yields 8, 7 and 6.
func DetectStraights(cards []Card) []Rank {
	var present [Ace + 1]bool
	for _, c := range cards {
		present[c.Rank] = true
	}
	if present[Ace] {
		present[lowAce] = true
	}

	var highs []Rank
	run := 0
	for r := lowAce; r <= Ace; r++ {
		if !present[r] {
			run = 0
			continue
		}
		run++
		if run >= 5 {
			highs = append(highs, r)
		}
	}

	if len(highs) == 0 {
		return nil
	}
	slices.Reverse(highs)
	return highs
}

// DetectMultiples tallies ranks and sorts them into quad, trips, pairs and singles.
func DetectMultiples(cards []Card) Multiples {
	var counts [Ace + 1]int
	for _, c := range cards {
		counts[c.Rank]++
	}

	var m Multiples
	for r := Ace; r >= Two; r-- {
		switch counts[r] {
		case 0:
		case 1:
			m.Singles = append(m.Singles, r)
		case 2:
			m.Pairs = append(m.Pairs, r)
		case 3:
			m.Trips = append(m.Trips, r)
		case 4:
			if m.HasQuad() {
				panic(invariantf("two quads (%s and %s) in one card set", m.Quad, r))
			}
			m.Quad = r
		default:
			panic(invariantf("rank %s appears %d times", r, counts[r]))
		}
	}
	return m
}
