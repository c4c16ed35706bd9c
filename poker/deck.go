package poker

import (
	rand "math/rand/v2"
)

// DeckSize is the number of cards in a full deck.
const DeckSize = 52

// Deck is an ordered stack of unique cards. Cards are dealt from the tail.
type Deck struct {
	cards []Card
}

// NewDeck creates a full 52-card deck in generation order (suit by suit, ranks ascending).
// The order is deterministic; call Shuffle to randomise it.
func NewDeck() *Deck {
	d := &Deck{cards: make([]Card, 0, DeckSize)}
	for suit := Suit(0); suit < NumSuits; suit++ {
		for rank := Two; rank <= Ace; rank++ {
			d.cards = append(d.cards, NewCard(rank, suit))
		}
	}
	return d
}

// RemoveKnown drops every card that appears in hand or board.
// Cards that are not in the deck are ignored.
func (d *Deck) RemoveKnown(hand, board []Card) {
	kept := d.cards[:0]
	for _, card := range d.cards {
		if containsCard(hand, card) || containsCard(board, card) {
			continue
		}
		kept = append(kept, card)
	}
	d.cards = kept
}

// Shuffle permutes the deck uniformly using Fisher-Yates and the supplied source.
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := len(d.cards) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	}
}

// Deal removes and returns the last card. It panics when the deck is empty,
// which callers rule out by sizing their deals against Len.
func (d *Deck) Deal() Card {
	n := len(d.cards)
	if n == 0 {
		panic(invariantf("deal from empty deck"))
	}
	card := d.cards[n-1]
	d.cards = d.cards[:n-1]
	return card
}

// Reset replaces the deck contents with a copy of cards, reusing the backing array.
func (d *Deck) Reset(cards []Card) {
	d.cards = append(d.cards[:0], cards...)
}

// Len returns the number of cards left in the deck.
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards in deck order.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

func containsCard(cards []Card, card Card) bool {
	for _, c := range cards {
		if c == card {
			return true
		}
	}
	return false
}
