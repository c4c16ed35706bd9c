package equity

import (
	rand "math/rand/v2"

	"github.com/lox/holdem-odds/poker"
)

// trial holds one worker's reusable state for simulating a single deal.
// Nothing in it is shared between goroutines.
type trial struct {
	hand     []poker.Card
	board    []poker.Card
	template []poker.Card

	deck      *poker.Deck
	fullBoard [BoardCards]poker.Card
	opponents [][HoleCards]poker.Card
	ranks     []poker.HandRank
}

func newTrial(hand, board []poker.Card, players int, template []poker.Card) *trial {
	return &trial{
		hand:      hand,
		board:     board,
		template:  template,
		deck:      poker.NewDeck(),
		opponents: make([][HoleCards]poker.Card, players-1),
		ranks:     make([]poker.HandRank, players-1),
	}
}

// run deals one random completion and judges it for the tracked player.
func (t *trial) run(rng *rand.Rand) Outcome {
	t.deck.Reset(t.template)
	t.deck.Shuffle(rng)

	for i := range t.opponents {
		t.opponents[i] = [HoleCards]poker.Card{t.deck.Deal(), t.deck.Deal()}
	}

	n := copy(t.fullBoard[:], t.board)
	for ; n < BoardCards; n++ {
		t.fullBoard[n] = t.deck.Deal()
	}

	hero := poker.EvaluateHand(t.hand, t.fullBoard[:])
	for i := range t.opponents {
		t.ranks[i] = poker.EvaluateHand(t.opponents[i][:], t.fullBoard[:])
	}
	return Judge(hero, t.ranks)
}
