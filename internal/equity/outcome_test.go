package equity

import (
	"testing"

	"github.com/lox/holdem-odds/poker"
	"github.com/stretchr/testify/assert"
)

func TestJudge(t *testing.T) {
	t.Parallel()
	pair := poker.NewOnePair(poker.Ace, poker.King, poker.Queen, poker.Jack)
	weaker := poker.NewHighCard(poker.Ace, poker.King, poker.Queen, poker.Jack, poker.Nine)
	stronger := poker.NewTwoPair(poker.Three, poker.Two, poker.Four)

	tests := []struct {
		name      string
		opponents []poker.HandRank
		expected  Outcome
	}{
		{"beats single opponent", []poker.HandRank{weaker}, Win},
		{"beats every opponent", []poker.HandRank{weaker, weaker, weaker}, Win},
		{"ties single opponent", []poker.HandRank{pair}, Tie},
		{"ties every opponent", []poker.HandRank{pair, pair}, Tie},
		{"loses to single opponent", []poker.HandRank{stronger}, Loss},
		{"one stronger opponent spoils a tie", []poker.HandRank{pair, stronger}, Loss},
		{"one stronger opponent spoils a win", []poker.HandRank{weaker, stronger, weaker}, Loss},
		{"partial tie is a loss", []poker.HandRank{pair, weaker}, Loss},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, Judge(pair, tt.opponents))
		})
	}
}

func TestTally(t *testing.T) {
	t.Parallel()

	var a Tally
	for _, o := range []Outcome{Win, Win, Tie, Loss} {
		a.Record(o)
	}
	assert.Equal(t, Tally{Wins: 2, Ties: 1, Losses: 1}, a)
	assert.Equal(t, uint64(4), a.Trials())

	b := Tally{Wins: 5, Ties: 0, Losses: 7}
	c := Tally{Wins: 1, Ties: 9, Losses: 3}

	t.Run("zero is identity", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, a, a.Add(Tally{}))
		assert.Equal(t, a, Tally{}.Add(a))
	})

	t.Run("commutative", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, a.Add(b), b.Add(a))
	})

	t.Run("associative", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, a.Add(b).Add(c), a.Add(b.Add(c)))
	})
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "win", Win.String())
	assert.Equal(t, "tie", Tie.String())
	assert.Equal(t, "loss", Loss.String())
	assert.Equal(t, "unknown", Outcome(9).String())
}
