package equity

import "github.com/lox/holdem-odds/poker"

// Outcome is the tracked player's result in a single trial.
type Outcome uint8

const (
	Loss Outcome = iota
	Tie
	Win
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Tie:
		return "tie"
	case Loss:
		return "loss"
	default:
		return "unknown"
	}
}

// Judge decides the tracked player's outcome against every opponent.
// A win must beat all opponents and a tie must equal all of them; anything
// else, including tying some opponents while beating the rest, is a loss.
func Judge(hero poker.HandRank, opponents []poker.HandRank) Outcome {
	beatAll, tiedAll := true, true
	for _, opp := range opponents {
		switch poker.Compare(hero, opp) {
		case -1:
			return Loss
		case 0:
			beatAll = false
		case 1:
			tiedAll = false
		}
	}
	switch {
	case beatAll:
		return Win
	case tiedAll:
		return Tie
	default:
		return Loss
	}
}

// Tally accumulates trial outcomes. The zero value is an empty tally.
type Tally struct {
	Wins   uint64
	Ties   uint64
	Losses uint64
}

// Record counts one outcome.
func (t *Tally) Record(o Outcome) {
	switch o {
	case Win:
		t.Wins++
	case Tie:
		t.Ties++
	default:
		t.Losses++
	}
}

// Add returns the sum of two tallies.
func (t Tally) Add(other Tally) Tally {
	return Tally{
		Wins:   t.Wins + other.Wins,
		Ties:   t.Ties + other.Ties,
		Losses: t.Losses + other.Losses,
	}
}

// Trials returns the number of recorded outcomes.
func (t Tally) Trials() uint64 {
	return t.Wins + t.Ties + t.Losses
}
