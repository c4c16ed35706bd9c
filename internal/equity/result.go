package equity

import (
	"math"
	"time"
)

// Result is the aggregate of one simulation run for a fixed player count.
type Result struct {
	Players int
	Tally
	Elapsed time.Duration
}

// WinRate returns the fraction of trials won (0.0 to 1.0)
func (r Result) WinRate() float64 {
	return r.rate(r.Wins)
}

// TieRate returns the fraction of trials tied (0.0 to 1.0)
func (r Result) TieRate() float64 {
	return r.rate(r.Ties)
}

// LossRate returns the fraction of trials lost (0.0 to 1.0)
func (r Result) LossRate() float64 {
	return r.rate(r.Losses)
}

func (r Result) rate(n uint64) float64 {
	total := r.Trials()
	if total == 0 {
		return 0.0
	}
	return float64(n) / float64(total)
}

// ExpectedValue returns the net expected return of a one unit bet when every
// player antes one unit, the winner takes the pot and a tie refunds the stake.
func (r Result) ExpectedValue() float64 {
	return float64(r.Players)*r.WinRate() + r.TieRate() - 1
}

// ConfidenceInterval returns the 95% confidence interval for the win rate
func (r Result) ConfidenceInterval() (lower, upper float64) {
	n := float64(r.Trials())
	if n == 0 {
		return 0.0, 0.0
	}

	p := r.WinRate()
	// Standard error for binomial proportion
	margin := 1.96 * math.Sqrt(p*(1.0-p)/n)

	return math.Max(0.0, p-margin), math.Min(1.0, p+margin)
}

// TrialsPerSecond reports simulation throughput, or zero when no time elapsed.
func (r Result) TrialsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Trials()) / r.Elapsed.Seconds()
}
