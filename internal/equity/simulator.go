// Package equity estimates how often a starting hand wins, ties or loses
// against random opponents by Monte Carlo simulation.
package equity

import (
	"context"
	"fmt"
	"io"
	"runtime"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lox/holdem-odds/internal/randutil"
	"github.com/lox/holdem-odds/poker"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultTrials    = 1_000_000
	DefaultChunkSize = 4096
)

// Config holds configuration for running simulations
type Config struct {
	Trials    int
	Workers   int
	ChunkSize int
	Seed      int64
	Logger    *log.Logger
	Clock     quartz.Clock
}

// Simulator runs Monte Carlo equity simulations
type Simulator struct {
	config Config
	runID  string
}

// New creates a simulator, filling unset fields with defaults.
func New(config Config) *Simulator {
	if config.Trials <= 0 {
		config.Trials = DefaultTrials
	}
	if config.Workers <= 0 {
		config.Workers = runtime.NumCPU()
	}
	if config.ChunkSize <= 0 {
		config.ChunkSize = DefaultChunkSize
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.Clock == nil {
		config.Clock = quartz.NewReal()
	}
	return &Simulator{config: config, runID: uuid.NewString()[:8]}
}

// RunID identifies this simulator's runs in logs.
func (s *Simulator) RunID() string {
	return s.runID
}

// Simulate runs the configured number of trials for one player count.
//
// Trials are split into fixed-size chunks and chunk k always draws from the
// generator derived from (Seed, k), so the result depends only on the seed,
// trial count and chunk size, never on worker count or scheduling. A cancelled
// context aborts the run and no partial result is returned.
func (s *Simulator) Simulate(ctx context.Context, hand, board []poker.Card, players int) (Result, error) {
	if err := Validate(hand, board, players); err != nil {
		return Result{}, err
	}

	logger := s.config.Logger.With("run", s.runID, "players", players)
	start := s.config.Clock.Now()

	deck := poker.NewDeck()
	deck.RemoveKnown(hand, board)
	template := deck.Cards()

	chunkSize := s.config.ChunkSize
	chunks := (s.config.Trials + chunkSize - 1) / chunkSize
	workers := min(s.config.Workers, chunks)

	logger.Debug("Starting simulation",
		"trials", s.config.Trials, "workers", workers, "chunks", chunks, "seed", s.config.Seed)

	tallies := make([]Tally, workers)
	var next atomic.Int64

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			t := newTrial(hand, board, players, template)
			for {
				if err := gctx.Err(); err != nil {
					return err
				}
				k := int(next.Add(1) - 1)
				if k >= chunks {
					return nil
				}
				n := min(chunkSize, s.config.Trials-k*chunkSize)
				rng := randutil.Derive(s.config.Seed, uint64(k))
				for i := 0; i < n; i++ {
					tallies[w].Record(t.run(rng))
				}
			}
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, fmt.Errorf("simulate %d players: %w", players, err)
	}

	result := Result{Players: players}
	for _, t := range tallies {
		result.Tally = result.Tally.Add(t)
	}
	result.Elapsed = s.config.Clock.Since(start)

	logger.Info("Simulation complete",
		"trials", result.Trials(),
		"win", fmt.Sprintf("%.4f", result.WinRate()),
		"tie", fmt.Sprintf("%.4f", result.TieRate()),
		"elapsed", result.Elapsed,
		"trials_per_sec", int64(result.TrialsPerSecond()))

	return result, nil
}

// Sweep simulates every player count from minPlayers to maxPlayers inclusive.
func (s *Simulator) Sweep(ctx context.Context, hand, board []poker.Card, minPlayers, maxPlayers int) ([]Result, error) {
	if minPlayers > maxPlayers {
		return nil, fmt.Errorf("%w: min %d exceeds max %d", ErrPlayerCount, minPlayers, maxPlayers)
	}
	for _, p := range []int{minPlayers, maxPlayers} {
		if err := Validate(hand, board, p); err != nil {
			return nil, err
		}
	}

	s.config.Logger.Info("Starting sweep",
		"run", s.runID,
		"hand", poker.FormatCards(hand),
		"board", poker.FormatCards(board),
		"players", fmt.Sprintf("%d-%d", minPlayers, maxPlayers))

	results := make([]Result, 0, maxPlayers-minPlayers+1)
	for players := minPlayers; players <= maxPlayers; players++ {
		result, err := s.Simulate(ctx, hand, board, players)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	return results, nil
}
