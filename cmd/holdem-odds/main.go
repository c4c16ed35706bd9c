package main

import (
	"context"
	"fmt"
	"io"
	rand "math/rand/v2"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/lox/holdem-odds/internal/config"
	"github.com/lox/holdem-odds/internal/equity"
	"github.com/lox/holdem-odds/internal/report"
	"github.com/lox/holdem-odds/poker"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version kong.VersionFlag `short:"v" help:"Show version"`

	Hand  string `short:"H" required:"" help:"Hole cards, e.g. 'As Ad'"`
	Board string `short:"b" help:"Known community cards, e.g. 'Ah Ac 2s'"`

	Trials     int    `short:"n" help:"Trials per player count (default 1000000)"`
	Workers    int    `short:"w" help:"Worker goroutines (default: number of CPUs)"`
	ChunkSize  int    `help:"Trials per seeded chunk (default 4096)"`
	Seed       *int64 `help:"Random seed for reproducible results"`
	MinPlayers int    `help:"Smallest player count in the sweep (default 2)"`
	MaxPlayers int    `help:"Largest player count in the sweep (default 5)"`

	Config   string `short:"c" default:"holdem-odds.hcl" help:"HCL configuration file (optional)"`
	Format   string `short:"f" help:"Output format: table or plain"`
	NoColor  bool   `help:"Disable coloured output"`
	LogLevel string `help:"Log level: debug, info, warn, error"`
	Debug    bool   `short:"d" help:"Shorthand for --log-level=debug"`
}

func main() {
	var cli CLI
	kctx := kong.Parse(&cli,
		kong.Name("holdem-odds"),
		kong.Description("Monte Carlo win, tie and loss rates for a Texas Hold'em hand"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := cli.Run(ctx, os.Stdout, os.Stderr)
	kctx.FatalIfErrorf(err)
}

// Run loads configuration, simulates the requested sweep and prints results.
func (c *CLI) Run(ctx context.Context, stdout, stderr io.Writer) error {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return err
	}
	c.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	logger := log.NewWithOptions(stderr, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "odds",
		Level:           level,
	})

	hand, err := poker.ParseCards(c.Hand)
	if err != nil {
		return fmt.Errorf("parse hand: %w", err)
	}
	board, err := poker.ParseCards(c.Board)
	if err != nil {
		return fmt.Errorf("parse board: %w", err)
	}
	if err := equity.Validate(hand, board, cfg.Sweep.MinPlayers); err != nil {
		return err
	}

	if c.Seed == nil && cfg.Simulation.Seed == 0 {
		cfg.Simulation.Seed = rand.Int64()
		logger.Debug("Using random seed", "seed", cfg.Simulation.Seed)
	}

	sim := equity.New(cfg.Engine(logger))
	results, err := sim.Sweep(ctx, hand, board, cfg.Sweep.MinPlayers, cfg.Sweep.MaxPlayers)
	if err != nil {
		return err
	}

	return report.New(stdout, cfg.Output.Format, cfg.Output.NoColor).Print(hand, board, results)
}

// apply overrides file values with any flags that were explicitly set.
func (c *CLI) apply(cfg *config.Config) {
	if c.Trials != 0 {
		cfg.Simulation.Trials = c.Trials
	}
	if c.Workers != 0 {
		cfg.Simulation.Workers = c.Workers
	}
	if c.ChunkSize != 0 {
		cfg.Simulation.ChunkSize = c.ChunkSize
	}
	if c.Seed != nil {
		cfg.Simulation.Seed = *c.Seed
	}
	if c.MinPlayers != 0 {
		cfg.Sweep.MinPlayers = c.MinPlayers
	}
	if c.MaxPlayers != 0 {
		cfg.Sweep.MaxPlayers = c.MaxPlayers
	}
	if c.Format != "" {
		cfg.Output.Format = c.Format
	}
	if c.NoColor {
		cfg.Output.NoColor = true
	}
	if c.LogLevel != "" {
		cfg.Log.Level = c.LogLevel
	}
	if c.Debug {
		cfg.Log.Level = "debug"
	}
}
