package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/lox/holdem-odds/internal/equity"
	"github.com/lox/holdem-odds/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseCLI(t *testing.T, args ...string) *CLI {
	t.Helper()
	var cli CLI
	parser, err := kong.New(&cli, kong.Name("holdem-odds"), kong.Vars{"version": "test"})
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	if cli.Config == "holdem-odds.hcl" {
		cli.Config = filepath.Join(t.TempDir(), "absent.hcl")
	}
	return &cli
}

func TestRunPlain(t *testing.T) {
	t.Parallel()
	cli := parseCLI(t, "--hand", "As Ad", "--board", "Ah Ac 2s 2d 2h",
		"-n", "500", "--seed", "1", "--max-players", "4", "-f", "plain", "--no-color")

	var stdout, stderr bytes.Buffer
	require.NoError(t, cli.Run(context.Background(), &stdout, &stderr))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Number of players: 2. Simulated Win rate: 100.00%, Simulated Tie rate: 0.00%, EV 1$ bet 1.00$", lines[0])
	assert.Equal(t, "Number of players: 4. Simulated Win rate: 100.00%, Simulated Tie rate: 0.00%, EV 1$ bet 3.00$", lines[2])
}

func TestRunTableIsReproducible(t *testing.T) {
	t.Parallel()
	run := func(workers string) string {
		cli := parseCLI(t, "-H", "Kh Qh", "-b", "Jh 2c", "-n", "3000", "--chunk-size", "256", "-w", workers,
			"--seed", "17", "--min-players", "3", "--max-players", "3", "--no-color")
		var stdout, stderr bytes.Buffer
		require.NoError(t, cli.Run(context.Background(), &stdout, &stderr))
		// The footer carries wall time.
		out := stdout.String()
		return out[:strings.LastIndex(strings.TrimRight(out, "\n"), "\n")]
	}
	assert.Equal(t, run("1"), run("4"))
}

func TestRunUsesConfigFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "odds.hcl")
	src := `
simulation {
  trials = 200
  seed   = 5
}
sweep {
  min_players = 6
  max_players = 7
}
output {
  format = "plain"
}
`
	require.NoError(t, os.WriteFile(path, []byte(src), 0o600))

	cli := parseCLI(t, "-H", "7c 2d", "-c", path, "--max-players", "8")
	var stdout, stderr bytes.Buffer
	require.NoError(t, cli.Run(context.Background(), &stdout, &stderr))

	lines := strings.Split(strings.TrimSpace(stdout.String()), "\n")
	require.Len(t, lines, 3, "flag overrides the file's max players")
	assert.True(t, strings.HasPrefix(lines[0], "Number of players: 6."))
	assert.True(t, strings.HasPrefix(lines[2], "Number of players: 8."))
}

func TestRunDebugLogs(t *testing.T) {
	t.Parallel()
	cli := parseCLI(t, "-H", "Td 9d", "-n", "100", "--max-players", "2", "-f", "plain", "--debug")
	var stdout, stderr bytes.Buffer
	require.NoError(t, cli.Run(context.Background(), &stdout, &stderr))
	assert.Contains(t, stderr.String(), "Using random seed")
	assert.Contains(t, stderr.String(), "Starting simulation")
}

func TestRunErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{name: "bad hand token", args: []string{"-H", "Ax Kd"}, wantErr: poker.ErrInvalidCard},
		{name: "bad board token", args: []string{"-H", "As Kd", "-b", "Qd 10h"}, wantErr: poker.ErrInvalidCard},
		{name: "one card hand", args: []string{"-H", "As"}, wantErr: equity.ErrInvalidHand},
		{name: "duplicate card", args: []string{"-H", "As Kd", "-b", "As 2c 3c"}, wantErr: equity.ErrDuplicateCard},
		{name: "six card board", args: []string{"-H", "As Kd", "-b", "2c 3c 4c 5c 6c 7c"}, wantErr: equity.ErrInvalidBoard},
		{name: "bad format", args: []string{"-H", "As Kd", "-f", "json"}},
		{name: "too many players", args: []string{"-H", "As Kd", "--max-players", "24"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cli := parseCLI(t, append(tt.args, "-n", "10")...)
			var stdout, stderr bytes.Buffer
			err := cli.Run(context.Background(), &stdout, &stderr)
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
			assert.Empty(t, stdout.String())
		})
	}
}
