package engine_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/notnil/chess"
	"github.com/stretchr/testify/require"

	"chessengine/engine"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "engine.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := engine.DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 3, cfg.Depth)
	require.Equal(t, engine.Score(100), cfg.Eval.Pawn)
	require.Equal(t, engine.Score(20000), cfg.Eval.King)
	require.True(t, cfg.Eval.Mobility)
	require.True(t, cfg.Eval.Center)

	material := engine.MaterialOnly()
	require.False(t, material.Eval.Mobility)
	require.False(t, material.Eval.Center)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
depth: 5
workers: 2
time_limit: 250ms
seed: 7
order:
  king_move_penalty: -50
eval:
  queen: 950
  mobility: false
`)
	cfg, err := engine.LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 5, cfg.Depth)
	require.Equal(t, 2, cfg.Workers)
	require.Equal(t, 250*time.Millisecond, cfg.TimeLimit)
	require.Equal(t, uint64(7), cfg.Seed)
	require.Equal(t, engine.Score(-50), cfg.Order.KingMovePenalty)
	require.Equal(t, engine.Score(10), cfg.Order.CastleBonus, "unset keys keep their defaults")
	require.Equal(t, engine.Score(950), cfg.Eval.Queen)
	require.Equal(t, engine.Score(500), cfg.Eval.Rook)
	require.False(t, cfg.Eval.Mobility)
	require.True(t, cfg.Eval.Center)
}

func TestLoadConfigErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := engine.LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
	t.Run("malformed yaml", func(t *testing.T) {
		_, err := engine.LoadConfig(writeConfig(t, "depth: [1, 2"))
		require.ErrorIs(t, err, engine.ErrConfiguration)
	})
	t.Run("invalid values", func(t *testing.T) {
		_, err := engine.LoadConfig(writeConfig(t, "depth: 0"))
		require.ErrorIs(t, err, engine.ErrConfiguration)
	})
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*engine.Config)
	}{
		{"zero depth", func(c *engine.Config) { c.Depth = 0 }},
		{"negative depth", func(c *engine.Config) { c.Depth = -2 }},
		{"negative workers", func(c *engine.Config) { c.Workers = -1 }},
		{"negative time limit", func(c *engine.Config) { c.TimeLimit = -time.Second }},
		{"zero pawn value", func(c *engine.Config) { c.Eval.Pawn = 0 }},
		{"negative mobility weight", func(c *engine.Config) { c.Eval.MobilityWeight = -1 }},
		{"negative center bonus", func(c *engine.Config) { c.Eval.CenterBonus = -5 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := engine.DefaultConfig()
			tc.mutate(&cfg)
			require.ErrorIs(t, cfg.Validate(), engine.ErrConfiguration)

			_, err := engine.New[*chess.Move](cfg)
			require.ErrorIs(t, err, engine.ErrConfiguration)
		})
	}
}
