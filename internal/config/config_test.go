package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmurley/dynasty-cap-bot/internal/capengine"
)

func writeLeagueFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "league.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadLeagueDefaults(t *testing.T) {
	league, err := LoadLeague("")
	require.NoError(t, err)
	assert.Equal(t, capengine.DefaultCapLimit, league.CapLimit)
	assert.Equal(t, 22, league.TargetActive)
	assert.Empty(t, league.Owners)
}

func TestLoadLeagueOverrides(t *testing.T) {
	path := writeLeagueFile(t, `
cap_limit: 50000000
current_season: 2026
dead_money_schedule:
  3: 0.3
owners:
  Gotham Knights: [bwayne, agent_a]
`)

	league, err := LoadLeague(path)
	require.NoError(t, err)

	assert.Equal(t, 50000000.0, league.CapLimit)
	assert.Equal(t, 2026, league.CurrentSeason)
	assert.Equal(t, capengine.DefaultRookieReserve, league.RookieReserve)
	assert.Equal(t, 0.10, league.EscalationRate)
	assert.Equal(t, 0.3, league.DeadMoneySchedule[3])
	assert.Equal(t, 0.45, league.DeadMoneySchedule[5])
	assert.True(t, league.Owners.IsOwner("gotham knights", "agent_a"))
}

func TestLoadLeagueErrors(t *testing.T) {
	_, err := LoadLeague(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadLeague(writeLeagueFile(t, "cap_limit: [not, a, number]"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	t.Setenv("CACHE_DURATION_MINUTES", "15")
	t.Setenv("CURRENT_SEASON", "2027")
	t.Setenv("COMMAND_PREFIX", "")
	t.Setenv("LEAGUE_RULES_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.CacheDuration)
	assert.Equal(t, 2027, cfg.Rules.CurrentSeason)
	assert.Equal(t, "!", cfg.CommandPrefix)
	assert.Equal(t, "./data", cfg.DataDir)
}
