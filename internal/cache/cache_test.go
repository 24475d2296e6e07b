package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmurley/dynasty-cap-bot/internal/capengine"
	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

func TestPlayersRoundTrip(t *testing.T) {
	c := New(time.Minute)

	_, found := c.GetPlayers()
	assert.False(t, found)

	c.SetPlayers([]models.Player{{Name: "Bruce Wayne", Franchise: "Gotham"}})
	players, found := c.GetPlayers()
	require.True(t, found)
	assert.Len(t, players, 1)
}

func TestSettingInputsInvalidatesLeague(t *testing.T) {
	c := New(time.Minute)
	c.SetLeague(capengine.LeagueReport{Envelope: capengine.FreeAgentEnvelope{TotalTeams: 4}})

	report, found := c.GetLeague()
	require.True(t, found)
	assert.Equal(t, 4, report.Envelope.TotalTeams)

	c.SetAdjustments([]models.DeadMoneyAdjustment{{Franchise: "Gotham"}})
	_, found = c.GetLeague()
	assert.False(t, found)

	adjustments, found := c.GetAdjustments()
	require.True(t, found)
	assert.Len(t, adjustments, 1)

	c.SetLeague(capengine.LeagueReport{})
	c.SetPlayers(nil)
	_, found = c.GetLeague()
	assert.False(t, found)
}

func TestFlush(t *testing.T) {
	c := New(time.Minute)
	c.SetPlayers([]models.Player{{Name: "Clark Kent"}})
	c.Flush()

	_, found := c.GetPlayers()
	assert.False(t, found)
}
