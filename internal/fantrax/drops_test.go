package fantrax

import (
	"testing"

	fantraxmodels "github.com/pmurley/go-fantrax/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

func TestDropAdjustments(t *testing.T) {
	roster := models.PlayerList{
		{Name: "Jason Todd", Franchise: "Gotham", Salary: 1000000, ContractYears: 3},
		{Name: "Alfred", Franchise: "Gotham", Salary: 0, ContractYears: 2},
		{Name: "Lex Luthor", Franchise: "Metropolis", Salary: 2000000, ContractYears: 1},
	}
	transactions := []fantraxmodels.Transaction{
		{ID: "1", Type: "DROP", TeamName: "Gotham", PlayerName: "jason todd"},
		{ID: "2", Type: "CLAIM", TeamName: "Gotham", PlayerName: "Jason Todd"},
		{ID: "3", Type: "DROP", TeamName: "Gotham", PlayerName: "Alfred"},
		{ID: "4", Type: "DROP", TeamName: "Gotham", PlayerName: "Lex Luthor"},
		{ID: "5", Type: "DROP", TeamName: "Metropolis", PlayerName: "Lex Luthor"},
	}

	recorded := []models.DeadMoneyAdjustment{{Franchise: "Metropolis", Player: "Someone Else", Source: "fantrax:5"}}
	adjustments := DropAdjustments(transactions, roster, recorded)

	require.Len(t, adjustments, 1)
	adj := adjustments[0]
	assert.Equal(t, models.FranchiseID("Gotham"), adj.Franchise)
	assert.Equal(t, "Jason Todd", adj.Player)
	assert.Equal(t, 1000000.0, adj.ResolvedSalary())
	assert.Equal(t, 0, adj.ResolvedOffset())
	require.NotNil(t, adj.YearsRemaining)
	assert.Equal(t, 3, *adj.YearsRemaining)
	assert.Equal(t, "fantrax:1", adj.Source)
}

func TestDropAdjustmentsEmpty(t *testing.T) {
	assert.Empty(t, DropAdjustments(nil, nil, nil))
}

func TestDropAdjustmentsSkipsPlayersAlreadyCharged(t *testing.T) {
	roster := models.PlayerList{
		{Name: "Jason Todd", Franchise: "Gotham", Salary: 1000000, ContractYears: 3},
	}
	transactions := []fantraxmodels.Transaction{
		{ID: "7", Type: "DROP", TeamName: "Gotham", PlayerName: "Jason Todd"},
		{ID: "8", Type: "DROP", TeamName: "Gotham", PlayerName: "Jason Todd"},
	}

	waived := []models.DeadMoneyAdjustment{
		{Franchise: "gotham", Player: "jason todd", Salary: models.Float(1000000), YearsRemaining: models.Int(3), Source: "discord:42"},
	}
	assert.Empty(t, DropAdjustments(transactions, roster, waived))

	// Repeated drops in one batch charge once
	assert.Len(t, DropAdjustments(transactions, roster, nil), 1)
}
