package bot

import (
	"testing"

	fantraxmodels "github.com/pmurley/go-fantrax/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmurley/dynasty-cap-bot/internal/capengine"
	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

func testRoster() models.PlayerList {
	return models.PlayerList{
		{Name: "Cut Guy", Franchise: "Wolves", Salary: 4e6, ContractYears: 2},
		{Name: "Keeper", Franchise: "Wolves", Salary: 1e6, ContractYears: 1},
	}
}

func testTransactions() []fantraxmodels.Transaction {
	return []fantraxmodels.Transaction{
		{ID: "1", Type: "DROP", TeamName: "Wolves", PlayerName: "Cut Guy"},
		{ID: "2", Type: "CLAIM", TeamName: "Wolves", PlayerName: "New Guy"},
		{ID: "3", Type: "DROP", TeamName: "Bears", PlayerName: "Keeper"},
	}
}

func TestPlanDropsFirstRun(t *testing.T) {
	plan := planDrops(testTransactions(), map[string]bool{}, nil, testRoster())

	assert.Len(t, plan.Unseen, 3)
	assert.Empty(t, plan.Adjustments)
}

func TestPlanDropsNewTransactions(t *testing.T) {
	seen := map[string]bool{"0": true}

	plan := planDrops(testTransactions(), seen, nil, testRoster())
	assert.Len(t, plan.Unseen, 3)
	require.Len(t, plan.Adjustments, 1)
	assert.Equal(t, "Cut Guy", plan.Adjustments[0].Player)
	assert.Equal(t, "fantrax:1", plan.Adjustments[0].Source)
}

func TestPlanDropsSkipsSeen(t *testing.T) {
	seen := map[string]bool{"1": true, "2": true}

	plan := planDrops(testTransactions(), seen, nil, testRoster())
	require.Len(t, plan.Unseen, 1)
	assert.Equal(t, "3", plan.Unseen[0].ID)
	assert.Empty(t, plan.Adjustments)
}

func TestPlanDropsSkipsRecordedSources(t *testing.T) {
	seen := map[string]bool{"0": true}
	recorded := []models.DeadMoneyAdjustment{{Franchise: "Bears", Player: "Other", Source: "fantrax:1"}}

	plan := planDrops(testTransactions(), seen, recorded, testRoster())
	assert.Len(t, plan.Unseen, 3)
	assert.Empty(t, plan.Adjustments)
}

func TestCreateDropEmbed(t *testing.T) {
	rules := capengine.DefaultRules()
	rules.CurrentSeason = 2025
	engine := capengine.New(rules)

	plan := planDrops(testTransactions(), map[string]bool{"0": true}, nil, testRoster())
	require.Len(t, plan.Adjustments, 1)
	adj := plan.Adjustments[0]

	embed := createDropEmbed(adj, engine.DeadMoney(plan.Adjustments, ""), engine.Seasons())
	assert.Contains(t, embed.Description, "Cut Guy")
	assert.Contains(t, embed.Description, "2 yr left")
	require.Len(t, embed.Fields, 2)
	assert.Equal(t, "2025", embed.Fields[0].Name)
	assert.Equal(t, "$2000000", embed.Fields[0].Value)
	assert.Equal(t, "$600000", embed.Fields[1].Value)
	assert.Equal(t, "fantrax:1", embed.Footer.Text)
}

func TestPlanDropsAfterWaiveChargesOnce(t *testing.T) {
	rules := capengine.DefaultRules()
	rules.CurrentSeason = 2025
	engine := capengine.New(rules)

	roster := models.PlayerList{
		{Name: "Cut Guy", Franchise: "Wolves", Salary: 1e6, ContractYears: 3},
	}
	waived := models.DeadMoneyAdjustment{
		Franchise:      "Wolves",
		Player:         "Cut Guy",
		Salary:         models.Float(1e6),
		YearOffset:     models.Int(0),
		YearsRemaining: models.Int(3),
		Source:         "discord:99",
	}

	plan := planDrops(testTransactions(), map[string]bool{"0": true}, []models.DeadMoneyAdjustment{waived}, roster)
	assert.Len(t, plan.Unseen, 3)
	assert.Empty(t, plan.Adjustments)

	all := append([]models.DeadMoneyAdjustment{waived}, plan.Adjustments...)
	dead := engine.DeadMoney(all, "Wolves")
	assert.InDelta(t, 500000.0, dead[0], 1e-6)
	assert.InDelta(t, 250000.0, dead[1], 1e-6)
	assert.Zero(t, dead[2])
}
