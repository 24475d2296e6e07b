package storage

import (
	"testing"
	"time"

	fantraxmodels "github.com/pmurley/go-fantrax/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

func TestDeadMoneyStorageRoundTrip(t *testing.T) {
	ds, err := NewDeadMoneyStorage(t.TempDir())
	require.NoError(t, err)

	adjustments, err := ds.GetAdjustments()
	require.NoError(t, err)
	assert.Empty(t, adjustments)

	require.NoError(t, ds.AddAdjustment(models.DeadMoneyAdjustment{
		Franchise:      "Gotham",
		Player:         "Jason Todd",
		Salary:         models.Float(1250000.5),
		YearOffset:     models.Int(0),
		YearsRemaining: models.Int(3),
		Source:         "discord:123",
	}))
	require.NoError(t, ds.AddAdjustment(models.DeadMoneyAdjustment{
		Franchise:    "Metropolis",
		Player:       "Lex Luthor",
		Amount:       models.Float(300000),
		SeasonOffset: models.Int(2),
		Source:       "fantrax:abc",
	}))

	adjustments, err = ds.GetAdjustments()
	require.NoError(t, err)
	require.Len(t, adjustments, 2)

	first := adjustments[0]
	assert.Equal(t, models.FranchiseID("Gotham"), first.Franchise)
	assert.Equal(t, 1250000.5, first.ResolvedSalary())
	require.NotNil(t, first.YearsRemaining)
	assert.Equal(t, 3, *first.YearsRemaining)
	assert.Nil(t, first.Amount)

	second := adjustments[1]
	assert.Nil(t, second.Salary)
	assert.Nil(t, second.YearOffset)
	assert.Equal(t, 2, second.ResolvedOffset())
	assert.False(t, second.HasYearsRemaining())

	found, err := ds.HasPlayer("gotham", "jason todd")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = ds.HasPlayer("Metropolis", "Jason Todd")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestDeadMoneyStorageReopen(t *testing.T) {
	dir := t.TempDir()
	ds, err := NewDeadMoneyStorage(dir)
	require.NoError(t, err)
	require.NoError(t, ds.AddAdjustment(models.DeadMoneyAdjustment{Franchise: "Gotham", Salary: models.Float(1)}))

	reopened, err := NewDeadMoneyStorage(dir)
	require.NoError(t, err)

	adjustments, err := reopened.GetAdjustments()
	require.NoError(t, err)
	assert.Len(t, adjustments, 1)
}

func TestTransactionLedger(t *testing.T) {
	tl, err := NewTransactionLedger(t.TempDir())
	require.NoError(t, err)

	ids, err := tl.GetTransactionIDs()
	require.NoError(t, err)
	assert.Empty(t, ids)

	require.NoError(t, tl.AddTransactions([]fantraxmodels.Transaction{
		{ID: "tx1", Type: "DROP", TeamName: "Gotham", PlayerName: "Jason Todd", ProcessedDate: time.Now()},
		{ID: "tx2", Type: "CLAIM", TeamName: "Metropolis", PlayerName: "Kara Zor-El", ProcessedDate: time.Now()},
	}))

	ids, err = tl.GetTransactionIDs()
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"tx1": true, "tx2": true}, ids)
}
