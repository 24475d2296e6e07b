package capengine

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

const tolerance = 1e-6

func newTestEngine() *Engine {
	rules := DefaultRules()
	rules.CurrentSeason = 2025
	return New(rules)
}

func TestCapChargesEscalation(t *testing.T) {
	e := newTestEngine()
	charges := e.CapCharges([]models.Player{
		{Name: "Starter", Status: "ROSTER", Salary: 1000000, ContractYears: 5},
	})

	for i := 0; i < WindowYears; i++ {
		assert.InDelta(t, 1000000*math.Pow(1.10, float64(i)), charges[i], tolerance, "year %d", i)
	}
}

func TestCapChargesContractCutoff(t *testing.T) {
	e := newTestEngine()
	charges := e.CapCharges([]models.Player{
		{Name: "Short", Salary: 2000000, ContractYears: 2},
	})

	assert.InDelta(t, 2000000.0, charges[0], tolerance)
	assert.InDelta(t, 2200000.0, charges[1], tolerance)
	assert.Zero(t, charges[2])
	assert.Zero(t, charges[3])
	assert.Zero(t, charges[4])
}

func TestCapChargesPracticeDiscount(t *testing.T) {
	e := newTestEngine()
	active := e.PlayerCharges(models.Player{Status: "ROSTER", Salary: 800000, ContractYears: 3})
	taxi := e.PlayerCharges(models.Player{Status: "TAXI_SQUAD", Salary: 800000, ContractYears: 3})

	assert.InDelta(t, active[0]/2, taxi[0], tolerance)
	for i := 1; i < WindowYears; i++ {
		assert.InDelta(t, active[i], taxi[i], tolerance, "year %d", i)
	}
}

func TestCapChargesSumsPlayers(t *testing.T) {
	e := newTestEngine()
	charges := e.CapCharges([]models.Player{
		{Salary: 1000000, ContractYears: 1},
		{Salary: 500000, ContractYears: 3, Status: "IR"},
		{Salary: 0, ContractYears: 5},
		{Salary: 900000, ContractYears: 0},
	})

	assert.InDelta(t, 1500000.0, charges[0], tolerance)
	assert.InDelta(t, 550000.0, charges[1], tolerance)
	assert.InDelta(t, 605000.0, charges[2], tolerance)
	assert.Zero(t, charges[3])
}

func TestCapChargesNonFiniteSalary(t *testing.T) {
	e := newTestEngine()
	charges := e.CapCharges([]models.Player{
		{Salary: math.NaN(), ContractYears: 5},
		{Salary: math.Inf(1), ContractYears: 5},
		{Salary: 100, ContractYears: 1},
	})

	assert.Equal(t, 100.0, charges[0])
	assert.Zero(t, charges[1])
}

func TestCapChargesEmpty(t *testing.T) {
	e := newTestEngine()
	assert.Equal(t, SalaryYears{}, e.CapCharges(nil))
	assert.Equal(t, SalaryYears{}, e.CapCharges([]models.Player{}))
}

func TestCapChargesIdempotent(t *testing.T) {
	e := newTestEngine()
	players := []models.Player{
		{Name: "A", Status: "TAXI", Salary: 750000, ContractYears: 4},
		{Name: "B", Status: "IR", Salary: 3200000, ContractYears: 2},
	}
	snapshot := append([]models.Player(nil), players...)

	first := e.CapCharges(players)
	second := e.CapCharges(players)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, players)
}

func TestEngineCopiesRules(t *testing.T) {
	rules := DefaultRules()
	e := New(rules)
	rules.DeadMoneySchedule[3] = 0.99

	got := e.Rules()
	require.Contains(t, got.DeadMoneySchedule, 3)
	assert.Equal(t, 0.25, got.DeadMoneySchedule[3])
}

func TestWindow(t *testing.T) {
	assert.Equal(t, [WindowYears]int{2025, 2026, 2027, 2028, 2029}, Window(2025))
	assert.Equal(t, Window(2025), newTestEngine().Seasons())
}
