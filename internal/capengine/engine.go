// Package capengine projects salary-cap charges, dead money and cap space
// over a five-season window, and reduces franchise cap situations into a
// league-wide free-agent envelope.
//
// Every function is a pure mapping from its arguments to its result. Nothing
// here reads or writes shared state, so an Engine is safe for concurrent use.
package capengine

import (
	"math"

	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

// Engine computes cap figures against a fixed set of league rules
type Engine struct {
	rules Rules
}

// New creates an engine bound to a private copy of rules
func New(rules Rules) *Engine {
	return &Engine{rules: rules.clone()}
}

// Rules returns a copy of the engine's rules
func (e *Engine) Rules() Rules {
	return e.rules.clone()
}

// Seasons returns the season labels of the engine's window
func (e *Engine) Seasons() [WindowYears]int {
	return Window(e.rules.CurrentSeason)
}

// CapCharges returns the total cap charge for each salary year. A player
// counts in year i only while ContractYears > i, at base salary escalated by
// (1+rate)^i and scaled by the status inclusion percentage for that year.
func (e *Engine) CapCharges(players []models.Player) SalaryYears {
	var charges SalaryYears

	for i := 0; i < WindowYears; i++ {
		escalation := math.Pow(1+e.rules.EscalationRate, float64(i))
		total := 0.0
		for _, p := range players {
			if p.ContractYears <= i {
				continue
			}
			percent := InclusionPercent(p.Status, i == 0)
			total += models.Finite(p.Salary * escalation * percent)
		}
		charges[i] = total
	}

	return charges
}

// PlayerCharges returns a single player's contribution to CapCharges
func (e *Engine) PlayerCharges(p models.Player) SalaryYears {
	return e.CapCharges([]models.Player{p})
}
