package capengine

import (
	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

// DeadMoney accumulates waiver and release penalties into the salary-year
// window. An empty franchise disables filtering.
//
// An adjustment with YearsRemaining charges WaiverCurrentPercent of salary at
// its offset and, when the schedule has a positive share for the remaining
// years, that share one season later. Without YearsRemaining the full salary
// lands at the offset. Writes outside the window are dropped.
func (e *Engine) DeadMoney(adjustments []models.DeadMoneyAdjustment, franchise models.FranchiseID) SalaryYears {
	var dead SalaryYears

	for _, adj := range adjustments {
		if franchise != "" && !adj.Franchise.Matches(franchise) {
			continue
		}

		offset := adj.ResolvedOffset()
		salary := adj.ResolvedSalary()

		if !adj.HasYearsRemaining() {
			dead.add(offset, salary)
			continue
		}

		dead.add(offset, models.Finite(salary*e.rules.WaiverCurrentPercent))

		percent, ok := e.rules.DeadMoneySchedule[*adj.YearsRemaining]
		if !ok {
			continue
		}
		if future := models.Finite(salary * percent); future > 0 {
			dead.add(offset+1, future)
		}
	}

	return dead
}
