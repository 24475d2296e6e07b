package capengine

// CapSpace is a franchise's room under the cap. Negative values mean the
// franchise is over budget.
type CapSpace struct {
	CapSpace          float64
	EffectiveCapSpace float64 // CapSpace less the rookie reserve
}

// ResolveCapSpace subtracts charges and dead money from the cap limit, then
// the reserve. Results are not clamped.
func ResolveCapSpace(capLimit, totalCharges, deadMoney, reserve float64) CapSpace {
	space := capLimit - totalCharges - deadMoney
	return CapSpace{
		CapSpace:          space,
		EffectiveCapSpace: space - reserve,
	}
}

// CapSpace resolves cap space against the league cap limit and rookie reserve
func (e *Engine) CapSpace(totalCharges, deadMoney float64) CapSpace {
	return ResolveCapSpace(e.rules.CapLimit, totalCharges, deadMoney, e.rules.RookieReserve)
}

// SeasonCapSpace returns the cap limit less charges and dead money for every
// season in the window
func (e *Engine) SeasonCapSpace(charges, dead SalaryYears) SalaryYears {
	var space SalaryYears
	for i := range space {
		space[i] = e.rules.CapLimit - charges[i] - dead[i]
	}
	return space
}
