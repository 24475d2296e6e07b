package models

import (
	"math"
	"strings"
)

// DeadMoneyAdjustment is the remaining obligation of one waived or released
// contract. Pointer fields distinguish "absent" from zero.
type DeadMoneyAdjustment struct {
	Franchise      FranchiseID
	Player         string
	Salary         *float64
	Amount         *float64 // Used when Salary is absent
	YearOffset     *int
	SeasonOffset   *int // Used when YearOffset is absent
	YearsRemaining *int
	Source         string // Origin of the record, e.g. "fantrax:<txid>" or "discord:<msgid>"
}

// ResolvedSalary returns Salary, falling back to Amount. Missing or
// non-finite values resolve to 0.
func (a DeadMoneyAdjustment) ResolvedSalary() float64 {
	if a.Salary != nil {
		return Finite(*a.Salary)
	}
	if a.Amount != nil {
		return Finite(*a.Amount)
	}
	return 0
}

// ResolvedOffset returns the window index where the penalty begins
func (a DeadMoneyAdjustment) ResolvedOffset() int {
	if a.YearOffset != nil {
		return *a.YearOffset
	}
	if a.SeasonOffset != nil {
		return *a.SeasonOffset
	}
	return 0
}

// HasYearsRemaining reports whether the adjustment is a waiver split rather
// than a full carryover charge
func (a DeadMoneyAdjustment) HasYearsRemaining() bool {
	return a.YearsRemaining != nil
}

// IsFor reports whether the adjustment charges the given franchise for the
// given player. Both are compared case-insensitively.
func (a DeadMoneyAdjustment) IsFor(franchise FranchiseID, player string) bool {
	return a.Franchise.Matches(franchise) &&
		strings.EqualFold(strings.TrimSpace(a.Player), strings.TrimSpace(player))
}

// ParseAdjustmentRecord maps a dead-money CSV row onto an adjustment. Rows
// with neither salary nor amount are skipped (nil, nil). A non-empty money
// cell is present even when malformed and coerces to 0, so it still takes
// precedence over amount.
func ParseAdjustmentRecord(row []string, header map[string]int) (*DeadMoneyAdjustment, error) {
	adj := &DeadMoneyAdjustment{
		Franchise: NewFranchiseID(cell(row, header, "franchise", "team", "owner")),
		Player:    cell(row, header, "player", "name"),
		Source:    cell(row, header, "source"),
	}

	if raw := cell(row, header, "salary"); raw != "" {
		adj.Salary = Float(CoerceAmount(raw))
	}
	if raw := cell(row, header, "amount", "dead money"); raw != "" {
		adj.Amount = Float(CoerceAmount(raw))
	}
	if adj.Salary == nil && adj.Amount == nil {
		return nil, nil
	}

	if v, ok := ParseCount(cell(row, header, "year offset", "yearoffset")); ok {
		adj.YearOffset = Int(v)
	}
	if v, ok := ParseCount(cell(row, header, "season offset", "seasonoffset")); ok {
		adj.SeasonOffset = Int(v)
	}
	if v, ok := ParseCount(cell(row, header, "years remaining", "yearsremaining")); ok {
		adj.YearsRemaining = Int(v)
	}

	return adj, nil
}

// Float returns a pointer to a finite copy of v
func Float(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		v = 0
	}
	return &v
}

// Int returns a pointer to a copy of v
func Int(v int) *int {
	return &v
}
