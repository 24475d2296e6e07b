package models

import (
	"strings"
)

// FranchiseID identifies a fantasy franchise. It is the stable key for every
// per-franchise aggregation.
type FranchiseID string

// NewFranchiseID trims surrounding whitespace from a raw franchise name
func NewFranchiseID(raw string) FranchiseID {
	return FranchiseID(strings.TrimSpace(raw))
}

// Key returns the case-insensitive form used for matching
func (f FranchiseID) Key() string {
	return strings.ToLower(strings.TrimSpace(string(f)))
}

// Matches reports whether two ids name the same franchise
func (f FranchiseID) Matches(other FranchiseID) bool {
	return f.Key() == other.Key()
}

func (f FranchiseID) String() string {
	return string(f)
}

// Player is the cap-relevant view of a rostered player
type Player struct {
	Name          string
	Franchise     FranchiseID
	Position      string
	Status        string  // Raw roster tag (ROSTER, TAXI, IR, INJURED_RESERVE, ...)
	Salary        float64 // Base salary for the current season
	ContractYears int     // Guaranteed years remaining, current season included
}

// ParsePlayerRecord maps a roster CSV row onto a Player using the header row.
// Rows without a player name are skipped (nil, nil).
func ParsePlayerRecord(row []string, header map[string]int) (*Player, error) {
	name := cell(row, header, "player", "name")
	if name == "" {
		return nil, nil
	}

	p := &Player{
		Name:      name,
		Franchise: NewFranchiseID(cell(row, header, "franchise", "team", "owner")),
		Position:  strings.ToUpper(cell(row, header, "position", "pos")),
		Status:    cell(row, header, "status", "roster status"),
		Salary:    CoerceAmount(cell(row, header, "salary", "contract salary")),
	}

	if years, ok := ParseCount(cell(row, header, "contract years", "years", "contractyears")); ok && years > 0 {
		p.ContractYears = years
	}

	return p, nil
}

// HeaderIndex builds a lower-cased column lookup from a CSV header row
func HeaderIndex(headerRow []string) map[string]int {
	index := make(map[string]int, len(headerRow))
	for i, h := range headerRow {
		key := strings.ToLower(strings.TrimSpace(h))
		if key == "" {
			continue
		}
		if _, exists := index[key]; !exists {
			index[key] = i
		}
	}
	return index
}

// cell returns the trimmed value of the first header alias present in the row
func cell(row []string, header map[string]int, aliases ...string) string {
	for _, alias := range aliases {
		if idx, ok := header[alias]; ok && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
	}
	return ""
}
