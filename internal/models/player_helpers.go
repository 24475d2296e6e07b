package models

import (
	"sort"
	"strings"
)

// PlayerList represents a slice of players with helper methods
type PlayerList []Player

// FilterByFranchise returns players belonging to a specific franchise
func (pl PlayerList) FilterByFranchise(franchise FranchiseID) PlayerList {
	var filtered PlayerList
	for _, p := range pl {
		if p.Franchise.Matches(franchise) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// SearchByName returns players whose names contain the search string
func (pl PlayerList) SearchByName(search string) PlayerList {
	var matches PlayerList
	searchLower := strings.ToLower(strings.TrimSpace(search))

	for _, p := range pl {
		if strings.Contains(strings.ToLower(p.Name), searchLower) {
			matches = append(matches, p)
		}
	}
	return matches
}

// FindByExactName returns all players with an exact name match (case-insensitive)
func (pl PlayerList) FindByExactName(name string) PlayerList {
	nameLower := strings.ToLower(strings.TrimSpace(name))
	var matches PlayerList

	for _, p := range pl {
		if strings.ToLower(p.Name) == nameLower {
			matches = append(matches, p)
		}
	}
	return matches
}

// GroupByFranchise returns a map of franchise to players. Franchise ids are
// matched case-insensitively and the first spelling seen is kept. Players
// without a franchise are free agents and are left out.
func (pl PlayerList) GroupByFranchise() map[FranchiseID]PlayerList {
	grouped := make(map[FranchiseID]PlayerList)
	display := make(map[string]FranchiseID)

	for _, p := range pl {
		if p.Franchise == "" {
			continue
		}
		id, ok := display[p.Franchise.Key()]
		if !ok {
			id = p.Franchise
			display[p.Franchise.Key()] = id
		}
		grouped[id] = append(grouped[id], p)
	}
	return grouped
}

// SortBySalary sorts players by base salary (descending), name as tiebreak
func (pl PlayerList) SortBySalary() {
	sort.SliceStable(pl, func(i, j int) bool {
		if pl[i].Salary != pl[j].Salary {
			return pl[i].Salary > pl[j].Salary
		}
		return pl[i].Name < pl[j].Name
	})
}

// TotalSalary sums base salaries
func (pl PlayerList) TotalSalary() float64 {
	total := 0.0
	for _, p := range pl {
		total += Finite(p.Salary)
	}
	return total
}
