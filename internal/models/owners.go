package models

import "sort"

// Owners maps franchises to the Discord usernames allowed to act for them.
// Each franchise can have multiple owners who are considered equal.
type Owners map[FranchiseID][]string

// IsOwner checks if a Discord username is an owner of the specified franchise
func (o Owners) IsOwner(franchise FranchiseID, username string) bool {
	for id, owners := range o {
		if !id.Matches(franchise) {
			continue
		}
		for _, owner := range owners {
			if owner == username {
				return true
			}
		}
	}
	return false
}

// FranchisesFor returns all franchises owned by a Discord username, sorted
func (o Owners) FranchisesFor(username string) []FranchiseID {
	var franchises []FranchiseID

	for id, owners := range o {
		for _, owner := range owners {
			if owner == username {
				franchises = append(franchises, id)
				break
			}
		}
	}
	sort.Slice(franchises, func(i, j int) bool { return franchises[i] < franchises[j] })

	return franchises
}
