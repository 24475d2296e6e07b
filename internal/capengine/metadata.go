package capengine

import "github.com/pmurley/dynasty-cap-bot/internal/models"

// ContractMeta summarizes contract lengths across a roster
type ContractMeta struct {
	ContractYearsTotal int
	LongestContract    int
}

// ContractMetadata totals the non-negative contract years on a roster and
// finds the longest single contract
func ContractMetadata(players []models.Player) ContractMeta {
	var meta ContractMeta
	for _, p := range players {
		if p.ContractYears < 0 {
			continue
		}
		meta.ContractYearsTotal += p.ContractYears
		if p.ContractYears > meta.LongestContract {
			meta.LongestContract = p.ContractYears
		}
	}
	return meta
}
