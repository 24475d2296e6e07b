package fantrax

import (
	fantraxmodels "github.com/pmurley/go-fantrax/models"

	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

const (
	dropType     = "DROP"
	sourcePrefix = "fantrax:"
)

// SourceFor returns the adjustment source recorded for a transaction
func SourceFor(tx fantraxmodels.Transaction) string {
	return sourcePrefix + tx.ID
}

// DropAdjustments turns dropped players into waiver dead money. A drop counts
// only when the player is on the dropping franchise's roster with salary and
// contract years left; the remaining years drive the following-season charge.
// Drops already covered by a recorded adjustment, matched by source or by
// franchise and player, are skipped.
func DropAdjustments(transactions []fantraxmodels.Transaction, roster models.PlayerList, recorded []models.DeadMoneyAdjustment) []models.DeadMoneyAdjustment {
	var adjustments []models.DeadMoneyAdjustment

	for _, tx := range transactions {
		if tx.Type != dropType {
			continue
		}

		player, ok := findRostered(roster, models.NewFranchiseID(tx.TeamName), tx.PlayerName)
		if !ok || player.Salary <= 0 || player.ContractYears <= 0 {
			continue
		}
		if covered(recorded, tx, player) || covered(adjustments, tx, player) {
			continue
		}

		adjustments = append(adjustments, models.DeadMoneyAdjustment{
			Franchise:      player.Franchise,
			Player:         player.Name,
			Salary:         models.Float(player.Salary),
			YearOffset:     models.Int(0),
			YearsRemaining: models.Int(player.ContractYears),
			Source:         SourceFor(tx),
		})
	}

	return adjustments
}

func covered(adjustments []models.DeadMoneyAdjustment, tx fantraxmodels.Transaction, player models.Player) bool {
	for _, adj := range adjustments {
		if adj.Source == SourceFor(tx) || adj.IsFor(player.Franchise, player.Name) {
			return true
		}
	}
	return false
}

func findRostered(roster models.PlayerList, franchise models.FranchiseID, name string) (models.Player, bool) {
	matches := roster.FilterByFranchise(franchise).FindByExactName(name)
	if len(matches) != 1 {
		return models.Player{}, false
	}
	return matches[0], true
}
