package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/pmurley/dynasty-cap-bot/internal/capengine"
	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

// handleWaive records a waiver for a rostered player and reports the dead
// money it leaves on the franchise's books
func (hm *HandlerManager) handleWaive(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	reply := func(msg string) {
		if _, err := s.ChannelMessageSendReply(m.ChannelID, msg, m.Reference()); err != nil {
			hm.logger.Error("Failed to send waive reply:", err)
		}
	}

	if len(args) == 0 {
		reply("Usage: !waive <player name>")
		return
	}

	playerName := strings.Join(args, " ")

	players, err := hm.ensurePlayersLoaded()
	if err != nil {
		reply("Failed to load roster data: " + err.Error())
		return
	}

	matches := players.FindByExactName(playerName)
	if len(matches) == 0 {
		matches = players.SearchByName(playerName)
	}

	if len(matches) == 0 {
		reply(fmt.Sprintf("No player found with name: %s", playerName))
		return
	}

	if len(matches) > 1 {
		var names []string
		for _, p := range matches {
			names = append(names, fmt.Sprintf("%s (%s)", p.Name, franchiseOrFA(p.Franchise)))
		}
		reply(fmt.Sprintf("Multiple players found matching %s: %s\nPlease be more specific.",
			playerName, strings.Join(names, ", ")))
		return
	}

	player := matches[0]
	if player.Franchise == "" {
		reply(fmt.Sprintf("%s is not on a franchise roster.", player.Name))
		return
	}

	// Ownership is only enforced when the league file lists owners
	if len(hm.config.Owners) > 0 && !hm.config.Owners.IsOwner(player.Franchise, m.Author.Username) {
		reply(fmt.Sprintf("You are not registered as an owner of %s.", player.Franchise))
		return
	}

	dead, err := hm.recordWaiver(player, "discord:"+m.ID)
	switch {
	case errors.Is(err, errNothingOwed):
		reply(fmt.Sprintf("%s has no remaining salary, so waiving leaves no dead money.", player.Name))
		return
	case errors.Is(err, errAlreadyWaived):
		reply(fmt.Sprintf("Dead money is already recorded for %s on %s.", player.Name, player.Franchise))
		return
	case err != nil:
		hm.logger.Error("Failed to save waiver:", err)
		reply("Error recording waiver. Please try again later.")
		return
	}

	hm.logger.Info("Recorded waiver of", player.Name, "for", player.Franchise)
	reply(describeWaiver(player, dead, hm.engine.Seasons()))
}

var (
	errNothingOwed   = errors.New("no remaining salary")
	errAlreadyWaived = errors.New("dead money already recorded")
)

// recordWaiver stores the waiver's dead money and returns its schedule. A
// player already charged on the same franchise is refused.
func (hm *HandlerManager) recordWaiver(player models.Player, source string) (capengine.SalaryYears, error) {
	adj, ok := waiverAdjustment(player, source)
	if !ok {
		return capengine.SalaryYears{}, errNothingOwed
	}

	exists, err := hm.deadMoney.HasPlayer(player.Franchise, player.Name)
	if err != nil {
		return capengine.SalaryYears{}, err
	}
	if exists {
		return capengine.SalaryYears{}, errAlreadyWaived
	}

	if err := hm.deadMoney.AddAdjustment(adj); err != nil {
		return capengine.SalaryYears{}, err
	}
	hm.cache.InvalidateLeague()

	return hm.engine.DeadMoney([]models.DeadMoneyAdjustment{adj}, ""), nil
}

// waiverAdjustment builds the dead-money record for waiving a player today
func waiverAdjustment(player models.Player, source string) (models.DeadMoneyAdjustment, bool) {
	if player.Salary <= 0 || player.ContractYears <= 0 {
		return models.DeadMoneyAdjustment{}, false
	}
	return models.DeadMoneyAdjustment{
		Franchise:      player.Franchise,
		Player:         player.Name,
		Salary:         models.Float(player.Salary),
		YearOffset:     models.Int(0),
		YearsRemaining: models.Int(player.ContractYears),
		Source:         source,
	}, true
}

func describeWaiver(player models.Player, dead capengine.SalaryYears, seasons [capengine.WindowYears]int) string {
	var parts []string
	for i, season := range seasons {
		if dead[i] > 0 {
			parts = append(parts, fmt.Sprintf("%d: %s", season, formatMoney(dead[i])))
		}
	}
	return fmt.Sprintf("%s has been waived by %s. Dead money: %s. Make sure you have dropped the player in Fantrax.",
		player.Name, player.Franchise, strings.Join(parts, ", "))
}
