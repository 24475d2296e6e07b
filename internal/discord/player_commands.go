package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/pmurley/dynasty-cap-bot/internal/capengine"
	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

// handlePlayer looks up a rostered player and shows their cap charges
func (hm *HandlerManager) handlePlayer(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `!player <player name>`")
		return
	}

	name := strings.Join(args, " ")

	players, err := hm.ensurePlayersLoaded()
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to load roster data: "+err.Error())
		return
	}

	matches := players.FindByExactName(name)
	if len(matches) == 0 {
		matches = players.SearchByName(name)
	}

	switch {
	case len(matches) == 0:
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("No player found matching '%s'", name))
	case len(matches) > 10:
		s.ChannelMessageSend(m.ChannelID, fmt.Sprintf("Found %d players matching '%s'. Please be more specific.", len(matches), name))
	case len(matches) > 1:
		var lines []string
		for _, p := range matches {
			lines = append(lines, fmt.Sprintf("• %s (%s, %s)", p.Name, p.Position, franchiseOrFA(p.Franchise)))
		}
		s.ChannelMessageSend(m.ChannelID, "Multiple players found:\n"+strings.Join(lines, "\n"))
	default:
		p := matches[0]
		s.ChannelMessageSendEmbed(m.ChannelID, buildPlayerEmbed(p, hm.engine.Seasons(), hm.engine.PlayerCharges(p)))
	}
}

func buildPlayerEmbed(p models.Player, seasons [capengine.WindowYears]int, charges capengine.SalaryYears) *discordgo.MessageEmbed {
	status := capengine.NormalizeStatus(p.Status)

	embed := &discordgo.MessageEmbed{
		Title: p.Name,
		Color: colorLeague,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Franchise", Value: franchiseOrFA(p.Franchise), Inline: true},
			{Name: "Position", Value: valueOrNA(p.Position), Inline: true},
			{Name: "Status", Value: fmt.Sprintf("%s (%s)", valueOrNA(p.Status), status), Inline: true},
			{Name: "Salary", Value: formatMoney(p.Salary), Inline: true},
			{Name: "Contract Years", Value: fmt.Sprintf("%d", p.ContractYears), Inline: true},
		},
	}

	var lines []string
	for i, season := range seasons {
		if charges[i] == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%d: %s", season, formatMoney(charges[i])))
	}
	if len(lines) == 0 {
		lines = append(lines, "No cap charges in the window")
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Cap Charges",
		Value: strings.Join(lines, "\n"),
	})

	if status == capengine.StatusPractice {
		embed.Footer = &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("Taxi squad: %.0f%% of salary counts this season", status.Percent(true)*100),
		}
	}

	return embed
}

func franchiseOrFA(id models.FranchiseID) string {
	if id == "" {
		return "Free Agent"
	}
	return id.String()
}

func valueOrNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
