package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/pmurley/dynasty-cap-bot/internal/spotrac"
)

const spotracTimeout = 45 * time.Second

// handleContract looks up a real contract on Spotrac and shows what it would
// cost against the cap
func (hm *HandlerManager) handleContract(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	if len(args) == 0 {
		s.ChannelMessageSend(m.ChannelID, "Usage: `!contract <player name>`")
		return
	}

	playerName := strings.Join(args, " ")

	ctx, cancel := context.WithTimeout(context.Background(), spotracTimeout)
	defer cancel()

	result, err := hm.spotracClient.Search(ctx, playerName)
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to search Spotrac: "+err.Error())
		return
	}

	switch result.Type {
	case "none":
		s.ChannelMessageSend(m.ChannelID, result.ErrorMessage)
	case "multiple":
		s.ChannelMessageSendEmbed(m.ChannelID, buildSpotracMultipleResultsEmbed(result, playerName))
	default:
		contract, err := hm.spotracClient.GetPlayerContract(ctx, result.PlayerResults[0].URL)
		if err != nil {
			s.ChannelMessageSend(m.ChannelID, "Failed to get contract information: "+err.Error())
			return
		}
		s.ChannelMessageSendEmbed(m.ChannelID, hm.buildContractEmbed(contract))
	}
}

func (hm *HandlerManager) buildContractEmbed(contract *spotrac.ContractInfo) *discordgo.MessageEmbed {
	capPlayer := contract.CapPlayer(hm.engine.Rules().CurrentSeason)
	embed := buildPlayerEmbed(capPlayer, hm.engine.Seasons(), hm.engine.PlayerCharges(capPlayer))

	embed.Title = fmt.Sprintf("%s (Spotrac)", valueOrNA(contract.PlayerName))
	embed.Fields[0] = &discordgo.MessageEmbedField{Name: "Team", Value: valueOrNA(contract.Team), Inline: true}

	if contract.ContractTerms != "" {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "Contract Terms",
			Value: contract.ContractTerms,
		})
	}
	if contract.FreeAgent != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: "Free Agent: " + contract.FreeAgent}
	}

	return embed
}

func buildSpotracMultipleResultsEmbed(result *spotrac.SearchResult, query string) *discordgo.MessageEmbed {
	var lines []string
	for i, p := range result.PlayerResults {
		if i >= 10 {
			lines = append(lines, fmt.Sprintf("...and %d more", len(result.PlayerResults)-10))
			break
		}
		line := "• " + p.Name
		if p.Position != "" || p.Team != "" {
			line += fmt.Sprintf(" (%s %s)", p.Position, p.Team)
		}
		lines = append(lines, line)
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Multiple Spotrac results for '%s'", query),
		Color:       colorLeague,
		Description: strings.Join(lines, "\n") + "\n\nPlease be more specific.",
	}
}
