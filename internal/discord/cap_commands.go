package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/pmurley/dynasty-cap-bot/internal/capengine"
	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

const (
	colorUnderCap = 0x2ecc71
	colorOverCap  = 0xe74c3c
	colorLeague   = 0x3498db
)

// handleCap shows the five-season cap picture for a franchise
func (hm *HandlerManager) handleCap(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	report, ok := hm.franchiseFromArgs(s, m, args, "Usage: `!cap <franchise>`")
	if !ok {
		return
	}

	players, err := hm.ensurePlayersLoaded()
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to load roster data: "+err.Error())
		return
	}

	roster := players.FilterByFranchise(report.Franchise)
	s.ChannelMessageSendEmbed(m.ChannelID, buildCapEmbed(report, hm.engine.Rules(), roster))
}

// handleDeadMoney shows the dead-money schedule for a franchise
func (hm *HandlerManager) handleDeadMoney(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	report, ok := hm.franchiseFromArgs(s, m, args, "Usage: `!deadmoney <franchise>`")
	if !ok {
		return
	}

	adjustments, err := hm.allAdjustments()
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to load dead money: "+err.Error())
		return
	}

	s.ChannelMessageSendEmbed(m.ChannelID, buildDeadMoneyEmbed(report, adjustments))
}

// handleLeague shows every franchise's projected space and the FA envelope
func (hm *HandlerManager) handleLeague(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	report, err := hm.ensureLeague()
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to load league data: "+err.Error())
		return
	}
	s.ChannelMessageSendEmbed(m.ChannelID, buildLeagueEmbed(report, hm.engine.Rules()))
}

// franchiseFromArgs resolves the franchise named in args, replying with
// usage or suggestions when it cannot. Without args an owner of exactly one
// franchise gets their own.
func (hm *HandlerManager) franchiseFromArgs(s *discordgo.Session, m *discordgo.MessageCreate, args []string, usage string) (capengine.FranchiseReport, bool) {
	if len(args) == 0 {
		own, ok := ownFranchise(hm.config.Owners, m.Author.Username)
		if !ok {
			s.ChannelMessageSend(m.ChannelID, usage)
			return capengine.FranchiseReport{}, false
		}
		args = []string{own.String()}
	}

	league, err := hm.ensureLeague()
	if err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to load league data: "+err.Error())
		return capengine.FranchiseReport{}, false
	}

	name := strings.Join(args, " ")
	report, found := league.Find(models.NewFranchiseID(name))
	if found {
		return report, true
	}

	all := make([]models.FranchiseID, 0, len(league.Franchises))
	for _, fr := range league.Franchises {
		all = append(all, fr.Franchise)
	}

	msg := fmt.Sprintf("No franchise found matching '%s'", name)
	if suggestions := findSimilarFranchises(name, all); len(suggestions) > 0 {
		msg += "\n\nDid you mean:\n"
		for _, id := range suggestions {
			msg += fmt.Sprintf("• %s\n", id)
		}
	}
	s.ChannelMessageSend(m.ChannelID, msg)
	return capengine.FranchiseReport{}, false
}

func ownFranchise(owners models.Owners, username string) (models.FranchiseID, bool) {
	franchises := owners.FranchisesFor(username)
	if len(franchises) != 1 {
		return "", false
	}
	return franchises[0], true
}

const topContracts = 5

// buildCapEmbed renders a franchise report. roster may be nil; it is copied
// before sorting.
func buildCapEmbed(r capengine.FranchiseReport, rules capengine.Rules, roster models.PlayerList) *discordgo.MessageEmbed {
	color := colorUnderCap
	if r.Space.CapSpace < 0 {
		color = colorOverCap
	}

	desc := fmt.Sprintf("**Cap Space: %s** | Effective: %s\nCap Limit: %s | Rookie Reserve: %s",
		formatMoney(r.Space.CapSpace), formatMoney(r.Space.EffectiveCapSpace),
		formatMoney(rules.CapLimit), formatMoney(rules.RookieReserve))

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("%s Cap Outlook", r.Franchise),
		Color:       color,
		Description: desc,
	}

	for i, season := range r.Seasons {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name: fmt.Sprintf("%d", season),
			Value: fmt.Sprintf("Charges: %s\nDead: %s\nSpace: %s",
				formatMoneyShort(r.Charges[i]), formatMoneyShort(r.DeadMoney[i]), formatMoneyShort(r.SeasonSpace[i])),
			Inline: true,
		})
	}

	rosterLine := fmt.Sprintf("%d players (%d active, %d taxi, %d IR)",
		r.RosterSize, r.ActiveCount, r.PracticeCount, r.InjuredCount)
	if r.OverRosterLimit {
		rosterLine += fmt.Sprintf("\n⚠️ Over the %d-man roster limit", rules.RosterLimit)
	}
	embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
		Name:  "Roster",
		Value: rosterLine,
	})

	if len(roster) > 0 {
		sorted := append(models.PlayerList(nil), roster...)
		sorted.SortBySalary()
		var lines []string
		for i, p := range sorted {
			if i == topContracts {
				break
			}
			lines = append(lines, fmt.Sprintf("• %s %s (%d yr)", p.Name, formatMoneyShort(p.Salary), p.ContractYears))
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Top Contracts (%s base salary)", formatMoneyShort(roster.TotalSalary())),
			Value: truncateField(strings.Join(lines, "\n")),
		})
	}

	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Contract years: %d | Longest contract: %d",
			r.Meta.ContractYearsTotal, r.Meta.LongestContract),
	}

	return embed
}

func buildDeadMoneyEmbed(r capengine.FranchiseReport, adjustments []models.DeadMoneyAdjustment) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("%s Dead Money", r.Franchise),
		Color: colorOverCap,
	}

	var schedule []string
	for i, season := range r.Seasons {
		schedule = append(schedule, fmt.Sprintf("%d: %s", season, formatMoney(r.DeadMoney[i])))
	}
	embed.Description = strings.Join(schedule, "\n")

	var lines []string
	for _, adj := range adjustments {
		if !adj.Franchise.Matches(r.Franchise) {
			continue
		}
		line := fmt.Sprintf("• **%s** %s", playerOrUnknown(adj.Player), formatMoney(adj.ResolvedSalary()))
		if adj.HasYearsRemaining() {
			line += fmt.Sprintf(" (waived, %d yr left)", *adj.YearsRemaining)
		}
		if offset := adj.ResolvedOffset(); offset > 0 && offset < len(r.Seasons) {
			line += fmt.Sprintf(" from %d", r.Seasons[offset])
		}
		lines = append(lines, line)
	}
	if len(lines) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("Adjustments (%d)", len(lines)),
			Value: truncateField(strings.Join(lines, "\n")),
		})
	}

	embed.Footer = &discordgo.MessageEmbedFooter{
		Text: fmt.Sprintf("Total over window: %s", formatMoney(r.DeadMoney.Total())),
	}

	return embed
}

func buildLeagueEmbed(report capengine.LeagueReport, rules capengine.Rules) *discordgo.MessageEmbed {
	terminal := report.Seasons[capengine.WindowYears-1]

	var lines []string
	for _, fr := range report.Franchises {
		lines = append(lines, fmt.Sprintf("**%s** - now %s | %d: %s | %d active",
			fr.Franchise, formatMoneyShort(fr.Space.CapSpace), terminal,
			formatMoneyShort(fr.ProjectedCapSpace), fr.ActiveCount))
	}
	if len(lines) == 0 {
		lines = append(lines, "No franchises loaded")
	}

	env := report.Envelope
	return &discordgo.MessageEmbed{
		Title:       "League Cap Room",
		Color:       colorLeague,
		Description: truncateDescription(strings.Join(lines, "\n")),
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Available Cap", Value: formatMoney(env.AvailableCap), Inline: true},
			{Name: "Open Slots", Value: fmt.Sprintf("%d", env.OpenSlots), Inline: true},
			{Name: "Cap / Open Slot", Value: formatMoney(env.CapPerOpenSlot), Inline: true},
		},
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d teams | %s held in reserve (%s each) | target %d active",
				env.TotalTeams, formatMoneyShort(env.TotalReserve),
				formatMoneyShort(rules.FAReservePerTeam), rules.TargetActive),
		},
	}
}

func playerOrUnknown(name string) string {
	if name == "" {
		return "Unknown player"
	}
	return name
}

// Discord rejects field values over 1024 and descriptions over 4096 characters
func truncateField(s string) string {
	return truncate(s, 1024)
}

func truncateDescription(s string) string {
	return truncate(s, 4096)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit-1]) + "…"
}
