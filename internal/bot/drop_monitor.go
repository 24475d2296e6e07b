package bot

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"
	fantraxmodels "github.com/pmurley/go-fantrax/models"

	"github.com/pmurley/dynasty-cap-bot/internal/capengine"
	"github.com/pmurley/dynasty-cap-bot/internal/fantrax"
	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

const dropCheckInterval = 2 * time.Minute

// transactionSource is satisfied by the Fantrax client
type transactionSource interface {
	Transactions() ([]fantraxmodels.Transaction, error)
}

// dropPlan is the outcome of one pass over the league's transactions
type dropPlan struct {
	Unseen      []fantraxmodels.Transaction
	Adjustments []models.DeadMoneyAdjustment
}

// planDrops selects transactions missing from the ledger and turns their drops
// into dead money. On the first run everything is recorded as seen and no
// dead money is created for history. Players that already carry recorded dead
// money, such as a waiver entered with !waive, are not charged again.
func planDrops(all []fantraxmodels.Transaction, seenIDs map[string]bool, recorded []models.DeadMoneyAdjustment, roster models.PlayerList) dropPlan {
	var plan dropPlan
	for _, tx := range all {
		if tx.ID == "" || seenIDs[tx.ID] {
			continue
		}
		plan.Unseen = append(plan.Unseen, tx)
	}

	if len(seenIDs) == 0 {
		return plan
	}

	plan.Adjustments = fantrax.DropAdjustments(plan.Unseen, roster, recorded)
	return plan
}

// startDropMonitor starts the background drop monitoring process
func (b *Bot) startDropMonitor() {
	client, err := fantrax.NewFantraxClient(b.config.FantraxLeagueID, false)
	if err != nil {
		b.logger.Error("Failed to create Fantrax client:", err)
		return
	}
	go b.dropMonitorLoop(client)
}

func (b *Bot) dropMonitorLoop(source transactionSource) {
	b.logger.Info("Starting drop monitor")

	b.checkDrops(source)

	ticker := time.NewTicker(dropCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			b.checkDrops(source)
		case <-b.stopChan:
			b.logger.Info("Stopping drop monitor")
			return
		}
	}
}

// checkDrops records dead money for players dropped in Fantrax since the last pass
func (b *Bot) checkDrops(source transactionSource) {
	seenIDs, err := b.ledger.GetTransactionIDs()
	if err != nil {
		b.logger.Error("Failed to get existing transaction IDs:", err)
		return
	}

	transactions, err := source.Transactions()
	if err != nil {
		b.logger.Error("Failed to fetch transactions from Fantrax:", err)
		return
	}

	players, found := b.dataCache.GetPlayers()
	if !found {
		if err := b.sheetsClient.LoadInitialData(b.dataCache, b.config.RosterGID, b.config.DeadMoneyGID); err != nil {
			b.logger.Error("Failed to reload roster before processing drops:", err)
			return
		}
		players, _ = b.dataCache.GetPlayers()
	}

	recorded, err := b.deadMoney.GetAdjustments()
	if err != nil {
		b.logger.Error("Failed to read recorded dead money:", err)
		return
	}

	plan := planDrops(transactions, seenIDs, recorded, players)
	if len(plan.Unseen) == 0 {
		return
	}

	if len(seenIDs) == 0 {
		b.logger.Info("First run detected - recording", len(plan.Unseen), "historical transactions without creating dead money")
	}

	for _, adj := range plan.Adjustments {
		log := b.logger.WithField("franchise", adj.Franchise).WithField("source", adj.Source)
		if err := b.deadMoney.AddAdjustment(adj); err != nil {
			log.Error("Failed to record dead money for", adj.Player+":", err)
			return
		}
		log.Info("Recorded dead money for dropped player", adj.Player)
		b.postDropToDiscord(adj)
	}

	if err := b.ledger.AddTransactions(plan.Unseen); err != nil {
		b.logger.Error("Failed to store new transactions:", err)
		return
	}

	if len(plan.Adjustments) > 0 {
		b.dataCache.InvalidateLeague()
	}
	b.logger.Info("Processed", len(plan.Unseen), "new transactions,", len(plan.Adjustments), "with dead money")
}

func (b *Bot) postDropToDiscord(adj models.DeadMoneyAdjustment) {
	channelID := b.findChannelByName(b.config.CapChannelName)
	if channelID == "" {
		b.logger.Warn("Could not find channel:", b.config.CapChannelName)
		return
	}

	dead := b.engine.DeadMoney([]models.DeadMoneyAdjustment{adj}, "")
	embed := createDropEmbed(adj, dead, b.engine.Seasons())

	if _, err := b.session.ChannelMessageSendEmbed(channelID, embed); err != nil {
		b.logger.Error("Failed to send drop message to Discord:", err)
	}
}

func createDropEmbed(adj models.DeadMoneyAdjustment, dead capengine.SalaryYears, seasons [capengine.WindowYears]int) *discordgo.MessageEmbed {
	var description strings.Builder
	description.WriteString(fmt.Sprintf("**%s** dropped **%s** ($%.0f salary", adj.Franchise, adj.Player, adj.ResolvedSalary()))
	if adj.HasYearsRemaining() {
		description.WriteString(fmt.Sprintf(", %d yr left", *adj.YearsRemaining))
	}
	description.WriteString(")")

	embed := &discordgo.MessageEmbed{
		Title:       "❌ Dead Money Recorded",
		Description: description.String(),
		Color:       0xff0000,
		Footer: &discordgo.MessageEmbedFooter{
			Text: adj.Source,
		},
	}

	for i, season := range seasons {
		if dead[i] == 0 {
			continue
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   fmt.Sprintf("%d", season),
			Value:  fmt.Sprintf("$%.0f", dead[i]),
			Inline: true,
		})
	}

	return embed
}

// findChannelByName finds a channel ID by name
func (b *Bot) findChannelByName(channelName string) string {
	for _, guild := range b.session.State.Guilds {
		channels, err := b.session.GuildChannels(guild.ID)
		if err != nil {
			continue
		}

		for _, channel := range channels {
			if channel.Name == channelName && channel.Type == discordgo.ChannelTypeGuildText {
				return channel.ID
			}
		}
	}
	return ""
}
