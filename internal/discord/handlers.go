package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"github.com/pmurley/dynasty-cap-bot/internal/cache"
	"github.com/pmurley/dynasty-cap-bot/internal/capengine"
	"github.com/pmurley/dynasty-cap-bot/internal/config"
	"github.com/pmurley/dynasty-cap-bot/internal/models"
	"github.com/pmurley/dynasty-cap-bot/internal/sheets"
	"github.com/pmurley/dynasty-cap-bot/internal/spotrac"
	"github.com/pmurley/dynasty-cap-bot/internal/storage"
	"github.com/pmurley/dynasty-cap-bot/pkg/logger"
)

type HandlerManager struct {
	session       *discordgo.Session
	config        *config.Config
	logger        *logger.Logger
	cache         *cache.Cache
	sheetsClient  *sheets.Client
	spotracClient *spotrac.Client
	deadMoney     *storage.DeadMoneyStorage
	engine        *capengine.Engine
	commands      map[string]CommandHandler
}

type CommandHandler func(s *discordgo.Session, m *discordgo.MessageCreate, args []string)

func NewHandlerManager(
	session *discordgo.Session,
	config *config.Config,
	logger *logger.Logger,
	cache *cache.Cache,
	sheetsClient *sheets.Client,
	deadMoney *storage.DeadMoneyStorage,
	engine *capengine.Engine,
) *HandlerManager {
	hm := &HandlerManager{
		session:       session,
		config:        config,
		logger:        logger,
		cache:         cache,
		sheetsClient:  sheetsClient,
		spotracClient: spotrac.NewClient(),
		deadMoney:     deadMoney,
		engine:        engine,
		commands:      make(map[string]CommandHandler),
	}

	hm.registerCommands()

	return hm
}

func (hm *HandlerManager) RegisterHandlers() {
	hm.session.AddHandler(hm.messageCreate)
}

func (hm *HandlerManager) registerCommands() {
	hm.commands["help"] = hm.handleHelp
	hm.commands["reload"] = hm.handleReload
	hm.commands["player"] = hm.handlePlayer
	hm.commands["cap"] = hm.handleCap
	hm.commands["deadmoney"] = hm.handleDeadMoney
	hm.commands["league"] = hm.handleLeague
	hm.commands["waive"] = hm.handleWaive
	hm.commands["contract"] = hm.handleContract
}

func (hm *HandlerManager) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author.ID == s.State.User.ID {
		return
	}

	command, args, ok := parseCommand(m.Content, hm.config.CommandPrefix)
	if !ok {
		return
	}

	if handler, exists := hm.commands[command]; exists {
		handler(s, m, args)
	}
}

// parseCommand splits "<prefix>command arg arg" into its parts
func parseCommand(content, prefix string) (string, []string, bool) {
	if !strings.HasPrefix(content, prefix) {
		return "", nil, false
	}

	parts := strings.Fields(strings.TrimPrefix(content, prefix))
	if len(parts) == 0 {
		return "", nil, false
	}

	return strings.ToLower(parts[0]), parts[1:], true
}

func (hm *HandlerManager) handleHelp(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	helpMessage := `**Dynasty Cap Bot Commands:**
` + "```" + `
!help               - Show this help message
!reload             - Force reload rosters and dead money from Google Sheets
!player <name>      - Show a player's cap charges over the next five seasons
!cap [franchise]    - Cap charges, dead money and cap space (defaults to your franchise)
!deadmoney <franchise> - Dead money schedule for a franchise
!league             - Projected cap space for every franchise and the FA envelope
!waive <player>     - Record a waiver and the dead money it leaves behind
!contract <name>    - Look up a real contract on Spotrac as cap charges
` + "```"

	s.ChannelMessageSend(m.ChannelID, helpMessage)
}

func (hm *HandlerManager) handleReload(s *discordgo.Session, m *discordgo.MessageCreate, args []string) {
	hm.cache.Flush()
	if err := hm.reload(); err != nil {
		s.ChannelMessageSend(m.ChannelID, "Failed to reload data: "+err.Error())
		return
	}
	s.ChannelMessageSend(m.ChannelID, "Data reloaded successfully!")
}

func (hm *HandlerManager) reload() error {
	return hm.sheetsClient.LoadInitialData(hm.cache, hm.config.RosterGID, hm.config.DeadMoneyGID)
}

// ensurePlayersLoaded checks if players are in cache and auto-reloads if needed
func (hm *HandlerManager) ensurePlayersLoaded() (models.PlayerList, error) {
	players, found := hm.cache.GetPlayers()
	if !found {
		hm.logger.Info("Cache expired, auto-reloading roster data...")
		if err := hm.reload(); err != nil {
			return nil, err
		}
		players, found = hm.cache.GetPlayers()
		if !found {
			return nil, fmt.Errorf("failed to load roster data after reload")
		}
	}
	return players, nil
}

// allAdjustments returns sheet dead money plus waivers recorded by the bot
func (hm *HandlerManager) allAdjustments() ([]models.DeadMoneyAdjustment, error) {
	sheet, found := hm.cache.GetAdjustments()
	if !found {
		if err := hm.reload(); err != nil {
			return nil, err
		}
		sheet, _ = hm.cache.GetAdjustments()
	}

	recorded, err := hm.deadMoney.GetAdjustments()
	if err != nil {
		return nil, err
	}

	all := make([]models.DeadMoneyAdjustment, 0, len(sheet)+len(recorded))
	all = append(all, sheet...)
	all = append(all, recorded...)
	return all, nil
}

// ensureLeague returns the cached league report, computing it on a miss
func (hm *HandlerManager) ensureLeague() (capengine.LeagueReport, error) {
	if report, found := hm.cache.GetLeague(); found {
		return report, nil
	}

	players, err := hm.ensurePlayersLoaded()
	if err != nil {
		return capengine.LeagueReport{}, err
	}
	adjustments, err := hm.allAdjustments()
	if err != nil {
		return capengine.LeagueReport{}, err
	}

	report := hm.engine.League(players.GroupByFranchise(), adjustments)
	hm.cache.SetLeague(report)
	hm.logger.Debug("Computed league cap report for", len(report.Franchises), "franchises")
	return report, nil
}
