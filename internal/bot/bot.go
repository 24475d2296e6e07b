package bot

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"github.com/pmurley/dynasty-cap-bot/internal/cache"
	"github.com/pmurley/dynasty-cap-bot/internal/capengine"
	"github.com/pmurley/dynasty-cap-bot/internal/config"
	"github.com/pmurley/dynasty-cap-bot/internal/discord"
	"github.com/pmurley/dynasty-cap-bot/internal/sheets"
	"github.com/pmurley/dynasty-cap-bot/internal/storage"
	"github.com/pmurley/dynasty-cap-bot/pkg/logger"
)

type Bot struct {
	session      *discordgo.Session
	config       *config.Config
	logger       *logger.Logger
	dataCache    *cache.Cache
	sheetsClient *sheets.Client
	deadMoney    *storage.DeadMoneyStorage
	ledger       *storage.TransactionLedger
	engine       *capengine.Engine
	handlers     *discord.HandlerManager
	stopChan     chan struct{}
}

func New(cfg *config.Config, log *logger.Logger) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("failed to create Discord session: %w", err)
	}

	// Message content is needed for prefix commands
	session.Identify.Intents = discordgo.IntentsGuildMessages |
		discordgo.IntentsDirectMessages |
		discordgo.IntentsMessageContent

	sheetsClient, err := sheets.NewClient(cfg.GoogleSheetsID)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheets client: %w", err)
	}

	deadMoney, err := storage.NewDeadMoneyStorage(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create dead money storage: %w", err)
	}

	ledger, err := storage.NewTransactionLedger(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction ledger: %w", err)
	}

	b := &Bot{
		session:      session,
		config:       cfg,
		logger:       log,
		dataCache:    cache.New(cfg.CacheDuration),
		sheetsClient: sheetsClient,
		deadMoney:    deadMoney,
		ledger:       ledger,
		engine:       capengine.New(cfg.Rules),
		stopChan:     make(chan struct{}),
	}

	b.handlers = discord.NewHandlerManager(b.session, cfg, log, b.dataCache, sheetsClient, deadMoney, b.engine)

	return b, nil
}

func (b *Bot) Start() error {
	b.handlers.RegisterHandlers()

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord session: %w", err)
	}

	if err := b.sheetsClient.LoadInitialData(b.dataCache, b.config.RosterGID, b.config.DeadMoneyGID); err != nil {
		b.logger.Error("Failed to load initial data from sheets:", err)
	}

	if b.config.FantraxLeagueID != "" {
		b.startDropMonitor()
	} else {
		b.logger.Info("FANTRAX_LEAGUE_ID not set, drop monitor disabled")
	}

	return nil
}

func (b *Bot) Stop() error {
	close(b.stopChan)
	return b.session.Close()
}
