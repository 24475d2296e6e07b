package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/pmurley/dynasty-cap-bot/internal/capengine"
	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

type Config struct {
	DiscordToken    string
	GoogleSheetsID  string
	RosterGID       string
	DeadMoneyGID    string
	FantraxLeagueID string
	CacheDuration   time.Duration
	CommandPrefix   string
	LogLevel        string
	DataDir         string
	CapChannelName  string
	LeagueFile      string

	Rules  capengine.Rules
	Owners models.Owners
}

func Load() (*Config, error) {
	cacheDuration := 5 * time.Minute
	if d := os.Getenv("CACHE_DURATION_MINUTES"); d != "" {
		if minutes, err := strconv.Atoi(d); err == nil {
			cacheDuration = time.Duration(minutes) * time.Minute
		}
	}

	cfg := &Config{
		DiscordToken:    os.Getenv("DISCORD_TOKEN"),
		GoogleSheetsID:  os.Getenv("GOOGLE_SHEETS_ID"),
		RosterGID:       getEnvOrDefault("ROSTER_GID", "0"),
		DeadMoneyGID:    os.Getenv("DEAD_MONEY_GID"),
		FantraxLeagueID: os.Getenv("FANTRAX_LEAGUE_ID"),
		CacheDuration:   cacheDuration,
		CommandPrefix:   getEnvOrDefault("COMMAND_PREFIX", "!"),
		LogLevel:        getEnvOrDefault("LOG_LEVEL", "info"),
		DataDir:         getEnvOrDefault("DATA_DIR", "./data"),
		CapChannelName:  getEnvOrDefault("CAP_CHANNEL_NAME", "cap-room"),
		LeagueFile:      os.Getenv("LEAGUE_RULES_FILE"),
	}

	league, err := LoadLeague(cfg.LeagueFile)
	if err != nil {
		return nil, err
	}
	cfg.Rules = league.Rules
	cfg.Owners = league.Owners

	if s := os.Getenv("CURRENT_SEASON"); s != "" {
		if season, err := strconv.Atoi(s); err == nil {
			cfg.Rules.CurrentSeason = season
		}
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// League is the YAML league file: rule overrides at the top level plus the
// franchise owner list
type League struct {
	capengine.Rules `yaml:",inline"`
	Owners          models.Owners `yaml:"owners"`
}

// LoadLeague reads a league file over the default rules. An empty path
// returns the defaults. Keys absent from the file keep their default values,
// and dead_money_schedule entries are merged into the default schedule.
func LoadLeague(path string) (League, error) {
	league := League{Rules: capengine.DefaultRules()}
	if path == "" {
		return league, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return league, fmt.Errorf("failed to read league file: %w", err)
	}

	if err := yaml.Unmarshal(data, &league); err != nil {
		return league, fmt.Errorf("failed to parse league file %s: %w", path, err)
	}

	return league, nil
}
