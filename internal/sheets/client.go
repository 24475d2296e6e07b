package sheets

import (
	"fmt"
	"net/http"
	"time"

	"github.com/pmurley/dynasty-cap-bot/internal/cache"
	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

const exportURL = "https://docs.google.com/spreadsheets/d/%s/export?format=csv&gid=%s"

// Client fetches data from public Google Sheets using CSV export
type Client struct {
	spreadsheetID string
	baseURL       string
	httpClient    *http.Client
}

func NewClient(spreadsheetID string) (*Client, error) {
	if spreadsheetID == "" {
		return nil, fmt.Errorf("spreadsheet ID is required")
	}
	return &Client{
		spreadsheetID: spreadsheetID,
		baseURL:       exportURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

// LoadInitialData loads the roster and dead-money tabs into the cache. The
// dead-money tab is optional.
func (c *Client) LoadInitialData(cache *cache.Cache, rosterGID, deadMoneyGID string) error {
	players, err := c.LoadRoster(rosterGID)
	if err != nil {
		return fmt.Errorf("failed to load roster: %w", err)
	}

	var adjustments []models.DeadMoneyAdjustment
	if deadMoneyGID != "" {
		adjustments, err = c.LoadDeadMoney(deadMoneyGID)
		if err != nil {
			return fmt.Errorf("failed to load dead money: %w", err)
		}
	}

	cache.SetPlayers(players)
	cache.SetAdjustments(adjustments)
	return nil
}

// LoadRoster loads every rostered player from the roster tab
func (c *Client) LoadRoster(gid string) ([]models.Player, error) {
	data, err := c.GetSheetDataCSV(gid)
	if err != nil {
		return nil, err
	}
	return parsePlayers(data)
}

// LoadDeadMoney loads every adjustment from the dead-money tab
func (c *Client) LoadDeadMoney(gid string) ([]models.DeadMoneyAdjustment, error) {
	data, err := c.GetSheetDataCSV(gid)
	if err != nil {
		return nil, err
	}
	return parseAdjustments(data)
}

// GetSheetDataCSV fetches data from a specific sheet tab as CSV
func (c *Client) GetSheetDataCSV(gid string) ([][]string, error) {
	url := fmt.Sprintf(c.baseURL, c.spreadsheetID, gid)

	resp, err := c.httpClient.Get(url)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sheet data: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	return readCSV(resp.Body)
}
