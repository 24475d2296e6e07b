package fantrax

import (
	"fmt"

	"github.com/pmurley/go-fantrax/auth_client"
	"github.com/pmurley/go-fantrax/models"
)

// Client reads league transactions from Fantrax
type Client struct {
	Client   *auth_client.Client
	LeagueID string
}

func NewFantraxClient(leagueID string, useCache bool) (*Client, error) {
	if leagueID == "" {
		return nil, fmt.Errorf("fantrax league ID is required")
	}

	client, err := auth_client.NewClient(leagueID, useCache)
	if err != nil {
		return nil, fmt.Errorf("failed to create fantrax client: %w", err)
	}
	return &Client{
		Client:   client,
		LeagueID: leagueID,
	}, nil
}

// Transactions returns every league transaction, trades included
func (c *Client) Transactions() ([]models.Transaction, error) {
	transactions, err := c.Client.GetAllTransactionsIncludingTrades()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}

	return transactions, nil
}
