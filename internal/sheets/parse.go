package sheets

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

// ParseRoster reads a roster CSV export (header row first)
func ParseRoster(r io.Reader) ([]models.Player, error) {
	data, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	return parsePlayers(data)
}

// ParseDeadMoney reads a dead-money CSV export (header row first)
func ParseDeadMoney(r io.Reader) ([]models.DeadMoneyAdjustment, error) {
	data, err := readCSV(r)
	if err != nil {
		return nil, err
	}
	return parseAdjustments(data)
}

func readCSV(r io.Reader) ([][]string, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	var data [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}
		data = append(data, record)
	}

	return data, nil
}

func parsePlayers(data [][]string) ([]models.Player, error) {
	if len(data) < 1 {
		return nil, fmt.Errorf("insufficient data in roster sheet")
	}

	header := models.HeaderIndex(data[0])
	var players []models.Player

	for i := 1; i < len(data); i++ {
		player, err := models.ParsePlayerRecord(data[i], header)
		if err != nil {
			// Skip the row but keep the rest of the roster
			continue
		}
		if player != nil {
			players = append(players, *player)
		}
	}

	return players, nil
}

func parseAdjustments(data [][]string) ([]models.DeadMoneyAdjustment, error) {
	if len(data) < 1 {
		return nil, nil
	}

	header := models.HeaderIndex(data[0])
	var adjustments []models.DeadMoneyAdjustment

	for i := 1; i < len(data); i++ {
		adj, err := models.ParseAdjustmentRecord(data[i], header)
		if err != nil {
			continue
		}
		if adj != nil {
			adjustments = append(adjustments, *adj)
		}
	}

	return adjustments, nil
}
