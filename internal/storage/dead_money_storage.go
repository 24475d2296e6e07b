package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/pmurley/dynasty-cap-bot/internal/models"
)

const deadMoneyFileName = "dead_money.csv"

var deadMoneyHeaders = []string{
	"Franchise", "Player", "Salary", "Amount", "Year Offset", "Season Offset",
	"Years Remaining", "Source", "Recorded At",
}

// DeadMoneyStorage handles persistent storage of recorded waivers
type DeadMoneyStorage struct {
	mu       sync.RWMutex
	filePath string
}

// NewDeadMoneyStorage creates a dead-money storage instance under dataDir
func NewDeadMoneyStorage(dataDir string) (*DeadMoneyStorage, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	filePath := filepath.Join(dataDir, deadMoneyFileName)
	ds := &DeadMoneyStorage{
		filePath: filePath,
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		if err := createCSV(filePath, deadMoneyHeaders); err != nil {
			return nil, err
		}
	}

	return ds, nil
}

// AddAdjustment appends an adjustment to the CSV file
func (ds *DeadMoneyStorage) AddAdjustment(adj models.DeadMoneyAdjustment) error {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	file, err := os.OpenFile(ds.filePath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open dead money file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	record := []string{
		adj.Franchise.String(),
		adj.Player,
		formatFloat(adj.Salary),
		formatFloat(adj.Amount),
		formatInt(adj.YearOffset),
		formatInt(adj.SeasonOffset),
		formatInt(adj.YearsRemaining),
		adj.Source,
		time.Now().Format(time.RFC3339),
	}

	if err := writer.Write(record); err != nil {
		return fmt.Errorf("failed to write dead money record: %w", err)
	}
	writer.Flush()

	return writer.Error()
}

// GetAdjustments returns every stored adjustment
func (ds *DeadMoneyStorage) GetAdjustments() ([]models.DeadMoneyAdjustment, error) {
	records, err := ds.readAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := models.HeaderIndex(records[0])
	var adjustments []models.DeadMoneyAdjustment
	for i := 1; i < len(records); i++ {
		adj, err := models.ParseAdjustmentRecord(records[i], header)
		if err != nil || adj == nil {
			continue
		}
		adjustments = append(adjustments, *adj)
	}

	return adjustments, nil
}

// HasPlayer reports whether dead money was already recorded for a player on
// a franchise
func (ds *DeadMoneyStorage) HasPlayer(franchise models.FranchiseID, player string) (bool, error) {
	adjustments, err := ds.GetAdjustments()
	if err != nil {
		return false, err
	}
	for _, adj := range adjustments {
		if adj.IsFor(franchise, player) {
			return true, nil
		}
	}
	return false, nil
}

func (ds *DeadMoneyStorage) readAll() ([][]string, error) {
	ds.mu.RLock()
	defer ds.mu.RUnlock()

	file, err := os.Open(ds.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open dead money file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read dead money file: %w", err)
	}
	return records, nil
}

// createCSV creates a CSV file with headers
func createCSV(filePath string, headers []string) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Base(filePath), err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(headers); err != nil {
		return fmt.Errorf("failed to write headers: %w", err)
	}
	writer.Flush()

	return writer.Error()
}

func formatFloat(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func formatInt(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}
