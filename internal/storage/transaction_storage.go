package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	fantraxmodels "github.com/pmurley/go-fantrax/models"
)

const transactionFileName = "transactions.csv"

// TransactionLedger records which Fantrax transactions have been examined so
// the drop monitor handles each one once
type TransactionLedger struct {
	mu       sync.RWMutex
	filePath string
}

// NewTransactionLedger creates a ledger under dataDir
func NewTransactionLedger(dataDir string) (*TransactionLedger, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	filePath := filepath.Join(dataDir, transactionFileName)
	tl := &TransactionLedger{
		filePath: filePath,
	}

	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		if err := createCSV(filePath, []string{"ID", "Type", "TeamName", "PlayerName", "ProcessedDate"}); err != nil {
			return nil, err
		}
	}

	return tl, nil
}

// AddTransactions records transactions as seen
func (tl *TransactionLedger) AddTransactions(transactions []fantraxmodels.Transaction) error {
	tl.mu.Lock()
	defer tl.mu.Unlock()

	file, err := os.OpenFile(tl.filePath, os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open transaction file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	for _, tx := range transactions {
		record := []string{
			tx.ID,
			tx.Type,
			tx.TeamName,
			tx.PlayerName,
			tx.ProcessedDate.Format(time.RFC3339),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write transaction record: %w", err)
		}
	}
	writer.Flush()

	return writer.Error()
}

// GetTransactionIDs returns a set of all recorded transaction IDs
func (tl *TransactionLedger) GetTransactionIDs() (map[string]bool, error) {
	tl.mu.RLock()
	defer tl.mu.RUnlock()

	file, err := os.Open(tl.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read transaction file: %w", err)
	}

	ids := make(map[string]bool)
	// Skip header row
	for i := 1; i < len(records); i++ {
		if len(records[i]) > 0 && records[i][0] != "" {
			ids[records[i][0]] = true
		}
	}

	return ids, nil
}
