package testutil

import (
	"encoding/json"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"pocketledger/internal/models"
	"pocketledger/internal/storage"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// MakeExpense builds an expense transaction dated on the given day.
func MakeExpense(amount float64, category string, date time.Time) models.Transaction {
	return models.Transaction{
		ID:       fmt.Sprintf("tx-%d", nextID()),
		Amount:   amount,
		Category: category,
		Note:     fmt.Sprintf("fixture %d", counter.Load()),
		Date:     date.Format(time.RFC3339),
		Type:     models.TransactionTypeExpense,
	}
}

// MakeIncome builds an income transaction dated on the given day.
func MakeIncome(amount float64, category string, date time.Time) models.Transaction {
	tx := MakeExpense(amount, category, date)
	tx.Type = models.TransactionTypeIncome
	return tx
}

// SeedTransactions marshals the given transactions into the store blob so a
// freshly constructed transaction service loads them.
func SeedTransactions(t *testing.T, blobs *MemoryBlobs, txs []models.Transaction) {
	t.Helper()

	data, err := json.Marshal(txs)
	if err != nil {
		t.Fatalf("failed to marshal fixture transactions: %v", err)
	}
	blobs.Seed(storage.BlobTransactions, data)
}

// SeedRegistry marshals the given snapshot into the registry blob.
func SeedRegistry(t *testing.T, blobs *MemoryBlobs, snap models.RegistrySnapshot) {
	t.Helper()

	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatalf("failed to marshal fixture registry: %v", err)
	}
	blobs.Seed(storage.BlobCategories, data)
}
