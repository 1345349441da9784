package services

import (
	"encoding/json"
	"sync"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/logger"
	"pocketledger/internal/models"
	"pocketledger/internal/storage"
)

// transactionService owns the transaction set. Order is
// most-recent-create-first; every mutation rewrites the whole blob.
type transactionService struct {
	mu           sync.Mutex
	blobs        storage.Blobs
	transactions []models.Transaction
}

// NewTransactionService loads the transaction set from storage. A missing or
// corrupt blob degrades to an empty set.
func NewTransactionService(blobs storage.Blobs) TransactionStorer {
	s := &transactionService{blobs: blobs}

	if data, ok := blobs.ReadBlob(storage.BlobTransactions); ok {
		if err := json.Unmarshal(data, &s.transactions); err != nil {
			logger.Get().Warnw("discarding corrupt transactions blob", "error", err)
			s.transactions = nil
		}
	}
	return s
}

func (s *transactionService) persist() error {
	data, err := json.Marshal(s.transactions)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrStorageWrite, err)
	}
	if err := s.blobs.WriteBlob(storage.BlobTransactions, data); err != nil {
		return apperrors.Wrap(apperrors.ErrStorageWrite, err)
	}
	return nil
}

// Add prepends the transaction. IDs are not checked for uniqueness; callers
// pre-generate collision-resistant identifiers.
func (s *transactionService) Add(tx models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = append([]models.Transaction{tx}, s.transactions...)
	return s.persist()
}

// Update replaces the stored record whose id matches exactly. Silently drops
// the update when no record matches.
func (s *transactionService) Update(tx models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.transactions {
		if s.transactions[i].ID == tx.ID {
			s.transactions[i] = tx
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return s.persist()
}

// Delete removes the record with matching id; no-op when absent.
func (s *transactionService) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.transactions[:0]
	changed := false
	for _, tx := range s.transactions {
		if tx.ID == id {
			changed = true
			continue
		}
		kept = append(kept, tx)
	}
	if !changed {
		return nil
	}
	s.transactions = kept
	return s.persist()
}

// All returns a copy of the transaction set in store order.
func (s *transactionService) All() []models.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}
