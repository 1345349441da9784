package services

import (
	"strings"
	"sync"

	"pocketledger/internal/models"
)

// reconcileService commits candidate transactions. Categories arriving from
// manual entry, voice transcripts, or the assistant may be unnormalized; the
// pipeline resolves them to canonical registry keys before the store sees
// them. A single mutex serializes commits so two parse results can never
// interleave their registry and store writes.
type reconcileService struct {
	mu       sync.Mutex
	registry CategoryRegistrar
	store    TransactionStorer
}

// NewReconcileService creates a Reconciler over the given registry and store.
func NewReconcileService(registry CategoryRegistrar, store TransactionStorer) Reconciler {
	return &reconcileService{registry: registry, store: store}
}

// Record normalizes and registers the candidate's category and subcategory,
// then adds the finalized transaction to the store.
func (s *reconcileService) Record(candidate models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	final, err := s.reconcile(candidate)
	if err != nil {
		return models.Transaction{}, err
	}
	if err := s.store.Add(final); err != nil {
		return models.Transaction{}, err
	}
	return final, nil
}

// Amend runs the same normalization as Record — re-normalizing is idempotent,
// and it lets an edit that fixes a category's casing reconcile to the
// canonical key — then replaces the stored record.
func (s *reconcileService) Amend(candidate models.Transaction) (models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	final, err := s.reconcile(candidate)
	if err != nil {
		return models.Transaction{}, err
	}
	if err := s.store.Update(final); err != nil {
		return models.Transaction{}, err
	}
	return final, nil
}

func (s *reconcileService) reconcile(candidate models.Transaction) (models.Transaction, error) {
	category := s.registry.Normalize(candidate.Category)
	if err := s.registry.RegisterCategory(category); err != nil {
		return models.Transaction{}, err
	}

	sub := strings.TrimSpace(candidate.Subcategory)
	if sub != "" {
		canonical, err := s.registry.RegisterSubcategory(category, sub)
		if err != nil {
			return models.Transaction{}, err
		}
		sub = canonical
	}

	final := candidate
	final.Category = category
	final.Subcategory = sub
	return final, nil
}
