// Package store holds the ordered transaction history that scores are
// computed from.
package store

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/Veraticus/the-credit-must-flow/internal/common"
	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/google/uuid"
)

// DefaultDescription is used when a transaction is recorded without one.
const DefaultDescription = "Transaction"

// Store is an in-memory, newest-first transaction history. It is safe for
// concurrent use and hands out copies so callers cannot mutate stored
// transactions.
type Store struct {
	newID func() string
	txns  []model.Transaction
	mu    sync.RWMutex
}

// New creates a store seeded with history, which must already be newest
// first. Every seeded transaction is validated.
func New(history []model.Transaction) (*Store, error) {
	for i := range history {
		if err := validate(history[i].Amount.IsPositive(), history[i].Method); err != nil {
			return nil, fmt.Errorf("transaction at index %d: %w", i, err)
		}
	}

	txns := make([]model.Transaction, len(history))
	copy(txns, history)

	return &Store{
		txns:  txns,
		newID: func() string { return uuid.New().String() },
	}, nil
}

// Add validates in, assigns it an ID, and records it as the newest
// transaction. A zero OccurredAt is replaced by now. Nothing is recorded
// when validation fails.
func (s *Store) Add(in model.NewTransaction, now time.Time) (model.Transaction, error) {
	if err := validate(in.Amount.IsPositive(), in.Method); err != nil {
		return model.Transaction{}, err
	}

	txn := model.Transaction{
		ID:          s.newID(),
		Amount:      in.Amount,
		Method:      in.Method,
		OccurredAt:  in.OccurredAt,
		Description: strings.TrimSpace(in.Description),
	}
	if txn.OccurredAt.IsZero() {
		txn.OccurredAt = now
	}
	if txn.Description == "" {
		txn.Description = DefaultDescription
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.txns = append([]model.Transaction{txn}, s.txns...)

	return txn, nil
}

// Snapshot returns a copy of the history, newest first.
func (s *Store) Snapshot() []model.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Transaction, len(s.txns))
	copy(out, s.txns)
	return out
}

// Len returns the number of stored transactions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.txns)
}

func validate(positive bool, method model.PaymentMethod) error {
	if !positive {
		return common.ErrInvalidAmount
	}
	if !method.Valid() {
		return fmt.Errorf("%w: %q", common.ErrInvalidMethod, method)
	}
	return nil
}
