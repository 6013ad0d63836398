// Package engine keeps a transaction history together with the credit
// score, loan offers, and insights derived from it, recomputing all three
// whenever the history changes.
package engine

import (
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/Veraticus/the-credit-must-flow/internal/common"
	"github.com/Veraticus/the-credit-must-flow/internal/insight"
	"github.com/Veraticus/the-credit-must-flow/internal/loan"
	"github.com/Veraticus/the-credit-must-flow/internal/model"
	"github.com/Veraticus/the-credit-must-flow/internal/scoring"
	"github.com/Veraticus/the-credit-must-flow/internal/store"
)

// State reports what the engine is doing.
type State int32

const (
	// StateIdle means the published snapshot matches the stored history.
	StateIdle State = iota
	// StateRecomputing means a mutation is being scored.
	StateRecomputing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRecomputing:
		return "recomputing"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

// Subscriber receives every newly published snapshot, in publication order.
type Subscriber func(Snapshot)

type subscription struct {
	fn Subscriber
	id int
}

// Config holds configuration options for the engine.
type Config struct {
	Clock   func() time.Time
	Rules   []insight.Rule
	Consent model.ConsentSettings
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Clock:   time.Now,
		Rules:   insight.DefaultRules(),
		Consent: model.DefaultConsent(),
	}
}

// Engine owns the transaction store and publishes derived snapshots.
// Mutations are serialized; reads never block and always see a complete
// snapshot.
type Engine struct {
	clock       func() time.Time
	store       *store.Store
	current     atomic.Pointer[Snapshot]
	consent     atomic.Pointer[model.ConsentSettings]
	rules       []insight.Rule
	subscribers []subscription
	nextSubID   int
	state       atomic.Int32
	mu          sync.Mutex
	subMu       sync.Mutex
}

// New creates an engine over history (newest first) with the default
// configuration.
func New(history []model.Transaction) (*Engine, error) {
	return NewWithConfig(history, DefaultConfig())
}

// NewWithConfig creates an engine with custom configuration and publishes
// the snapshot for the initial history.
func NewWithConfig(history []model.Transaction, config Config) (*Engine, error) {
	s, err := store.New(history)
	if err != nil {
		return nil, fmt.Errorf("invalid history: %w", err)
	}

	if config.Clock == nil {
		config.Clock = time.Now
	}
	if config.Rules == nil {
		config.Rules = insight.DefaultRules()
	}

	e := &Engine{
		clock: config.Clock,
		store: s,
		rules: config.Rules,
	}
	consent := config.Consent
	e.consent.Store(&consent)

	e.mu.Lock()
	e.recompute()
	e.mu.Unlock()

	return e, nil
}

// AddTransaction records in as the newest transaction, recomputes, and
// publishes the new snapshot before returning. Invalid input is rejected
// with common.ErrInvalidAmount or common.ErrInvalidMethod and leaves the
// published snapshot untouched.
func (e *Engine) AddTransaction(in model.NewTransaction) (model.Transaction, error) {
	txn, _, err := e.Record(in)
	return txn, err
}

// Record is AddTransaction that also returns the snapshot published for
// this transaction. Later mutations never show up in it.
func (e *Engine) Record(in model.NewTransaction) (model.Transaction, Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	txn, err := e.store.Add(in, e.clock())
	if err != nil {
		slog.Warn("Rejected transaction",
			"amount", in.Amount.String(),
			"method", in.Method,
			"error", err)
		return model.Transaction{}, Snapshot{}, err
	}

	snap := e.recompute()
	e.notify(snap)

	return txn, snap, nil
}

// recompute runs scoring, offers, and insights over the current history and
// swaps in the result. Callers must hold e.mu.
func (e *Engine) recompute() Snapshot {
	e.state.Store(int32(StateRecomputing))
	defer e.state.Store(int32(StateIdle))

	now := e.clock()
	txns := e.store.Snapshot()

	score := scoring.Compute(txns, now)
	offers := loan.Resolve(score)
	insights := insight.Evaluate(e.rules, score, txns)

	var version uint64 = 1
	if prev := e.current.Load(); prev != nil {
		version = prev.Version + 1
	}

	snap := &Snapshot{
		ComputedAt:       now,
		Score:            score,
		Offers:           offers,
		Insights:         insights,
		Breakdown:        scoring.Breakdown(score),
		Band:             model.Band(score.Overall),
		TransactionCount: len(txns),
		WindowCount:      len(scoring.InWindow(txns, now)),
		Version:          version,
	}
	e.current.Store(snap)

	common.LogDebug("Recomputed credit score", common.Fields{
		"version":           version,
		"transaction_count": snap.TransactionCount,
		"overall":           score.Overall,
		"eligible_offers":   len(loan.Eligible(offers)),
		"insights":          len(insights),
	})

	return snap.clone()
}

// Snapshot returns the latest published snapshot.
func (e *Engine) Snapshot() Snapshot {
	return e.current.Load().clone()
}

// CurrentScore returns the latest published score.
func (e *Engine) CurrentScore() model.CreditScore {
	return e.current.Load().Score
}

// CurrentOffers returns the latest published loan offers.
func (e *Engine) CurrentOffers() []model.LoanOffer {
	return cloneSlice(e.current.Load().Offers)
}

// CurrentInsights returns the latest published insights.
func (e *Engine) CurrentInsights() []model.Insight {
	return cloneSlice(e.current.Load().Insights)
}

// Transactions returns the stored history, newest first.
func (e *Engine) Transactions() []model.Transaction {
	return e.store.Snapshot()
}

// State reports whether a recompute is in progress.
func (e *Engine) State() State {
	return State(e.state.Load())
}

// Consent returns the current consent settings.
func (e *Engine) Consent() model.ConsentSettings {
	return *e.consent.Load()
}

// UpdateConsent changes one consent toggle. Consent does not feed the
// score, so no recompute happens.
func (e *Engine) UpdateConsent(key model.ConsentKey, value bool) (model.ConsentSettings, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	updated, err := e.consent.Load().With(key, value)
	if err != nil {
		return e.Consent(), err
	}
	e.consent.Store(&updated)

	slog.Info("Consent updated", "key", key, "value", value)
	return updated, nil
}

// Subscribe registers fn for future snapshots and returns a function that
// removes it. Subscribers run synchronously on the mutating goroutine, in
// registration order, and must not call AddTransaction.
func (e *Engine) Subscribe(fn Subscriber) (unsubscribe func()) {
	e.subMu.Lock()
	defer e.subMu.Unlock()

	id := e.nextSubID
	e.nextSubID++
	e.subscribers = append(e.subscribers, subscription{id: id, fn: fn})

	return func() {
		e.subMu.Lock()
		defer e.subMu.Unlock()
		for i, sub := range e.subscribers {
			if sub.id == id {
				e.subscribers = append(e.subscribers[:i], e.subscribers[i+1:]...)
				return
			}
		}
	}
}

func (e *Engine) notify(snap Snapshot) {
	e.subMu.Lock()
	subs := make([]subscription, len(e.subscribers))
	copy(subs, e.subscribers)
	e.subMu.Unlock()

	for _, sub := range subs {
		sub.fn(snap.clone())
	}
}
