// Package ledger is the record store: it persists transactions, settings and
// the theme preference in a key-value store. Every mutation rewrites the
// whole collection under its key.
package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/store"
	"github.com/theirongolddev/fintrack/internal/validate"
)

// Storage keys.
const (
	KeyTransactions = "financeTracker_transactions"
	KeySettings     = "financeTracker_settings"
	KeyTheme        = "financeTracker_theme"
)

// FallbackCurrency is used when no default currency is supplied.
const FallbackCurrency = "₹"

// ErrNotFound is returned by Update when no transaction has the given ID.
var ErrNotFound = errors.New("transaction not found")

// Options configures a Ledger. Zero values get sensible defaults.
type Options struct {
	Now             func() time.Time
	NewID           func() string
	DefaultCurrency string
	Logger          *log.Logger
}

// Ledger reads and writes transactions and settings.
type Ledger struct {
	kv       store.KV
	now      func() time.Time
	newID    func() string
	currency string
	log      *log.Logger
}

// New returns a Ledger over kv.
func New(kv store.KV, opts Options) *Ledger {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.NewID == nil {
		opts.NewID = newID
	}
	if opts.DefaultCurrency == "" {
		opts.DefaultCurrency = FallbackCurrency
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Ledger{
		kv:       kv,
		now:      opts.Now,
		newID:    opts.NewID,
		currency: opts.DefaultCurrency,
		log:      opts.Logger.WithPrefix("ledger"),
	}
}

// newID returns a time-ordered UUIDv7, falling back to a random UUID if the
// clock source fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// List returns all transactions in storage order.
func (l *Ledger) List() ([]model.Transaction, error) {
	raw, err := l.kv.Get(KeyTransactions)
	if errors.Is(err, store.ErrNotFound) {
		return []model.Transaction{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading transactions: %w", err)
	}

	var txs []model.Transaction
	if err := json.Unmarshal([]byte(raw), &txs); err != nil {
		return nil, fmt.Errorf("decoding transactions: %w", err)
	}
	if txs == nil {
		txs = []model.Transaction{}
	}
	return txs, nil
}

func (l *Ledger) save(txs []model.Transaction) error {
	if txs == nil {
		txs = []model.Transaction{}
	}
	data, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("encoding transactions: %w", err)
	}
	if err := l.kv.Set(KeyTransactions, string(data)); err != nil {
		return fmt.Errorf("saving transactions: %w", err)
	}
	l.log.Debug("saved transactions", "count", len(txs), "bytes", len(data))
	return nil
}

// Add stores a new transaction with a fresh ID and creation time.
func (l *Ledger) Add(nt model.NewTransaction) (model.Transaction, error) {
	txs, err := l.List()
	if err != nil {
		return model.Transaction{}, err
	}

	t := model.Transaction{
		ID:          l.newID(),
		Type:        nt.Type,
		Category:    nt.Category,
		Amount:      nt.Amount,
		Date:        nt.Date,
		Description: nt.Description,
		CreatedAt:   l.now().UTC(),
	}
	txs = append(txs, t)

	if err := l.save(txs); err != nil {
		return model.Transaction{}, err
	}
	l.log.Info("added transaction", "id", t.ID, "type", t.Type, "amount", t.Amount)
	return t, nil
}

// Update merges patch into the transaction with the given ID. It returns
// ErrNotFound if there is none, and a *validate.Error if the patch would
// break a stored invariant.
func (l *Ledger) Update(id string, patch model.TransactionPatch) (model.Transaction, error) {
	if err := validate.Patch(patch); err != nil {
		return model.Transaction{}, err
	}

	txs, err := l.List()
	if err != nil {
		return model.Transaction{}, err
	}

	idx := indexOf(txs, id)
	if idx < 0 {
		return model.Transaction{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	txs[idx] = patch.Apply(txs[idx])
	if err := l.save(txs); err != nil {
		return model.Transaction{}, err
	}
	l.log.Info("updated transaction", "id", id)
	return txs[idx], nil
}

// Get returns the transaction with the given ID.
func (l *Ledger) Get(id string) (model.Transaction, error) {
	txs, err := l.List()
	if err != nil {
		return model.Transaction{}, err
	}
	idx := indexOf(txs, id)
	if idx < 0 {
		return model.Transaction{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return txs[idx], nil
}

// Delete removes the transaction with the given ID and returns what is
// left. Deleting an unknown ID is not an error.
func (l *Ledger) Delete(id string) ([]model.Transaction, error) {
	txs, err := l.List()
	if err != nil {
		return nil, err
	}

	kept := make([]model.Transaction, 0, len(txs))
	for _, t := range txs {
		if t.ID != id {
			kept = append(kept, t)
		}
	}

	if err := l.save(kept); err != nil {
		return nil, err
	}
	if len(kept) < len(txs) {
		l.log.Info("deleted transaction", "id", id)
	}
	return kept, nil
}

// ReplaceAll overwrites the stored transactions wholesale.
func (l *Ledger) ReplaceAll(txs []model.Transaction) error {
	return l.save(txs)
}

// ClearAll removes transactions and settings. The theme is kept.
func (l *Ledger) ClearAll() error {
	if err := l.kv.Delete(KeyTransactions, KeySettings); err != nil {
		return fmt.Errorf("clearing data: %w", err)
	}
	l.log.Info("cleared all data")
	return nil
}

func indexOf(txs []model.Transaction, id string) int {
	for i, t := range txs {
		if t.ID == id {
			return i
		}
	}
	return -1
}
