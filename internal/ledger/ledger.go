// Package ledger owns the in-memory transaction collection, budget settings
// and goals, persisting every mutation through a store.Repository.
package ledger

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"fjacquet/accountbook/internal/logging"
	"fjacquet/accountbook/internal/models"
	"fjacquet/accountbook/internal/store"
)

var (
	// ErrTransactionNotFound is returned when no transaction has the given ID.
	ErrTransactionNotFound = errors.New("transaction not found")
	// ErrDuplicateTransaction is returned when adding an ID that already exists.
	ErrDuplicateTransaction = errors.New("duplicate transaction id")
)

// Ledger is the transaction store. Transactions are immutable once added;
// the only mutations are Add and Remove.
type Ledger struct {
	repo   store.Repository
	logger logging.Logger

	mu   sync.RWMutex
	txns []models.Transaction
	ids  map[string]struct{}
}

// New creates an empty ledger backed by repo.
func New(repo store.Repository, logger logging.Logger) *Ledger {
	return &Ledger{
		repo:   repo,
		logger: logging.OrDiscard(logger),
		ids:    make(map[string]struct{}),
	}
}

// Load replaces the in-memory state with the persisted transactions.
func (l *Ledger) Load() error {
	txns, err := l.repo.LoadTransactions()
	if err != nil {
		return fmt.Errorf("error loading transactions: %w", err)
	}

	ids := make(map[string]struct{}, len(txns))
	kept := make([]models.Transaction, 0, len(txns))
	for _, tx := range txns {
		if _, dup := ids[tx.ID]; dup {
			l.logger.Warn("Skipping duplicate stored transaction",
				logging.F(logging.FieldTransactionID, tx.ID))
			continue
		}
		ids[tx.ID] = struct{}{}
		kept = append(kept, tx)
	}

	l.mu.Lock()
	l.txns = kept
	l.ids = ids
	l.mu.Unlock()

	l.logger.Debug("Loaded transactions", logging.F(logging.FieldCount, len(kept)))
	return nil
}

// Add appends tx and persists the collection. The in-memory state is
// unchanged when the save fails.
func (l *Ledger) Add(tx models.Transaction) error {
	if tx.ID == "" {
		return fmt.Errorf("transaction has no id")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, exists := l.ids[tx.ID]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTransaction, tx.ID)
	}

	next := make([]models.Transaction, len(l.txns), len(l.txns)+1)
	copy(next, l.txns)
	next = append(next, tx)

	if err := l.repo.SaveTransactions(next); err != nil {
		return fmt.Errorf("error saving transaction %s: %w", tx.ID, err)
	}

	l.txns = next
	l.ids[tx.ID] = struct{}{}

	l.logger.Info("Transaction added",
		logging.F(logging.FieldTransactionID, tx.ID),
		logging.F(logging.FieldCategory, tx.Category.String()),
		logging.F(logging.FieldAmount, tx.Amount.String()))
	return nil
}

// Remove deletes the transaction with the given ID and returns it.
func (l *Ledger) Remove(id string) (models.Transaction, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return models.Transaction{}, fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
	}
	removed := l.txns[idx]

	next := make([]models.Transaction, 0, len(l.txns)-1)
	next = append(next, l.txns[:idx]...)
	next = append(next, l.txns[idx+1:]...)

	if err := l.repo.SaveTransactions(next); err != nil {
		return models.Transaction{}, fmt.Errorf("error removing transaction %s: %w", id, err)
	}

	l.txns = next
	delete(l.ids, id)

	l.logger.Info("Transaction removed", logging.F(logging.FieldTransactionID, id))
	return removed, nil
}

// Get returns the transaction with the given ID.
func (l *Ledger) Get(id string) (models.Transaction, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	idx := l.indexOf(id)
	if idx < 0 {
		return models.Transaction{}, fmt.Errorf("%w: %s", ErrTransactionNotFound, id)
	}
	return l.txns[idx], nil
}

// Transactions returns a snapshot in insertion order.
func (l *Ledger) Transactions() []models.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]models.Transaction, len(l.txns))
	copy(out, l.txns)
	return out
}

// Search returns the transactions whose note or category label contains
// text, ignoring case. An empty query matches everything.
func (l *Ledger) Search(text string) []models.Transaction {
	query := strings.ToLower(strings.TrimSpace(text))
	if query == "" {
		return l.Transactions()
	}

	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []models.Transaction
	for _, tx := range l.txns {
		if strings.Contains(strings.ToLower(tx.Note), query) ||
			strings.Contains(strings.ToLower(tx.Category.Label()), query) {
			out = append(out, tx)
		}
	}
	return out
}

// Len returns the number of transactions.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.txns)
}

func (l *Ledger) indexOf(id string) int {
	if _, ok := l.ids[id]; !ok {
		return -1
	}
	for i := range l.txns {
		if l.txns[i].ID == id {
			return i
		}
	}
	return -1
}
