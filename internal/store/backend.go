// Package store persists ledger state as named YAML documents in a
// key-value backend.
package store

import "errors"

// ErrNotFound is returned by a Backend when a key has never been written.
var ErrNotFound = errors.New("key not found")

// Document keys.
const (
	KeyTransactions    = "transactions"
	KeyMonthlyBudget   = "monthlyBudget"
	KeyCategoryBudgets = "categoryBudgets"
	KeyGoals           = "goals"
)

// Backend stores opaque blobs by key.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, data []byte) error
	Close() error
}
