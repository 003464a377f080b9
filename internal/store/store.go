package store

import (
	"errors"
	"fmt"

	"fjacquet/accountbook/internal/logging"
	"fjacquet/accountbook/internal/models"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Repository is the persistence contract consumed by the ledger services.
type Repository interface {
	SaveTransactions(txns []models.Transaction) error
	LoadTransactions() ([]models.Transaction, error)
	SaveBudget(limit decimal.Decimal) error
	LoadBudget() (decimal.Decimal, error)
	SaveCategoryBudgets(list []models.CategoryBudget) error
	LoadCategoryBudgets() ([]models.CategoryBudget, error)
	SaveGoals(goals []models.Goal) error
	LoadGoals() ([]models.Goal, error)
}

// Store implements Repository by YAML-encoding documents into a Backend.
type Store struct {
	backend Backend
	logger  logging.Logger
}

// Ensure Store implements Repository
var _ Repository = (*Store)(nil)

type budgetDocument struct {
	MonthlyLimit decimal.Decimal `yaml:"monthly_limit"`
}

// New creates a Store over backend.
func New(backend Backend, logger logging.Logger) *Store {
	return &Store{backend: backend, logger: logging.OrDiscard(logger)}
}

// Backend returns the underlying backend.
func (s *Store) Backend() Backend {
	return s.backend
}

// Close closes the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// SaveTransactions replaces the stored transaction list.
func (s *Store) SaveTransactions(txns []models.Transaction) error {
	if txns == nil {
		txns = []models.Transaction{}
	}
	return s.save(KeyTransactions, txns, len(txns))
}

// LoadTransactions returns the stored transactions, or none if nothing was saved.
func (s *Store) LoadTransactions() ([]models.Transaction, error) {
	var txns []models.Transaction
	if err := s.load(KeyTransactions, &txns); err != nil {
		return nil, err
	}
	return txns, nil
}

// SaveBudget stores the overall monthly limit.
func (s *Store) SaveBudget(limit decimal.Decimal) error {
	return s.save(KeyMonthlyBudget, budgetDocument{MonthlyLimit: limit}, 1)
}

// LoadBudget returns the overall monthly limit, zero when unset.
func (s *Store) LoadBudget() (decimal.Decimal, error) {
	var doc budgetDocument
	if err := s.load(KeyMonthlyBudget, &doc); err != nil {
		return decimal.Zero, err
	}
	return doc.MonthlyLimit, nil
}

// SaveCategoryBudgets replaces the per-category limits.
func (s *Store) SaveCategoryBudgets(list []models.CategoryBudget) error {
	if list == nil {
		list = []models.CategoryBudget{}
	}
	return s.save(KeyCategoryBudgets, list, len(list))
}

// LoadCategoryBudgets returns the per-category limits.
func (s *Store) LoadCategoryBudgets() ([]models.CategoryBudget, error) {
	var list []models.CategoryBudget
	if err := s.load(KeyCategoryBudgets, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// SaveGoals replaces the stored goals.
func (s *Store) SaveGoals(goals []models.Goal) error {
	if goals == nil {
		goals = []models.Goal{}
	}
	return s.save(KeyGoals, goals, len(goals))
}

// LoadGoals returns the stored goals.
func (s *Store) LoadGoals() ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.load(KeyGoals, &goals); err != nil {
		return nil, err
	}
	return goals, nil
}

func (s *Store) save(key string, v interface{}, count int) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("error marshaling %s: %w", key, err)
	}
	if err := s.backend.Write(key, data); err != nil {
		return fmt.Errorf("error saving %s: %w", key, err)
	}
	s.logger.Debug("Saved document",
		logging.F(logging.FieldKey, key),
		logging.F(logging.FieldCount, count))
	return nil
}

// load leaves v untouched when the key has never been written.
func (s *Store) load(key string, v interface{}) error {
	data, err := s.backend.Read(key)
	if errors.Is(err, ErrNotFound) {
		s.logger.Debug("No stored document", logging.F(logging.FieldKey, key))
		return nil
	}
	if err != nil {
		return fmt.Errorf("error loading %s: %w", key, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("error parsing %s: %w", key, err)
	}
	return nil
}
