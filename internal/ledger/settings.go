package ledger

import (
	"fmt"
	"sync"

	"fjacquet/accountbook/internal/ledgererror"
	"fjacquet/accountbook/internal/logging"
	"fjacquet/accountbook/internal/models"
	"fjacquet/accountbook/internal/store"

	"github.com/shopspring/decimal"
)

// BudgetSettings holds the user's monthly and per-category limits.
type BudgetSettings struct {
	repo   store.Repository
	logger logging.Logger

	mu     sync.RWMutex
	budget models.Budget
}

// NewBudgetSettings creates settings with no limits configured.
func NewBudgetSettings(repo store.Repository, logger logging.Logger) *BudgetSettings {
	return &BudgetSettings{
		repo:   repo,
		logger: logging.OrDiscard(logger),
		budget: models.BudgetFromList(decimal.Zero, nil),
	}
}

// Load reads both budget documents from the repository.
func (s *BudgetSettings) Load() error {
	monthly, err := s.repo.LoadBudget()
	if err != nil {
		return fmt.Errorf("error loading budget: %w", err)
	}
	list, err := s.repo.LoadCategoryBudgets()
	if err != nil {
		return fmt.Errorf("error loading category budgets: %w", err)
	}

	s.mu.Lock()
	s.budget = models.BudgetFromList(monthly, list)
	s.mu.Unlock()
	return nil
}

// Budget returns a copy of the current limits.
func (s *BudgetSettings) Budget() models.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.budget.Clone()
}

// SetMonthlyLimit sets the overall limit. Zero disables it.
func (s *BudgetSettings) SetMonthlyLimit(limit decimal.Decimal) error {
	if limit.IsNegative() {
		return &ledgererror.ValidationError{Field: "monthly limit", Value: limit.String(), Reason: "must not be negative"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.SaveBudget(limit); err != nil {
		return fmt.Errorf("error saving monthly limit: %w", err)
	}
	s.budget.MonthlyLimit = limit

	s.logger.Info("Monthly limit updated", logging.F(logging.FieldAmount, limit.String()))
	return nil
}

// SetCategoryLimit sets the limit for one expense category. Zero clears it.
func (s *BudgetSettings) SetCategoryLimit(category models.ExpenseCategory, limit decimal.Decimal) error {
	if !category.IsValid() {
		return &ledgererror.ValidationError{Field: "category", Value: category.String(), Reason: "unknown expense category"}
	}
	if limit.IsNegative() {
		return &ledgererror.ValidationError{Field: "category limit", Value: limit.String(), Reason: "must not be negative"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.budget.Clone()
	if limit.IsZero() {
		delete(next.CategoryLimits, category)
	} else {
		next.CategoryLimits[category] = limit
	}

	if err := s.repo.SaveCategoryBudgets(next.CategoryBudgets()); err != nil {
		return fmt.Errorf("error saving category limit: %w", err)
	}
	s.budget = next

	s.logger.Info("Category limit updated",
		logging.F(logging.FieldCategory, category.String()),
		logging.F(logging.FieldAmount, limit.String()))
	return nil
}

// ClearCategoryLimit removes the limit for category.
func (s *BudgetSettings) ClearCategoryLimit(category models.ExpenseCategory) error {
	return s.SetCategoryLimit(category, decimal.Zero)
}
