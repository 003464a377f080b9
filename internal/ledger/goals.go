package ledger

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"fjacquet/accountbook/internal/ledgererror"
	"fjacquet/accountbook/internal/logging"
	"fjacquet/accountbook/internal/models"
	"fjacquet/accountbook/internal/store"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrGoalNotFound is returned when no goal has the given ID.
var ErrGoalNotFound = errors.New("goal not found")

// GoalBook stores savings and debt goals.
type GoalBook struct {
	repo   store.Repository
	logger logging.Logger

	mu    sync.RWMutex
	goals []models.Goal
}

// NewGoalBook creates an empty GoalBook.
func NewGoalBook(repo store.Repository, logger logging.Logger) *GoalBook {
	return &GoalBook{repo: repo, logger: logging.OrDiscard(logger)}
}

// Load reads goals from the repository.
func (b *GoalBook) Load() error {
	goals, err := b.repo.LoadGoals()
	if err != nil {
		return fmt.Errorf("error loading goals: %w", err)
	}
	b.mu.Lock()
	b.goals = goals
	b.mu.Unlock()
	return nil
}

// Goals returns a copy of all goals.
func (b *GoalBook) Goals() []models.Goal {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]models.Goal, len(b.goals))
	copy(out, b.goals)
	return out
}

// Add validates and stores g, assigning an ID when missing.
func (b *GoalBook) Add(g models.Goal) (models.Goal, error) {
	g.Title = strings.TrimSpace(g.Title)
	if g.Title == "" {
		return models.Goal{}, &ledgererror.ValidationError{Field: "title", Value: g.Title, Reason: "title is required"}
	}
	if !g.TargetAmount.IsPositive() {
		return models.Goal{}, &ledgererror.ValidationError{Field: "target", Value: g.TargetAmount.String(), Reason: "must be greater than zero"}
	}
	if g.CurrentAmount.IsNegative() {
		return models.Goal{}, &ledgererror.ValidationError{Field: "current", Value: g.CurrentAmount.String(), Reason: "must not be negative"}
	}
	if g.Type == "" {
		g.Type = models.GoalSavings
	}
	if g.ID == "" {
		g.ID = uuid.New().String()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.indexOf(g.ID) >= 0 {
		return models.Goal{}, fmt.Errorf("goal %s already exists", g.ID)
	}

	next := append(b.cloneLocked(), g)
	if err := b.repo.SaveGoals(next); err != nil {
		return models.Goal{}, fmt.Errorf("error saving goal: %w", err)
	}
	b.goals = next

	b.logger.Info("Goal added", logging.F(logging.FieldKey, g.ID))
	return g, nil
}

// UpdateProgress sets the current amount of goal id.
func (b *GoalBook) UpdateProgress(id string, current decimal.Decimal) (models.Goal, error) {
	if current.IsNegative() {
		return models.Goal{}, &ledgererror.ValidationError{Field: "current", Value: current.String(), Reason: "must not be negative"}
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.indexOf(id)
	if idx < 0 {
		return models.Goal{}, fmt.Errorf("%w: %s", ErrGoalNotFound, id)
	}

	next := b.cloneLocked()
	next[idx].CurrentAmount = current
	if err := b.repo.SaveGoals(next); err != nil {
		return models.Goal{}, fmt.Errorf("error saving goal: %w", err)
	}
	b.goals = next
	return next[idx], nil
}

// Remove deletes goal id.
func (b *GoalBook) Remove(id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	idx := b.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrGoalNotFound, id)
	}

	next := b.cloneLocked()
	next = append(next[:idx], next[idx+1:]...)
	if err := b.repo.SaveGoals(next); err != nil {
		return fmt.Errorf("error removing goal: %w", err)
	}
	b.goals = next
	return nil
}

func (b *GoalBook) indexOf(id string) int {
	for i := range b.goals {
		if b.goals[i].ID == id {
			return i
		}
	}
	return -1
}

func (b *GoalBook) cloneLocked() []models.Goal {
	out := make([]models.Goal, len(b.goals), len(b.goals)+1)
	copy(out, b.goals)
	return out
}
