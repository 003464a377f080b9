package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// GoalType distinguishes saving up from paying down.
type GoalType string

const (
	GoalSavings GoalType = "savings"
	GoalDebt    GoalType = "debt"
)

// ParseGoalType accepts "savings" or "debt".
func ParseGoalType(s string) (GoalType, error) {
	switch GoalType(strings.ToLower(strings.TrimSpace(s))) {
	case GoalSavings, "":
		return GoalSavings, nil
	case GoalDebt:
		return GoalDebt, nil
	default:
		return "", fmt.Errorf("unknown goal type %q", s)
	}
}

// Goal is a savings or debt target. It is not linked to ledger activity.
type Goal struct {
	ID            string          `json:"id" yaml:"id"`
	Title         string          `json:"title" yaml:"title"`
	TargetAmount  decimal.Decimal `json:"target_amount" yaml:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount" yaml:"current_amount"`
	Deadline      time.Time       `json:"deadline" yaml:"deadline"`
	Type          GoalType        `json:"type" yaml:"type"`
	Color         string          `json:"color,omitempty" yaml:"color,omitempty"`
}

// Progress returns current/target clamped to [0, 1]; 0 when no target is set.
func (g Goal) Progress() float64 {
	if !g.TargetAmount.IsPositive() {
		return 0
	}
	p, _ := g.CurrentAmount.Div(g.TargetAmount).Float64()
	switch {
	case p < 0:
		return 0
	case p > 1:
		return 1
	default:
		return p
	}
}

// IsCompleted reports whether the target has been reached.
func (g Goal) IsCompleted() bool {
	return g.TargetAmount.IsPositive() && g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)
}

// Remaining returns the amount still missing, never negative.
func (g Goal) Remaining() decimal.Decimal {
	r := g.TargetAmount.Sub(g.CurrentAmount)
	if r.IsNegative() {
		return decimal.Zero
	}
	return r
}

// DaysLeft counts whole calendar days from now until the deadline; negative
// once the deadline has passed.
func (g Goal) DaysLeft(now time.Time) int {
	from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(g.Deadline.Year(), g.Deadline.Month(), g.Deadline.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}
