package models

import (
	"fmt"
	"strings"
)

// Kind is the variant of a Category. It decides the sign of a transaction.
type Kind uint8

const (
	KindExpense Kind = iota + 1
	KindIncome
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindExpense:
		return "expense"
	case KindIncome:
		return "income"
	default:
		return "unknown"
	}
}

// ParseKind accepts "expense" or "income" in any case.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "expense", "expenses":
		return KindExpense, nil
	case "income":
		return KindIncome, nil
	default:
		return 0, fmt.Errorf("unknown transaction kind %q", s)
	}
}

// ExpenseCategory is the closed set of spending categories.
type ExpenseCategory uint8

const (
	ExpenseFood ExpenseCategory = iota + 1
	ExpenseTransport
	ExpenseShopping
	ExpenseEntertainment
	ExpenseHealth
	ExpenseEducation
	ExpenseUtilities
	ExpenseHousing
	ExpenseOther
)

// IncomeCategory is the closed set of income categories.
type IncomeCategory uint8

const (
	IncomeSalary IncomeCategory = iota + 1
	IncomeBonus
	IncomeBusiness
	IncomeInvestment
	IncomeAllowance
	IncomeSideJob
	IncomeRefund
	IncomeOther
)

// CategoryInfo is the display metadata of a category.
type CategoryInfo struct {
	Key   string
	Label string
	Icon  string
	Color string
}

var expenseInfo = map[ExpenseCategory]CategoryInfo{
	ExpenseFood:          {Key: "food", Label: "Food", Icon: "🍔", Color: "orange"},
	ExpenseTransport:     {Key: "transport", Label: "Transport", Icon: "🚌", Color: "blue"},
	ExpenseShopping:      {Key: "shopping", Label: "Shopping", Icon: "🛍️", Color: "pink"},
	ExpenseEntertainment: {Key: "entertainment", Label: "Entertainment", Icon: "🎬", Color: "purple"},
	ExpenseHealth:        {Key: "health", Label: "Health", Icon: "💊", Color: "red"},
	ExpenseEducation:     {Key: "education", Label: "Education", Icon: "📚", Color: "indigo"},
	ExpenseUtilities:     {Key: "utilities", Label: "Utilities", Icon: "💡", Color: "yellow"},
	ExpenseHousing:       {Key: "housing", Label: "Housing", Icon: "🏠", Color: "brown"},
	ExpenseOther:         {Key: "other", Label: "Other", Icon: "📦", Color: "gray"},
}

var incomeInfo = map[IncomeCategory]CategoryInfo{
	IncomeSalary:     {Key: "salary", Label: "Salary", Icon: "💼", Color: "green"},
	IncomeBonus:      {Key: "bonus", Label: "Bonus", Icon: "🎁", Color: "mint"},
	IncomeBusiness:   {Key: "business", Label: "Business", Icon: "🏢", Color: "teal"},
	IncomeInvestment: {Key: "investment", Label: "Investment", Icon: "📈", Color: "cyan"},
	IncomeAllowance:  {Key: "allowance", Label: "Allowance", Icon: "💵", Color: "blue"},
	IncomeSideJob:    {Key: "sidejob", Label: "Side job", Icon: "🛠️", Color: "orange"},
	IncomeRefund:     {Key: "refund", Label: "Refund", Icon: "↩️", Color: "gray"},
	IncomeOther:      {Key: "other", Label: "Other", Icon: "💰", Color: "gray"},
}

// AllExpenseCategories returns the expense categories in enumeration order.
func AllExpenseCategories() []ExpenseCategory {
	out := make([]ExpenseCategory, 0, len(expenseInfo))
	for c := ExpenseFood; c <= ExpenseOther; c++ {
		out = append(out, c)
	}
	return out
}

// AllIncomeCategories returns the income categories in enumeration order.
func AllIncomeCategories() []IncomeCategory {
	out := make([]IncomeCategory, 0, len(incomeInfo))
	for c := IncomeSalary; c <= IncomeOther; c++ {
		out = append(out, c)
	}
	return out
}

// Info returns the display metadata.
func (e ExpenseCategory) Info() CategoryInfo { return expenseInfo[e] }

// IsValid reports whether e belongs to the closed set.
func (e ExpenseCategory) IsValid() bool {
	_, ok := expenseInfo[e]
	return ok
}

func (e ExpenseCategory) String() string { return expenseInfo[e].Key }

// Info returns the display metadata.
func (i IncomeCategory) Info() CategoryInfo { return incomeInfo[i] }

// IsValid reports whether i belongs to the closed set.
func (i IncomeCategory) IsValid() bool {
	_, ok := incomeInfo[i]
	return ok
}

func (i IncomeCategory) String() string { return incomeInfo[i].Key }

// ParseExpenseCategory looks an expense category up by key or label.
func ParseExpenseCategory(s string) (ExpenseCategory, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, c := range AllExpenseCategories() {
		info := c.Info()
		if needle == info.Key || needle == strings.ToLower(info.Label) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown expense category %q", s)
}

// ParseIncomeCategory looks an income category up by key or label.
func ParseIncomeCategory(s string) (IncomeCategory, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, c := range AllIncomeCategories() {
		info := c.Info()
		if needle == info.Key || needle == strings.ToLower(info.Label) {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown income category %q", s)
}

// Category is exactly one expense or one income category. The zero value
// is invalid; build values with ExpenseOf or IncomeOf.
type Category struct {
	kind    Kind
	expense ExpenseCategory
	income  IncomeCategory
}

// ExpenseOf wraps an expense category.
func ExpenseOf(e ExpenseCategory) Category {
	return Category{kind: KindExpense, expense: e}
}

// IncomeOf wraps an income category.
func IncomeOf(i IncomeCategory) Category {
	return Category{kind: KindIncome, income: i}
}

// Kind returns the variant.
func (c Category) Kind() Kind { return c.kind }

// Expense returns the wrapped expense category and whether c is an expense.
func (c Category) Expense() (ExpenseCategory, bool) {
	return c.expense, c.kind == KindExpense
}

// Income returns the wrapped income category and whether c is an income.
func (c Category) Income() (IncomeCategory, bool) {
	return c.income, c.kind == KindIncome
}

// IsValid reports whether c wraps a member of its variant's closed set.
func (c Category) IsValid() bool {
	switch c.kind {
	case KindExpense:
		return c.expense.IsValid()
	case KindIncome:
		return c.income.IsValid()
	default:
		return false
	}
}

// Info returns the display metadata of the wrapped category.
func (c Category) Info() CategoryInfo {
	switch c.kind {
	case KindExpense:
		return c.expense.Info()
	case KindIncome:
		return c.income.Info()
	default:
		return CategoryInfo{}
	}
}

// Label is the display label.
func (c Category) Label() string { return c.Info().Label }

// Ordinal is the position in the combined enumeration, expenses first.
func (c Category) Ordinal() int {
	switch c.kind {
	case KindExpense:
		return int(c.expense)
	case KindIncome:
		return len(expenseInfo) + int(c.income)
	default:
		return 0
	}
}

// String returns the text form, e.g. "expense:food".
func (c Category) String() string {
	if !c.IsValid() {
		return ""
	}
	return c.kind.String() + ":" + c.Info().Key
}

// ParseCategory parses "expense:food" or "income:salary". A bare key is
// resolved against the given default kind.
func ParseCategory(s string, defaultKind Kind) (Category, error) {
	kindPart, key, found := strings.Cut(strings.TrimSpace(s), ":")
	kind := defaultKind
	if found {
		k, err := ParseKind(kindPart)
		if err != nil {
			return Category{}, fmt.Errorf("invalid category %q: %w", s, err)
		}
		kind = k
	} else {
		key = kindPart
	}

	switch kind {
	case KindExpense:
		e, err := ParseExpenseCategory(key)
		if err != nil {
			return Category{}, err
		}
		return ExpenseOf(e), nil
	case KindIncome:
		i, err := ParseIncomeCategory(key)
		if err != nil {
			return Category{}, err
		}
		return IncomeOf(i), nil
	default:
		return Category{}, fmt.Errorf("invalid category %q: missing kind", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("cannot marshal invalid category")
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text), 0)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// AllCategories lists every category of the given kind in enumeration order.
func AllCategories(kind Kind) []Category {
	var out []Category
	switch kind {
	case KindExpense:
		for _, e := range AllExpenseCategories() {
			out = append(out, ExpenseOf(e))
		}
	case KindIncome:
		for _, i := range AllIncomeCategories() {
			out = append(out, IncomeOf(i))
		}
	}
	return out
}
