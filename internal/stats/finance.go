package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iudanet/lifedash/internal/models"
)

// BudgetLevel степень использования бюджета
type BudgetLevel string

const (
	BudgetOK      BudgetLevel = "ok"
	BudgetWarning BudgetLevel = "warning" // больше 80%
	BudgetOver    BudgetLevel = "over"    // больше 100%
)

// Пороги уровня бюджета в процентах
const (
	WarningThreshold = 80
	OverThreshold    = 100
)

var hundred = decimal.NewFromInt(100)

// Summary финансовая сводка за текущий месяц
type Summary struct {
	Income      decimal.Decimal
	Expenses    decimal.Decimal
	Balance     decimal.Decimal
	Budget      decimal.Decimal
	Remaining   decimal.Decimal
	Month       string
	Level       BudgetLevel
	Utilization int
}

// BudgetEnabled reports whether a monthly budget is set.
func (s Summary) BudgetEnabled() bool {
	return s.Budget.IsPositive()
}

// CategoryShare расходы одной категории за месяц
type CategoryShare struct {
	Category models.Category
	Amount   decimal.Decimal
	Percent  int
}

// InMonth returns the transactions dated within the calendar month of now.
func InMonth(transactions []models.Transaction, now time.Time) []models.Transaction {
	month := models.NewDate(now).Month()
	var out []models.Transaction
	for _, t := range transactions {
		if t.Date.Month() == month {
			out = append(out, t)
		}
	}
	return out
}

// MonthlySummary totals the current month and measures it against budget.
// Utilization and level are only meaningful when budget is positive.
func MonthlySummary(transactions []models.Transaction, budget decimal.Decimal, now time.Time) Summary {
	s := Summary{
		Month:  models.NewDate(now).Month(),
		Budget: budget,
		Level:  BudgetOK,
	}

	for _, t := range InMonth(transactions, now) {
		switch t.Type {
		case models.TransactionIncome:
			s.Income = s.Income.Add(t.Amount)
		case models.TransactionExpense:
			s.Expenses = s.Expenses.Add(t.Amount)
		}
	}
	s.Balance = s.Income.Sub(s.Expenses)

	if !budget.IsPositive() {
		return s
	}

	s.Utilization = percent(s.Expenses, budget)
	s.Remaining = decimal.Max(decimal.Zero, budget.Sub(s.Expenses))
	switch {
	case s.Utilization > OverThreshold:
		s.Level = BudgetOver
	case s.Utilization > WarningThreshold:
		s.Level = BudgetWarning
	}

	return s
}

// CategoryBreakdown groups the current month's expenses by category, largest
// first. Equal amounts are ordered by category name.
func CategoryBreakdown(transactions []models.Transaction, now time.Time) []CategoryShare {
	totals := make(map[models.Category]decimal.Decimal)
	total := decimal.Zero
	for _, t := range InMonth(transactions, now) {
		if t.Type != models.TransactionExpense {
			continue
		}
		totals[t.Category] = totals[t.Category].Add(t.Amount)
		total = total.Add(t.Amount)
	}

	shares := make([]CategoryShare, 0, len(totals))
	for c, amount := range totals {
		shares = append(shares, CategoryShare{
			Category: c,
			Amount:   amount,
			Percent:  percent(amount, total),
		})
	}

	sort.Slice(shares, func(i, j int) bool {
		if cmp := shares[i].Amount.Cmp(shares[j].Amount); cmp != 0 {
			return cmp > 0
		}
		return shares[i].Category < shares[j].Category
	})

	return shares
}

// percent returns round(100*part/whole), 0 when whole is not positive.
func percent(part, whole decimal.Decimal) int {
	if !whole.IsPositive() {
		return 0
	}
	return int(part.Mul(hundred).Div(whole).Round(0).IntPart())
}
