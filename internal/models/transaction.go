package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Суммы сохраняются как JSON-числа, как в исходных резервных копиях.
	decimal.MarshalJSONWithoutQuotes = true
}

// TransactionType тип транзакции
type TransactionType string

const (
	TransactionIncome  TransactionType = "income"
	TransactionExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

// Category категория транзакции
type Category string

const (
	CategoryFood          Category = "food"
	CategoryTransport     Category = "transport"
	CategoryEntertainment Category = "entertainment"
	CategoryBills         Category = "bills"
	CategoryShopping      Category = "shopping"
	CategoryHealth        Category = "health"
	CategoryEducation     Category = "education"
	CategorySalary        Category = "salary"
	CategoryOther         Category = "other"
)

// Categories lists the known categories in form order.
var Categories = []Category{
	CategoryFood,
	CategoryTransport,
	CategoryEntertainment,
	CategoryBills,
	CategoryShopping,
	CategoryHealth,
	CategoryEducation,
	CategorySalary,
	CategoryOther,
}

var categoryLabels = map[Category]string{
	CategoryFood:          "Food",
	CategoryTransport:     "Transport",
	CategoryEntertainment: "Entertainment",
	CategoryBills:         "Bills",
	CategoryShopping:      "Shopping",
	CategoryHealth:        "Health",
	CategoryEducation:     "Education",
	CategorySalary:        "Salary",
	CategoryOther:         "Other",
}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

// Label returns a human readable name; unknown categories are shown verbatim.
func (c Category) Label() string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Transaction представляет доход или расход.
// Amount всегда неотрицательна, знак определяется Type.
type Transaction struct {
	Amount      decimal.Decimal `json:"amount"`
	ID          string          `json:"id"`
	Description string          `json:"description"`
	Type        TransactionType `json:"type"`
	Category    Category        `json:"category"`
	Date        Date            `json:"date"`
}

// GetID returns the transaction id.
func (t Transaction) GetID() string { return t.ID }
