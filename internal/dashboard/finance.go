package dashboard

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iudanet/lifedash/internal/models"
	"github.com/iudanet/lifedash/internal/store"
	"github.com/iudanet/lifedash/internal/validation"
)

// TransactionInput данные формы транзакции
type TransactionInput struct {
	Amount      decimal.Decimal
	Description string
	Type        models.TransactionType
	Category    models.Category
	Date        models.Date
}

func (s *service) validateTransaction(in TransactionInput) (TransactionInput, error) {
	desc, err := validation.RequireText("description", in.Description)
	if err != nil {
		return in, err
	}
	in.Description = desc

	if in.Amount.IsNegative() {
		return in, fmt.Errorf("amount %s: %w", in.Amount, validation.ErrNegative)
	}
	if in.Type == "" {
		in.Type = models.TransactionExpense
	}
	if !in.Type.Valid() {
		return in, fmt.Errorf("transaction type %q: %w", in.Type, ErrInvalidInput)
	}
	if in.Category == "" {
		in.Category = models.CategoryOther
	}
	if !in.Category.Valid() {
		return in, fmt.Errorf("category %q: %w", in.Category, ErrInvalidInput)
	}
	if in.Date.IsZero() {
		in.Date = s.Today()
	}
	if !in.Date.Valid() {
		return in, fmt.Errorf("transaction date %q: %w", in.Date, ErrInvalidInput)
	}
	return in, nil
}

// Transactions returns transactions of the given type (all when empty), newest first.
func (s *service) Transactions(typ models.TransactionType) []models.Transaction {
	return FilterTransactions(s.snapshot().Transactions, typ)
}

// AddTransaction records a transaction. New entries go to the front of the list.
func (s *service) AddTransaction(ctx context.Context, in TransactionInput) (models.Transaction, error) {
	in, err := s.validateTransaction(in)
	if err != nil {
		return models.Transaction{}, err
	}

	tx := models.Transaction{
		ID:          s.ids.NewID(),
		Description: in.Description,
		Amount:      in.Amount,
		Type:        in.Type,
		Category:    in.Category,
		Date:        in.Date,
	}
	err = s.mutate(ctx, store.SlotTransactions, func(st models.State) (models.State, error) {
		txs := make([]models.Transaction, 0, len(st.Transactions)+1)
		st.Transactions = append(append(txs, tx), st.Transactions...)
		return st, nil
	})
	if err != nil {
		return models.Transaction{}, err
	}
	return tx, nil
}

// DeleteTransaction removes the transaction.
func (s *service) DeleteTransaction(ctx context.Context, id string) error {
	return s.mutate(ctx, store.SlotTransactions, func(st models.State) (models.State, error) {
		var err error
		if st.Transactions, err = removeItem(st.Transactions, id); err != nil {
			return st, fmt.Errorf("transaction %w", err)
		}
		return st, nil
	})
}

// Budget returns the monthly budget; 0 means no budget.
func (s *service) Budget() decimal.Decimal {
	return s.snapshot().Budget
}

// SetBudget stores the monthly budget. 0 disables budget tracking.
func (s *service) SetBudget(ctx context.Context, amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("budget %s: %w", amount, validation.ErrNegative)
	}
	return s.mutate(ctx, store.SlotBudget, func(st models.State) (models.State, error) {
		st.Budget = amount
		return st, nil
	})
}
