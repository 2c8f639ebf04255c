package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/lifedash/internal/dashboard"
	"github.com/iudanet/lifedash/internal/models"
	"github.com/iudanet/lifedash/internal/stats"
	"github.com/iudanet/lifedash/internal/validation"
)

var financeTmpl = mustTemplate("finance", financeTemplate)

func (c *Cli) runTransaction(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		filter := ""
		if len(rest) > 0 {
			filter = rest[0]
		}
		return c.runTransactionList(filter)
	case "add":
		return c.runTransactionAdd(ctx)
	case "delete":
		if len(rest) == 0 {
			return usageError("tx delete <id>")
		}
		return c.confirmDelete("transaction", func() error {
			return c.dash.DeleteTransaction(ctx, rest[0])
		})
	default:
		return fmt.Errorf("%w: tx %s", ErrUnknownCommand, sub)
	}
}

func transactionFilter(filter string) (models.TransactionType, error) {
	if filter == "" || filter == "all" {
		return "", nil
	}
	typ := models.TransactionType(filter)
	if !typ.Valid() {
		return "", fmt.Errorf("unknown filter: %s. Use: all, income or expense", filter)
	}
	return typ, nil
}

func (c *Cli) runTransactionList(filter string) error {
	typ, err := transactionFilter(filter)
	if err != nil {
		return err
	}

	c.io.Println("=== Transactions ===")
	c.io.Println()

	txs := c.dash.Transactions(typ)
	if len(txs) == 0 {
		c.io.Println("No transactions found.")
		c.io.Println()
		c.io.Println("Use 'lifedash tx add' to record one.")
		return nil
	}

	for _, t := range txs {
		sign := "-"
		if t.Type == models.TransactionIncome {
			sign = "+"
		}
		c.io.Printf("%s  %s%s  %s  %s (%s)\n",
			formatDate(t.Date), sign, formatMoney(t.Amount), t.Description, t.Category.Label(), t.ID)
	}
	return nil
}

func (c *Cli) runTransactionAdd(ctx context.Context) error {
	c.io.Println("=== Add Transaction ===")
	c.io.Println()

	var in dashboard.TransactionInput

	typ, err := c.ask("Type (income/expense)", string(models.TransactionExpense))
	if err != nil {
		return err
	}
	in.Type = models.TransactionType(choice(typ))

	amount, err := c.ask("Amount", "")
	if err != nil {
		return err
	}
	if in.Amount, err = validation.ParseAmount(amount); err != nil {
		return err
	}

	if in.Description, err = c.ask("Description", ""); err != nil {
		return err
	}

	names := make([]string, len(models.Categories))
	for i, cat := range models.Categories {
		names[i] = string(cat)
	}
	category, err := c.ask(fmt.Sprintf("Category (%s)", strings.Join(names, "/")), string(models.CategoryOther))
	if err != nil {
		return err
	}
	in.Category = models.Category(choice(category))

	date, err := c.ask("Date (YYYY-MM-DD)", c.dash.Today().String())
	if err != nil {
		return err
	}
	if in.Date, err = validation.ParseOptionalDate(date); err != nil {
		return err
	}

	t, err := c.dash.AddTransaction(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to add transaction: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Transaction added successfully!")
	c.io.Printf("ID: %s\n", t.ID)
	return nil
}

func (c *Cli) runBudget(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "show")
	switch sub {
	case "show":
		budget := c.dash.Budget()
		if !budget.IsPositive() {
			c.io.Println("No monthly budget set.")
			return nil
		}
		c.io.Printf("Monthly budget: %s\n", formatMoney(budget))
		return nil
	case "set":
		if len(rest) == 0 {
			return usageError("budget set <amount>")
		}
		amount, err := validation.ParseAmount(rest[0])
		if err != nil {
			return err
		}
		if err := c.dash.SetBudget(ctx, amount); err != nil {
			return fmt.Errorf("failed to set budget: %w", err)
		}
		if amount.IsZero() {
			c.io.Println("Monthly budget disabled.")
		} else {
			c.io.Printf("✓ Monthly budget set to %s\n", formatMoney(amount))
		}
		return nil
	default:
		return fmt.Errorf("%w: budget %s", ErrUnknownCommand, sub)
	}
}

func (c *Cli) runFinance() error {
	state := c.dash.State()
	now := c.dash.Now()
	return c.render(financeTmpl, struct {
		Summary    stats.Summary
		Categories []stats.CategoryShare
	}{
		Summary:    stats.MonthlySummary(state.Transactions, state.Budget, now),
		Categories: stats.CategoryBreakdown(state.Transactions, now),
	})
}
