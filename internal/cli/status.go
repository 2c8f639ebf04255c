package cli

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/iudanet/lifedash/internal/store"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Storage Status ===")
	c.io.Println()

	persisted, err := c.dash.PersistedSlots(ctx)
	if err != nil {
		return fmt.Errorf("failed to read storage: %w", err)
	}

	state := c.dash.State()
	counts := map[store.Slot]int{
		store.SlotExams:        len(state.Exams),
		store.SlotProjects:     len(state.Projects),
		store.SlotHabits:       len(state.Habits),
		store.SlotGoals:        len(state.Goals),
		store.SlotTransactions: len(state.Transactions),
	}

	for _, slot := range store.Slots {
		saved := "not saved yet"
		if slices.Contains(persisted, slot) {
			saved = "saved"
		}
		if slot == store.SlotBudget {
			c.io.Printf("%-13s %-14s %s\n", slot, formatMoney(state.Budget), saved)
			continue
		}
		c.io.Printf("%-13s %-14d %s\n", slot, counts[slot], saved)
	}

	c.io.Println()
	lastExport, err := c.backups.LastExport(ctx)
	if err != nil {
		return fmt.Errorf("failed to read backup status: %w", err)
	}
	lastImport, err := c.backups.LastImport(ctx)
	if err != nil {
		return fmt.Errorf("failed to read backup status: %w", err)
	}
	c.io.Printf("Last export: %s\n", sinceOrNever(lastExport))
	c.io.Printf("Last import: %s\n", sinceOrNever(lastImport))

	if lastExport.IsZero() {
		c.io.Println()
		c.io.Println("⚠️  No backup yet. Run 'lifedash export' to create one.")
	}
	return nil
}

func sinceOrNever(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return fmt.Sprintf("%s (%s)", t.Local().Format("02/01/2006 15:04"), humanize.Time(t))
}
