package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/iudanet/lifedash/internal/models"
	"github.com/iudanet/lifedash/internal/stats"
	"github.com/iudanet/lifedash/internal/validation"
)

var weekdayLabels = [7]string{"Mo", "Tu", "We", "Th", "Fr", "Sa", "Su"}

func (c *Cli) runHabit(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		return c.runHabitList()
	case "add":
		name := joinWords(rest)
		if name == "" {
			var err error
			if name, err = c.ask("Habit", ""); err != nil {
				return err
			}
		}
		h, err := c.dash.AddHabit(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to add habit: %w", err)
		}
		c.io.Println("✓ Habit added successfully!")
		c.io.Printf("ID: %s\n", h.ID)
		return nil
	case "toggle":
		if len(rest) == 0 {
			return usageError("habit toggle <id> [YYYY-MM-DD]")
		}
		return c.runHabitToggle(ctx, rest[0], rest[1:])
	case "delete":
		if len(rest) == 0 {
			return usageError("habit delete <id>")
		}
		return c.confirmDelete("habit", func() error {
			return c.dash.DeleteHabit(ctx, rest[0])
		})
	default:
		return fmt.Errorf("%w: habit %s", ErrUnknownCommand, sub)
	}
}

func (c *Cli) runHabitList() error {
	c.io.Println("=== Habits ===")
	c.io.Println()

	habits := c.dash.Habits()
	if len(habits) == 0 {
		c.io.Println("No habits found.")
		c.io.Println()
		c.io.Println("Use 'lifedash habit add' to start tracking a habit.")
		return nil
	}

	today := c.dash.Today()
	week := stats.WeekDates(today)

	header := make([]string, len(week))
	for i, d := range week {
		header[i] = weekdayLabels[i]
		if d == today {
			header[i] = strings.ToUpper(header[i]) + "*"
		}
	}
	c.io.Printf("%-24s %s\n", "", strings.Join(header, " "))

	for _, h := range habits {
		cells := make([]string, len(week))
		for i, d := range week {
			cells[i] = "[ ]"
			if h.IsCompletedOn(d) {
				cells[i] = "[x]"
			}
		}
		streak := stats.Streak(h.CompletedDates, today)
		flame := ""
		if streak >= stats.HotStreak {
			flame = " 🔥"
		}
		c.io.Printf("%-24s %s  streak: %d%s\n", h.Name, strings.Join(cells, ""), streak, flame)
		c.io.Printf("  %s\n", h.ID)
	}
	return nil
}

func (c *Cli) runHabitToggle(ctx context.Context, id string, rest []string) error {
	var day models.Date
	if len(rest) > 0 {
		d, err := validation.ParseOptionalDate(rest[0])
		if err != nil {
			return err
		}
		day = d
	}

	done, err := c.dash.ToggleHabit(ctx, id, day)
	if err != nil {
		return fmt.Errorf("failed to toggle habit: %w", err)
	}
	if day.IsZero() {
		day = c.dash.Today()
	}
	if done {
		c.io.Printf("✓ Marked done on %s.\n", formatDate(day))
	} else {
		c.io.Printf("Unmarked %s.\n", formatDate(day))
	}
	return nil
}
