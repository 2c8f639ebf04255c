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

var goalListTmpl = mustTemplate("goals", goalTemplate)

type goalView struct {
	Goal   models.Goal
	Status stats.GoalStatus
	Badge  string
}

func (c *Cli) runGoal(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		return c.runGoalList()
	case "add":
		return c.runGoalAdd(ctx)
	case "progress":
		if len(rest) < 2 {
			return usageError("goal progress <id> <+N|-N|N>")
		}
		return c.runGoalProgress(ctx, rest[0], rest[1])
	case "delete":
		if len(rest) == 0 {
			return usageError("goal delete <id>")
		}
		return c.confirmDelete("goal", func() error {
			return c.dash.DeleteGoal(ctx, rest[0])
		})
	default:
		return fmt.Errorf("%w: goal %s", ErrUnknownCommand, sub)
	}
}

func (c *Cli) runGoalList() error {
	c.io.Println("=== Goals ===")
	c.io.Println()

	goals := c.dash.Goals()
	if len(goals) == 0 {
		c.io.Println("No goals found.")
		c.io.Println()
		c.io.Println("Use 'lifedash goal add' to set a goal.")
		return nil
	}

	now := c.dash.Now()
	views := make([]goalView, 0, len(goals))
	for _, g := range goals {
		views = append(views, goalView{
			Goal:   g,
			Status: stats.GoalProgress(g),
			Badge:  daysBadge(g.Deadline, now),
		})
	}
	return c.render(goalListTmpl, views)
}

func (c *Cli) runGoalAdd(ctx context.Context) error {
	c.io.Println("=== Add Goal ===")
	c.io.Println()

	var in dashboard.GoalInput
	var err error
	if in.Name, err = c.ask("Name", ""); err != nil {
		return err
	}

	target, err := c.ask("Target", formatNumber(dashboard.DefaultGoalTarget))
	if err != nil {
		return err
	}
	in.Target = validation.ParseNumber(target)

	current, err := c.ask("Current", "0")
	if err != nil {
		return err
	}
	in.Current = validation.ParseNumber(current)

	if in.Unit, err = c.ask("Unit (optional)", ""); err != nil {
		return err
	}

	deadline, err := c.ask("Deadline (YYYY-MM-DD, optional)", "")
	if err != nil {
		return err
	}
	if in.Deadline, err = validation.ParseOptionalDate(deadline); err != nil {
		return err
	}

	g, err := c.dash.AddGoal(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to add goal: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Goal added successfully!")
	c.io.Printf("ID: %s\n", g.ID)
	return nil
}

// runGoalProgress adjusts progress by a signed value ("+1", "-2") or sets it
// to an unsigned one ("5").
func (c *Cli) runGoalProgress(ctx context.Context, id, value string) error {
	value = strings.TrimSpace(value)
	n := validation.ParseNumber(value)

	var (
		g   models.Goal
		err error
	)
	if strings.HasPrefix(value, "+") || strings.HasPrefix(value, "-") {
		g, err = c.dash.AdjustGoalProgress(ctx, id, n)
	} else {
		g, err = c.dash.SetGoalProgress(ctx, id, n)
	}
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}

	status := stats.GoalProgress(g)
	c.io.Printf("%s: %s / %s (%d%%)\n", g.Name, formatNumber(g.Current), formatNumber(g.Target), status.Percent)
	if status.Completed {
		c.io.Println("✓ Goal completed!")
	}
	return nil
}
