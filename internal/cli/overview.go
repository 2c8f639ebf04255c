package cli

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/iudanet/lifedash/internal/models"
	"github.com/iudanet/lifedash/internal/stats"
)

var overviewTmpl = mustTemplate("overview", overviewTemplate)

type overviewView struct {
	Today          models.Date
	Average        float64
	Final          int
	Exams          stats.ExamSummary
	Projects       stats.StatusCounts
	HabitsDone     int
	HabitsTotal    int
	BestStreak     int
	GoalsCompleted int
	GoalsTotal     int
	Finance        stats.Summary
	LastExport     string
}

func (c *Cli) runOverview(ctx context.Context) error {
	state := c.dash.State()
	today := c.dash.Today()

	view := overviewView{
		Today:       today,
		Average:     stats.WeightedAverage(state.Exams),
		Exams:       stats.ExamTotals(state.Exams),
		Projects:    stats.ProjectCounts(state.Projects),
		HabitsTotal: len(state.Habits),
		GoalsTotal:  len(state.Goals),
		Finance:     stats.MonthlySummary(state.Transactions, state.Budget, c.dash.Now()),
	}
	view.Final = stats.EstimatedFinalScore(view.Average)
	for _, h := range state.Habits {
		if h.IsCompletedOn(today) {
			view.HabitsDone++
		}
		view.BestStreak = max(view.BestStreak, stats.Streak(h.CompletedDates, today))
	}
	for _, g := range state.Goals {
		if stats.GoalProgress(g).Completed {
			view.GoalsCompleted++
		}
	}

	if c.backups != nil {
		last, err := c.backups.LastExport(ctx)
		if err != nil {
			return fmt.Errorf("failed to read backup status: %w", err)
		}
		if !last.IsZero() {
			view.LastExport = humanize.Time(last)
		}
	}

	return c.render(overviewTmpl, view)
}
