package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/iudanet/lifedash/internal/dashboard"
	"github.com/iudanet/lifedash/internal/models"
	"github.com/iudanet/lifedash/internal/stats"
	"github.com/iudanet/lifedash/internal/validation"
)

// defaultCFU значение CFU, предлагаемое в форме нового экзамена
const defaultCFU = 6

var (
	examListTmpl  = mustTemplate("exams", examTemplate)
	examStatsTmpl = mustTemplate("exam-stats", examStatsTemplate)
)

func (c *Cli) runExam(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		return c.runExamList()
	case "add":
		return c.runExamAdd(ctx)
	case "edit":
		if len(rest) == 0 {
			return usageError("exam edit <id>")
		}
		return c.runExamEdit(ctx, rest[0])
	case "delete":
		if len(rest) == 0 {
			return usageError("exam delete <id>")
		}
		return c.confirmDelete("exam", func() error {
			return c.dash.DeleteExam(ctx, rest[0])
		})
	case "stats":
		return c.runExamStats()
	default:
		return fmt.Errorf("%w: exam %s", ErrUnknownCommand, sub)
	}
}

type examView struct {
	Exam  models.Exam
	Badge string
}

func (c *Cli) runExamList() error {
	c.io.Println("=== Exams ===")
	c.io.Println()

	exams := c.dash.Exams()
	if len(exams) == 0 {
		c.io.Println("No exams found.")
		c.io.Println()
		c.io.Println("Use 'lifedash exam add' to add your first exam.")
		return nil
	}

	now := c.dash.Now()
	views := make([]examView, 0, len(exams))
	for _, e := range exams {
		v := examView{Exam: e}
		// Отсчет дней показывается только для несданных экзаменов
		if e.Status == models.ExamPending {
			v.Badge = daysBadge(e.Date, now)
		}
		views = append(views, v)
	}

	c.io.Printf("Found %d exam(s):\n", len(exams))
	c.io.Println()
	return c.render(examListTmpl, views)
}

func (c *Cli) runExamStats() error {
	exams := c.dash.Exams()
	avg := stats.WeightedAverage(exams)
	return c.render(examStatsTmpl, struct {
		Average float64
		Final   int
		Totals  stats.ExamSummary
	}{
		Average: avg,
		Final:   stats.EstimatedFinalScore(avg),
		Totals:  stats.ExamTotals(exams),
	})
}

func (c *Cli) runExamAdd(ctx context.Context) error {
	c.io.Println("=== Add Exam ===")
	c.io.Println()

	in, err := c.readExam(models.Exam{CFU: defaultCFU, Status: models.ExamPending})
	if err != nil {
		return err
	}
	exam, err := c.dash.AddExam(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to add exam: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Exam added successfully!")
	c.io.Printf("ID: %s\n", exam.ID)
	return nil
}

func (c *Cli) runExamEdit(ctx context.Context, id string) error {
	current, ok := findByID(c.dash.Exams(), id)
	if !ok {
		return fmt.Errorf("exam %s: %w", id, dashboard.ErrNotFound)
	}

	c.io.Println("=== Edit Exam ===")
	c.io.Println()

	in, err := c.readExam(current)
	if err != nil {
		return err
	}
	if _, err := c.dash.UpdateExam(ctx, id, in); err != nil {
		return fmt.Errorf("failed to update exam: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Exam updated successfully!")
	return nil
}

// readExam asks for every exam field, offering def's values as defaults.
// The grade is only asked for passed exams.
func (c *Cli) readExam(def models.Exam) (dashboard.ExamInput, error) {
	var in dashboard.ExamInput

	name, err := c.ask("Name", def.Name)
	if err != nil {
		return in, err
	}
	in.Name = name

	cfu, err := c.ask("CFU", strconv.Itoa(def.CFU))
	if err != nil {
		return in, err
	}
	if in.CFU, err = validation.ParseCFU(cfu); err != nil {
		return in, err
	}

	date, err := c.ask("Date (YYYY-MM-DD, - for none)", def.Date.String())
	if err != nil {
		return in, err
	}
	if in.Date, err = validation.ParseOptionalDate(clearable(date)); err != nil {
		return in, err
	}

	status, err := c.ask("Status (pending/passed)", string(def.Status))
	if err != nil {
		return in, err
	}
	in.Status = models.ExamStatus(choice(status))
	if !in.Status.Valid() {
		return in, fmt.Errorf("exam status %q: %w", status, dashboard.ErrInvalidInput)
	}

	if in.Status == models.ExamPassed {
		var prev string
		if def.Grade != nil {
			prev = strconv.Itoa(*def.Grade)
		}
		grade, err := c.ask("Grade (18-30, 31 for cum laude)", prev)
		if err != nil {
			return in, err
		}
		if in.Grade, err = validation.ParseGrade(grade); err != nil {
			return in, err
		}
	}
	return in, nil
}

type identified interface {
	GetID() string
}

func findByID[T identified](items []T, id string) (T, bool) {
	for _, item := range items {
		if item.GetID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}
