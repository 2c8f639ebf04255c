package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/lifedash/internal/backup"
	"github.com/iudanet/lifedash/internal/dashboard"
	"github.com/iudanet/lifedash/internal/idgen"
	"github.com/iudanet/lifedash/internal/iocli"
	"github.com/iudanet/lifedash/internal/models"
	"github.com/iudanet/lifedash/internal/storage/boltdb"
	"github.com/iudanet/lifedash/internal/store"
	"github.com/iudanet/lifedash/internal/validation"
)

var testNow = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

// terminal записывает вывод и отдает заранее заданные ответы
type terminal struct {
	*iocli.IOMock
	out       strings.Builder
	answers   []string
	passwords []string
}

func newTerminal(answers ...string) *terminal {
	term := &terminal{answers: answers}
	term.IOMock = &iocli.IOMock{
		PrintlnFunc: func(a ...any) {
			term.out.WriteString(fmt.Sprintln(a...))
		},
		PrintfFunc: func(format string, a ...any) {
			term.out.WriteString(fmt.Sprintf(format, a...))
		},
		WriteFunc: func(p []byte) (int, error) {
			return term.out.Write(p)
		},
		ReadInputFunc: func(prompt string) (string, error) {
			if len(term.answers) == 0 {
				return "", fmt.Errorf("unexpected prompt %q", prompt)
			}
			answer := term.answers[0]
			term.answers = term.answers[1:]
			return answer, nil
		},
		ReadPasswordFunc: func(prompt string) (string, error) {
			if len(term.passwords) == 0 {
				return "", fmt.Errorf("unexpected password prompt %q", prompt)
			}
			pass := term.passwords[0]
			term.passwords = term.passwords[1:]
			return pass, nil
		},
		IsTerminalFunc: func() bool { return false },
	}
	return term
}

func mustAmount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	require.NoError(t, err)
	return d
}

func (t *terminal) String() string {
	return t.out.String()
}

type testEnv struct {
	cli  *Cli
	dash dashboard.Service
	term *terminal
	dir  string
}

func newTestEnv(t *testing.T, answers ...string) *testEnv {
	t.Helper()
	ctx := context.Background()

	dir := t.TempDir()
	bolt, err := boltdb.New(ctx, filepath.Join(dir, "cli.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = bolt.Close() })

	dash := dashboard.NewService(store.New(bolt, nil), nil,
		dashboard.WithClock(func() time.Time { return testNow }),
		dashboard.WithIDGenerator(idgen.NewSequence("t")),
	)
	require.NoError(t, dash.Load(ctx))

	term := newTerminal(answers...)
	manager := backup.NewManager(dash, bolt, filepath.Join(dir, "backups"), nil)
	return &testEnv{
		cli:  New(term, dash, manager, ""),
		dash: dash,
		term: term,
		dir:  dir,
	}
}

func TestCli_Run_UnknownCommand(t *testing.T) {
	env := newTestEnv(t)

	err := env.cli.Run(context.Background(), []string{"fly"})
	require.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, env.term.String(), "Usage:")
}

func TestCli_Run_MissingCommand(t *testing.T) {
	env := newTestEnv(t)

	err := env.cli.Run(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, env.term.String(), "Commands:")
}

func TestCli_Run_UnknownSubcommand(t *testing.T) {
	env := newTestEnv(t)

	for _, section := range []string{"exam", "project", "task", "habit", "goal", "tx", "budget"} {
		err := env.cli.Run(context.Background(), []string{section, "explode"})
		assert.ErrorIs(t, err, ErrUnknownCommand, section)
	}
}

func TestCli_ExamAdd_DefaultCFU(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "Analisi 1", "", "2024-07-01", "passed", "28")

	require.NoError(t, env.cli.Run(ctx, []string{"exam", "add"}))
	assert.Contains(t, env.term.String(), "Exam added successfully")
	assert.Contains(t, env.term.String(), "ID: t-1")

	exams := env.dash.Exams()
	require.Len(t, exams, 1)
	assert.Equal(t, "Analisi 1", exams[0].Name)
	assert.Equal(t, defaultCFU, exams[0].CFU)
	assert.Equal(t, models.Date("2024-07-01"), exams[0].Date)
	require.NotNil(t, exams[0].Grade)
	assert.Equal(t, 28, *exams[0].Grade)
}

func TestCli_ExamAdd_PendingSkipsGrade(t *testing.T) {
	env := newTestEnv(t, "Fisica", "9", "", "")

	require.NoError(t, env.cli.Run(context.Background(), []string{"exam", "add"}))

	exams := env.dash.Exams()
	require.Len(t, exams, 1)
	assert.Equal(t, models.ExamPending, exams[0].Status)
	assert.Nil(t, exams[0].Grade)
	assert.True(t, exams[0].Date.IsZero())
}

func TestCli_ExamAdd_NormalizesStatus(t *testing.T) {
	env := newTestEnv(t, "Analisi 2", "", "", " Passed ", "30")

	require.NoError(t, env.cli.Run(context.Background(), []string{"exam", "add"}))

	exams := env.dash.Exams()
	require.Len(t, exams, 1)
	assert.Equal(t, models.ExamPassed, exams[0].Status)
	require.NotNil(t, exams[0].Grade)
	assert.Equal(t, 30, *exams[0].Grade)
}

func TestCli_ExamAdd_InvalidCFU(t *testing.T) {
	env := newTestEnv(t, "Fisica", "40")

	err := env.cli.Run(context.Background(), []string{"exam", "add"})
	require.ErrorIs(t, err, validation.ErrOutOfRange)
	assert.Empty(t, env.dash.Exams())
}

func TestCli_ExamEdit_KeepsDefaults(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	exam, err := env.dash.AddExam(ctx, dashboard.ExamInput{Name: "Chimica", CFU: 6, Date: "2024-07-01"})
	require.NoError(t, err)

	// имя и CFU по умолчанию, дата очищается, экзамен сдан на 30 e lode
	env.term.answers = []string{"", "", "-", "passed", "31"}
	require.NoError(t, env.cli.Run(ctx, []string{"exam", "edit", exam.ID}))

	exams := env.dash.Exams()
	require.Len(t, exams, 1)
	assert.Equal(t, "Chimica", exams[0].Name)
	assert.Equal(t, 6, exams[0].CFU)
	assert.True(t, exams[0].Date.IsZero())
	assert.Equal(t, models.ExamPassed, exams[0].Status)

	env.term.out.Reset()
	require.NoError(t, env.cli.Run(ctx, []string{"exam", "list"}))
	assert.Contains(t, env.term.String(), "Grade: 30L")
}

func TestCli_ExamEdit_NotFound(t *testing.T) {
	env := newTestEnv(t)

	err := env.cli.Run(context.Background(), []string{"exam", "edit", "missing"})
	require.ErrorIs(t, err, dashboard.ErrNotFound)
}

func TestCli_ExamDelete(t *testing.T) {
	tests := []struct {
		name      string
		answer    string
		wantExams int
		wantOut   string
	}{
		{name: "confirmed with yes", answer: "yes", wantExams: 0, wantOut: "Exam deleted."},
		{name: "confirmed with y", answer: "Y", wantExams: 0, wantOut: "Exam deleted."},
		{name: "cancelled", answer: "no", wantExams: 1, wantOut: "Deletion cancelled."},
		{name: "empty answer cancels", answer: "", wantExams: 1, wantOut: "Deletion cancelled."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			env := newTestEnv(t, tt.answer)
			exam, err := env.dash.AddExam(ctx, dashboard.ExamInput{Name: "Chimica", CFU: 6})
			require.NoError(t, err)

			require.NoError(t, env.cli.Run(ctx, []string{"exam", "delete", exam.ID}))
			assert.Len(t, env.dash.Exams(), tt.wantExams)
			assert.Contains(t, env.term.String(), tt.wantOut)
		})
	}
}

func TestCli_ExamListAndStats(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.cli.Run(ctx, []string{"exam"}))
	assert.Contains(t, env.term.String(), "No exams found.")

	_, err := env.dash.AddExam(ctx, dashboard.ExamInput{Name: "Analisi", CFU: 9, Status: models.ExamPassed, Grade: models.IntPtr(30)})
	require.NoError(t, err)
	_, err = env.dash.AddExam(ctx, dashboard.ExamInput{Name: "Fisica", CFU: 6, Status: models.ExamPassed, Grade: models.IntPtr(24)})
	require.NoError(t, err)
	_, err = env.dash.AddExam(ctx, dashboard.ExamInput{Name: "Chimica", CFU: 6, Date: "2024-06-15"})
	require.NoError(t, err)

	env.term.out.Reset()
	require.NoError(t, env.cli.Run(ctx, []string{"exam", "list"}))
	out := env.term.String()
	assert.Contains(t, out, "Found 3 exam(s)")
	assert.Contains(t, out, "Date: 15/06/2024 (in 5d !)  Status: pending")
	// у сданных экзаменов без даты отсчета нет
	assert.Contains(t, out, "Date: -  Status: passed")
	// несданные экзамены идут первыми
	assert.Less(t, strings.Index(out, "Chimica"), strings.Index(out, "Analisi"))

	env.term.out.Reset()
	require.NoError(t, env.cli.Run(ctx, []string{"exam", "stats"}))
	out = env.term.String()
	assert.Contains(t, out, "Weighted average:  27.60 / 30")
	assert.Contains(t, out, "Estimated final:   101 / 110")
	assert.Contains(t, out, "Passed:            2 (15 CFU)")
	assert.Contains(t, out, "Pending:           1 (6 CFU)")
}

func TestCli_ExamList_DeadlineBadges(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	for _, in := range []dashboard.ExamInput{
		{Name: "Soon", CFU: 6, Date: "2024-06-15"},
		{Name: "Later", CFU: 6, Date: "2024-07-01"},
		{Name: "Today", CFU: 6, Date: "2024-06-10"},
		{Name: "Missed", CFU: 6, Date: "2024-06-01"},
		{Name: "Done", CFU: 6, Date: "2024-06-12", Status: models.ExamPassed, Grade: models.IntPtr(27)},
	} {
		_, err := env.dash.AddExam(ctx, in)
		require.NoError(t, err)
	}

	require.NoError(t, env.cli.Run(ctx, []string{"exam", "list"}))
	out := env.term.String()
	assert.Contains(t, out, "Date: 15/06/2024 (in 5d !)")
	assert.Contains(t, out, "Date: 01/07/2024 (in 21d)")
	assert.Contains(t, out, "Date: 10/06/2024 (today !)")
	assert.Contains(t, out, "Date: 01/06/2024 (overdue !)")
	// для сданных экзаменов отсчет не показывается
	assert.Contains(t, out, "Date: 12/06/2024  Status: passed")
}

func TestCli_Projects(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "Thesis", "Final thesis", "")

	require.NoError(t, env.cli.Run(ctx, []string{"project", "add"}))
	projects := env.dash.Projects("")
	require.Len(t, projects, 1)
	p := projects[0]
	assert.Equal(t, models.ProjectActive, p.Status)

	require.NoError(t, env.cli.Run(ctx, []string{"task", "add", p.ID, "Write", "intro"}))
	require.NoError(t, env.cli.Run(ctx, []string{"task", "add", p.ID, "Write", "outro"}))
	p, err := env.dash.Project(p.ID)
	require.NoError(t, err)
	require.Len(t, p.Tasks, 2)
	assert.Equal(t, "Write intro", p.Tasks[0].Text)

	require.NoError(t, env.cli.Run(ctx, []string{"task", "toggle", p.ID, p.Tasks[0].ID}))
	assert.Contains(t, env.term.String(), `Task "Write intro" completed.`)

	env.term.out.Reset()
	require.NoError(t, env.cli.Run(ctx, []string{"project", "show", p.ID}))
	out := env.term.String()
	assert.Contains(t, out, "=== Project Details ===")
	assert.Contains(t, out, "Progress: [##########..........] 50%")
	assert.Contains(t, out, "[x] Write intro")
	assert.Contains(t, out, "[ ] Write outro")

	env.term.out.Reset()
	require.NoError(t, env.cli.Run(ctx, []string{"project", "list", "paused"}))
	out = env.term.String()
	assert.Contains(t, out, "all: 1  active: 1  paused: 0  completed: 0")
	assert.Contains(t, out, "No projects found.")

	env.term.out.Reset()
	require.NoError(t, env.cli.Run(ctx, []string{"project", "list"}))
	assert.Contains(t, env.term.String(), "50%  1/2 tasks")

	// удаление задачи не требует подтверждения
	require.NoError(t, env.cli.Run(ctx, []string{"task", "delete", p.ID, p.Tasks[1].ID}))
	p, err = env.dash.Project(p.ID)
	require.NoError(t, err)
	assert.Len(t, p.Tasks, 1)
}

func TestCli_ProjectAdd_NormalizesStatus(t *testing.T) {
	env := newTestEnv(t, "Thesis", "", "PAUSED ")

	require.NoError(t, env.cli.Run(context.Background(), []string{"project", "add"}))
	projects := env.dash.Projects("")
	require.Len(t, projects, 1)
	assert.Equal(t, models.ProjectPaused, projects[0].Status)
}

func TestCli_ProjectList_InvalidFilter(t *testing.T) {
	env := newTestEnv(t)

	err := env.cli.Run(context.Background(), []string{"project", "list", "archived"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown filter")
}

func TestCli_Habits(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.cli.Run(ctx, []string{"habit", "add", "Read"}))
	habits := env.dash.Habits()
	require.Len(t, habits, 1)
	id := habits[0].ID

	for _, day := range []string{"2024-06-08", "2024-06-09"} {
		require.NoError(t, env.cli.Run(ctx, []string{"habit", "toggle", id, day}))
	}
	require.NoError(t, env.cli.Run(ctx, []string{"habit", "toggle", id}))
	assert.Contains(t, env.term.String(), "Marked done on 10/06/2024.")

	env.term.out.Reset()
	require.NoError(t, env.cli.Run(ctx, []string{"habit", "list"}))
	out := env.term.String()
	assert.Contains(t, out, "MO*")
	assert.Contains(t, out, "[x][ ][ ][ ][ ][ ][ ]  streak: 3")
	assert.NotContains(t, out, "🔥")

	require.NoError(t, env.cli.Run(ctx, []string{"habit", "toggle", id}))
	assert.Contains(t, env.term.String(), "Unmarked 10/06/2024.")
}

func TestCli_HabitToggle_InvalidDate(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	h, err := env.dash.AddHabit(ctx, "Read")
	require.NoError(t, err)

	err = env.cli.Run(ctx, []string{"habit", "toggle", h.ID, "10/06/2024"})
	require.Error(t, err)
}

func TestCli_HotStreak(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	h, err := env.dash.AddHabit(ctx, "Run")
	require.NoError(t, err)

	for i := 0; i < 7; i++ {
		_, err := env.dash.ToggleHabit(ctx, h.ID, models.Date("2024-06-10").AddDays(-i))
		require.NoError(t, err)
	}

	require.NoError(t, env.cli.Run(ctx, []string{"habit"}))
	assert.Contains(t, env.term.String(), "streak: 7 🔥")
}

func TestCli_GoalProgress(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "Read books", "12", "", "books", "2024-06-15")

	require.NoError(t, env.cli.Run(ctx, []string{"goal", "add"}))
	goals := env.dash.Goals()
	require.Len(t, goals, 1)
	id := goals[0].ID
	assert.Equal(t, 12.0, goals[0].Target)

	tests := []struct {
		value string
		want  float64
	}{
		{value: "+3", want: 3},
		{value: "+2.5", want: 5.5},
		{value: "-1", want: 4.5},
		{value: "10", want: 10},
		{value: "+100", want: 12},
		{value: "-100", want: 0},
		{value: "junk", want: 0},
	}
	for _, tt := range tests {
		require.NoError(t, env.cli.Run(ctx, []string{"goal", "progress", id, tt.value}), tt.value)
		assert.Equal(t, tt.want, env.dash.Goals()[0].Current, tt.value)
	}

	require.NoError(t, env.cli.Run(ctx, []string{"goal", "progress", id, "12"}))
	assert.Contains(t, env.term.String(), "Goal completed!")

	env.term.out.Reset()
	require.NoError(t, env.cli.Run(ctx, []string{"goal", "list"}))
	out := env.term.String()
	assert.Contains(t, out, "Read books  (completed)")
	assert.Contains(t, out, "12 / 12 books (100%)")
	assert.Contains(t, out, "Deadline: 15/06/2024 (in 5d !)")
}

func TestCli_GoalAdd_Defaults(t *testing.T) {
	env := newTestEnv(t, "Meditate", "", "", "", "")

	require.NoError(t, env.cli.Run(context.Background(), []string{"goal", "add"}))
	goals := env.dash.Goals()
	require.Len(t, goals, 1)
	assert.Equal(t, 100.0, goals[0].Target)
	assert.Equal(t, 0.0, goals[0].Current)
	assert.True(t, goals[0].Deadline.IsZero())
}

func TestCli_TransactionAdd_Defaults(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t, "", "12.50", "Pizza", "food", "")

	require.NoError(t, env.cli.Run(ctx, []string{"tx", "add"}))

	txs := env.dash.Transactions("")
	require.Len(t, txs, 1)
	assert.Equal(t, models.TransactionExpense, txs[0].Type)
	assert.Equal(t, models.CategoryFood, txs[0].Category)
	assert.Equal(t, models.Date("2024-06-10"), txs[0].Date)
	assert.Equal(t, "12.5", txs[0].Amount.String())

	env.term.out.Reset()
	require.NoError(t, env.cli.Run(ctx, []string{"tx", "list", "income"}))
	assert.Contains(t, env.term.String(), "No transactions found.")

	env.term.out.Reset()
	require.NoError(t, env.cli.Run(ctx, []string{"tx", "list", "expense"}))
	out := env.term.String()
	assert.Contains(t, out, "10/06/2024  -")
	assert.Contains(t, out, "Pizza  Food")
}

func TestCli_TransactionAdd_NormalizesChoices(t *testing.T) {
	env := newTestEnv(t, " Income", "1500", "Stipendio", "SALARY", "")

	require.NoError(t, env.cli.Run(context.Background(), []string{"tx", "add"}))

	txs := env.dash.Transactions("")
	require.Len(t, txs, 1)
	assert.Equal(t, models.TransactionIncome, txs[0].Type)
	assert.Equal(t, models.CategorySalary, txs[0].Category)
}

func TestCli_TransactionAdd_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		answers []string
	}{
		{name: "negative amount", answers: []string{"expense", "-5"}},
		{name: "missing description", answers: []string{"expense", "5", "", "", ""}},
		{name: "unknown category", answers: []string{"expense", "5", "Coffee", "crypto", ""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, tt.answers...)
			require.Error(t, env.cli.Run(context.Background(), []string{"tx", "add"}))
			assert.Empty(t, env.dash.Transactions(""))
		})
	}
}

func TestCli_Budget(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	require.NoError(t, env.cli.Run(ctx, []string{"budget"}))
	assert.Contains(t, env.term.String(), "No monthly budget set.")

	require.NoError(t, env.cli.Run(ctx, []string{"budget", "set", "1000"}))
	assert.Equal(t, "1000", env.dash.Budget().String())
	assert.Contains(t, env.term.String(), "Monthly budget set to")

	// нечисловое значение трактуется как 0 и отключает бюджет
	require.NoError(t, env.cli.Run(ctx, []string{"budget", "set", "abc"}))
	assert.True(t, env.dash.Budget().IsZero())
	assert.Contains(t, env.term.String(), "Monthly budget disabled.")

	err := env.cli.Run(ctx, []string{"budget", "set", "-5"})
	require.ErrorIs(t, err, validation.ErrNegative)
}

func TestCli_Finance(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	require.NoError(t, env.dash.SetBudget(ctx, mustAmount(t, "1000")))
	for _, in := range []dashboard.TransactionInput{
		{Amount: mustAmount(t, "2000"), Description: "Salary", Type: models.TransactionIncome, Category: models.CategorySalary},
		{Amount: mustAmount(t, "400"), Description: "Groceries", Category: models.CategoryFood},
		{Amount: mustAmount(t, "250"), Description: "Electricity", Category: models.CategoryBills},
	} {
		_, err := env.dash.AddTransaction(ctx, in)
		require.NoError(t, err)
	}

	require.NoError(t, env.cli.Run(ctx, []string{"finance"}))
	out := env.term.String()
	assert.Contains(t, out, "=== Finance (2024-06) ===")
	assert.Contains(t, out, "65% (ok)")
	assert.Contains(t, out, "Expenses by category:")
	assert.Less(t, strings.Index(out, "Food"), strings.Index(out, "Bills"))
	assert.Contains(t, out, "(62%)")
	assert.Contains(t, out, "(38%)")
}

func TestCli_Overview(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)
	_, err := env.dash.AddExam(ctx, dashboard.ExamInput{Name: "Analisi", CFU: 9, Status: models.ExamPassed, Grade: models.IntPtr(27)})
	require.NoError(t, err)
	h, err := env.dash.AddHabit(ctx, "Read")
	require.NoError(t, err)
	_, err = env.dash.ToggleHabit(ctx, h.ID, "")
	require.NoError(t, err)
	_, err = env.dash.AddHabit(ctx, "Run")
	require.NoError(t, err)

	require.NoError(t, env.cli.Run(ctx, []string{"overview"}))
	out := env.term.String()
	assert.Contains(t, out, "=== Overview (10/06/2024) ===")
	assert.Contains(t, out, "27.00 average (final 99/110), 1 passed, 0 pending")
	assert.Contains(t, out, "Habits:   1 / 2 done today, best streak 1")
	assert.NotContains(t, out, "Last backup:")

	_, err = env.cli.backups.Export(ctx, "", "")
	require.NoError(t, err)
	env.term.out.Reset()
	require.NoError(t, env.cli.Run(ctx, []string{"overview"}))
	assert.Contains(t, env.term.String(), "Last backup:")
}
