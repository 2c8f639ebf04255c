// Package cli implements the lifedash commands on top of the dashboard
// service. All user-facing output goes through iocli.IO.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/lifedash/internal/backup"
	"github.com/iudanet/lifedash/internal/dashboard"
	"github.com/iudanet/lifedash/internal/iocli"
)

// ErrUnknownCommand возвращается для неизвестной команды или подкоманды
var ErrUnknownCommand = errors.New("unknown command")

// Backups экспорт и импорт резервных копий
type Backups interface {
	Export(ctx context.Context, path, passphrase string) (backup.Result, error)
	Import(ctx context.Context, path string, passphrase backup.PassphraseFunc) (backup.Result, error)
	LastExport(ctx context.Context) (time.Time, error)
	LastImport(ctx context.Context) (time.Time, error)
}

// Cli dispatches commands. passphrase is the backup passphrase from the
// environment; when empty it is asked interactively.
type Cli struct {
	io         iocli.IO
	dash       dashboard.Service
	backups    Backups
	passphrase string
	tick       time.Duration
}

// New creates a Cli.
func New(io iocli.IO, dash dashboard.Service, backups Backups, passphrase string) *Cli {
	return &Cli{
		io:         io,
		dash:       dash,
		backups:    backups,
		passphrase: passphrase,
		tick:       time.Second,
	}
}

// Run executes the command named by args[0].
func (c *Cli) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		c.PrintUsage()
		return fmt.Errorf("missing command")
	}

	command, rest := args[0], args[1:]
	switch command {
	case "overview":
		return c.runOverview(ctx)
	case "exam", "exams":
		return c.runExam(ctx, rest)
	case "project", "projects":
		return c.runProject(ctx, rest)
	case "task":
		return c.runTask(ctx, rest)
	case "habit", "habits":
		return c.runHabit(ctx, rest)
	case "goal", "goals":
		return c.runGoal(ctx, rest)
	case "tx", "transaction", "transactions":
		return c.runTransaction(ctx, rest)
	case "budget":
		return c.runBudget(ctx, rest)
	case "finance":
		return c.runFinance()
	case "export":
		return c.runExport(ctx, rest)
	case "import":
		return c.runImport(ctx, rest)
	case "clock":
		return c.runClock(ctx)
	case "status":
		return c.runStatus(ctx)
	case "help":
		c.PrintUsage()
		return nil
	default:
		c.PrintUsage()
		return fmt.Errorf("%w: %s", ErrUnknownCommand, command)
	}
}

// subcommand splits args into a subcommand (def when absent) and its arguments.
func subcommand(args []string, def string) (string, []string) {
	if len(args) == 0 {
		return def, nil
	}
	return args[0], args[1:]
}

// PrintUsage prints the command reference.
func (c *Cli) PrintUsage() {
	c.io.Println("lifedash - personal productivity dashboard")
	c.io.Println()
	c.io.Println("Usage:")
	c.io.Println("  lifedash [OPTIONS] COMMAND")
	c.io.Println()
	c.io.Println("Commands:")
	c.io.Println("  overview                                  Summary of every section")
	c.io.Println("  exam list|add|edit <id>|delete <id>|stats Exams and grade statistics")
	c.io.Println("  project list [all|active|paused|completed]")
	c.io.Println("  project add|edit <id>|delete <id>|show <id>")
	c.io.Println("  task add <project-id>                     Add a task to a project")
	c.io.Println("  task toggle|delete <project-id> <task-id> Toggle or delete a task")
	c.io.Println("  habit list|add|delete <id>                Habits with a weekly grid")
	c.io.Println("  habit toggle <id> [YYYY-MM-DD]            Mark or unmark a day (default today)")
	c.io.Println("  goal list|add|delete <id>                 Goals and progress")
	c.io.Println("  goal progress <id> <+N|-N|N>              Adjust or set goal progress")
	c.io.Println("  tx list [all|income|expense]|add|delete <id>")
	c.io.Println("  budget show|set <amount>                  Monthly budget (0 disables)")
	c.io.Println("  finance                                   Monthly summary and categories")
	c.io.Println("  export [PATH] [--seal]                    Export a backup file")
	c.io.Println("  import PATH                               Import a backup file")
	c.io.Println("  status                                    Stored sections and backup times")
	c.io.Println("  clock                                     Live clock, Ctrl+C to stop")
	c.io.Println()
}
