package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/lifedash/internal/dashboard"
	"github.com/iudanet/lifedash/internal/models"
	"github.com/iudanet/lifedash/internal/stats"
)

var projectTmpl = mustTemplate("project", projectTemplate)

func (c *Cli) runProject(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "list")
	switch sub {
	case "list":
		filter := ""
		if len(rest) > 0 {
			filter = rest[0]
		}
		return c.runProjectList(filter)
	case "add":
		return c.runProjectAdd(ctx)
	case "edit":
		if len(rest) == 0 {
			return usageError("project edit <id>")
		}
		return c.runProjectEdit(ctx, rest[0])
	case "show":
		if len(rest) == 0 {
			return usageError("project show <id>")
		}
		return c.runProjectShow(rest[0])
	case "delete":
		if len(rest) == 0 {
			return usageError("project delete <id>")
		}
		return c.confirmDelete("project", func() error {
			return c.dash.DeleteProject(ctx, rest[0])
		})
	default:
		return fmt.Errorf("%w: project %s", ErrUnknownCommand, sub)
	}
}

// projectFilter maps the list argument to a status; "all" and "" list everything.
func projectFilter(filter string) (models.ProjectStatus, error) {
	if filter == "" || filter == "all" {
		return "", nil
	}
	status := models.ProjectStatus(filter)
	if !status.Valid() {
		return "", fmt.Errorf("unknown filter: %s. Use: all, active, paused or completed", filter)
	}
	return status, nil
}

func (c *Cli) runProjectList(filter string) error {
	status, err := projectFilter(filter)
	if err != nil {
		return err
	}

	counts := stats.ProjectCounts(c.dash.Projects(""))
	c.io.Println("=== Projects ===")
	c.io.Printf("all: %d  active: %d  paused: %d  completed: %d\n",
		counts.All, counts.Active, counts.Paused, counts.Completed)
	c.io.Println()

	projects := c.dash.Projects(status)
	if len(projects) == 0 {
		c.io.Println("No projects found.")
		c.io.Println()
		c.io.Println("Use 'lifedash project add' to create a project.")
		return nil
	}

	for _, p := range projects {
		done := 0
		for _, t := range p.Tasks {
			if t.Completed {
				done++
			}
		}
		progress := stats.ProjectProgress(p.Tasks)
		c.io.Printf("%s  %s [%s]\n", p.ID, p.Name, p.Status)
		c.io.Printf("    %s %d%%  %d/%d tasks\n", progressBar(progress, 20), progress, done, len(p.Tasks))
	}
	return nil
}

func (c *Cli) runProjectShow(id string) error {
	p, err := c.dash.Project(id)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}
	return c.render(projectTmpl, struct {
		Project  models.Project
		Progress int
	}{Project: p, Progress: stats.ProjectProgress(p.Tasks)})
}

func (c *Cli) runProjectAdd(ctx context.Context) error {
	c.io.Println("=== Add Project ===")
	c.io.Println()

	in, err := c.readProject(models.Project{Status: models.ProjectActive})
	if err != nil {
		return err
	}
	p, err := c.dash.AddProject(ctx, in)
	if err != nil {
		return fmt.Errorf("failed to add project: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Project added successfully!")
	c.io.Printf("ID: %s\n", p.ID)
	return nil
}

func (c *Cli) runProjectEdit(ctx context.Context, id string) error {
	current, err := c.dash.Project(id)
	if err != nil {
		return fmt.Errorf("failed to get project: %w", err)
	}

	c.io.Println("=== Edit Project ===")
	c.io.Println()

	in, err := c.readProject(current)
	if err != nil {
		return err
	}
	if _, err := c.dash.UpdateProject(ctx, id, in); err != nil {
		return fmt.Errorf("failed to update project: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Project updated successfully!")
	return nil
}

func (c *Cli) readProject(def models.Project) (dashboard.ProjectInput, error) {
	var in dashboard.ProjectInput
	var err error

	if in.Name, err = c.ask("Name", def.Name); err != nil {
		return in, err
	}
	description, err := c.ask("Description (- for none)", def.Description)
	if err != nil {
		return in, err
	}
	in.Description = clearable(description)

	status, err := c.ask("Status (active/paused/completed)", string(def.Status))
	if err != nil {
		return in, err
	}
	in.Status = models.ProjectStatus(choice(status))
	return in, nil
}

func (c *Cli) runTask(ctx context.Context, args []string) error {
	sub, rest := subcommand(args, "")
	switch sub {
	case "add":
		if len(rest) == 0 {
			return usageError("task add <project-id> [text]")
		}
		return c.runTaskAdd(ctx, rest[0], rest[1:])
	case "toggle":
		if len(rest) < 2 {
			return usageError("task toggle <project-id> <task-id>")
		}
		task, err := c.dash.ToggleTask(ctx, rest[0], rest[1])
		if err != nil {
			return fmt.Errorf("failed to toggle task: %w", err)
		}
		if task.Completed {
			c.io.Printf("✓ Task %q completed.\n", task.Text)
		} else {
			c.io.Printf("Task %q reopened.\n", task.Text)
		}
		return nil
	case "delete":
		if len(rest) < 2 {
			return usageError("task delete <project-id> <task-id>")
		}
		if err := c.dash.DeleteTask(ctx, rest[0], rest[1]); err != nil {
			return fmt.Errorf("failed to delete task: %w", err)
		}
		c.io.Println("Task deleted.")
		return nil
	default:
		return fmt.Errorf("%w: task %s", ErrUnknownCommand, sub)
	}
}

// runTaskAdd takes the text from the remaining arguments or asks for it.
func (c *Cli) runTaskAdd(ctx context.Context, projectID string, words []string) error {
	text := joinWords(words)
	if text == "" {
		var err error
		if text, err = c.ask("Task", ""); err != nil {
			return err
		}
	}

	task, err := c.dash.AddTask(ctx, projectID, text)
	if err != nil {
		return fmt.Errorf("failed to add task: %w", err)
	}
	c.io.Println("✓ Task added successfully!")
	c.io.Printf("ID: %s\n", task.ID)
	return nil
}
