package dashboard

import (
	"context"
	"fmt"

	"github.com/iudanet/lifedash/internal/models"
	"github.com/iudanet/lifedash/internal/store"
	"github.com/iudanet/lifedash/internal/validation"
)

// ProjectInput данные формы проекта
type ProjectInput struct {
	Name        string
	Description string
	Status      models.ProjectStatus
}

func (in ProjectInput) validate() (ProjectInput, error) {
	name, err := validation.RequireText("name", in.Name)
	if err != nil {
		return in, err
	}
	in.Name = name
	if in.Status == "" {
		in.Status = models.ProjectActive
	}
	if !in.Status.Valid() {
		return in, fmt.Errorf("project status %q: %w", in.Status, ErrInvalidInput)
	}
	return in, nil
}

// Projects returns projects with the given status, or all when status is empty.
func (s *service) Projects(status models.ProjectStatus) []models.Project {
	return FilterProjects(s.snapshot().Projects, status)
}

// Project returns a single project with its tasks.
func (s *service) Project(id string) (models.Project, error) {
	p, ok := findItem(s.snapshot().Projects, id)
	if !ok {
		return models.Project{}, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	return p.Clone(), nil
}

// AddProject creates a project without tasks.
func (s *service) AddProject(ctx context.Context, in ProjectInput) (models.Project, error) {
	in, err := in.validate()
	if err != nil {
		return models.Project{}, err
	}

	project := models.Project{
		ID:          s.ids.NewID(),
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		Tasks:       []models.Task{},
	}
	err = s.mutate(ctx, store.SlotProjects, func(st models.State) (models.State, error) {
		st.Projects = appendItem(st.Projects, project)
		return st, nil
	})
	if err != nil {
		return models.Project{}, err
	}
	return project.Clone(), nil
}

// UpdateProject changes name, description and status; tasks are kept.
func (s *service) UpdateProject(ctx context.Context, id string, in ProjectInput) (models.Project, error) {
	in, err := in.validate()
	if err != nil {
		return models.Project{}, err
	}

	var updated models.Project
	err = s.mutate(ctx, store.SlotProjects, func(st models.State) (models.State, error) {
		projects, project, err := updateItem(st.Projects, id, func(p models.Project) models.Project {
			p.Name = in.Name
			p.Description = in.Description
			p.Status = in.Status
			return p
		})
		if err != nil {
			return st, fmt.Errorf("project %w", err)
		}
		st.Projects, updated = projects, project
		return st, nil
	})
	return updated.Clone(), err
}

// DeleteProject removes the project together with its tasks.
func (s *service) DeleteProject(ctx context.Context, id string) error {
	return s.mutate(ctx, store.SlotProjects, func(st models.State) (models.State, error) {
		var err error
		if st.Projects, err = removeItem(st.Projects, id); err != nil {
			return st, fmt.Errorf("project %w", err)
		}
		return st, nil
	})
}

// updateTasks rewrites the task list of one project.
func (s *service) updateTasks(ctx context.Context, projectID string, fn func([]models.Task) ([]models.Task, error)) error {
	return s.mutate(ctx, store.SlotProjects, func(st models.State) (models.State, error) {
		var fnErr error
		projects, _, err := updateItem(st.Projects, projectID, func(p models.Project) models.Project {
			tasks, err := fn(p.Tasks)
			if err != nil {
				fnErr = err
				return p
			}
			p.Tasks = tasks
			return p
		})
		if err != nil {
			return st, fmt.Errorf("project %w", err)
		}
		if fnErr != nil {
			return st, fnErr
		}
		st.Projects = projects
		return st, nil
	})
}

// AddTask appends a task to the project.
func (s *service) AddTask(ctx context.Context, projectID, text string) (models.Task, error) {
	text, err := validation.RequireText("task", text)
	if err != nil {
		return models.Task{}, err
	}

	task := models.Task{ID: s.ids.NewID(), Text: text}
	err = s.updateTasks(ctx, projectID, func(tasks []models.Task) ([]models.Task, error) {
		return appendItem(tasks, task), nil
	})
	if err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// ToggleTask flips the completed flag of a task.
func (s *service) ToggleTask(ctx context.Context, projectID, taskID string) (models.Task, error) {
	var toggled models.Task
	err := s.updateTasks(ctx, projectID, func(tasks []models.Task) ([]models.Task, error) {
		out, t, err := updateItem(tasks, taskID, func(t models.Task) models.Task {
			t.Completed = !t.Completed
			return t
		})
		if err != nil {
			return nil, fmt.Errorf("task %w", err)
		}
		toggled = t
		return out, nil
	})
	return toggled, err
}

// DeleteTask removes a task from the project.
func (s *service) DeleteTask(ctx context.Context, projectID, taskID string) error {
	return s.updateTasks(ctx, projectID, func(tasks []models.Task) ([]models.Task, error) {
		out, err := removeItem(tasks, taskID)
		if err != nil {
			return nil, fmt.Errorf("task %w", err)
		}
		return out, nil
	})
}
