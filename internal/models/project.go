package models

// ProjectStatus статус проекта
type ProjectStatus string

const (
	ProjectActive    ProjectStatus = "active"
	ProjectPaused    ProjectStatus = "paused"
	ProjectCompleted ProjectStatus = "completed"
)

// ProjectStatuses lists statuses in display order.
var ProjectStatuses = []ProjectStatus{ProjectActive, ProjectPaused, ProjectCompleted}

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectActive, ProjectPaused, ProjectCompleted:
		return true
	}
	return false
}

// Project представляет проект со списком задач.
// Задачи принадлежат только этому проекту и хранятся внутри него.
type Project struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Status      ProjectStatus `json:"status"`
	Tasks       []Task        `json:"tasks"`
}

// GetID returns the project id.
func (p Project) GetID() string { return p.ID }

// Clone returns a copy of the project that shares no task storage with p.
func (p Project) Clone() Project {
	c := p
	if p.Tasks != nil {
		c.Tasks = make([]Task, len(p.Tasks))
		copy(c.Tasks, p.Tasks)
	}
	return c
}

// Task задача внутри проекта
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// GetID returns the task id.
func (t Task) GetID() string { return t.ID }
