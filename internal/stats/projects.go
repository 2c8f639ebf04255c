package stats

import (
	"math"

	"github.com/iudanet/lifedash/internal/models"
)

// StatusCounts число проектов по статусам
type StatusCounts struct {
	All       int
	Active    int
	Paused    int
	Completed int
}

// Of returns the count for a status filter; "all" and "" return All.
func (c StatusCounts) Of(status models.ProjectStatus) int {
	switch status {
	case models.ProjectActive:
		return c.Active
	case models.ProjectPaused:
		return c.Paused
	case models.ProjectCompleted:
		return c.Completed
	default:
		return c.All
	}
}

// ProjectProgress returns the percentage of completed tasks, 0 for no tasks.
func ProjectProgress(tasks []models.Task) int {
	if len(tasks) == 0 {
		return 0
	}
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	return int(math.Round(100 * float64(done) / float64(len(tasks))))
}

// ProjectCounts counts projects per status.
func ProjectCounts(projects []models.Project) StatusCounts {
	c := StatusCounts{All: len(projects)}
	for _, p := range projects {
		switch p.Status {
		case models.ProjectActive:
			c.Active++
		case models.ProjectPaused:
			c.Paused++
		case models.ProjectCompleted:
			c.Completed++
		}
	}
	return c
}
