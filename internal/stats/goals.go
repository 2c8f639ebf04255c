package stats

import (
	"fmt"
	"math"
	"time"

	"github.com/iudanet/lifedash/internal/models"
)

// UrgentDays срок (в днях), начиная с которого дедлайн считается срочным
const UrgentDays = 7

// GoalStatus прогресс цели
type GoalStatus struct {
	Percent   int
	Completed bool
}

// GoalProgress returns round(100*current/target) and whether the goal is reached.
// A goal with a non-positive target reports 0%.
func GoalProgress(g models.Goal) GoalStatus {
	if g.Target <= 0 {
		return GoalStatus{}
	}
	p := int(math.Round(100 * g.Current / g.Target))
	return GoalStatus{Percent: p, Completed: p >= 100}
}

// DaysUntil returns whole calendar days from the day of now to date.
// The result is negative for past dates and 0 for today.
func DaysUntil(date models.Date, now time.Time) (int, error) {
	target, err := date.Time(time.UTC)
	if err != nil {
		return 0, fmt.Errorf("failed to parse date: %w", err)
	}
	today, err := models.NewDate(now).Time(time.UTC)
	if err != nil {
		return 0, fmt.Errorf("failed to parse today: %w", err)
	}
	return int(math.Round(target.Sub(today).Hours() / 24)), nil
}

// IsUrgent reports whether a deadline days away should be highlighted.
func IsUrgent(days int) bool {
	return days <= UrgentDays
}
