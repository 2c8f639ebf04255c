package stats

import (
	"time"

	"github.com/iudanet/lifedash/internal/models"
)

// HotStreak серия, начиная с которой привычка подсвечивается
const HotStreak = 7

// Streak counts consecutive marked days ending today, or ending yesterday
// when today is not marked yet. The run stops at the first missing day.
func Streak(completed []models.Date, today models.Date) int {
	if len(completed) == 0 || !today.Valid() {
		return 0
	}

	marked := make(map[models.Date]struct{}, len(completed))
	for _, d := range completed {
		marked[d] = struct{}{}
	}

	day := today
	if _, ok := marked[day]; !ok {
		day = today.AddDays(-1)
		if _, ok := marked[day]; !ok {
			return 0
		}
	}

	streak := 0
	for {
		if _, ok := marked[day]; !ok {
			return streak
		}
		streak++
		day = day.AddDays(-1)
	}
}

// WeekDates returns Monday through Sunday of the week containing today.
func WeekDates(today models.Date) []models.Date {
	t, err := today.Time(time.UTC)
	if err != nil {
		return nil
	}

	// time.Weekday: воскресенье = 0, неделя начинается с понедельника
	offset := (int(t.Weekday()) + 6) % 7
	monday := models.NewDate(t.AddDate(0, 0, -offset))

	week := make([]models.Date, 7)
	for i := range week {
		week[i] = monday.AddDays(i)
	}
	return week
}
