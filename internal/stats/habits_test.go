package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/lifedash/internal/models"
)

func TestStreak(t *testing.T) {
	tests := []struct {
		name  string
		dates []models.Date
		today models.Date
		want  int
	}{
		{
			name:  "run ending today stops at gap",
			dates: []models.Date{"2024-06-10", "2024-06-09", "2024-06-08", "2024-06-06"},
			today: "2024-06-10",
			want:  3,
		},
		{
			name:  "run ending yesterday",
			dates: []models.Date{"2024-06-09", "2024-06-08"},
			today: "2024-06-10",
			want:  2,
		},
		{
			name:  "order does not matter",
			dates: []models.Date{"2024-06-08", "2024-06-10", "2024-06-09"},
			today: "2024-06-10",
			want:  3,
		},
		{
			name:  "neither today nor yesterday",
			dates: []models.Date{"2024-06-08", "2024-06-07"},
			today: "2024-06-10",
			want:  0,
		},
		{
			name:  "across month boundary",
			dates: []models.Date{"2024-07-01", "2024-06-30", "2024-06-29"},
			today: "2024-07-01",
			want:  3,
		},
		{
			name:  "empty",
			today: "2024-06-10",
			want:  0,
		},
		{
			name:  "invalid today",
			dates: []models.Date{""},
			today: "",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Streak(tt.dates, tt.today))
		})
	}
}

func TestWeekDates(t *testing.T) {
	// 2024-06-12 среда
	week := WeekDates("2024-06-12")
	assert.Equal(t, []models.Date{
		"2024-06-10", "2024-06-11", "2024-06-12", "2024-06-13",
		"2024-06-14", "2024-06-15", "2024-06-16",
	}, week)

	// воскресенье относится к неделе, начавшейся в понедельник
	assert.Equal(t, models.Date("2024-06-10"), WeekDates("2024-06-16")[0])
	assert.Equal(t, models.Date("2024-06-10"), WeekDates("2024-06-10")[0])

	assert.Nil(t, WeekDates("bad"))
}
