package dashboard

import (
	"context"
	"fmt"

	"github.com/iudanet/lifedash/internal/models"
	"github.com/iudanet/lifedash/internal/store"
	"github.com/iudanet/lifedash/internal/validation"
)

// Habits returns the habits in insertion order.
func (s *service) Habits() []models.Habit {
	return s.State().Habits
}

// AddHabit creates a habit with no completed days.
func (s *service) AddHabit(ctx context.Context, name string) (models.Habit, error) {
	name, err := validation.RequireText("name", name)
	if err != nil {
		return models.Habit{}, err
	}

	habit := models.Habit{ID: s.ids.NewID(), Name: name, CompletedDates: []models.Date{}}
	err = s.mutate(ctx, store.SlotHabits, func(st models.State) (models.State, error) {
		st.Habits = appendItem(st.Habits, habit)
		return st, nil
	})
	if err != nil {
		return models.Habit{}, err
	}
	return habit.Clone(), nil
}

// ToggleHabit marks or unmarks the habit on day (today when day is empty)
// and reports whether the day is marked afterwards.
func (s *service) ToggleHabit(ctx context.Context, id string, day models.Date) (bool, error) {
	if day.IsZero() {
		day = s.Today()
	}
	if !day.Valid() {
		return false, fmt.Errorf("habit day %q: %w", day, ErrInvalidInput)
	}

	var marked bool
	err := s.mutate(ctx, store.SlotHabits, func(st models.State) (models.State, error) {
		habits, h, err := updateItem(st.Habits, id, func(h models.Habit) models.Habit {
			return toggleDate(h, day)
		})
		if err != nil {
			return st, fmt.Errorf("habit %w", err)
		}
		st.Habits = habits
		marked = h.IsCompletedOn(day)
		return st, nil
	})
	return marked, err
}

// toggleDate removes day from the habit when present, appends it otherwise.
func toggleDate(h models.Habit, day models.Date) models.Habit {
	if h.IsCompletedOn(day) {
		dates := make([]models.Date, 0, len(h.CompletedDates))
		for _, d := range h.CompletedDates {
			if d != day {
				dates = append(dates, d)
			}
		}
		h.CompletedDates = dates
		return h
	}
	h.CompletedDates = appendItem(h.CompletedDates, day)
	return h
}

// DeleteHabit removes the habit.
func (s *service) DeleteHabit(ctx context.Context, id string) error {
	return s.mutate(ctx, store.SlotHabits, func(st models.State) (models.State, error) {
		var err error
		if st.Habits, err = removeItem(st.Habits, id); err != nil {
			return st, fmt.Errorf("habit %w", err)
		}
		return st, nil
	})
}
