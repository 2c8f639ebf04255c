package dashboard

import (
	"context"
	"fmt"

	"github.com/iudanet/lifedash/internal/models"
	"github.com/iudanet/lifedash/internal/store"
	"github.com/iudanet/lifedash/internal/validation"
)

// DefaultGoalTarget цель по умолчанию в форме
const DefaultGoalTarget = 100

// GoalInput данные формы цели
type GoalInput struct {
	Name     string
	Unit     string
	Deadline models.Date
	Target   float64
	Current  float64
}

// Goals returns the goals in insertion order.
func (s *service) Goals() []models.Goal {
	return s.State().Goals
}

// AddGoal creates a goal. Current progress is clamped to [0, target].
func (s *service) AddGoal(ctx context.Context, in GoalInput) (models.Goal, error) {
	name, err := validation.RequireText("name", in.Name)
	if err != nil {
		return models.Goal{}, err
	}
	if in.Target < 0 {
		return models.Goal{}, fmt.Errorf("goal target %v: %w", in.Target, validation.ErrNegative)
	}
	if !in.Deadline.IsZero() && !in.Deadline.Valid() {
		return models.Goal{}, fmt.Errorf("goal deadline %q: %w", in.Deadline, ErrInvalidInput)
	}

	goal := models.Goal{
		ID:       s.ids.NewID(),
		Name:     name,
		Unit:     in.Unit,
		Deadline: in.Deadline,
		Target:   in.Target,
	}.WithProgress(in.Current)

	err = s.mutate(ctx, store.SlotGoals, func(st models.State) (models.State, error) {
		st.Goals = appendItem(st.Goals, goal)
		return st, nil
	})
	if err != nil {
		return models.Goal{}, err
	}
	return goal, nil
}

// SetGoalProgress sets current progress, clamped to [0, target].
func (s *service) SetGoalProgress(ctx context.Context, id string, value float64) (models.Goal, error) {
	return s.updateGoal(ctx, id, func(g models.Goal) models.Goal {
		return g.WithProgress(value)
	})
}

// AdjustGoalProgress adds delta to current progress, clamped to [0, target].
func (s *service) AdjustGoalProgress(ctx context.Context, id string, delta float64) (models.Goal, error) {
	return s.updateGoal(ctx, id, func(g models.Goal) models.Goal {
		return g.WithProgress(g.Current + delta)
	})
}

func (s *service) updateGoal(ctx context.Context, id string, fn func(models.Goal) models.Goal) (models.Goal, error) {
	var updated models.Goal
	err := s.mutate(ctx, store.SlotGoals, func(st models.State) (models.State, error) {
		goals, g, err := updateItem(st.Goals, id, fn)
		if err != nil {
			return st, fmt.Errorf("goal %w", err)
		}
		st.Goals, updated = goals, g
		return st, nil
	})
	return updated, err
}

// DeleteGoal removes the goal.
func (s *service) DeleteGoal(ctx context.Context, id string) error {
	return s.mutate(ctx, store.SlotGoals, func(st models.State) (models.State, error) {
		var err error
		if st.Goals, err = removeItem(st.Goals, id); err != nil {
			return st, fmt.Errorf("goal %w", err)
		}
		return st, nil
	})
}
