package models

import "github.com/shopspring/decimal"

// State is an immutable snapshot of every collection of the dashboard.
// Mutations never modify a State in place; they build a new one.
type State struct {
	Budget       decimal.Decimal
	Exams        []Exam
	Projects     []Project
	Habits       []Habit
	Goals        []Goal
	Transactions []Transaction
}

// Clone returns a deep copy of the snapshot. Nil collections stay nil.
func (s State) Clone() State {
	return State{
		Budget:       s.Budget,
		Exams:        cloneEach(s.Exams, Exam.Clone),
		Projects:     cloneEach(s.Projects, Project.Clone),
		Habits:       cloneEach(s.Habits, Habit.Clone),
		Goals:        cloneEach(s.Goals, func(g Goal) Goal { return g }),
		Transactions: cloneEach(s.Transactions, func(t Transaction) Transaction { return t }),
	}
}

func cloneEach[T any](src []T, clone func(T) T) []T {
	if src == nil {
		return nil
	}
	out := make([]T, len(src))
	for i, v := range src {
		out[i] = clone(v)
	}
	return out
}
