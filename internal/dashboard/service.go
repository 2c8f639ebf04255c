// Package dashboard holds the application state and the section operations
// (study, projects, habits, goals, finance) that mutate it.
//
// Every mutation builds a new models.State from the current one, persists the
// single changed slot through the store and only then replaces the in-memory
// snapshot. A failed write leaves the snapshot untouched.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iudanet/lifedash/internal/idgen"
	"github.com/iudanet/lifedash/internal/models"
	"github.com/iudanet/lifedash/internal/store"
)

//go:generate moq -out service_mock.go . Service

// Service определяет операции над разделами панели
type Service interface {
	Load(ctx context.Context) error
	State() models.State
	Today() models.Date
	Now() time.Time
	Replace(ctx context.Context, next models.State, slots []store.Slot) error
	PersistedSlots(ctx context.Context) ([]store.Slot, error)

	Exams() []models.Exam
	AddExam(ctx context.Context, in ExamInput) (models.Exam, error)
	UpdateExam(ctx context.Context, id string, in ExamInput) (models.Exam, error)
	DeleteExam(ctx context.Context, id string) error

	Projects(status models.ProjectStatus) []models.Project
	Project(id string) (models.Project, error)
	AddProject(ctx context.Context, in ProjectInput) (models.Project, error)
	UpdateProject(ctx context.Context, id string, in ProjectInput) (models.Project, error)
	DeleteProject(ctx context.Context, id string) error
	AddTask(ctx context.Context, projectID, text string) (models.Task, error)
	ToggleTask(ctx context.Context, projectID, taskID string) (models.Task, error)
	DeleteTask(ctx context.Context, projectID, taskID string) error

	Habits() []models.Habit
	AddHabit(ctx context.Context, name string) (models.Habit, error)
	ToggleHabit(ctx context.Context, id string, day models.Date) (bool, error)
	DeleteHabit(ctx context.Context, id string) error

	Goals() []models.Goal
	AddGoal(ctx context.Context, in GoalInput) (models.Goal, error)
	SetGoalProgress(ctx context.Context, id string, value float64) (models.Goal, error)
	AdjustGoalProgress(ctx context.Context, id string, delta float64) (models.Goal, error)
	DeleteGoal(ctx context.Context, id string) error

	Transactions(typ models.TransactionType) []models.Transaction
	AddTransaction(ctx context.Context, in TransactionInput) (models.Transaction, error)
	DeleteTransaction(ctx context.Context, id string) error
	Budget() decimal.Decimal
	SetBudget(ctx context.Context, amount decimal.Decimal) error
}

// Option настраивает сервис
type Option func(*service)

// WithClock overrides the time source used for "today".
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// WithIDGenerator overrides the id generator (UUIDs by default).
func WithIDGenerator(ids idgen.Generator) Option {
	return func(s *service) {
		s.ids = ids
	}
}

// service is the single owner of the mutable dashboard state.
type service struct {
	store  *store.Store
	ids    idgen.Generator
	now    func() time.Time
	logger *slog.Logger
	state  models.State
	mu     sync.RWMutex
}

// NewService creates a dashboard service over st. Call Load to read the
// persisted state; until then the service starts empty.
func NewService(st *store.Store, logger *slog.Logger, opts ...Option) Service {
	if logger == nil {
		logger = slog.Default()
	}
	s := &service{
		store:  st,
		ids:    idgen.NewUUID(),
		now:    time.Now,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load replaces the in-memory snapshot with the persisted one.
func (s *service) Load(ctx context.Context) error {
	state, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load state: %w", err)
	}

	s.mu.Lock()
	s.state = state
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "state loaded",
		"exams", len(state.Exams),
		"projects", len(state.Projects),
		"habits", len(state.Habits),
		"goals", len(state.Goals),
		"transactions", len(state.Transactions),
	)
	return nil
}

// State returns a copy of the current snapshot.
func (s *service) State() models.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Now returns the current time from the configured clock.
func (s *service) Now() time.Time {
	return s.now()
}

// Today returns the current calendar date in local time.
func (s *service) Today() models.Date {
	return models.NewDate(s.now())
}

// Replace persists the listed slots of next and makes next the current snapshot.
// Slots not listed keep their current value.
func (s *service) Replace(ctx context.Context, next models.State, slots []store.Slot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	merged := s.state.Clone()
	for _, slot := range slots {
		switch slot {
		case store.SlotExams:
			merged.Exams = next.Exams
		case store.SlotProjects:
			merged.Projects = next.Projects
		case store.SlotHabits:
			merged.Habits = next.Habits
		case store.SlotGoals:
			merged.Goals = next.Goals
		case store.SlotTransactions:
			merged.Transactions = next.Transactions
		case store.SlotBudget:
			merged.Budget = next.Budget
		default:
			return fmt.Errorf("unknown slot %q", slot)
		}
	}
	merged = merged.Clone()

	for _, slot := range slots {
		if err := s.store.SaveSlot(ctx, slot, merged); err != nil {
			return fmt.Errorf("failed to save %s: %w", slot, err)
		}
	}

	s.state = merged
	s.logger.DebugContext(ctx, "state replaced", "slots", slots)
	return nil
}

// PersistedSlots reports which slots have been written to storage at least once.
func (s *service) PersistedSlots(ctx context.Context) ([]store.Slot, error) {
	return s.store.Persisted(ctx)
}

// mutate applies fn to a copy of the current snapshot and commits the result.
// Caller must not hold s.mu.
func (s *service) mutate(ctx context.Context, slot store.Slot, fn func(models.State) (models.State, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := fn(s.state.Clone())
	if err != nil {
		return err
	}

	if err := s.store.SaveSlot(ctx, slot, next); err != nil {
		return fmt.Errorf("failed to save %s: %w", slot, err)
	}

	s.state = next
	s.logger.DebugContext(ctx, "slot saved", "slot", slot)
	return nil
}

// snapshot returns the current state for read-only use under a read lock.
func (s *service) snapshot() models.State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}
