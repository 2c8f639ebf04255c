// Package store persists dashboard collections as JSON values in named slots.
//
// Every collection lives in its own slot keyed by a namespaced string
// ("life-dashboard-exams", ...). A missing or unparseable slot reads back as
// the supplied default; the malformed value is logged and otherwise ignored.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/iudanet/lifedash/internal/models"
	"github.com/iudanet/lifedash/internal/storage"
)

// KeyPrefix namespaces every slot key.
const KeyPrefix = "life-dashboard-"

// Slot names one persisted collection or scalar.
type Slot string

const (
	SlotExams        Slot = "exams"
	SlotProjects     Slot = "projects"
	SlotHabits       Slot = "habits"
	SlotGoals        Slot = "goals"
	SlotTransactions Slot = "transactions"
	SlotBudget       Slot = "budget"
)

// Slots lists every slot of the application state.
var Slots = []Slot{SlotExams, SlotProjects, SlotHabits, SlotGoals, SlotTransactions, SlotBudget}

// Key returns the namespaced storage key of the slot.
func (s Slot) Key() string {
	return KeyPrefix + string(s)
}

// Store reads and writes typed values through a raw slot storage.
type Store struct {
	slots  storage.SlotStorage
	logger *slog.Logger
}

// New creates a Store over the given backend.
func New(slots storage.SlotStorage, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{slots: slots, logger: logger}
}

// Read returns the value stored under key, or def when the slot is absent
// or cannot be decoded into T. Only backend failures are returned as errors.
func Read[T any](ctx context.Context, s *Store, key string, def T) (T, error) {
	data, err := s.slots.GetSlot(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrSlotNotFound) {
			return def, nil
		}
		return def, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var value T
	if err := json.Unmarshal(data, &value); err != nil {
		// Поврежденное значение трактуем как отсутствующее
		s.logger.WarnContext(ctx, "malformed stored value, using default", "key", key, "error", err)
		return def, nil
	}

	return value, nil
}

// Write serializes value and saves it under key.
func Write[T any](ctx context.Context, s *Store, key string, value T) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	if err := s.slots.PutSlot(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}

// Load reads every slot into a fresh snapshot. Absent slots start empty
// and the budget defaults to 0 (disabled).
func (s *Store) Load(ctx context.Context) (models.State, error) {
	var (
		state models.State
		err   error
	)

	if state.Exams, err = Read(ctx, s, SlotExams.Key(), []models.Exam{}); err != nil {
		return models.State{}, err
	}
	if state.Projects, err = Read(ctx, s, SlotProjects.Key(), []models.Project{}); err != nil {
		return models.State{}, err
	}
	if state.Habits, err = Read(ctx, s, SlotHabits.Key(), []models.Habit{}); err != nil {
		return models.State{}, err
	}
	if state.Goals, err = Read(ctx, s, SlotGoals.Key(), []models.Goal{}); err != nil {
		return models.State{}, err
	}
	if state.Transactions, err = Read(ctx, s, SlotTransactions.Key(), []models.Transaction{}); err != nil {
		return models.State{}, err
	}
	if state.Budget, err = Read(ctx, s, SlotBudget.Key(), decimal.Zero); err != nil {
		return models.State{}, err
	}

	return normalize(state), nil
}

// SaveSlot writes the single slot of state named by slot.
func (s *Store) SaveSlot(ctx context.Context, slot Slot, state models.State) error {
	state = normalize(state)

	switch slot {
	case SlotExams:
		return Write(ctx, s, slot.Key(), state.Exams)
	case SlotProjects:
		return Write(ctx, s, slot.Key(), state.Projects)
	case SlotHabits:
		return Write(ctx, s, slot.Key(), state.Habits)
	case SlotGoals:
		return Write(ctx, s, slot.Key(), state.Goals)
	case SlotTransactions:
		return Write(ctx, s, slot.Key(), state.Transactions)
	case SlotBudget:
		return Write(ctx, s, slot.Key(), state.Budget)
	default:
		return fmt.Errorf("unknown slot %q", slot)
	}
}

// Save writes every slot of state.
func (s *Store) Save(ctx context.Context, state models.State) error {
	for _, slot := range Slots {
		if err := s.SaveSlot(ctx, slot, state); err != nil {
			return err
		}
	}
	return nil
}

// Persisted returns the slots that have a stored value, in Slots order.
// Keys outside the lifedash namespace are ignored.
func (s *Store) Persisted(ctx context.Context) ([]Slot, error) {
	keys, err := s.slots.ListSlots(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list slots: %w", err)
	}

	stored := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		stored[k] = struct{}{}
	}

	var out []Slot
	for _, slot := range Slots {
		if _, ok := stored[slot.Key()]; ok {
			out = append(out, slot)
		}
	}
	return out, nil
}

// normalize replaces nil collections with empty ones so that they encode as [] not null.
func normalize(state models.State) models.State {
	state = state.Clone()
	if state.Exams == nil {
		state.Exams = []models.Exam{}
	}
	if state.Projects == nil {
		state.Projects = []models.Project{}
	}
	for i := range state.Projects {
		if state.Projects[i].Tasks == nil {
			state.Projects[i].Tasks = []models.Task{}
		}
	}
	if state.Habits == nil {
		state.Habits = []models.Habit{}
	}
	for i := range state.Habits {
		if state.Habits[i].CompletedDates == nil {
			state.Habits[i].CompletedDates = []models.Date{}
		}
	}
	if state.Goals == nil {
		state.Goals = []models.Goal{}
	}
	if state.Transactions == nil {
		state.Transactions = []models.Transaction{}
	}
	return state
}
