package backup

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iudanet/lifedash/internal/models"
	"github.com/iudanet/lifedash/internal/store"
	"github.com/iudanet/lifedash/internal/validation"
)

// Patch is an imported document. Every field is optional: a present field
// replaces the matching collection, an absent (or null) one leaves it alone.
type Patch struct {
	Exams        *[]models.Exam        `json:"exams"`
	Projects     *[]models.Project     `json:"projects"`
	Habits       *[]models.Habit       `json:"habits"`
	Goals        *[]models.Goal        `json:"goals"`
	Transactions *[]models.Transaction `json:"transactions"`
	Budget       *decimal.Decimal      `json:"budget"`
}

// Parse decodes and validates an import document. Unknown fields are ignored.
func Parse(data []byte) (Patch, error) {
	var p Patch

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return p, fmt.Errorf("%w: expected a JSON object", ErrMalformed)
	}
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return Patch{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if err := p.validate(); err != nil {
		return Patch{}, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	return p, nil
}

// Slots lists the slots present in the patch.
func (p Patch) Slots() []store.Slot {
	var slots []store.Slot
	if p.Exams != nil {
		slots = append(slots, store.SlotExams)
	}
	if p.Projects != nil {
		slots = append(slots, store.SlotProjects)
	}
	if p.Habits != nil {
		slots = append(slots, store.SlotHabits)
	}
	if p.Goals != nil {
		slots = append(slots, store.SlotGoals)
	}
	if p.Transactions != nil {
		slots = append(slots, store.SlotTransactions)
	}
	if p.Budget != nil {
		slots = append(slots, store.SlotBudget)
	}
	return slots
}

// Apply returns state with every present collection replaced.
// Goal progress is clamped to [0, target] and duplicate habit days dropped.
func (p Patch) Apply(state models.State) models.State {
	next := state.Clone()
	if p.Exams != nil {
		next.Exams = *p.Exams
	}
	if p.Projects != nil {
		next.Projects = *p.Projects
	}
	if p.Habits != nil {
		habits := make([]models.Habit, len(*p.Habits))
		for i, h := range *p.Habits {
			h.CompletedDates = uniqueDates(h.CompletedDates)
			habits[i] = h
		}
		next.Habits = habits
	}
	if p.Goals != nil {
		goals := make([]models.Goal, len(*p.Goals))
		for i, g := range *p.Goals {
			goals[i] = g.WithProgress(g.Current)
		}
		next.Goals = goals
	}
	if p.Transactions != nil {
		next.Transactions = *p.Transactions
	}
	if p.Budget != nil {
		next.Budget = *p.Budget
	}
	return next.Clone()
}

func (p Patch) validate() error {
	if p.Exams != nil {
		if err := uniqueIDs("exams", *p.Exams); err != nil {
			return err
		}
		for _, e := range *p.Exams {
			if !e.Status.Valid() {
				return fmt.Errorf("exam %s: invalid status %q", e.ID, e.Status)
			}
			if err := validation.ValidateCFU(e.CFU); err != nil {
				return fmt.Errorf("exam %s: %w", e.ID, err)
			}
			if e.Grade != nil {
				if err := validation.ValidateGrade(*e.Grade); err != nil {
					return fmt.Errorf("exam %s: %w", e.ID, err)
				}
			}
		}
	}
	if p.Projects != nil {
		if err := uniqueIDs("projects", *p.Projects); err != nil {
			return err
		}
		for _, pr := range *p.Projects {
			if !pr.Status.Valid() {
				return fmt.Errorf("project %s: invalid status %q", pr.ID, pr.Status)
			}
			if err := uniqueIDs("project "+pr.ID+" tasks", pr.Tasks); err != nil {
				return err
			}
		}
	}
	if p.Habits != nil {
		if err := uniqueIDs("habits", *p.Habits); err != nil {
			return err
		}
	}
	if p.Goals != nil {
		if err := uniqueIDs("goals", *p.Goals); err != nil {
			return err
		}
		for _, g := range *p.Goals {
			if g.Target < 0 {
				return fmt.Errorf("goal %s: negative target %v", g.ID, g.Target)
			}
		}
	}
	if p.Transactions != nil {
		if err := uniqueIDs("transactions", *p.Transactions); err != nil {
			return err
		}
		for _, t := range *p.Transactions {
			if !t.Type.Valid() {
				return fmt.Errorf("transaction %s: invalid type %q", t.ID, t.Type)
			}
			if t.Amount.IsNegative() {
				return fmt.Errorf("transaction %s: negative amount %s", t.ID, t.Amount)
			}
		}
	}
	if p.Budget != nil && p.Budget.IsNegative() {
		return fmt.Errorf("negative budget %s", p.Budget)
	}
	return nil
}

type identified interface {
	GetID() string
}

// uniqueIDs checks that every item has a non-empty id not shared with another item.
func uniqueIDs[T identified](what string, items []T) error {
	seen := make(map[string]struct{}, len(items))
	for i, it := range items {
		id := it.GetID()
		if id == "" {
			return fmt.Errorf("%s[%d]: missing id", what, i)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%s: duplicate id %q", what, id)
		}
		seen[id] = struct{}{}
	}
	return nil
}

func uniqueDates(dates []models.Date) []models.Date {
	if dates == nil {
		return []models.Date{}
	}
	seen := make(map[models.Date]struct{}, len(dates))
	out := make([]models.Date, 0, len(dates))
	for _, d := range dates {
		if _, dup := seen[d]; dup {
			continue
		}
		seen[d] = struct{}{}
		out = append(out, d)
	}
	return out
}
