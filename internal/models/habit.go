package models

// Habit представляет привычку и множество дней, когда она была выполнена.
type Habit struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	CompletedDates []Date `json:"completedDates"`
}

// GetID returns the habit id.
func (h Habit) GetID() string { return h.ID }

// IsCompletedOn reports whether the habit is marked on day.
func (h Habit) IsCompletedOn(day Date) bool {
	for _, d := range h.CompletedDates {
		if d == day {
			return true
		}
	}
	return false
}

// Clone returns a copy of the habit with its own date slice.
func (h Habit) Clone() Habit {
	c := h
	if h.CompletedDates != nil {
		c.CompletedDates = make([]Date, len(h.CompletedDates))
		copy(c.CompletedDates, h.CompletedDates)
	}
	return c
}
