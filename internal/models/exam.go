package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// ExamStatus статус экзамена
type ExamStatus string

const (
	ExamPending ExamStatus = "pending" // ExamPending экзамен еще не сдан
	ExamPassed  ExamStatus = "passed"  // ExamPassed экзамен сдан, оценка имеет смысл
)

// Valid reports whether s is a known exam status.
func (s ExamStatus) Valid() bool {
	return s == ExamPending || s == ExamPassed
}

// Exam bounds for credits and grades. A grade of 31 stands for "30 cum laude".
const (
	MinCFU   = 1
	MaxCFU   = 30
	MinGrade = 18
	MaxGrade = 31
)

// Exam представляет академический экзамен.
// CFU используется как вес при расчете средневзвешенной оценки.
type Exam struct {
	Grade  *int       `json:"grade,omitempty"` // Grade оценка 18–31, только для сданных
	ID     string     `json:"id"`
	Name   string     `json:"name"`
	Date   Date       `json:"date,omitempty"` // Date дата экзамена (опционально)
	Status ExamStatus `json:"status"`
	CFU    int        `json:"cfu"`
}

// GetID returns the exam id.
func (e Exam) GetID() string { return e.ID }

// HasGrade reports whether a grade is recorded and counts toward the average.
func (e Exam) HasGrade() bool {
	return e.Status == ExamPassed && e.Grade != nil && *e.Grade > 0
}

// Clone returns a copy of the exam with its own grade value.
func (e Exam) Clone() Exam {
	if e.Grade != nil {
		e.Grade = IntPtr(*e.Grade)
	}
	return e
}

// UnmarshalJSON accepts a grade encoded as a number, a numeric string,
// null or an empty string. Older backups store an unset grade as "".
func (e *Exam) UnmarshalJSON(data []byte) error {
	type plain Exam
	var raw struct {
		plain
		Grade json.RawMessage `json:"grade"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*e = Exam(raw.plain)
	e.Grade = nil

	g := bytes.TrimSpace(raw.Grade)
	if len(g) == 0 || bytes.Equal(g, []byte("null")) || bytes.Equal(g, []byte(`""`)) {
		return nil
	}

	var n int
	if g[0] == '"' {
		var s string
		if err := json.Unmarshal(g, &s); err != nil {
			return fmt.Errorf("exam %s: invalid grade: %w", e.ID, err)
		}
		v, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("exam %s: invalid grade %q: %w", e.ID, s, err)
		}
		n = v
	} else if err := json.Unmarshal(g, &n); err != nil {
		return fmt.Errorf("exam %s: invalid grade: %w", e.ID, err)
	}

	e.Grade = &n
	return nil
}

// IntPtr is a small helper for optional integer fields.
func IntPtr(v int) *int {
	return &v
}
