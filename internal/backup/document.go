// Package backup exports the dashboard state to a JSON document and imports
// such documents back, replacing only the collections the file contains.
package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/iudanet/lifedash/internal/models"
)

const (
	// FileNamePrefix начало имени файла резервной копии
	FileNamePrefix = "life-dashboard-backup-"
	// FileDateLayout дата в имени файла: DD-MM-YYYY
	FileDateLayout = "02-01-2006"
)

// Document is the full export of the dashboard.
type Document struct {
	Budget       decimal.Decimal      `json:"budget"`
	ExportedAt   string               `json:"exportedAt"`
	Exams        []models.Exam        `json:"exams"`
	Projects     []models.Project     `json:"projects"`
	Habits       []models.Habit       `json:"habits"`
	Goals        []models.Goal        `json:"goals"`
	Transactions []models.Transaction `json:"transactions"`
}

// NewDocument builds an export document from state. Nil collections are
// exported as empty arrays.
func NewDocument(state models.State, now time.Time) Document {
	state = state.Clone()
	return Document{
		Exams:        orEmpty(state.Exams),
		Projects:     orEmpty(state.Projects),
		Habits:       orEmpty(state.Habits),
		Goals:        orEmpty(state.Goals),
		Transactions: orEmpty(state.Transactions),
		Budget:       state.Budget,
		ExportedAt:   now.Format(time.RFC3339),
	}
}

// Marshal encodes the document as indented JSON.
func (d Document) Marshal() ([]byte, error) {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal backup: %w", err)
	}
	return data, nil
}

// FileName returns the default export file name for the day of now.
func FileName(now time.Time) string {
	return FileNamePrefix + now.Format(FileDateLayout) + ".json"
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
