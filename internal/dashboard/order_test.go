package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/lifedash/internal/models"
)

func ids[T identified](items []T) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.GetID()
	}
	return out
}

func TestSortExams(t *testing.T) {
	exams := []models.Exam{
		{ID: "passed-late", Status: models.ExamPassed, Date: "2024-02-01"},
		{ID: "pending-undated", Status: models.ExamPending},
		{ID: "pending-late", Status: models.ExamPending, Date: "2024-07-10"},
		{ID: "passed-early", Status: models.ExamPassed, Date: "2024-01-15"},
		{ID: "pending-early", Status: models.ExamPending, Date: "2024-06-20"},
		{ID: "pending-undated-2", Status: models.ExamPending},
	}

	sorted := SortExams(exams)
	assert.Equal(t, []string{
		"pending-early", "pending-late", "pending-undated", "pending-undated-2",
		"passed-early", "passed-late",
	}, ids(sorted))
	assert.Equal(t, "passed-late", exams[0].ID, "input is not reordered")
}

func TestFilterTransactions(t *testing.T) {
	txs := []models.Transaction{
		{ID: "a", Type: models.TransactionExpense, Date: "2024-06-01"},
		{ID: "b", Type: models.TransactionIncome, Date: "2024-06-03"},
		{ID: "c", Type: models.TransactionExpense, Date: "2024-06-03"},
		{ID: "d", Type: models.TransactionExpense, Date: "2024-05-30"},
	}

	assert.Equal(t, []string{"b", "c", "a", "d"}, ids(FilterTransactions(txs, "")))
	assert.Equal(t, []string{"c", "a", "d"}, ids(FilterTransactions(txs, models.TransactionExpense)))
	assert.Equal(t, []string{"b"}, ids(FilterTransactions(txs, models.TransactionIncome)))
}

func TestFilterProjects(t *testing.T) {
	projects := []models.Project{
		{ID: "1", Status: models.ProjectActive},
		{ID: "2", Status: models.ProjectPaused},
		{ID: "3", Status: models.ProjectActive},
	}

	assert.Equal(t, []string{"1", "2", "3"}, ids(FilterProjects(projects, "")))
	assert.Equal(t, []string{"1", "3"}, ids(FilterProjects(projects, models.ProjectActive)))
	assert.Empty(t, FilterProjects(projects, models.ProjectCompleted))
}

func TestCollectionHelpers(t *testing.T) {
	items := []models.Task{{ID: "a"}, {ID: "b"}}

	appended := appendItem(items, models.Task{ID: "c"})
	assert.Len(t, items, 2)
	assert.Equal(t, []string{"a", "b", "c"}, ids(appended))

	updated, got, err := updateItem(items, "b", func(t models.Task) models.Task {
		t.Completed = true
		return t
	})
	assert.NoError(t, err)
	assert.True(t, got.Completed)
	assert.True(t, updated[1].Completed)
	assert.False(t, items[1].Completed, "source slice untouched")

	_, _, err = updateItem(items, "z", func(t models.Task) models.Task { return t })
	assert.ErrorIs(t, err, ErrNotFound)

	removed, err := removeItem(items, "a")
	assert.NoError(t, err)
	assert.Equal(t, []string{"b"}, ids(removed))
	assert.Len(t, items, 2)

	_, err = removeItem(items, "z")
	assert.ErrorIs(t, err, ErrNotFound)

	found, ok := findItem(items, "b")
	assert.True(t, ok)
	assert.Equal(t, "b", found.ID)
}
