package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iudanet/lifedash/internal/models"
)

func TestWeightedAverage(t *testing.T) {
	tests := []struct {
		name  string
		exams []models.Exam
		want  float64
	}{
		{
			name: "passed exams weighted by cfu",
			exams: []models.Exam{
				{CFU: 6, Grade: models.IntPtr(30), Status: models.ExamPassed},
				{CFU: 9, Grade: models.IntPtr(24), Status: models.ExamPassed},
				{CFU: 12, Status: models.ExamPending},
			},
			want: 26.40,
		},
		{
			name:  "no exams",
			exams: nil,
			want:  0,
		},
		{
			name: "only pending",
			exams: []models.Exam{
				{CFU: 6, Grade: models.IntPtr(30), Status: models.ExamPending},
			},
			want: 0,
		},
		{
			name: "passed without grade ignored",
			exams: []models.Exam{
				{CFU: 6, Status: models.ExamPassed},
				{CFU: 6, Grade: models.IntPtr(27), Status: models.ExamPassed},
			},
			want: 27,
		},
		{
			name: "rounded to two decimals",
			exams: []models.Exam{
				{CFU: 1, Grade: models.IntPtr(18), Status: models.ExamPassed},
				{CFU: 2, Grade: models.IntPtr(19), Status: models.ExamPassed},
			},
			want: 18.67,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, WeightedAverage(tt.exams), 1e-9)
		})
	}
}

func TestEstimatedFinalScore(t *testing.T) {
	assert.Equal(t, 97, EstimatedFinalScore(26.40))
	assert.Equal(t, 110, EstimatedFinalScore(30))
	assert.Equal(t, 0, EstimatedFinalScore(0))
}

func TestExamTotals(t *testing.T) {
	got := ExamTotals([]models.Exam{
		{CFU: 6, Status: models.ExamPassed},
		{CFU: 9, Status: models.ExamPassed},
		{CFU: 12, Status: models.ExamPending},
	})

	assert.Equal(t, ExamSummary{Passed: 2, PassedCFU: 15, Pending: 1, PendingCFU: 12}, got)
}
