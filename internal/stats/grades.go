package stats

import (
	"math"

	"github.com/iudanet/lifedash/internal/models"
)

// Шкалы: оценки за экзамен из 30, итоговая оценка из 110
const (
	GradeScale      = 30
	GraduationScale = 110
)

// ExamSummary сводка по сданным и оставшимся экзаменам
type ExamSummary struct {
	Passed     int
	PassedCFU  int
	Pending    int
	PendingCFU int
}

// WeightedAverage returns the CFU-weighted average of passed exams with a
// recorded grade, rounded to 2 decimals. It is 0 when no exam qualifies.
func WeightedAverage(exams []models.Exam) float64 {
	var weighted, cfu int
	for _, e := range exams {
		if !e.HasGrade() {
			continue
		}
		weighted += *e.Grade * e.CFU
		cfu += e.CFU
	}
	if cfu <= 0 {
		return 0
	}
	return round2(float64(weighted) / float64(cfu))
}

// EstimatedFinalScore projects an average on the 30 scale onto the 110 scale.
func EstimatedFinalScore(avg float64) int {
	if avg <= 0 {
		return 0
	}
	return int(math.Round(avg * GraduationScale / GradeScale))
}

// ExamTotals counts exams and credits per status.
func ExamTotals(exams []models.Exam) ExamSummary {
	var t ExamSummary
	for _, e := range exams {
		switch e.Status {
		case models.ExamPassed:
			t.Passed++
			t.PassedCFU += e.CFU
		case models.ExamPending:
			t.Pending++
			t.PendingCFU += e.CFU
		}
	}
	return t
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
