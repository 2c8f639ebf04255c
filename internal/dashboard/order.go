package dashboard

import (
	"sort"

	"github.com/iudanet/lifedash/internal/models"
)

// SortExams returns the exams with pending ones first, each group ordered by
// date ascending. Undated exams go last within their group.
func SortExams(exams []models.Exam) []models.Exam {
	out := make([]models.Exam, len(exams))
	copy(out, exams)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if ra, rb := statusRank(a.Status), statusRank(b.Status); ra != rb {
			return ra < rb
		}
		switch {
		case a.Date.IsZero():
			return false
		case b.Date.IsZero():
			return true
		}
		return a.Date < b.Date
	})

	return out
}

func statusRank(s models.ExamStatus) int {
	switch s {
	case models.ExamPending:
		return 0
	case models.ExamPassed:
		return 1
	default:
		return 2
	}
}

// FilterTransactions returns transactions of the given type (all when typ is
// empty) ordered newest first. Transactions on the same day keep their order.
func FilterTransactions(txs []models.Transaction, typ models.TransactionType) []models.Transaction {
	out := make([]models.Transaction, 0, len(txs))
	for _, t := range txs {
		if typ == "" || t.Type == typ {
			out = append(out, t)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})

	return out
}

// FilterProjects returns projects with the given status (all when status is
// empty) in insertion order.
func FilterProjects(projects []models.Project, status models.ProjectStatus) []models.Project {
	out := make([]models.Project, 0, len(projects))
	for _, p := range projects {
		if status == "" || p.Status == status {
			out = append(out, p.Clone())
		}
	}
	return out
}
