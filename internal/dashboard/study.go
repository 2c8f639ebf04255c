package dashboard

import (
	"context"
	"fmt"

	"github.com/iudanet/lifedash/internal/models"
	"github.com/iudanet/lifedash/internal/store"
	"github.com/iudanet/lifedash/internal/validation"
)

// ExamInput данные формы экзамена
type ExamInput struct {
	Grade  *int
	Name   string
	Date   models.Date
	Status models.ExamStatus
	CFU    int
}

func (in ExamInput) validate() (ExamInput, error) {
	name, err := validation.RequireText("name", in.Name)
	if err != nil {
		return in, err
	}
	in.Name = name

	if err := validation.ValidateCFU(in.CFU); err != nil {
		return in, err
	}
	if in.Status == "" {
		in.Status = models.ExamPending
	}
	if !in.Status.Valid() {
		return in, fmt.Errorf("exam status %q: %w", in.Status, ErrInvalidInput)
	}
	if in.Grade != nil {
		if err := validation.ValidateGrade(*in.Grade); err != nil {
			return in, err
		}
		in.Grade = models.IntPtr(*in.Grade)
	}
	if !in.Date.IsZero() && !in.Date.Valid() {
		return in, fmt.Errorf("exam date %q: %w", in.Date, ErrInvalidInput)
	}
	return in, nil
}

func (in ExamInput) apply(e models.Exam) models.Exam {
	e.Name = in.Name
	e.CFU = in.CFU
	e.Date = in.Date
	e.Grade = in.Grade
	e.Status = in.Status
	return e
}

// Exams returns the exams in display order.
func (s *service) Exams() []models.Exam {
	return SortExams(s.State().Exams)
}

// AddExam creates a new exam.
func (s *service) AddExam(ctx context.Context, in ExamInput) (models.Exam, error) {
	in, err := in.validate()
	if err != nil {
		return models.Exam{}, err
	}

	exam := in.apply(models.Exam{ID: s.ids.NewID()})
	err = s.mutate(ctx, store.SlotExams, func(st models.State) (models.State, error) {
		st.Exams = appendItem(st.Exams, exam)
		return st, nil
	})
	if err != nil {
		return models.Exam{}, err
	}
	return exam.Clone(), nil
}

// UpdateExam replaces every editable field of the exam; the id is kept.
func (s *service) UpdateExam(ctx context.Context, id string, in ExamInput) (models.Exam, error) {
	in, err := in.validate()
	if err != nil {
		return models.Exam{}, err
	}

	var updated models.Exam
	err = s.mutate(ctx, store.SlotExams, func(st models.State) (models.State, error) {
		exams, exam, err := updateItem(st.Exams, id, in.apply)
		if err != nil {
			return st, fmt.Errorf("exam %w", err)
		}
		st.Exams, updated = exams, exam
		return st, nil
	})
	return updated.Clone(), err
}

// DeleteExam removes the exam.
func (s *service) DeleteExam(ctx context.Context, id string) error {
	return s.mutate(ctx, store.SlotExams, func(st models.State) (models.State, error) {
		var err error
		if st.Exams, err = removeItem(st.Exams, id); err != nil {
			return st, fmt.Errorf("exam %w", err)
		}
		return st, nil
	})
}
