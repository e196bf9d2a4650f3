package services

import (
	"github.com/anjiri1684/exam_portal/database"
	"github.com/anjiri1684/exam_portal/models"
)

type ExamService struct {
	store *database.Store
}

func NewExamService(store *database.Store) *ExamService {
	return &ExamService{store: store}
}

func (s *ExamService) ListExams() []models.ExamSummary {
	exams := s.store.Exams()
	out := make([]models.ExamSummary, len(exams))
	for i, e := range exams {
		out[i] = e.Summary()
	}
	return out
}

func (s *ExamService) GetExam(id string) (models.Exam, error) {
	exam, ok := s.store.Exam(id)
	if !ok {
		return models.Exam{}, newError(KindNotFound, "Exam not found")
	}
	return exam, nil
}
