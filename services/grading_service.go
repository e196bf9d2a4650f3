package services

import (
	"slices"
	"time"

	"github.com/anjiri1684/exam_portal/database"
	"github.com/anjiri1684/exam_portal/models"
	"github.com/anjiri1684/exam_portal/utils"
)

// ResultPublisher receives a summary of every stored result.
type ResultPublisher interface {
	Publish(summary models.ResultSummary)
}

type SubmitInput struct {
	ExamID    string
	UserID    string
	Answers   models.AnswerMap
	TimeSpent int
}

type GradingService struct {
	store     *database.Store
	ids       *utils.ResultIDGenerator
	publisher ResultPublisher
	now       func() time.Time
}

type GradingOption func(*GradingService)

func WithPublisher(p ResultPublisher) GradingOption {
	return func(s *GradingService) { s.publisher = p }
}

func WithClock(now func() time.Time) GradingOption {
	return func(s *GradingService) { s.now = now }
}

func NewGradingService(store *database.Store, ids *utils.ResultIDGenerator, opts ...GradingOption) *GradingService {
	s := &GradingService{
		store: store,
		ids:   ids,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit grades the answers against the exam in question order and appends
// the result to the log. Nothing is stored when an error is returned.
func (s *GradingService) Submit(in SubmitInput) (models.Result, error) {
	if in.ExamID == "" || in.UserID == "" {
		return models.Result{}, newError(KindBadRequest, "Exam ID and user ID are required")
	}
	if in.TimeSpent < 0 {
		return models.Result{}, newError(KindBadRequest, "Time spent cannot be negative")
	}

	exam, ok := s.store.Exam(in.ExamID)
	if !ok {
		return models.Result{}, newError(KindNotFound, "Exam not found")
	}
	total := len(exam.Questions)
	if total == 0 {
		return models.Result{}, newError(KindInvalidState, "Exam has no questions")
	}

	score, outcomes := grade(exam.Questions, in.Answers)
	submittedAt := s.now().UTC()

	result := models.Result{
		ResultID:       s.ids.Next(in.UserID, submittedAt),
		ExamID:         exam.ID,
		UserID:         in.UserID,
		ExamTitle:      exam.Title,
		Score:          score,
		TotalQuestions: total,
		Percentage:     Percentage(score, total),
		TimeSpent:      in.TimeSpent,
		SubmittedAt:    submittedAt,
		Questions:      outcomes,
	}

	s.store.AppendResult(result)
	if s.publisher != nil {
		s.publisher.Publish(result.Summary())
	}
	return result, nil
}

func grade(questions []models.Question, answers models.AnswerMap) (int, []models.QuestionResult) {
	score := 0
	outcomes := make([]models.QuestionResult, len(questions))
	for i, q := range questions {
		selected := answers.Selected(q.ID)
		correct := selected == q.CorrectOption
		if correct {
			score++
		}
		outcomes[i] = models.QuestionResult{
			QuestionText:   q.QuestionText,
			Options:        slices.Clone(q.Options),
			SelectedOption: selected,
			CorrectOption:  q.CorrectOption,
			IsCorrect:      correct,
		}
	}
	return score, outcomes
}

// Percentage returns 100*score/total rounded half up. total must be positive.
func Percentage(score, total int) int {
	return (200*score + total) / (2 * total)
}
