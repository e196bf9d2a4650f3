package models

import "time"

type QuestionResult struct {
	QuestionText   string   `json:"questionText"`
	Options        []string `json:"options"`
	SelectedOption int      `json:"selectedOption"`
	CorrectOption  int      `json:"correctOption"`
	IsCorrect      bool     `json:"isCorrect"`
}

type Result struct {
	ResultID       string           `json:"resultId"`
	ExamID         string           `json:"examId"`
	UserID         string           `json:"userId"`
	ExamTitle      string           `json:"examTitle"`
	Score          int              `json:"score"`
	TotalQuestions int              `json:"totalQuestions"`
	Percentage     int              `json:"percentage"`
	TimeSpent      int              `json:"timeSpent"`
	SubmittedAt    time.Time        `json:"submittedAt"`
	Questions      []QuestionResult `json:"questions"`
}

// ResultSummary is the list view of a result, without per-question detail.
type ResultSummary struct {
	ResultID       string    `json:"resultId"`
	ExamID         string    `json:"examId"`
	UserID         string    `json:"userId"`
	ExamTitle      string    `json:"examTitle"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	Percentage     int       `json:"percentage"`
	TimeSpent      int       `json:"timeSpent"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

func (r Result) Summary() ResultSummary {
	return ResultSummary{
		ResultID:       r.ResultID,
		ExamID:         r.ExamID,
		UserID:         r.UserID,
		ExamTitle:      r.ExamTitle,
		Score:          r.Score,
		TotalQuestions: r.TotalQuestions,
		Percentage:     r.Percentage,
		TimeSpent:      r.TimeSpent,
		SubmittedAt:    r.SubmittedAt,
	}
}
