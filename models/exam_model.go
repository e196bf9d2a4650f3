package models

type Exam struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Duration    int        `json:"duration"`
	Difficulty  string     `json:"difficulty"`
	Subject     string     `json:"subject"`
	Questions   []Question `json:"questions"`
}

// ExamSummary is the catalog view of an exam; questions are left out.
type ExamSummary struct {
	ID             string `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Duration       int    `json:"duration"`
	TotalQuestions int    `json:"totalQuestions"`
	Difficulty     string `json:"difficulty"`
	Subject        string `json:"subject"`
}

func (e Exam) Summary() ExamSummary {
	return ExamSummary{
		ID:             e.ID,
		Title:          e.Title,
		Description:    e.Description,
		Duration:       e.Duration,
		TotalQuestions: len(e.Questions),
		Difficulty:     e.Difficulty,
		Subject:        e.Subject,
	}
}
