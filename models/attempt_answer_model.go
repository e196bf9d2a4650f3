package models

// Unanswered is the selected option recorded for a question missing from an AnswerMap.
// It never equals a valid option index.
const Unanswered = -1

// AnswerMap maps a question id to the index of the option the user picked.
type AnswerMap map[string]int

func (a AnswerMap) Selected(questionID string) int {
	if selected, ok := a[questionID]; ok {
		return selected
	}
	return Unanswered
}
