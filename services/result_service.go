package services

import (
	"sort"

	"github.com/anjiri1684/exam_portal/database"
	"github.com/anjiri1684/exam_portal/models"
)

type ResultService struct {
	store *database.Store
}

func NewResultService(store *database.Store) *ResultService {
	return &ResultService{store: store}
}

func (s *ResultService) GetResult(id string) (models.Result, error) {
	result, ok := s.store.Result(id)
	if !ok {
		return models.Result{}, newError(KindNotFound, "Result not found")
	}
	return result, nil
}

// ListResults returns the user's result summaries, newest first. Results
// submitted at the same instant keep their submission order.
func (s *ResultService) ListResults(userID string) ([]models.ResultSummary, error) {
	if userID == "" {
		return nil, newError(KindBadRequest, "User ID is required")
	}

	summaries := make([]models.ResultSummary, 0)
	for _, r := range s.store.Results() {
		if r.UserID == userID {
			summaries = append(summaries, r.Summary())
		}
	}

	sort.SliceStable(summaries, func(i, j int) bool {
		return summaries[i].SubmittedAt.After(summaries[j].SubmittedAt)
	})
	return summaries, nil
}
