package database

import (
	"sync"

	"github.com/anjiri1684/exam_portal/models"
)

// Store holds the read-only fixtures and the append-only result log.
// Users and exams are never mutated after NewStore returns, so only the
// log is guarded.
type Store struct {
	users   []models.User
	exams   []models.Exam
	examIdx map[string]int

	mu      sync.RWMutex
	results []models.Result
}

func NewStore(users []models.User, exams []models.Exam) *Store {
	s := &Store{
		users:   users,
		exams:   exams,
		examIdx: make(map[string]int, len(exams)),
	}
	for i, e := range exams {
		s.examIdx[e.ID] = i
	}
	return s
}

func (s *Store) FindUser(email, password string) (models.User, bool) {
	for _, u := range s.users {
		if u.Email == email && u.Password == password {
			return u, true
		}
	}
	return models.User{}, false
}

// Exams returns the exams in fixture order.
func (s *Store) Exams() []models.Exam {
	return s.exams
}

func (s *Store) Exam(id string) (models.Exam, bool) {
	i, ok := s.examIdx[id]
	if !ok {
		return models.Exam{}, false
	}
	return s.exams[i], true
}

func (s *Store) AppendResult(r models.Result) {
	s.mu.Lock()
	s.results = append(s.results, r)
	s.mu.Unlock()
}

func (s *Store) Result(id string) (models.Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.results {
		if r.ResultID == id {
			return r, true
		}
	}
	return models.Result{}, false
}

// Results returns a snapshot of the log in insertion order.
func (s *Store) Results() []models.Result {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Result, len(s.results))
	copy(out, s.results)
	return out
}

func (s *Store) ResultCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.results)
}
