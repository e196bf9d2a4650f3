package database

import (
	"fmt"
	"sync"
	"testing"

	"github.com/anjiri1684/exam_portal/models"
)

func TestFindUser(t *testing.T) {
	s := NewFixtureStore()

	u, ok := s.FindUser("student@example.com", "password123")
	if !ok {
		t.Fatal("Expected fixture user to be found")
	}
	if u.ID != "1" {
		t.Errorf("Expected user 1, got %q", u.ID)
	}

	tests := []struct {
		name, email, password string
	}{
		{"wrong password", "student@example.com", "nope"},
		{"unknown email", "ghost@example.com", "password123"},
		{"case differs", "Student@example.com", "password123"},
		{"empty", "", ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := s.FindUser(tc.email, tc.password); ok {
				t.Errorf("Expected no match for %q/%q", tc.email, tc.password)
			}
		})
	}
}

func TestFixtureExams(t *testing.T) {
	s := NewFixtureStore()

	exams := s.Exams()
	if len(exams) != 3 {
		t.Fatalf("Expected 3 exams, got %d", len(exams))
	}
	for i, want := range []string{"1", "2", "3"} {
		if exams[i].ID != want {
			t.Errorf("Expected exam %q at %d, got %q", want, i, exams[i].ID)
		}
		if len(exams[i].Questions) != 5 {
			t.Errorf("Expected 5 questions in exam %q, got %d", exams[i].ID, len(exams[i].Questions))
		}
		for _, q := range exams[i].Questions {
			if q.CorrectOption < 0 || q.CorrectOption >= len(q.Options) {
				t.Errorf("Question %q has out of range correct option %d", q.ID, q.CorrectOption)
			}
		}
	}

	if _, ok := s.Exam("42"); ok {
		t.Error("Expected unknown exam to be missing")
	}
	e, ok := s.Exam("2")
	if !ok || e.Title != "React Development" {
		t.Errorf("Expected React Development, got %+v", e)
	}
}

func TestAppendResultKeepsEveryRecord(t *testing.T) {
	s := NewStore(nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.AppendResult(models.Result{ResultID: fmt.Sprintf("r%d", i), UserID: "1"})
		}(i)
	}
	wg.Wait()

	if got := s.ResultCount(); got != 100 {
		t.Fatalf("Expected 100 results, got %d", got)
	}
	seen := make(map[string]bool)
	for _, r := range s.Results() {
		seen[r.ResultID] = true
	}
	if len(seen) != 100 {
		t.Errorf("Expected 100 distinct results, got %d", len(seen))
	}

	if _, ok := s.Result("r57"); !ok {
		t.Error("Expected r57 to be found")
	}
	if _, ok := s.Result("missing"); ok {
		t.Error("Expected missing result to be absent")
	}
}

func TestResultsReturnsSnapshot(t *testing.T) {
	s := NewStore(nil, nil)
	s.AppendResult(models.Result{ResultID: "a"})

	snap := s.Results()
	snap[0].ResultID = "changed"
	s.AppendResult(models.Result{ResultID: "b"})

	if len(snap) != 1 {
		t.Errorf("Snapshot grew to %d", len(snap))
	}
	if r, _ := s.Result("a"); r.ResultID != "a" {
		t.Error("Mutating a snapshot changed the log")
	}
}
