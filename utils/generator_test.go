package utils

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestResultIDGeneratorSameInstant(t *testing.T) {
	g := NewResultIDGenerator()
	at := time.UnixMilli(1700000000000)

	first := g.Next("1", at)
	second := g.Next("1", at)

	if first == second {
		t.Fatalf("Expected distinct ids, both were %q", first)
	}
	if !strings.HasPrefix(first, "result_1700000000000_1_") {
		t.Errorf("Unexpected id layout: %q", first)
	}
}

func TestResultIDGeneratorConcurrent(t *testing.T) {
	g := NewResultIDGenerator()
	at := time.Now()

	var (
		mu  sync.Mutex
		wg  sync.WaitGroup
		ids = make(map[string]struct{})
	)
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			id := g.Next("2", at)
			mu.Lock()
			ids[id] = struct{}{}
			mu.Unlock()
		}()
	}
	wg.Wait()

	if len(ids) != 200 {
		t.Errorf("Expected 200 unique ids, got %d", len(ids))
	}
}
