package websocket

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/anjiri1684/exam_portal/models"
)

type fakeConn struct {
	mu      sync.Mutex
	writes  chan interface{}
	failing bool
	closed  bool
}

func newFakeConn() *fakeConn {
	return &fakeConn{writes: make(chan interface{}, 8)}
}

func (f *fakeConn) WriteJSON(v interface{}) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failing {
		return errors.New("broken pipe")
	}
	f.writes <- v
	return nil
}

func (f *fakeConn) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}

func (f *fakeConn) isClosed() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.closed
}

func startHub(t *testing.T) (*Hub, context.CancelFunc) {
	t.Helper()
	hub := NewHub(4)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatal("condition not met in time")
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestHubDeliversToSubmittingUserOnly(t *testing.T) {
	hub, _ := startHub(t)

	mine := newFakeConn()
	theirs := newFakeConn()
	hub.Register(NewClient("1", mine))
	hub.Register(NewClient("2", theirs))
	waitFor(t, func() bool { return hub.Subscribers("1") == 1 && hub.Subscribers("2") == 1 })

	hub.Publish(models.ResultSummary{ResultID: "r1", UserID: "1"})

	select {
	case got := <-mine.writes:
		if s, ok := got.(models.ResultSummary); !ok || s.ResultID != "r1" {
			t.Errorf("Unexpected payload %#v", got)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Expected a delivery to user 1")
	}

	select {
	case got := <-theirs.writes:
		t.Errorf("User 2 should not receive user 1's result, got %#v", got)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHubDropsFailingSubscriber(t *testing.T) {
	hub, _ := startHub(t)

	conn := newFakeConn()
	conn.failing = true
	hub.Register(NewClient("1", conn))
	waitFor(t, func() bool { return hub.Subscribers("1") == 1 })

	hub.Publish(models.ResultSummary{ResultID: "r1", UserID: "1"})

	waitFor(t, func() bool { return hub.Subscribers("1") == 0 })
	if !conn.isClosed() {
		t.Error("Expected failing connection to be closed")
	}
}

func TestHubUnregister(t *testing.T) {
	hub, _ := startHub(t)

	client := NewClient("1", newFakeConn())
	hub.Register(client)
	waitFor(t, func() bool { return hub.Subscribers("1") == 1 })

	hub.Unregister(client)
	waitFor(t, func() bool { return hub.Subscribers("1") == 0 })
}

func TestHubShutdownClosesConnections(t *testing.T) {
	hub, cancel := startHub(t)

	conn := newFakeConn()
	client := NewClient("1", conn)
	hub.Register(client)
	waitFor(t, func() bool { return hub.Subscribers("1") == 1 })

	cancel()
	waitFor(t, conn.isClosed)

	// Must not block once the hub has stopped.
	hub.Unregister(client)
}

func TestPublishNeverBlocks(t *testing.T) {
	hub := NewHub(1)

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			hub.Publish(models.ResultSummary{UserID: "1"})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked without a running hub")
	}
}
