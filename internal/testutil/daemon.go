package testutil

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/thenoetrevino/reportgrid/internal/daemon"
	"github.com/thenoetrevino/reportgrid/internal/events"
	"github.com/thenoetrevino/reportgrid/internal/logging"
)

// SetupTestDaemon starts a daemon on a temporary socket and stops it when
// the test ends
func SetupTestDaemon(t *testing.T) (*daemon.Server, string) {
	t.Helper()

	socketPath := filepath.Join(t.TempDir(), "reportgrid.sock")
	server, err := daemon.NewServer(socketPath, logging.Discard())
	if err != nil {
		t.Fatalf("Failed to create test daemon: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := server.Start(ctx); err != nil {
			t.Logf("Server error: %v", err)
		}
	}()

	t.Cleanup(func() {
		cancel()
		<-done
	})

	return server, socketPath
}

// SetupTestClient creates an event client connected to socketPath.
func SetupTestClient(t *testing.T, socketPath string) *events.Client {
	t.Helper()

	client := events.NewClient(socketPath)
	client.SetLogger(logging.Discard())
	t.Cleanup(func() { _ = client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Connect(ctx); err != nil {
		t.Fatalf("Failed to connect test client: %v", err)
	}
	return client
}

// WaitForEvent waits for an event on a channel with timeout.
func WaitForEvent(t *testing.T, ch <-chan events.Event, timeout time.Duration) events.Event {
	t.Helper()

	select {
	case event, ok := <-ch:
		if !ok {
			t.Fatal("Event channel closed unexpectedly")
		}
		return event
	case <-time.After(timeout):
		t.Fatalf("Timeout waiting for event after %v", timeout)
		return events.Event{}
	}
}

// MockEventPublisher records published events instead of sending them.
type MockEventPublisher struct {
	mu         sync.Mutex
	SentEvents []events.Event
	Subscribed []int
	Closed     bool
}

// NewMockEventPublisher creates a new mock event publisher.
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{}
}

// Connect is a no-op for the mock.
func (m *MockEventPublisher) Connect(context.Context) error { return nil }

// SendEvent records the event for later verification.
func (m *MockEventPublisher) SendEvent(event events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentEvents = append(m.SentEvents, event)
	return nil
}

// Listen returns a closed channel.
func (m *MockEventPublisher) Listen(context.Context) (<-chan events.Event, error) {
	ch := make(chan events.Event)
	close(ch)
	return ch, nil
}

// Subscribe records the subscription.
func (m *MockEventPublisher) Subscribe(reportID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Subscribed = append(m.Subscribed, reportID)
	return nil
}

// Close marks the publisher as closed.
func (m *MockEventPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Closed = true
	return nil
}

// Events returns a copy of everything sent so far.
func (m *MockEventPublisher) Events() []events.Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]events.Event, len(m.SentEvents))
	copy(out, m.SentEvents)
	return out
}

// EventsOfType returns all events of a specific type.
func (m *MockEventPublisher) EventsOfType(eventType events.EventType) []events.Event {
	var result []events.Event
	for _, e := range m.Events() {
		if e.Type == eventType {
			result = append(result, e)
		}
	}
	return result
}

var _ events.EventPublisher = (*MockEventPublisher)(nil)
