package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockRetryPublisher struct {
	sendAttempts int
	failUntil    int // Fail until this attempt number (0-indexed)
	lastEvent    Event
}

func (m *mockRetryPublisher) SendEvent(event Event) error {
	m.lastEvent = event
	currentAttempt := m.sendAttempts
	m.sendAttempts++

	if currentAttempt < m.failUntil {
		return errors.New("simulated send failure")
	}
	return nil
}

// Unused interface methods
func (m *mockRetryPublisher) Connect(ctx context.Context) error                { return nil }
func (m *mockRetryPublisher) Listen(ctx context.Context) (<-chan Event, error) { return nil, nil }
func (m *mockRetryPublisher) Subscribe(reportID int) error                     { return nil }
func (m *mockRetryPublisher) Close() error                                     { return nil }

func TestPublishWithRetry_Success(t *testing.T) {
	t.Parallel()
	mock := &mockRetryPublisher{}

	err := PublishWithRetry(mock, Event{Type: EventLayoutChanged, ReportID: 1}, 3)
	require.NoError(t, err)
	assert.Equal(t, 1, mock.sendAttempts)
	assert.Equal(t, 1, mock.lastEvent.ReportID)
}

func TestPublishWithRetry_SuccessAfterRetries(t *testing.T) {
	t.Parallel()
	mock := &mockRetryPublisher{failUntil: 2}

	start := time.Now()
	err := PublishWithRetry(mock, Event{Type: EventLayoutChanged, ReportID: 2}, 3)
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, 3, mock.sendAttempts)
	// 50ms + 100ms of backoff
	assert.GreaterOrEqual(t, elapsed, 150*time.Millisecond)
}

func TestPublishWithRetry_FailureAfterAllRetries(t *testing.T) {
	t.Parallel()
	mock := &mockRetryPublisher{failUntil: 999}

	err := PublishWithRetry(mock, Event{Type: EventReportChanged, ReportID: 3}, 3)
	require.EqualError(t, err, "simulated send failure")
	assert.Equal(t, 3, mock.sendAttempts)
}

func TestPublishWithRetry_NilClient(t *testing.T) {
	t.Parallel()
	assert.NoError(t, PublishWithRetry(nil, Event{Type: EventReportChanged}, 3))
}

func TestPublishWithRetry_ZeroRetries(t *testing.T) {
	t.Parallel()
	mock := &mockRetryPublisher{failUntil: 999}

	assert.NoError(t, PublishWithRetry(mock, Event{}, 0))
	assert.Zero(t, mock.sendAttempts)
}
