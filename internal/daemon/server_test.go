package daemon

import (
	"context"
	"encoding/json"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/reportgrid/internal/events"
	"github.com/thenoetrevino/reportgrid/internal/logging"
)

// Test helpers to avoid import cycle with testutil

type rawClient struct {
	conn    net.Conn
	encoder *json.Encoder
	decoder *json.Decoder
}

func setupTestDaemon(t *testing.T) (*Server, string, context.CancelFunc) {
	t.Helper()
	socketPath := filepath.Join(t.TempDir(), "reportgrid.sock")

	server, err := NewServer(socketPath, logging.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Start(ctx) }()

	t.Cleanup(func() {
		cancel()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Error("daemon did not stop")
		}
	})

	return server, socketPath, cancel
}

func connectRawClient(t *testing.T, socketPath string, reportID int) *rawClient {
	t.Helper()

	conn, err := (&net.Dialer{}).DialContext(context.Background(), "unix", socketPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	c := &rawClient{conn: conn, encoder: json.NewEncoder(conn), decoder: json.NewDecoder(conn)}
	require.NoError(t, c.encoder.Encode(events.Message{
		Version:   events.ProtocolVersion,
		Type:      events.MessageSubscribe,
		Subscribe: &events.SubscribeMessage{ReportID: reportID},
	}))
	assert.Equal(t, events.MessageAck, c.read(t).Type)
	return c
}

func (c *rawClient) read(t *testing.T) events.Message {
	t.Helper()
	require.NoError(t, c.conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var msg events.Message
	require.NoError(t, c.decoder.Decode(&msg))
	return msg
}

func (c *rawClient) expectSilence(t *testing.T) {
	t.Helper()
	require.NoError(t, c.conn.SetReadDeadline(time.Now().Add(150*time.Millisecond)))
	var msg events.Message
	err := c.decoder.Decode(&msg)
	var netErr net.Error
	require.ErrorAs(t, err, &netErr, "unexpected message %+v", msg)
	assert.True(t, netErr.Timeout())
}

func (c *rawClient) publish(t *testing.T, event events.Event) {
	t.Helper()
	require.NoError(t, c.encoder.Encode(events.Message{
		Version: events.ProtocolVersion,
		Type:    events.MessageEvent,
		Event:   &event,
	}))
}

// ============================================================================
// Construction
// ============================================================================

func TestNewServer_DirectoryCreation(t *testing.T) {
	t.Parallel()
	socketPath := filepath.Join(t.TempDir(), "nested", "dir", "reportgrid.sock")

	server, err := NewServer(socketPath, logging.Discard())
	require.NoError(t, err)
	defer func() { _ = server.Shutdown() }()

	_, err = os.Stat(socketPath)
	assert.NoError(t, err)
}

func TestNewServer_StaleSocketCleanup(t *testing.T) {
	t.Parallel()
	socketPath := filepath.Join(t.TempDir(), "reportgrid.sock")
	require.NoError(t, os.WriteFile(socketPath, []byte("stale"), 0o600))

	server, err := NewServer(socketPath, logging.Discard())
	require.NoError(t, err)
	defer func() { _ = server.Shutdown() }()
}

func TestNewServer_EnvVarConfiguration(t *testing.T) {
	t.Setenv("REPORTGRID_DAEMON_BROADCAST_BUFFER", "7")
	t.Setenv("REPORTGRID_DAEMON_CLIENT_BUFFER", "3")

	server, err := NewServer(filepath.Join(t.TempDir(), "reportgrid.sock"), logging.Discard())
	require.NoError(t, err)
	defer func() { _ = server.Shutdown() }()

	assert.Equal(t, 7, cap(server.broadcast))
	assert.Equal(t, 3, server.clientBufferSize)
}

// ============================================================================
// Broadcasting
// ============================================================================

func TestBroadcast_ReachesSubscribers(t *testing.T) {
	t.Parallel()
	server, socketPath, _ := setupTestDaemon(t)

	a := connectRawClient(t, socketPath, 1)
	b := connectRawClient(t, socketPath, 0)
	require.Eventually(t, func() bool { return server.getClientCount() == 2 }, time.Second, 5*time.Millisecond)

	require.NoError(t, server.Broadcast(events.Event{Type: events.EventLayoutChanged, ReportID: 1, Version: 4}))

	for _, c := range []*rawClient{a, b} {
		msg := c.read(t)
		require.Equal(t, events.MessageEvent, msg.Type)
		assert.Equal(t, 1, msg.Event.ReportID)
		assert.Equal(t, 4, msg.Event.Version)
		assert.Positive(t, msg.Event.SequenceID)
	}
}

func TestBroadcast_SubscriptionFiltering(t *testing.T) {
	t.Parallel()
	server, socketPath, _ := setupTestDaemon(t)

	one := connectRawClient(t, socketPath, 1)
	two := connectRawClient(t, socketPath, 2)

	require.NoError(t, server.Broadcast(events.Event{Type: events.EventLayoutChanged, ReportID: 2}))

	assert.Equal(t, 2, two.read(t).Event.ReportID)
	one.expectSilence(t)

	// ReportID 0 goes to everyone
	require.NoError(t, server.Broadcast(events.Event{Type: events.EventReportChanged}))
	assert.Zero(t, one.read(t).Event.ReportID)
	assert.Zero(t, two.read(t).Event.ReportID)
}

func TestBroadcast_SkipsOrigin(t *testing.T) {
	t.Parallel()
	server, socketPath, _ := setupTestDaemon(t)

	sender := connectRawClient(t, socketPath, 5)
	listener := connectRawClient(t, socketPath, 5)

	sender.publish(t, events.Event{Type: events.EventLayoutChanged, ReportID: 5})

	assert.Equal(t, 5, listener.read(t).Event.ReportID)
	sender.expectSilence(t)
	assert.EqualValues(t, 1, server.Metrics().GetSnapshot().EventsReceived)
}

func TestBroadcast_SequenceNumbersIncrease(t *testing.T) {
	t.Parallel()
	server, socketPath, _ := setupTestDaemon(t)
	c := connectRawClient(t, socketPath, 0)

	for range 3 {
		require.NoError(t, server.Broadcast(events.Event{Type: events.EventReportChanged, ReportID: 1}))
	}

	var last int64
	for range 3 {
		seq := c.read(t).Event.SequenceID
		assert.Greater(t, seq, last)
		last = seq
	}
}

func TestBroadcast_EventClientRoundTrip(t *testing.T) {
	t.Parallel()
	_, socketPath, _ := setupTestDaemon(t)

	receiver := events.NewClient(socketPath)
	defer func() { _ = receiver.Close() }()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, receiver.Connect(ctx))
	require.NoError(t, receiver.Subscribe(3))
	ch, err := receiver.Listen(ctx)
	require.NoError(t, err)

	sender := events.NewClient(socketPath)
	defer func() { _ = sender.Close() }()
	require.NoError(t, sender.Connect(ctx))

	// The subscription may not have landed yet, so keep publishing
	deadline := time.After(3 * time.Second)
	for {
		require.NoError(t, sender.SendEvent(events.Event{Type: events.EventLayoutChanged, ReportID: 3, Version: 2}))
		select {
		case ev := <-ch:
			assert.Equal(t, 3, ev.ReportID)
			assert.Equal(t, events.EventLayoutChanged, ev.Type)
			return
		case <-time.After(200 * time.Millisecond):
		case <-deadline:
			t.Fatal("event never arrived")
		}
	}
}

// ============================================================================
// Health and shutdown
// ============================================================================

func TestMonitorHealth_PingsAndDropsStaleClients(t *testing.T) {
	t.Parallel()
	socketPath := filepath.Join(t.TempDir(), "reportgrid.sock")
	server, err := NewServer(socketPath, logging.Discard())
	require.NoError(t, err)
	server.pingInterval = 20 * time.Millisecond
	server.staleAfter = 100 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- server.Start(ctx) }()
	defer func() {
		cancel()
		<-done
	}()

	c := connectRawClient(t, socketPath, 0)
	assert.Equal(t, events.MessagePing, c.read(t).Type)

	// Never answering with a pong gets the client dropped
	require.Eventually(t, func() bool { return server.getClientCount() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestShutdown_RemovesSocketAndIsIdempotent(t *testing.T) {
	t.Parallel()
	server, socketPath, cancel := setupTestDaemon(t)
	c := connectRawClient(t, socketPath, 0)

	cancel()
	require.Eventually(t, func() bool {
		_, err := os.Stat(socketPath)
		return os.IsNotExist(err)
	}, 2*time.Second, 10*time.Millisecond)

	// The connection was closed by the server
	require.NoError(t, c.conn.SetReadDeadline(time.Now().Add(time.Second)))
	var msg events.Message
	assert.Error(t, c.decoder.Decode(&msg))

	assert.NoError(t, server.Shutdown())
}
