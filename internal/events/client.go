package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"os"
	"strconv"
	"sync"
	"syscall"
	"time"
)

// DebounceEnv overrides the batching window in milliseconds
const DebounceEnv = "REPORTGRID_EVENT_DEBOUNCE_MS"

// Client represents a connection to the reportgrid daemon for live updates.
// It handles event sending, receiving, batching, reconnection, and subscriptions.
type Client struct {
	socketPath string
	conn       net.Conn
	encoder    *json.Encoder
	decoder    *json.Decoder
	mu         sync.Mutex
	logger     *slog.Logger

	// Batching configuration
	eventQueue  chan Event
	debounce    time.Duration
	closed      bool
	batcherOnce sync.Once
	batcherDone chan struct{}

	// Reconnection configuration
	maxRetries int
	baseDelay  time.Duration

	currentReportID int
	lastSequence    int64

	// Context for graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc
}

// NewClient creates a new event client but does not connect.
// The socket path should be the full path to the Unix domain socket.
func NewClient(socketPath string) *Client {
	debounceMs := 100
	if envVal := os.Getenv(DebounceEnv); envVal != "" {
		if parsed, err := strconv.Atoi(envVal); err == nil && parsed > 0 {
			debounceMs = parsed
		}
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Client{
		socketPath:  socketPath,
		logger:      slog.Default(),
		eventQueue:  make(chan Event, 100),
		debounce:    time.Duration(debounceMs) * time.Millisecond,
		maxRetries:  5,
		baseDelay:   1 * time.Second,
		ctx:         ctx,
		cancel:      cancel,
		batcherDone: make(chan struct{}),
	}
}

// SetLogger replaces the client's logger
func (c *Client) SetLogger(logger *slog.Logger) {
	if c == nil || logger == nil {
		return
	}
	c.logger = logger
}

// Connect establishes a connection to the daemon socket and subscribes to
// the current report (all reports until Subscribe is called).
func (c *Client) Connect(ctx context.Context) error {
	if c == nil {
		return ErrNotConnected
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return fmt.Errorf("client closed")
	}

	dialer := net.Dialer{}
	conn, err := dialer.DialContext(ctx, "unix", c.socketPath)
	if err != nil {
		return fmt.Errorf("failed to dial daemon socket: %w", err)
	}

	c.conn = conn
	c.encoder = json.NewEncoder(conn)
	c.decoder = json.NewDecoder(conn)
	// A restarted daemon numbers its events from 1 again
	c.lastSequence = 0

	msg := Message{
		Version:   ProtocolVersion,
		Type:      MessageSubscribe,
		Subscribe: &SubscribeMessage{ReportID: c.currentReportID},
	}
	if err := c.encoder.Encode(msg); err != nil {
		if closeErr := conn.Close(); closeErr != nil {
			c.logger.Error("error closing connection", "error", closeErr)
		}
		c.conn = nil
		return fmt.Errorf("failed to send subscription: %w", err)
	}

	c.batcherOnce.Do(func() { go c.startBatcher() })

	return nil
}

// SendEvent queues an event to be sent to the daemon.
// Events are batched and sent in bursts within the debounce window.
// Returns ErrQueueFull rather than blocking.
func (c *Client) SendEvent(event Event) error {
	if c == nil {
		return ErrNotConnected
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return fmt.Errorf("client closed")
	}

	select {
	case c.eventQueue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// startBatcher collapses queued events into at most one send per debounce
// tick. A batch touching several reports is sent with ReportID 0.
func (c *Client) startBatcher() {
	defer close(c.batcherDone)

	ticker := time.NewTicker(c.debounce)
	defer ticker.Stop()

	var (
		pending  bool
		batch    Event
		multiple bool
	)

	add := func(event Event) {
		if !pending {
			pending = true
			batch = event
			multiple = false
			return
		}
		if event.ReportID != batch.ReportID {
			multiple = true
		}
		if event.Type == EventLayoutChanged {
			batch.Type = EventLayoutChanged
		}
		if event.Version > batch.Version {
			batch.Version = event.Version
		}
	}

	flush := func() {
		if !pending {
			return
		}
		out := batch
		if multiple {
			out.ReportID = 0
			out.Version = 0
		}
		out.Timestamp = time.Now()
		if err := c.sendToSocket(out); err != nil && !isConnectionError(err) {
			c.logger.Warn("failed to send batched event", "error", err)
		}
		pending = false
	}

	for {
		select {
		case <-c.ctx.Done():
			// Drain whatever was queued before Close
			for {
				select {
				case event := <-c.eventQueue:
					add(event)
				default:
					flush()
					return
				}
			}

		case event := <-c.eventQueue:
			add(event)

		case <-ticker.C:
			flush()
		}
	}
}

// sendToSocket sends an event to the daemon socket.
func (c *Client) sendToSocket(event Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn == nil {
		return ErrNotConnected
	}

	// Set a short write deadline to detect dead connections
	if err := c.conn.SetWriteDeadline(time.Now().Add(5 * time.Second)); err != nil {
		return fmt.Errorf("connection error: %w", err)
	}

	msg := Message{
		Version: ProtocolVersion,
		Type:    MessageEvent,
		Event:   &event,
	}
	if event.Type == EventPong {
		msg = Message{Version: ProtocolVersion, Type: MessagePong}
	}
	return c.encoder.Encode(msg)
}

// Listen starts listening for events from the daemon.
// The returned channel is closed when ctx is done or reconnection fails.
func (c *Client) Listen(ctx context.Context) (<-chan Event, error) {
	eventChan := make(chan Event, 10)
	if c == nil {
		close(eventChan)
		return eventChan, ErrNotConnected
	}
	go c.listenLoop(ctx, eventChan)
	return eventChan, nil
}

// listenLoop reads events from the daemon and handles reconnection.
func (c *Client) listenLoop(ctx context.Context, eventChan chan Event) {
	defer close(eventChan)

	for {
		err := c.readEvents(ctx, eventChan)
		if ctx.Err() != nil || c.ctx.Err() != nil {
			return
		}

		c.logger.Info("connection lost, reconnecting", "error", err)
		if !c.reconnect(ctx) {
			c.logger.Warn("giving up on daemon", "attempts", c.maxRetries)
			return
		}
	}
}

// readEvents reads messages from the socket and sends them to the event channel.
func (c *Client) readEvents(ctx context.Context, eventChan chan Event) error {
	for {
		c.mu.Lock()
		if c.conn == nil {
			c.mu.Unlock()
			return ErrNotConnected
		}
		// Detect hung connections; the daemon pings well inside this window
		if err := c.conn.SetReadDeadline(time.Now().Add(60 * time.Second)); err != nil {
			c.mu.Unlock()
			return fmt.Errorf("failed to set read deadline: %w", err)
		}
		decoder := c.decoder
		c.mu.Unlock()

		var msg Message
		if err := decoder.Decode(&msg); err != nil {
			return fmt.Errorf("failed to decode message: %w", err)
		}

		switch msg.Type {
		case MessageEvent:
			if msg.Event == nil || msg.Event.SequenceID <= c.lastSequence {
				continue
			}
			c.lastSequence = msg.Event.SequenceID
			select {
			case eventChan <- *msg.Event:
			case <-ctx.Done():
				return ctx.Err()
			}

		case MessagePing:
			if err := c.sendToSocket(Event{Type: EventPong}); err != nil && !isConnectionError(err) {
				c.logger.Warn("failed to send pong", "error", err)
			}
		}
	}
}

// isConnectionError checks if an error is a network connection error
func isConnectionError(err error) bool {
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, ErrNotConnected)
}

// reconnect attempts to reconnect to the daemon with exponential backoff.
func (c *Client) reconnect(ctx context.Context) bool {
	delay := c.baseDelay

	for i := range c.maxRetries {
		select {
		case <-ctx.Done():
			return false
		case <-c.ctx.Done():
			return false
		case <-time.After(delay):
			c.mu.Lock()
			if c.conn != nil {
				_ = c.conn.Close()
				c.conn = nil
			}
			c.mu.Unlock()

			if err := c.Connect(ctx); err == nil {
				c.logger.Info("reconnected to daemon", "attempt", i+1)
				return true
			}

			c.logger.Debug("reconnection attempt failed", "attempt", i+1, "max", c.maxRetries, "retry_in", delay)
			delay *= 2
		}
	}

	return false
}

// Subscribe changes the subscription to a specific report.
// ReportID 0 means subscribe to all reports.
func (c *Client) Subscribe(reportID int) error {
	if c == nil {
		return ErrNotConnected
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	c.currentReportID = reportID

	if c.conn == nil {
		return ErrNotConnected
	}

	return c.encoder.Encode(Message{
		Version:   ProtocolVersion,
		Type:      MessageSubscribe,
		Subscribe: &SubscribeMessage{ReportID: reportID},
	})
}

// Close flushes pending events, closes the connection and stops all goroutines.
func (c *Client) Close() error {
	if c == nil {
		return nil
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	c.mu.Unlock()

	c.cancel()

	// Only wait for a batcher that was started
	started := true
	c.batcherOnce.Do(func() { started = false })
	if started {
		<-c.batcherDone
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil {
		err := c.conn.Close()
		c.conn = nil
		return err
	}

	return nil
}
