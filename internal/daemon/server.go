// Package daemon fans report change events out to every connected editor
package daemon

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/reportgrid/internal/events"
)

// ErrBroadcastFull is returned when the broadcast queue cannot take an event
var ErrBroadcastFull = errors.New("broadcast channel full")

// client represents a connected client to the daemon
type client struct {
	conn         net.Conn
	send         chan events.Message
	subscription events.SubscribeMessage
	lastPong     time.Time
	closed       bool
	mu           sync.Mutex // Protects subscription, lastPong, closed and sends
}

// envelope carries an event together with the client that produced it
type envelope struct {
	event  events.Event
	origin *client
}

// Server is the reportgrid event daemon
type Server struct {
	socketPath       string
	listener         net.Listener
	clients          map[*client]struct{}
	mu               sync.RWMutex
	broadcast        chan envelope
	metrics          *Metrics
	sequenceCounter  atomic.Int64
	clientBufferSize int
	pingInterval     time.Duration
	staleAfter       time.Duration
	logger           *slog.Logger
	shutdownOnce     sync.Once
}

// getEnvInt reads a positive integer from an environment variable
func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultVal
}

// NewServer creates the socket and returns a server ready to Start
func NewServer(socketPath string, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if err := os.MkdirAll(filepath.Dir(socketPath), 0o700); err != nil {
		return nil, fmt.Errorf("failed to create socket directory: %w", err)
	}

	// Remove stale socket file if it exists
	if err := os.Remove(socketPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to remove stale socket: %w", err)
	}

	listener, err := (&net.ListenConfig{}).Listen(context.Background(), "unix", socketPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create socket listener: %w", err)
	}

	return &Server{
		socketPath:       socketPath,
		listener:         listener,
		clients:          make(map[*client]struct{}),
		broadcast:        make(chan envelope, getEnvInt("REPORTGRID_DAEMON_BROADCAST_BUFFER", 100)),
		metrics:          NewMetrics(),
		clientBufferSize: getEnvInt("REPORTGRID_DAEMON_CLIENT_BUFFER", 10),
		pingInterval:     30 * time.Second,
		staleAfter:       90 * time.Second,
		logger:           logger,
	}, nil
}

// Metrics exposes the daemon's counters
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Start runs the accept, broadcast and health loops until ctx is cancelled
// or accepting fails, then shuts the server down.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("daemon starting", "socket", s.socketPath)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.acceptLoop(gctx) })
	g.Go(func() error { return s.broadcastLoop(gctx) })
	g.Go(func() error { return s.monitorHealth(gctx) })
	g.Go(func() error {
		// Unblocks Accept
		<-gctx.Done()
		_ = s.listener.Close()
		return nil
	})

	err := g.Wait()
	if shutdownErr := s.Shutdown(); err == nil {
		err = shutdownErr
	}
	return err
}

// acceptLoop accepts incoming client connections
func (s *Server) acceptLoop(ctx context.Context) error {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept error: %w", err)
		}

		c := &client{
			conn:     conn,
			send:     make(chan events.Message, s.clientBufferSize),
			lastPong: time.Now(),
		}

		s.mu.Lock()
		s.clients[c] = struct{}{}
		count := len(s.clients)
		s.mu.Unlock()
		s.metrics.SetConnectedClients(int32(count))

		s.logger.Debug("client connected", "clients", count)

		go s.handleClient(c)
		go s.clientWriter(c)
	}
}

// broadcastLoop stamps events with a sequence number and hands them to every
// subscribed client except the one that sent them
func (s *Server) broadcastLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case env := <-s.broadcast:
			event := env.event
			event.SequenceID = s.sequenceCounter.Add(1)
			if event.Timestamp.IsZero() {
				event.Timestamp = time.Now()
			}
			s.metrics.IncEventsBroadcast()

			msg := events.Message{
				Version: events.ProtocolVersion,
				Type:    events.MessageEvent,
				Event:   &event,
			}

			for _, c := range s.snapshotClients() {
				if c == env.origin || !c.subscribedTo(event.ReportID) {
					continue
				}
				if !s.sendToClient(c, msg) {
					s.logger.Warn("client send queue full, event dropped", "report_id", event.ReportID)
				}
			}
		}
	}
}

// subscribedTo reports whether an event for reportID should reach the client.
// Zero on either side means every report.
func (c *client) subscribedTo(reportID int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	sub := c.subscription.ReportID
	return reportID == 0 || sub == 0 || sub == reportID
}

// handleClient reads messages from a connected client
func (s *Server) handleClient(c *client) {
	defer func() {
		s.removeClient(c)
		s.logger.Debug("client disconnected", "clients", s.getClientCount())
	}()

	decoder := json.NewDecoder(c.conn)
	for {
		var msg events.Message
		if err := decoder.Decode(&msg); err != nil {
			return
		}

		if msg.Version != 0 && msg.Version != events.ProtocolVersion {
			s.logger.Warn("protocol version mismatch", "got", msg.Version, "want", events.ProtocolVersion)
		}

		switch msg.Type {
		case events.MessageEvent:
			if msg.Event == nil {
				continue
			}
			s.metrics.IncEventsReceived()
			select {
			case s.broadcast <- envelope{event: *msg.Event, origin: c}:
			default:
				s.logger.Warn("broadcast channel full")
			}

		case events.MessageSubscribe:
			if msg.Subscribe == nil {
				continue
			}
			c.mu.Lock()
			c.subscription = *msg.Subscribe
			c.mu.Unlock()
			s.sendToClient(c, events.Message{Version: events.ProtocolVersion, Type: events.MessageAck})
			s.logger.Debug("client subscribed", "report_id", msg.Subscribe.ReportID)

		case events.MessagePong:
			c.mu.Lock()
			c.lastPong = time.Now()
			c.mu.Unlock()
		}
	}
}

// clientWriter sends messages to a client
func (s *Server) clientWriter(c *client) {
	encoder := json.NewEncoder(c.conn)
	for msg := range c.send {
		if err := encoder.Encode(msg); err != nil {
			return
		}
	}
}

// monitorHealth pings clients and drops those that stop answering
func (s *Server) monitorHealth(ctx context.Context) error {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()

	ping := events.Message{Version: events.ProtocolVersion, Type: events.MessagePing}

	for {
		select {
		case <-ctx.Done():
			return nil

		case now := <-ticker.C:
			for _, c := range s.snapshotClients() {
				c.mu.Lock()
				silent := now.Sub(c.lastPong)
				c.mu.Unlock()

				if silent > s.staleAfter {
					s.logger.Info("removing stale client", "silent_for", silent)
					s.removeClient(c)
					continue
				}
				s.sendToClient(c, ping)
			}
		}
	}
}

// Broadcast queues an event for every subscribed client (non-blocking)
func (s *Server) Broadcast(event events.Event) error {
	select {
	case s.broadcast <- envelope{event: event}:
		return nil
	default:
		return ErrBroadcastFull
	}
}

// Shutdown closes every connection and removes the socket file
func (s *Server) Shutdown() error {
	var err error
	s.shutdownOnce.Do(func() {
		s.logger.Info("shutting down daemon")

		if closeErr := s.listener.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
			err = closeErr
		}

		for _, c := range s.snapshotClients() {
			s.removeClient(c)
		}

		if removeErr := os.Remove(s.socketPath); removeErr != nil && !errors.Is(removeErr, fs.ErrNotExist) {
			s.logger.Warn("failed to remove socket file", "error", removeErr)
		}
	})
	return err
}

func (s *Server) snapshotClients() []*client {
	s.mu.RLock()
	defer s.mu.RUnlock()
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	return clients
}

func (s *Server) getClientCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.clients)
}

// removeClient safely removes a client from the server
func (s *Server) removeClient(c *client) {
	s.mu.Lock()
	delete(s.clients, c)
	count := len(s.clients)
	s.mu.Unlock()
	s.metrics.SetConnectedClients(int32(count))

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	_ = c.conn.Close()
	close(c.send)
}

// sendToClient attempts a non-blocking send; false means the message was dropped
func (s *Server) sendToClient(c *client, msg events.Message) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		s.metrics.IncMessagesSent()
		return true
	default:
		s.metrics.IncMessagesDropped()
		return false
	}
}
