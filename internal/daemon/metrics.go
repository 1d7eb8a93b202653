package daemon

import (
	"sync/atomic"
	"time"
)

// Metrics counts what the daemon has relayed. All fields are atomic.
type Metrics struct {
	EventsReceived   atomic.Int64 // layout/report events published by editors
	EventsBroadcast  atomic.Int64 // events taken off the broadcast queue
	MessagesSent     atomic.Int64 // messages queued to a client
	MessagesDropped  atomic.Int64 // client send buffer was full
	ConnectedClients atomic.Int32
	StartTime        time.Time
}

// NewMetrics starts the uptime clock
func NewMetrics() *Metrics {
	return &Metrics{StartTime: time.Now()}
}

func (m *Metrics) IncEventsReceived()  { m.EventsReceived.Add(1) }
func (m *Metrics) IncEventsBroadcast() { m.EventsBroadcast.Add(1) }
func (m *Metrics) IncMessagesSent()    { m.MessagesSent.Add(1) }
func (m *Metrics) IncMessagesDropped() { m.MessagesDropped.Add(1) }

// SetConnectedClients records the live connection count
func (m *Metrics) SetConnectedClients(count int32) {
	m.ConnectedClients.Store(count)
}

// MetricsSnapshot is a point-in-time copy of Metrics, e.g. for the
// shutdown log line
type MetricsSnapshot struct {
	EventsReceived   int64         `json:"events_received"`
	EventsBroadcast  int64         `json:"events_broadcast"`
	MessagesSent     int64         `json:"messages_sent"`
	MessagesDropped  int64         `json:"messages_dropped"`
	ConnectedClients int32         `json:"connected_clients"`
	Uptime           time.Duration `json:"uptime"`
}

// GetSnapshot copies the counters
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		EventsReceived:   m.EventsReceived.Load(),
		EventsBroadcast:  m.EventsBroadcast.Load(),
		MessagesSent:     m.MessagesSent.Load(),
		MessagesDropped:  m.MessagesDropped.Load(),
		ConnectedClients: m.ConnectedClients.Load(),
		Uptime:           time.Since(m.StartTime).Round(time.Second),
	}
}
