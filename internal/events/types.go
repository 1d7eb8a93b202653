package events

import "time"

// ProtocolVersion is bumped whenever Message changes incompatibly
const ProtocolVersion = 1

// EventType indicates what kind of change occurred
type EventType string

const (
	EventReportChanged EventType = "report_changed"
	EventLayoutChanged EventType = "layout_changed"
	EventPing          EventType = "ping"
	EventPong          EventType = "pong"
)

// Event represents a change notification for one report
type Event struct {
	Type       EventType
	ReportID   int       // 0 = several or all reports
	Version    int       // layout version after the change, when known
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Assigned by the daemon, monotonically increasing
}

// SubscribeMessage is sent by clients to subscribe to specific report updates
type SubscribeMessage struct {
	ReportID int // 0 = all reports, >0 = specific report
}

// Message wraps events and control messages for wire protocol
type Message struct {
	Version   int               `json:",omitempty"`
	Type      string            // "event", "subscribe", "ack", "ping", "pong"
	Event     *Event            `json:",omitempty"`
	Subscribe *SubscribeMessage `json:",omitempty"`
}

// Wire message types
const (
	MessageEvent     = "event"
	MessageSubscribe = "subscribe"
	MessageAck       = "ack"
	MessagePing      = "ping"
	MessagePong      = "pong"
)
