package session

import (
	"time"

	"github.com/google/uuid"
)

// EventKind identifies the type of a session event.
type EventKind string

const (
	// UtteranceTranscribed carries a transcribed user utterance.
	UtteranceTranscribed EventKind = "utterance_transcribed"
	// AgentUtteranceCommitted carries an agent utterance that was spoken
	// to completion.
	AgentUtteranceCommitted EventKind = "agent_utterance_committed"
	// SessionClosed signals the end of the session and triggers the save
	// pipeline.
	SessionClosed EventKind = "session_closed"
)

// Event is a single typed occurrence within a voice session. The voice
// provider publishes an ordered stream of utterance events followed by one
// close event.
type Event struct {
	SessionID uuid.UUID
	Kind      EventKind
	Text      string // utterance content, empty for close events
	Reason    string // close reason, set only on close events
	Time      time.Time
}

// EventQueue is the in-process buffered queue connecting the voice-session
// provider to the conversation collector.
type EventQueue struct {
	events chan Event
}

func NewEventQueue() *EventQueue {
	return &EventQueue{
		events: make(chan Event, 100),
	}
}

func (q *EventQueue) PublishUserUtterance(sessionID uuid.UUID, text string) {
	q.events <- Event{SessionID: sessionID, Kind: UtteranceTranscribed, Text: text, Time: time.Now()}
}

func (q *EventQueue) PublishAgentUtterance(sessionID uuid.UUID, text string) {
	q.events <- Event{SessionID: sessionID, Kind: AgentUtteranceCommitted, Text: text, Time: time.Now()}
}

func (q *EventQueue) PublishClose(sessionID uuid.UUID, reason string) {
	q.events <- Event{SessionID: sessionID, Kind: SessionClosed, Reason: reason, Time: time.Now()}
}

func (q *EventQueue) Events() <-chan Event {
	return q.events
}

func (q *EventQueue) Close() {
	if q.events != nil {
		close(q.events)
		q.events = nil
	}
}
