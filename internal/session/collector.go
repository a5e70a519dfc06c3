package session

import (
	"context"
	"log/slog"
	"strings"

	"careproxy/pkg/models"
)

// Saver runs the post-conversation save pipeline on a completed transcript.
type Saver interface {
	Save(ctx context.Context, transcript string) (models.ConversationRecord, error)
}

// Collector accumulates utterance events into a chronological transcript and
// triggers the save pipeline exactly once when the session closes.
type Collector struct {
	saver Saver
}

func NewCollector(saver Saver) *Collector {
	return &Collector{saver: saver}
}

// Run consumes events until a close event arrives or the channel is closed.
// A session that closes with no utterances is skipped without error. Save
// failures are logged and returned; the collector does not retry.
func (c *Collector) Run(ctx context.Context, events <-chan Event) error {
	var lines []string

	for event := range events {
		switch event.Kind {
		case UtteranceTranscribed:
			slog.Info("user utterance transcribed", "session_id", event.SessionID, "chars", len(event.Text))
			lines = append(lines, "User: "+event.Text)

		case AgentUtteranceCommitted:
			slog.Info("agent utterance committed", "session_id", event.SessionID, "chars", len(event.Text))
			lines = append(lines, "Agent: "+event.Text)

		case SessionClosed:
			slog.Info("session closed", "session_id", event.SessionID, "reason", event.Reason)

			if len(lines) == 0 {
				slog.Info("no conversation content to save", "session_id", event.SessionID)
				return nil
			}

			transcript := strings.Join(lines, "\n\n")
			if _, err := c.saver.Save(ctx, transcript); err != nil {
				slog.Error("failed to save conversation", "session_id", event.SessionID, "error", err)
				return err
			}
			return nil
		}
	}

	return nil
}
