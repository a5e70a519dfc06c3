package conversation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"careproxy/internal/reports"
	"careproxy/pkg/models"
)

// Assessor produces a triage assessment from a transcript.
type Assessor interface {
	Assess(ctx context.Context, transcript string) (models.Assessment, error)
}

// Store persists completed conversation records.
type Store interface {
	Save(record models.ConversationRecord) error
}

// Pipeline runs the full post-conversation flow: triage assessment, report
// rendering, persistence. The flow is all-or-nothing per conversation: if
// any stage fails, nothing is persisted and the error is returned to the
// caller, which retains the transcript.
type Pipeline struct {
	assessor Assessor
	store    Store
	now      func() time.Time
}

func NewPipeline(assessor Assessor, store Store) *Pipeline {
	return &Pipeline{assessor: assessor, store: store, now: time.Now}
}

// Save assesses the transcript, renders both reports and persists the
// resulting record.
func (p *Pipeline) Save(ctx context.Context, transcript string) (models.ConversationRecord, error) {
	slog.Info("running triage assessment")
	assessment, err := p.assessor.Assess(ctx, transcript)
	if err != nil {
		return models.ConversationRecord{}, fmt.Errorf("triage assessment failed: %w", err)
	}

	slog.Info("generating reports")
	generatedAt := p.now()

	record := models.ConversationRecord{
		Timestamp:       generatedAt.Format(time.RFC3339),
		Transcript:      transcript,
		Triage:          assessment,
		CaregiverReport: reports.Caregiver(assessment, transcript, generatedAt),
		PhysicianReport: reports.Physician(assessment, transcript, generatedAt),
	}

	if err := p.store.Save(record); err != nil {
		return models.ConversationRecord{}, fmt.Errorf("failed to persist conversation: %w", err)
	}

	slog.Info("conversation saved", "timestamp", record.Timestamp)
	return record, nil
}
