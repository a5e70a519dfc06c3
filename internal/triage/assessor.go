package triage

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"

	"careproxy/pkg/models"
)

// Assessor extracts structured triage assessments from conversation
// transcripts using an injected completion backend.
type Assessor struct {
	llm LLM
}

func NewAssessor(llm LLM) *Assessor {
	return &Assessor{llm: llm}
}

// Assess sends the transcript to the completion backend and returns the
// validated assessment. The call is not retried and nothing is cached.
func (a *Assessor) Assess(ctx context.Context, transcript string) (models.Assessment, error) {
	if strings.TrimSpace(transcript) == "" {
		slog.Error("empty transcript provided")
		return models.Assessment{}, ErrEmptyTranscript
	}

	slog.Info("starting triage assessment", "transcript_chars", len(transcript))

	reply, err := a.llm.Generate(ctx, triageAnalysisPrompt, "Analyze this conversation:\n\n"+transcript)
	if err != nil {
		return models.Assessment{}, &ServiceError{Err: err}
	}

	var assessment models.Assessment
	if err := json.Unmarshal([]byte(reply), &assessment); err != nil {
		slog.Error("failed to parse triage response as JSON", "error", err)
		return models.Assessment{}, &ParseError{RawBody: reply, Err: err}
	}

	assessment = Validate(assessment)

	level := "unknown"
	if assessment.UrgencyLevel != nil {
		level = *assessment.UrgencyLevel
	}
	slog.Info("assessment complete", "urgency_level", level)

	return assessment, nil
}
