package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"careproxy/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAssessor struct {
	assessment models.Assessment
	err        error
}

func (f *fakeAssessor) Assess(ctx context.Context, transcript string) (models.Assessment, error) {
	if f.err != nil {
		return models.Assessment{}, f.err
	}
	return f.assessment, nil
}

type fakeStore struct {
	saved []models.ConversationRecord
	err   error
}

func (f *fakeStore) Save(record models.ConversationRecord) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, record)
	return nil
}

func strPtr(s string) *string { return &s }

func testAssessment() models.Assessment {
	return models.Assessment{
		UrgencyLevel:   strPtr("urgent"),
		UrgencyEmoji:   strPtr("🟡"),
		ChiefComplaint: strPtr("persistent cough"),
		KeySymptoms:    []string{"cough"},
		RedFlags:       []string{},
		Recommendation: strPtr("See a doctor today"),
		Reasoning:      strPtr("Symptoms warrant same-day attention"),
		QuestionsAsked: []string{},
	}
}

func TestPipelineSave(t *testing.T) {
	generatedAt := time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)
	sink := &fakeStore{}

	pipeline := NewPipeline(&fakeAssessor{assessment: testAssessment()}, sink)
	pipeline.now = func() time.Time { return generatedAt }

	record, err := pipeline.Save(context.Background(), "User: I have a cough")
	require.NoError(t, err)

	assert.Equal(t, "2025-03-14T09:26:53Z", record.Timestamp)
	assert.Equal(t, "User: I have a cough", record.Transcript)
	assert.Equal(t, testAssessment(), record.Triage)
	assert.Contains(t, record.CaregiverReport, "We discussed persistent cough.")
	assert.Contains(t, record.PhysicianReport, "Document ID: CPX-20250314092653")

	require.Len(t, sink.saved, 1)
	assert.Equal(t, record, sink.saved[0])
}

func TestPipelineAssessmentFailurePersistsNothing(t *testing.T) {
	sink := &fakeStore{}
	cause := errors.New("rate limited")

	pipeline := NewPipeline(&fakeAssessor{err: cause}, sink)

	_, err := pipeline.Save(context.Background(), "User: I have a cough")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Empty(t, sink.saved)
}

func TestPipelineStoreFailure(t *testing.T) {
	cause := errors.New("disk full")

	pipeline := NewPipeline(&fakeAssessor{assessment: testAssessment()}, &fakeStore{err: cause})

	_, err := pipeline.Save(context.Background(), "User: I have a cough")
	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
}
