package reports_test

import (
	"testing"
	"time"

	"careproxy/internal/reports"
	"careproxy/pkg/models"

	"github.com/stretchr/testify/assert"
)

var renderTime = time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func emergencyAssessment() models.Assessment {
	return models.Assessment{
		UrgencyLevel:   strPtr("emergency"),
		UrgencyEmoji:   strPtr("🔴"),
		ChiefComplaint: strPtr("severe chest pain"),
		KeySymptoms:    []string{"chest pain", "sweating"},
		SeverityScore:  intPtr(9),
		Duration:       strPtr("20 minutes"),
		RedFlags:       []string{"chest pain with sweating"},
		Recommendation: strPtr("Call 911 immediately"),
		Reasoning:      strPtr("Classic cardiac warning signs"),
		QuestionsAsked: []string{"When did the pain start?"},
	}
}

const transcript = "User: I have severe chest pain\n\nAgent: How long has this been going on?"

func TestCaregiverWarningBlockOmittedWithoutRedFlags(t *testing.T) {
	assessment := emergencyAssessment()
	assessment.RedFlags = []string{}

	report := reports.Caregiver(assessment, transcript, renderTime)

	assert.NotContains(t, report, "WARNING SIGNS TO WATCH FOR")
}

func TestCaregiverWarningBlockListsFlagsInOrder(t *testing.T) {
	assessment := emergencyAssessment()
	assessment.RedFlags = []string{"chest pain with sweating", "shortness of breath"}

	report := reports.Caregiver(assessment, transcript, renderTime)

	assert.Contains(t, report, "WARNING SIGNS TO WATCH FOR:\n  - chest pain with sweating\n  - shortness of breath")
}

func TestCaregiverUrgencyDisplay(t *testing.T) {
	tests := []struct {
		level   string
		display string
	}{
		{"emergency", "🔴 EMERGENCY"},
		{"urgent", "🟡 URGENT"},
		{"Urgent", "🟡 URGENT"},
		{"routine", "🟢 ROUTINE"},
		{"monitor", "⚪ MONITOR"},
		{"uncertain", "⚪ UNCERTAIN"},
	}

	for _, test := range tests {
		t.Run(test.level, func(t *testing.T) {
			assessment := emergencyAssessment()
			assessment.UrgencyLevel = strPtr(test.level)

			report := reports.Caregiver(assessment, transcript, renderTime)

			assert.Contains(t, report, test.display)
		})
	}
}

func TestCaregiverSummarySentence(t *testing.T) {
	report := reports.Caregiver(emergencyAssessment(), transcript, renderTime)

	assert.Contains(t, report, "We discussed severe chest pain. This has been going on for 20 minutes. The severity was rated 9 out of 10.")
	assert.Contains(t, report, "Generated: March 14, 2025 at 09:26 AM")
	assert.Contains(t, report, "RECOMMENDATION:\nCall 911 immediately")
}

func TestCaregiverDefaults(t *testing.T) {
	report := reports.Caregiver(models.Assessment{}, transcript, renderTime)

	assert.Contains(t, report, "We discussed your concern.")
	assert.NotContains(t, report, "This has been going on for")
	assert.NotContains(t, report, "out of 10")
	assert.Contains(t, report, "Chief concern: Your concern")
	assert.Contains(t, report, "Severity: Not specified")
	assert.Contains(t, report, "Duration: Not specified")
	assert.Contains(t, report, "Key symptoms: Not specified")
	assert.Contains(t, report, "Please consult with a healthcare provider")
	assert.Contains(t, report, "⚪ UNKNOWN")
}

func TestCaregiverAlwaysEndsWithDisclaimer(t *testing.T) {
	for _, assessment := range []models.Assessment{{}, emergencyAssessment()} {
		report := reports.Caregiver(assessment, transcript, renderTime)
		assert.Contains(t, report, "This assessment is for guidance only and does not replace medical advice.")
	}
}

func TestCaregiverDeterministic(t *testing.T) {
	first := reports.Caregiver(emergencyAssessment(), transcript, renderTime)
	second := reports.Caregiver(emergencyAssessment(), transcript, renderTime)

	assert.Equal(t, first, second)
}
