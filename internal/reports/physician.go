package reports

import (
	"fmt"
	"strings"
	"time"

	"careproxy/pkg/models"
)

// Physician renders a structured clinical summary: chief complaint, history
// of present illness, itemized symptom assessment, triage reasoning and the
// full conversation transcript. The document ID is derived from the
// generation timestamp in the form CPX-<YYYYMMDDHHMMSS>.
func Physician(a models.Assessment, transcript string, generatedAt time.Time) string {
	timestampDisplay := generatedAt.Format("2006-01-02 15:04:05") + " UTC"
	documentID := "CPX-" + generatedAt.Format("20060102150405")

	chiefComplaint := displayValue(a.ChiefComplaint, "Not specified")

	severityDisplay := "Not assessed"
	if a.SeverityScore != nil {
		severityDisplay = fmt.Sprintf("%d/10", *a.SeverityScore)
	}

	duration := displayValue(a.Duration, "Not specified")
	urgencyLevel := displayValue(a.UrgencyLevel, "Not determined")
	reasoning := displayValue(a.Reasoning, "No reasoning provided")
	recommendation := displayValue(a.Recommendation, "Not specified")

	symptomsDisplay := bulletList(a.KeySymptoms, "None reported")
	redFlagsDisplay := bulletList(a.RedFlags, "None identified")
	questionsDisplay := bulletList(a.QuestionsAsked, "Not documented")

	// History of present illness: fixed clause order, red-flags clause
	// always present with one of two phrasings.
	var hpiParts []string
	if a.ChiefComplaint != nil && *a.ChiefComplaint != "" {
		hpiParts = append(hpiParts, fmt.Sprintf("Patient/caregiver reports %s.", *a.ChiefComplaint))
	}
	if a.Duration != nil && *a.Duration != "" {
		hpiParts = append(hpiParts, fmt.Sprintf("Symptoms have been present for %s.", *a.Duration))
	}
	if a.SeverityScore != nil {
		hpiParts = append(hpiParts, fmt.Sprintf("Severity rated as %d/10 by patient/caregiver.", *a.SeverityScore))
	}
	if len(a.KeySymptoms) > 0 {
		hpiParts = append(hpiParts, fmt.Sprintf("Associated symptoms include: %s.", strings.Join(a.KeySymptoms, ", ")))
	}
	if len(a.RedFlags) == 0 {
		hpiParts = append(hpiParts, "No red flag symptoms were identified during triage.")
	} else {
		hpiParts = append(hpiParts, fmt.Sprintf("Red flags identified: %s.", strings.Join(a.RedFlags, ", ")))
	}

	hpiNarrative := "Insufficient information obtained."
	if len(hpiParts) > 0 {
		hpiNarrative = strings.Join(hpiParts, " ")
	}

	report := fmt.Sprintf(`
PATIENT ENCOUNTER SUMMARY - CAREPROXY
Generated: %s
Document ID: %s

%s

CHIEF COMPLAINT:
%s

HISTORY OF PRESENT ILLNESS:
%s

SYMPTOM ASSESSMENT:
  - Severity: %s
  - Duration: %s
  - Onset: Not specified
  - Associated symptoms:
%s

RED FLAGS IDENTIFIED:
%s

TRIAGE ASSESSMENT:
  Level: %s
  Reasoning: %s

CLINICAL QUESTIONS ASKED:
%s

RECOMMENDATIONS:
%s

%s

CONVERSATION TRANSCRIPT:

%s

%s

DISCLAIMER: This is an automated triage assessment generated by CareProxy.
Clinical correlation is required. This document does not constitute a
medical diagnosis or replace professional medical evaluation.
`,
		timestampDisplay,
		documentID,
		divider,
		chiefComplaint,
		hpiNarrative,
		severityDisplay,
		duration,
		symptomsDisplay,
		redFlagsDisplay,
		strings.ToUpper(urgencyLevel),
		reasoning,
		questionsDisplay,
		recommendation,
		divider,
		strings.TrimSpace(transcript),
		divider,
	)

	return strings.TrimSpace(report)
}
