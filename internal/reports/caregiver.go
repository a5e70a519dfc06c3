package reports

import (
	"fmt"
	"strings"
	"time"

	"careproxy/pkg/models"
)

// Caregiver renders a friendly, plain-language report for family caregivers:
// what was discussed, how urgent it is, and what to do next. The warning
// signs block is emitted only when red flags were identified.
func Caregiver(a models.Assessment, transcript string, generatedAt time.Time) string {
	timestamp := generatedAt.Format("January 02, 2006 at 03:04 PM")

	chiefComplaint := displayValue(a.ChiefComplaint, "your concern")
	duration := displayValue(a.Duration, "Not specified")

	severityDisplay := "Not specified"
	if a.SeverityScore != nil {
		severityDisplay = fmt.Sprintf("%d/10", *a.SeverityScore)
	}

	symptomsDisplay := "Not specified"
	if len(a.KeySymptoms) > 0 {
		symptomsDisplay = strings.Join(a.KeySymptoms, ", ")
	}

	recommendation := displayValue(a.Recommendation, "Please consult with a healthcare provider")

	warningSection := ""
	if len(a.RedFlags) > 0 {
		warningSection = fmt.Sprintf("\nWARNING SIGNS TO WATCH FOR:\n%s\n", bulletList(a.RedFlags, "None"))
	}

	urgency := urgencyDisplay(displayValue(a.UrgencyLevel, "unknown"))

	summaryParts := []string{fmt.Sprintf("We discussed %s.", chiefComplaint)}
	if a.Duration != nil && *a.Duration != "" {
		summaryParts = append(summaryParts, fmt.Sprintf("This has been going on for %s.", *a.Duration))
	}
	if a.SeverityScore != nil {
		summaryParts = append(summaryParts, fmt.Sprintf("The severity was rated %d out of 10.", *a.SeverityScore))
	}
	plainSummary := strings.Join(summaryParts, " ")

	report := fmt.Sprintf(`
📋 CAREPROXY ASSESSMENT SUMMARY
Generated: %s

%s

WHAT WE DISCUSSED:
%s

%s

RECOMMENDATION:
%s
%s
WHAT WE LEARNED:
  - Chief concern: %s
  - Severity: %s
  - Duration: %s
  - Key symptoms: %s

%s

⚠️  This assessment is for guidance only and does not replace medical advice.
    If symptoms worsen or you're concerned, seek medical attention immediately.
`,
		timestamp,
		divider,
		plainSummary,
		urgency,
		recommendation,
		warningSection,
		capitalize(chiefComplaint),
		severityDisplay,
		duration,
		symptomsDisplay,
		divider,
	)

	return strings.TrimSpace(report)
}
