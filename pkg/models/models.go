package models

// Assessment is the structured triage record extracted from a conversation
// transcript. Scalar fields use pointers so that "not provided by the model"
// serializes as null rather than a zero value; in particular SeverityScore
// distinguishes "not assessed" (nil) from a numeric score.
type Assessment struct {
	UrgencyLevel   *string  `json:"urgency_level"`
	UrgencyEmoji   *string  `json:"urgency_emoji"`
	ChiefComplaint *string  `json:"chief_complaint"`
	KeySymptoms    []string `json:"key_symptoms"`
	SeverityScore  *int     `json:"severity_score"`
	Duration       *string  `json:"duration"`
	RedFlags       []string `json:"red_flags"`
	Recommendation *string  `json:"recommendation"`
	Reasoning      *string  `json:"reasoning"`
	QuestionsAsked []string `json:"questions_asked"`
}

// ConversationRecord is the persisted unit for one completed conversation.
// Records are immutable after creation: the latest slot is overwritten with
// new records and history is append-only with a cap.
type ConversationRecord struct {
	Timestamp       string     `json:"timestamp"` // RFC 3339
	Transcript      string     `json:"transcript"`
	Triage          Assessment `json:"triage"`
	CaregiverReport string     `json:"caregiver_report"`
	PhysicianReport string     `json:"physician_report"`
}
