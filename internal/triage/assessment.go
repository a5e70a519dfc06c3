package triage

import (
	"careproxy/pkg/models"
)

// urgencyEmojis is the canonical urgency level to emoji mapping. The emoji
// returned by the model is never trusted; it is recomputed from the level.
var urgencyEmojis = map[string]string{
	"emergency": "🔴",
	"urgent":    "🟡",
	"routine":   "🟢",
	"monitor":   "⚪",
}

// Validate fills gaps in an assessment decoded from a model reply so that
// downstream rendering never needs existence checks. It never fails.
//
// Sequences missing from the reply become empty, not nil, so they serialize
// as []. The urgency emoji is recomputed from the urgency level whenever the
// level is one of the four canonical values; otherwise whatever emoji was
// supplied is left untouched. Severity scores outside 1..10 are discarded,
// which removes the ambiguity between "not assessed" and a score of zero.
func Validate(a models.Assessment) models.Assessment {
	if a.KeySymptoms == nil {
		a.KeySymptoms = []string{}
	}
	if a.RedFlags == nil {
		a.RedFlags = []string{}
	}
	if a.QuestionsAsked == nil {
		a.QuestionsAsked = []string{}
	}

	if a.UrgencyLevel != nil {
		if emoji, ok := urgencyEmojis[*a.UrgencyLevel]; ok {
			a.UrgencyEmoji = &emoji
		}
	}

	if a.SeverityScore != nil && (*a.SeverityScore < 1 || *a.SeverityScore > 10) {
		a.SeverityScore = nil
	}

	return a
}
