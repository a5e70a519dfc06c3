// Package reports renders triage assessments into two human-readable
// documents: a plain-language summary for family caregivers and a structured
// clinical summary for physicians.
//
// Both renderers are pure functions of the assessment, the transcript and
// the generation timestamp: identical inputs produce byte-identical output.
// Rendering never fails; missing assessment fields degrade to placeholder
// text through the display-default helpers below.
package reports

import (
	"strings"
	"unicode"
)

var divider = strings.Repeat("━", 54)

// displayValue returns the value of an optional field, or def when the field
// is unset or empty. It never mutates the underlying record.
func displayValue(v *string, def string) string {
	if v == nil || *v == "" {
		return def
	}
	return *v
}

// bulletList formats items one per line as "  - item", or returns def when
// there are none.
func bulletList(items []string, def string) string {
	if len(items) == 0 {
		return def
	}

	lines := make([]string, len(items))
	for i, item := range items {
		lines[i] = "  - " + item
	}
	return strings.Join(lines, "\n")
}

var urgencyDisplays = map[string]string{
	"emergency": "🔴 EMERGENCY",
	"urgent":    "🟡 URGENT",
	"routine":   "🟢 ROUTINE",
	"monitor":   "⚪ MONITOR",
}

// urgencyDisplay maps an urgency level to its display form. The match is
// case-insensitive; unrecognized levels fall back to the monitor glyph with
// the level upper-cased.
func urgencyDisplay(level string) string {
	if display, ok := urgencyDisplays[strings.ToLower(level)]; ok {
		return display
	}
	return "⚪ " + strings.ToUpper(level)
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(strings.ToLower(s))
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
