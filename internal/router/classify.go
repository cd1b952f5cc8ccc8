package router

import (
	"fmt"
	"regexp"
	"strings"
)

var orderIDPattern = regexp.MustCompile(`ord\d+`)

// BuildPrompt renders the classification prompt for query.
func BuildPrompt(query string) string {
	return fmt.Sprintf(PromptClassify, query)
}

// Normalize maps raw model text to an intent by containment.
// FAQ wins when both labels occur.
func Normalize(raw string) (Intent, bool) {
	upper := strings.ToUpper(raw)
	switch {
	case strings.Contains(upper, string(IntentFAQ)):
		return IntentFAQ, true
	case strings.Contains(upper, string(IntentOrder)):
		return IntentOrder, true
	default:
		return IntentInvalid, false
	}
}

// NormalizeExact accepts only a bare label, ignoring case, surrounding space and a trailing period.
func NormalizeExact(raw string) (Intent, bool) {
	label := strings.TrimSuffix(strings.ToUpper(strings.TrimSpace(raw)), ".")
	switch Intent(label) {
	case IntentFAQ, IntentOrder:
		return Intent(label), true
	default:
		return IntentInvalid, false
	}
}

// Normalize applies the mode's matching rule.
func (m MatchMode) Normalize(raw string) (Intent, bool) {
	if m == MatchExact {
		return NormalizeExact(raw)
	}
	return Normalize(raw)
}

// Label is the label reported for raw model text: the intent when the text
// normalizes, otherwise the trimmed upper-cased text itself.
func (m MatchMode) Label(raw string) (string, bool) {
	if intent, ok := m.Normalize(raw); ok {
		return string(intent), true
	}
	return strings.ToUpper(strings.TrimSpace(raw)), false
}

// FallbackIntent guesses the intent from keywords when the model cannot be used.
func FallbackIntent(query string) Intent {
	lower := strings.ToLower(query)
	if orderIDPattern.MatchString(lower) {
		return IntentOrder
	}
	for _, kw := range fallbackOrderKeywords {
		if strings.Contains(lower, kw) {
			return IntentOrder
		}
	}
	return IntentFAQ
}
