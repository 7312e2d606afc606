package service

import (
	"strings"

	"propertychat/internal/flow"
	"propertychat/internal/model"
)

// IntentMatcher resolves a message to a pattern table entry.
// Matching is case-insensitive substring containment; table order decides ties.
type IntentMatcher struct{}

// NewIntentMatcher creates a new intent matcher
func NewIntentMatcher() *IntentMatcher {
	return &IntentMatcher{}
}

// Match returns the first entry with a pattern contained in text, or the table's fallback entry
func (m *IntentMatcher) Match(table *flow.Table, text string) model.IntentMatch {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower != "" {
		for _, entry := range table.Entries {
			for _, pattern := range entry.Patterns {
				p := strings.ToLower(pattern)
				if p != "" && strings.Contains(lower, p) {
					return model.IntentMatch{
						Entry:   entry,
						Intent:  entry.Intent,
						Keyword: p,
					}
				}
			}
		}
	}

	return model.IntentMatch{
		Entry:    table.Fallback,
		Intent:   table.Fallback.Intent,
		Fallback: true,
	}
}
