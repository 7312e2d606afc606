package model

// PatternEntry is one row of a persona's pattern table. Tables are built once and never mutated.
type PatternEntry struct {
	Intent       string   `json:"intent"`
	Patterns     []string `json:"patterns"`
	Responses    []string `json:"responses"`
	QuickReplies []string `json:"quick_replies,omitempty"`
	FollowUp     string   `json:"follow_up,omitempty"`
	Actions      []string `json:"actions,omitempty"`
	Slots        []string `json:"slots,omitempty"` // criteria keys or seller form fields this intent fills
}

// HasAction reports whether the entry triggers action
func (e PatternEntry) HasAction(action string) bool {
	for _, a := range e.Actions {
		if a == action {
			return true
		}
	}
	return false
}

// NextIntent is the intent the conversation expects after this entry
func (e PatternEntry) NextIntent() string {
	if e.FollowUp != "" {
		return e.FollowUp
	}
	return e.Intent
}

// IntentMatch is the outcome of testing one message against a pattern table
type IntentMatch struct {
	Entry    PatternEntry `json:"-"`
	Intent   string       `json:"intent"`
	Keyword  string       `json:"keyword,omitempty"` // the pattern that matched, lowercased
	Fallback bool         `json:"fallback"`
}

// Reply is a generated AI turn
type Reply struct {
	Content      string   `json:"content"`
	QuickReplies []string `json:"quick_replies,omitempty"`
}
