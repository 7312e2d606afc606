// Package flow holds the static conversation tables for each persona.
package flow

import (
	"propertychat/internal/model"
)

// Actions an entry can trigger
const (
	ActionSearchProperties  = "search_properties"
	ActionNavigateToResults = "navigate_to_results"
	ActionUpdatePreferences = "update_preferences"
	ActionReorderResults    = "reorder_results"
	ActionGenerateListing   = "generate_listing"
	ActionCreateForm        = "create_form"
	ActionMarketInsights    = "provide_market_insights"
)

// FallbackIntent is reported when no entry matched
const FallbackIntent = "fallback"

// Table is an ordered pattern table plus the entry used when nothing matches
type Table struct {
	Persona  model.Persona
	Entries  []model.PatternEntry
	Fallback model.PatternEntry
	Opening  []string // suggestions shown before the first message
}

// Entry looks up an entry by intent name
func (t *Table) Entry(intent string) (model.PatternEntry, bool) {
	for _, e := range t.Entries {
		if e.Intent == intent {
			return e, true
		}
	}
	return model.PatternEntry{}, false
}

// Keywords returns every pattern of the named intents, in table order
func (t *Table) Keywords(intents ...string) []string {
	var out []string
	for _, intent := range intents {
		if e, ok := t.Entry(intent); ok {
			out = append(out, e.Patterns...)
		}
	}
	return out
}

// ForPersona returns the table for p, defaulting to the customer table
func ForPersona(p model.Persona) *Table {
	if p == model.PersonaSeller {
		return Seller
	}
	return Customer
}
