package service

import (
	"testing"

	"propertychat/internal/flow"
	"propertychat/internal/model"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     map[string]string
		want     string
	}{
		{
			name:     "Substitutes known key",
			template: "Great choice! {property_type} can be wonderful.",
			vars:     map[string]string{"property_type": "condo"},
			want:     "Great choice! condo can be wonderful.",
		},
		{
			name:     "Missing key stays literal",
			template: "With your budget of {budget}, how many bedrooms?",
			vars:     map[string]string{},
			want:     "With your budget of {budget}, how many bedrooms?",
		},
		{
			name:     "Dollar prefix survives",
			template: "Excellent! ${price} is noted.",
			vars:     map[string]string{"price": "850,000"},
			want:     "Excellent! $850,000 is noted.",
		},
		{
			name:     "Repeated keys",
			template: "{bedrooms} bed, {bathrooms} bath, {bedrooms} again",
			vars:     map[string]string{"bedrooms": "3", "bathrooms": "2"},
			want:     "3 bed, 2 bath, 3 again",
		},
		{
			name:     "No placeholders",
			template: "Plain text",
			vars:     nil,
			want:     "Plain text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Render(tt.template, tt.vars); got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResponseGenerator_First(t *testing.T) {
	gen := NewResponseGenerator(SelectFirst)
	entry, _ := flow.Customer.Entry("greeting")

	for i := 0; i < 3; i++ {
		reply := gen.Generate(entry, nil)
		if reply.Content != entry.Responses[0] {
			t.Fatalf("Content = %q, want first response", reply.Content)
		}
	}
	reply := gen.Generate(entry, nil)
	if len(reply.QuickReplies) != 4 || reply.QuickReplies[0] != "I'm looking for a house" {
		t.Errorf("Unexpected quick replies: %v", reply.QuickReplies)
	}
}

func TestResponseGenerator_RoundRobin(t *testing.T) {
	gen := NewResponseGenerator(SelectRoundRobin)
	entry := model.PatternEntry{Intent: "x", Responses: []string{"a", "b", "c"}}
	other := model.PatternEntry{Intent: "y", Responses: []string{"1", "2"}}

	var got []string
	for i := 0; i < 4; i++ {
		got = append(got, gen.Generate(entry, nil).Content)
	}
	want := []string{"a", "b", "c", "a"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Round robin sequence = %v, want %v", got, want)
		}
	}

	if c := gen.Generate(other, nil).Content; c != "1" {
		t.Errorf("Counters must be per intent, got %q", c)
	}
}

func TestResponseGenerator_RandomStaysInTable(t *testing.T) {
	gen := NewResponseGenerator(SelectRandom)
	entry, _ := flow.Customer.Entry("location")

	allowed := make(map[string]bool)
	for _, r := range entry.Responses {
		allowed[r] = true
	}
	for i := 0; i < 20; i++ {
		if c := gen.Generate(entry, nil).Content; !allowed[c] {
			t.Fatalf("Random pick %q is not one of the entry's responses", c)
		}
	}
}

func TestResponseGenerator_NoResponses(t *testing.T) {
	gen := NewResponseGenerator(SelectFirst)
	reply := gen.Generate(model.PatternEntry{Intent: "empty", QuickReplies: []string{"x"}}, nil)
	if reply.Content != "" || len(reply.QuickReplies) != 1 {
		t.Errorf("Unexpected reply: %+v", reply)
	}
}
