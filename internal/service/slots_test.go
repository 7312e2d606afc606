package service

import (
	"testing"

	"propertychat/internal/flow"
	"propertychat/internal/model"
)

func TestParseBudget(t *testing.T) {
	tests := []struct {
		text      string
		wantMin   float64
		wantMax   float64
		wantLabel string
		wantOK    bool
	}{
		{"Under $500k", 0, 500000, "under $500K", true},
		{"$500k - $1M", 500000, 1000000, "$500K - $1M", true},
		{"$1M - $2M", 1000000, 2000000, "$1M - $2M", true},
		{"Above $2M", 2000000, 0, "over $2M", true},
		{"my budget is 1.5M", 0, 1500000, "$1.5M", true},
		{"around 2 million", 0, 2000000, "$2M", true},
		{"budget 850000", 0, 850000, "$850K", true},
		{"3 bedrooms please", 0, 0, "", false},
		{"zip 94107", 0, 0, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			rng, label, ok := ParseBudget(tt.text)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if !ok {
				return
			}
			if rng.Min != tt.wantMin || rng.Max != tt.wantMax {
				t.Errorf("range = %+v, want min %v max %v", *rng, tt.wantMin, tt.wantMax)
			}
			if label != tt.wantLabel {
				t.Errorf("label = %q, want %q", label, tt.wantLabel)
			}
		})
	}
}

func TestFormatThousands(t *testing.T) {
	tests := map[float64]string{
		0:       "0",
		950:     "950",
		850000:  "850,000",
		1200000: "1,200,000",
	}
	for in, want := range tests {
		if got := FormatThousands(in); got != want {
			t.Errorf("FormatThousands(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestSlotExtractor_Customer(t *testing.T) {
	x := NewSlotExtractor()
	matcher := NewIntentMatcher()

	t.Run("Type, rooms and place", func(t *testing.T) {
		text := "A 3 bedroom townhouse in Mountain View with 2 baths"
		slots := x.ExtractCustomer(matcher.Match(flow.Customer, text), text)
		c := slots.Criteria
		if c.PropertyType != "townhouse" {
			t.Errorf("PropertyType = %q, want townhouse", c.PropertyType)
		}
		if c.Bedrooms == nil || *c.Bedrooms != 3 {
			t.Errorf("Bedrooms = %v, want 3", c.Bedrooms)
		}
		if c.Bathrooms == nil || *c.Bathrooms != 2 {
			t.Errorf("Bathrooms = %v, want 2", c.Bathrooms)
		}
		if c.Location != "Mountain View" {
			t.Errorf("Location = %q, want Mountain View", c.Location)
		}
	})

	t.Run("Number words and plus", func(t *testing.T) {
		for text, want := range map[string]int{"4+ bedrooms": 4, "three bed place": 3, "1 bedroom": 1} {
			slots := x.ExtractCustomer(matcher.Match(flow.Customer, text), text)
			if slots.Criteria.Bedrooms == nil || *slots.Criteria.Bedrooms != want {
				t.Errorf("%q: Bedrooms = %v, want %d", text, slots.Criteria.Bedrooms, want)
			}
		}
	})

	t.Run("Features", func(t *testing.T) {
		text := "Garden/yard"
		slots := x.ExtractCustomer(matcher.Match(flow.Customer, text), text)
		if len(slots.Criteria.Features) != 2 {
			t.Errorf("Features = %v, want garden and yard", slots.Criteria.Features)
		}
	})

	t.Run("Bare area word is a preference", func(t *testing.T) {
		text := "Downtown area"
		slots := x.ExtractCustomer(matcher.Match(flow.Customer, text), text)
		if slots.Criteria.Location != "" {
			t.Errorf("Location = %q, want empty", slots.Criteria.Location)
		}
		if slots.Preferences.Neighborhood != "downtown" {
			t.Errorf("Neighborhood = %q, want downtown", slots.Preferences.Neighborhood)
		}
	})

	t.Run("Style and family", func(t *testing.T) {
		text := "classic look"
		slots := x.ExtractCustomer(matcher.Match(flow.Customer, text), text)
		if slots.Preferences.Style != "classic" {
			t.Errorf("Style = %q, want classic", slots.Preferences.Style)
		}

		text = "we have kids"
		slots = x.ExtractCustomer(matcher.Match(flow.Customer, text), text)
		if slots.Preferences.Priority != "family" {
			t.Errorf("Priority = %q, want family", slots.Preferences.Priority)
		}
	})

	t.Run("Nothing found", func(t *testing.T) {
		text := "xyz"
		slots := x.ExtractCustomer(matcher.Match(flow.Customer, text), text)
		if !slots.Criteria.IsEmpty() {
			t.Errorf("Expected empty criteria, got %+v", slots.Criteria)
		}
	})
}

func TestSlotExtractor_Seller(t *testing.T) {
	x := NewSlotExtractor()
	matcher := NewIntentMatcher()

	tests := []struct {
		name string
		text string
		want model.FormData
	}{
		{
			name: "Property type",
			text: "It's a townhouse",
			want: model.FormData{model.FieldPropertyType: "Townhouse"},
		},
		{
			name: "Address",
			text: "123 Main Street, Austin, TX 78701",
			want: model.FormData{
				model.FieldAddress: "123 Main Street",
				model.FieldCity:    "Austin",
				model.FieldState:   "TX",
				model.FieldZipCode: "78701",
			},
		},
		{
			name: "Rooms",
			text: "3 bed, 2 bath",
			want: model.FormData{model.FieldBedrooms: "3", model.FieldBathrooms: "2"},
		},
		{
			name: "Square footage",
			text: "about 1,850 sqft",
			want: model.FormData{model.FieldSqft: "1850"},
		},
		{
			name: "Price",
			text: "asking $750,000",
			want: model.FormData{model.FieldPrice: "750000"},
		},
		{
			name: "Features",
			text: "Hardwood floors and a garden",
			want: model.FormData{model.FieldFeatures: "Hardwood floors, Garden"},
		},
		{
			name: "Description takes the raw message",
			text: "  A unique sun-filled corner home  ",
			want: model.FormData{model.FieldDescription: "A unique sun-filled corner home"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := x.ExtractSeller(matcher.Match(flow.Seller, tt.text), tt.text)
			for k, v := range tt.want {
				if got[k] != v {
					t.Errorf("%s = %q, want %q (all: %v)", k, got[k], v, got)
				}
			}
		})
	}
}

func TestSlotExtractor_FieldsFollowEntrySlots(t *testing.T) {
	x := NewSlotExtractor()
	text := "Quiet street near the park"

	t.Run("Seller entry without slots fills nothing raw", func(t *testing.T) {
		match := model.IntentMatch{
			Entry:   model.PatternEntry{Intent: "notes", Patterns: []string{"quiet"}},
			Intent:  "notes",
			Keyword: "quiet",
		}
		got := x.ExtractSeller(match, text)
		if _, ok := got[model.FieldDescription]; ok {
			t.Errorf("description filled without a description slot: %v", got)
		}
	})

	t.Run("Seller entry slot chooses the field", func(t *testing.T) {
		match := model.IntentMatch{
			Entry:   model.PatternEntry{Intent: "notes", Patterns: []string{"quiet"}, Slots: []string{model.FieldDescription}},
			Intent:  "notes",
			Keyword: "quiet",
		}
		got := x.ExtractSeller(match, text)
		if got[model.FieldDescription] != text {
			t.Errorf("description = %q, want %q", got[model.FieldDescription], text)
		}
		if _, ok := got[model.FieldNeighborhood]; ok {
			t.Errorf("neighborhood filled without a neighborhood slot: %v", got)
		}
	})

	t.Run("Customer entry slot chooses the preference", func(t *testing.T) {
		match := model.IntentMatch{
			Entry:   model.PatternEntry{Intent: "vibe", Patterns: []string{"quiet"}, Slots: []string{"style"}},
			Intent:  "vibe",
			Keyword: "quiet",
		}
		got := x.ExtractCustomer(match, text)
		if got.Preferences.Style != "quiet" {
			t.Errorf("style = %q, want %q", got.Preferences.Style, "quiet")
		}
		if got.Preferences.Neighborhood != "" {
			t.Errorf("neighborhood = %q, want empty", got.Preferences.Neighborhood)
		}
	})
}
