package utils

import (
	"testing"
)

type criteria struct {
	Location     string   `json:"location"`
	PropertyType string   `json:"property_type"`
	Bedrooms     int      `json:"bedrooms"`
	BudgetMax    float64  `json:"budget_max"`
	Amenities    []string `json:"amenities"`
}

func TestParseAIJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    criteria
		wantErr bool
	}{
		{
			name:  "Pure JSON",
			input: `{"location": "Palo Alto", "bedrooms": 3}`,
			want:  criteria{Location: "Palo Alto", Bedrooms: 3},
		},
		{
			name:  "JSON in markdown code block",
			input: "```json\n" + `{"property_type": "condo", "budget_max": 900000}` + "\n```",
			want:  criteria{PropertyType: "condo", BudgetMax: 900000},
		},
		{
			name:  "Untagged code block",
			input: "```\n" + `{"bedrooms": 2}` + "\n```",
			want:  criteria{Bedrooms: 2},
		},
		{
			name:  "JSON with surrounding text",
			input: `Sure! Here you go: {"location": "SOMA", "bedrooms": 1} Let me know if that's right.`,
			want:  criteria{Location: "SOMA", Bedrooms: 1},
		},
		{
			name:  "Leading byte order mark",
			input: "\uFEFF" + `{"location": "Sunset", "bedrooms": 2}`,
			want:  criteria{Location: "Sunset", Bedrooms: 2},
		},
		{
			name:  "Trailing comma",
			input: `{"location": "Mission", "amenities": ["gym", "pool",],}`,
			want:  criteria{Location: "Mission", Amenities: []string{"gym", "pool"}},
		},
		{
			name:  "Unquoted keys",
			input: `{location: "Noe Valley", bedrooms: 4}`,
			want:  criteria{Location: "Noe Valley", Bedrooms: 4},
		},
		{
			name:  "Single quotes",
			input: `{'location': 'Marina', 'amenities': ['doorman']}`,
			want:  criteria{Location: "Marina", Amenities: []string{"doorman"}},
		},
		{
			name:    "Empty string",
			input:   "   ",
			wantErr: true,
		},
		{
			name:    "Invalid JSON",
			input:   "not json at all",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got criteria
			err := ParseAIJSON(tt.input, &got)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAIJSON() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			if got.Location != tt.want.Location || got.PropertyType != tt.want.PropertyType ||
				got.Bedrooms != tt.want.Bedrooms || got.BudgetMax != tt.want.BudgetMax {
				t.Errorf("ParseAIJSON() = %+v, want %+v", got, tt.want)
			}
			if len(got.Amenities) != len(tt.want.Amenities) {
				t.Errorf("Amenities = %v, want %v", got.Amenities, tt.want.Amenities)
			}
		})
	}
}

func TestExtractFromMarkdown(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "Code block with json tag",
			input: "```json\n{\"test\": true}\n```",
			want:  `{"test": true}`,
		},
		{
			name:  "Code block without tag",
			input: "```\n{\"test\": true}\n```",
			want:  `{"test": true}`,
		},
		{
			name:  "Code block that is not JSON",
			input: "```\nhello\n```",
			want:  "",
		},
		{
			name:  "No code block",
			input: `{"test": true}`,
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractFromMarkdown(tt.input); got != tt.want {
				t.Errorf("extractFromMarkdown() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestExtractBalancedBraces(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Simple", `{"a": 1} tail`, `{"a": 1}`},
		{"Nested", `{"a": {"b": 2}} tail`, `{"a": {"b": 2}}`},
		{"Brace in string", `{"a": "}"} tail`, `{"a": "}"}`},
		{"Unbalanced", `{"a": 1`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := extractBalancedBraces(tt.input, '{', '}'); got != tt.want {
				t.Errorf("extractBalancedBraces() = %q, want %q", got, tt.want)
			}
		})
	}
}
