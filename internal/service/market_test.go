package service

import (
	"strings"
	"testing"

	"propertychat/internal/model"
	"propertychat/internal/repository"
)

func TestFindComparables(t *testing.T) {
	catalog := repository.DemoProperties()

	tests := []struct {
		name         string
		propertyType string
		bedrooms     int
		want         []string
	}{
		{"Type and bedrooms", "condo", 1, []string{"prop-001", "prop-004"}},
		{"Bedrooms ignored when unknown", "condo", 0, []string{"prop-001", "prop-003", "prop-004"}},
		{"Widens to type", "condo", 6, []string{"prop-001", "prop-003", "prop-004"}},
		{"Widens to catalog", "land", 2, []string{"prop-001", "prop-002", "prop-003", "prop-004", "prop-005", "prop-006"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := propertyIDs(FindComparables(catalog, tt.propertyType, tt.bedrooms))
			if !equalIDs(got, tt.want) {
				t.Errorf("FindComparables() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzePricing(t *testing.T) {
	comps := []model.Property{
		{Price: 800000, Features: []string{"Garden", "Parking"}},
		{Price: 1000000, Features: []string{"Parking"}},
		{Price: 1200000, Features: []string{"Pool", "Parking", "Garden"}},
	}

	tests := []struct {
		name     string
		price    float64
		position model.MarketPosition
		diff     float64
	}{
		{"At average", 1000000, model.MarketCompetitive, 0},
		{"Inside band", 1080000, model.MarketCompetitive, 8},
		{"Above", 1250000, model.MarketAbove, 25},
		{"Below", 700000, model.MarketBelow, -30},
		{"No price uses average", 0, model.MarketCompetitive, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AnalyzePricing(tt.price, comps)
			if got.MarketPosition != tt.position || got.PriceDifferencePercentage != tt.diff {
				t.Errorf("AnalyzePricing() = %s %.1f, want %s %.1f",
					got.MarketPosition, got.PriceDifferencePercentage, tt.position, tt.diff)
			}
			want := model.ComparableStats{AvgPrice: 1000000, MinPrice: 800000, MaxPrice: 1200000, SampleSize: 3}
			if got.Comparables != want {
				t.Errorf("Comparables = %+v, want %+v", got.Comparables, want)
			}
			if len(got.Recommendations) == 0 || len(got.MarketInsights) == 0 {
				t.Error("Expected recommendations and insights")
			}
		})
	}

	t.Run("No comparables", func(t *testing.T) {
		got := AnalyzePricing(500000, nil)
		if got.Comparables.SampleSize != 0 || got.MarketPosition != model.MarketCompetitive {
			t.Errorf("AnalyzePricing() = %+v", got)
		}
	})
}

func TestCommonFeatures(t *testing.T) {
	props := []model.Property{
		{Features: []string{"Garden", "Parking"}},
		{Features: []string{"Pool", "Parking"}},
		{Features: []string{"Pool", "Parking", "Garden"}},
	}
	got := CommonFeatures(props, 2)
	if strings.Join(got, ",") != "Parking,Garden" {
		t.Errorf("CommonFeatures() = %v, want [Parking Garden]", got)
	}
}

func TestMarketAdviceVars(t *testing.T) {
	comps := []model.Property{{Features: []string{"Parking", "Garden"}}}

	vars := MarketAdviceVars(model.FormData{
		model.FieldNeighborhood: "Noe Valley",
		model.FieldFeatures:     "Modern kitchen, Garden, Parking",
	}, comps)
	if vars["neighborhood"] != "Noe Valley" {
		t.Errorf("neighborhood = %q", vars["neighborhood"])
	}
	if vars["topFeatures"] != "modern kitchen and garden" {
		t.Errorf("topFeatures = %q", vars["topFeatures"])
	}
	if vars["marketFeatures"] != "parking and garden" {
		t.Errorf("marketFeatures = %q", vars["marketFeatures"])
	}

	empty := MarketAdviceVars(model.FormData{}, nil)
	if empty["neighborhood"] != "your area" || empty["marketFeatures"] == "" {
		t.Errorf("defaults = %v", empty)
	}
}
