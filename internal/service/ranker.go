package service

import (
	"math"
	"sort"
	"strings"

	"propertychat/internal/model"
	"propertychat/internal/utils"
)

// Match reason constants
const (
	ReasonBedroomsMatch  = "Bedrooms match"
	ReasonBathroomsMatch = "Bathrooms match"
	ReasonTypeMatch      = "Property type match"
	ReasonLocationMatch  = "Location match"
	ReasonPriceMatch     = "Price within budget"
	ReasonFeatureMatch   = "Has requested features"
	ReasonStyleMatch     = "Matches your style"
	ReasonAmenityMatch   = "Has preferred amenities"
	ReasonFamilyFriendly = "Family friendly"
	ReasonCommute        = "Easy commute"
	ReasonNewlyListed    = "Newly listed"
	ReasonGeneralMatch   = "General match"
)

// Default preference bonus points
const (
	DefaultStyleBonus    = 5.0
	DefaultAmenityBonus  = 3.0
	DefaultPriorityBonus = 3.0
)

var familyTerms = []string{"school", "family", "park", "playground", "yard", "garden"}
var commuteTerms = []string{"transit", "commute", "bart", "caltrain", "tech", "shuttle", "downtown"}

// Ranker scores properties by their catalog match score plus a bonus for soft preferences
type Ranker struct {
	styleBonus    float64
	amenityBonus  float64
	priorityBonus float64
}

// NewRanker creates a new ranker with the given bonus points
func NewRanker(styleBonus, amenityBonus, priorityBonus float64) *Ranker {
	return &Ranker{
		styleBonus:    styleBonus,
		amenityBonus:  amenityBonus,
		priorityBonus: priorityBonus,
	}
}

// RankResults scores properties and orders them best first. Ties keep the input order.
func (r *Ranker) RankResults(
	properties []model.Property,
	filter *model.PropertyFilter,
	prefs *model.UserPreferences,
) []model.PropertyResult {
	results := make([]model.PropertyResult, 0, len(properties))

	for _, p := range properties {
		bonus, prefReasons := r.preferenceBonus(p, prefs)
		result := model.PropertyResult{
			Property: p,
			Score:    p.MatchScore + bonus,
		}
		result.MatchedReasons = dedupe(append(r.generateMatchedReasons(p, filter), prefReasons...))
		if len(result.MatchedReasons) == 0 {
			result.MatchedReasons = []string{ReasonGeneralMatch}
		}
		results = append(results, result)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	return results
}

// preferenceBonus adds points for every preference the property satisfies
func (r *Ranker) preferenceBonus(p model.Property, prefs *model.UserPreferences) (float64, []string) {
	if prefs == nil {
		return 0, nil
	}

	text := searchableText(p)
	var bonus float64
	var reasons []string

	if prefs.Style != "" && strings.Contains(text, strings.ToLower(prefs.Style)) {
		bonus += r.styleBonus
		reasons = append(reasons, ReasonStyleMatch)
	}

	matched := 0
	for _, a := range prefs.Amenities {
		if utils.MatchesAnyFeature([]string{a}, p.Features) || strings.Contains(text, strings.ToLower(a)) {
			matched++
		}
	}
	if matched > 0 {
		bonus += r.amenityBonus * float64(matched)
		reasons = append(reasons, ReasonAmenityMatch)
	}

	if prefs.Neighborhood != "" && strings.Contains(text, strings.ToLower(prefs.Neighborhood)) {
		bonus += r.priorityBonus
		reasons = append(reasons, ReasonLocationMatch)
	}

	switch prefs.Priority {
	case "family":
		if containsAny(text, familyTerms) {
			bonus += r.priorityBonus
			reasons = append(reasons, ReasonFamilyFriendly)
		}
	case "commute":
		if containsAny(text, commuteTerms) {
			bonus += r.priorityBonus
			reasons = append(reasons, ReasonCommute)
		}
	}

	return bonus, reasons
}

// calculatePriceScore calculates how well the price matches the budget
func (r *Ranker) calculatePriceScore(price float64, budget *model.BudgetRange) float64 {
	if budget == nil || (budget.Min == 0 && budget.Max == 0) {
		return 1.0
	}
	if !budget.Contains(price) {
		return 0.0
	}

	// Within range, score based on distance from midpoint
	if budget.Max > 0 && budget.Min > 0 {
		midpoint := (budget.Min + budget.Max) / 2
		half := (budget.Max - budget.Min) / 2
		if half == 0 {
			return 1.0
		}
		score := 1.0 - math.Abs(price-midpoint)/half
		if score < 0 {
			score = 0
		}
		return score
	}

	if budget.Max > 0 {
		// Closer to max is better
		return math.Min(price/budget.Max, 1.0)
	}
	return 1.0
}

// generateMatchedReasons explains which filter predicates the property satisfied
func (r *Ranker) generateMatchedReasons(p model.Property, filter *model.PropertyFilter) []string {
	reasons := []string{}

	if filter != nil {
		if filter.Bedrooms != nil && p.Details.Bedrooms >= *filter.Bedrooms {
			reasons = append(reasons, ReasonBedroomsMatch)
		}
		if filter.Bathrooms != nil && p.Details.Bathrooms >= *filter.Bathrooms {
			reasons = append(reasons, ReasonBathroomsMatch)
		}
		if filter.PropertyType != "" && utils.FuzzyMatchPropertyType(filter.PropertyType, p.Details.Type) {
			reasons = append(reasons, ReasonTypeMatch)
		}
		if filter.Location != "" && matchesLocation(p.Location, filter.Location) {
			reasons = append(reasons, ReasonLocationMatch)
		}
		if filter.PriceRange != nil && filter.PriceRange.Contains(p.Price) {
			reasons = append(reasons, ReasonPriceMatch)
		}
		if len(filter.Features) > 0 && utils.MatchesAnyFeature(filter.Features, p.Features) {
			reasons = append(reasons, ReasonFeatureMatch)
		}
	}

	if p.Listing != nil && p.Listing.DaysOnMarket < 7 {
		reasons = append(reasons, ReasonNewlyListed)
	}

	return reasons
}

func dedupe(items []string) []string {
	seen := make(map[string]bool, len(items))
	out := items[:0]
	for _, it := range items {
		if !seen[it] {
			seen[it] = true
			out = append(out, it)
		}
	}
	return out
}
