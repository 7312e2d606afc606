package service

import (
	"sort"
	"strings"

	"propertychat/internal/model"
	"propertychat/internal/utils"
)

// FilterProperties keeps the properties passing every set predicate, best match score first.
// The input slice is left untouched.
func FilterProperties(properties []model.Property, f model.PropertyFilter) []model.Property {
	out := make([]model.Property, 0, len(properties))
	for _, p := range properties {
		if matchesFilter(p, f) {
			out = append(out, p)
		}
	}
	sortByMatchScore(out)
	return out
}

// SearchProperties keeps properties whose text contains any whitespace-separated query term
func SearchProperties(properties []model.Property, query string) []model.Property {
	terms := strings.Fields(strings.ToLower(query))
	out := make([]model.Property, 0, len(properties))
	if len(terms) == 0 {
		out = append(out, properties...)
		sortByMatchScore(out)
		return out
	}

	for _, p := range properties {
		text := searchableText(p)
		for _, term := range terms {
			if strings.Contains(text, term) {
				out = append(out, p)
				break
			}
		}
	}
	sortByMatchScore(out)
	return out
}

func matchesFilter(p model.Property, f model.PropertyFilter) bool {
	if f.PriceRange != nil && !f.PriceRange.Contains(p.Price) {
		return false
	}
	if f.Bedrooms != nil && p.Details.Bedrooms < *f.Bedrooms {
		return false
	}
	if f.Bathrooms != nil && p.Details.Bathrooms < *f.Bathrooms {
		return false
	}
	if f.PropertyType != "" && !utils.FuzzyMatchPropertyType(f.PropertyType, p.Details.Type) {
		return false
	}
	if f.Location != "" && !matchesLocation(p.Location, f.Location) {
		return false
	}
	if len(f.Features) > 0 && !utils.MatchesAnyFeature(f.Features, p.Features) {
		return false
	}
	return true
}

func matchesLocation(loc model.PropertyLocation, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return strings.Contains(strings.ToLower(loc.City), q) ||
		strings.Contains(strings.ToLower(loc.Neighborhood), q) ||
		strings.Contains(strings.ToLower(loc.Address), q)
}

func searchableText(p model.Property) string {
	parts := []string{p.Title, p.Description, p.Location.City, p.Location.Neighborhood, p.Details.Type}
	parts = append(parts, p.Features...)
	return strings.ToLower(strings.Join(parts, " "))
}

func sortByMatchScore(properties []model.Property) {
	sort.SliceStable(properties, func(i, j int) bool {
		return properties[i].MatchScore > properties[j].MatchScore
	})
}
