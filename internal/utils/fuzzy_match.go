package utils

import (
	"strings"
)

// featureAliases groups the spellings buyers and catalog records use for the same feature
var featureAliases = map[string][]string{
	"kitchen":    {"kitchen", "chef's kitchen", "gourmet kitchen", "modern kitchen", "updated kitchen"},
	"parking":    {"parking", "garage", "car park", "carport"},
	"garden":     {"garden", "yard", "backyard", "lawn"},
	"yard":       {"yard", "backyard", "garden"},
	"gym":        {"gym", "fitness", "fitness center", "gymnasium"},
	"pool":       {"pool", "swimming pool"},
	"balcony":    {"balcony", "terrace", "deck", "patio"},
	"view":       {"view", "views", "city views", "water views", "bay views"},
	"floors":     {"hardwood", "floors", "flooring"},
	"laundry":    {"laundry", "washer", "in-unit laundry", "washer/dryer"},
	"pet":        {"pet-friendly", "pet friendly", "pets allowed", "dog"},
	"doorman":    {"doorman", "concierge", "24/7 concierge"},
	"smart home": {"smart home", "smart-home", "ev charging", "tech"},
	"fireplace":  {"fireplace"},
	"elevator":   {"elevator", "lift"},
	"roof":       {"roof", "rooftop", "roof deck"},
}

// propertyTypeAliases maps what a user says to the catalog type values it should match
var propertyTypeAliases = map[string][]string{
	"apartment": {"apartment", "condo"},
	"condo":     {"condo", "apartment"},
	"studio":    {"condo", "studio"},
	"loft":      {"condo", "loft"},
	"home":      {"house", "townhouse"},
	"house":     {"house"},
	"townhouse": {"townhouse"},
}

// FuzzyMatchFeature reports whether a requested feature matches a property feature
func FuzzyMatchFeature(searchTerm, feature string) bool {
	searchLower := strings.ToLower(strings.TrimSpace(searchTerm))
	featureLower := strings.ToLower(strings.TrimSpace(feature))
	if searchLower == "" || featureLower == "" {
		return false
	}

	if strings.Contains(featureLower, searchLower) || strings.Contains(searchLower, featureLower) {
		return true
	}

	for key, values := range featureAliases {
		if !strings.Contains(searchLower, key) {
			continue
		}
		for _, alias := range values {
			if strings.Contains(featureLower, alias) {
				return true
			}
		}
	}

	return false
}

// MatchesAnyFeature reports whether any requested term matches any of the property's features
func MatchesAnyFeature(terms, features []string) bool {
	for _, term := range terms {
		for _, feature := range features {
			if FuzzyMatchFeature(term, feature) {
				return true
			}
		}
	}
	return false
}

// FuzzyMatchPropertyType reports whether a requested type matches a catalog type.
// Unknown requests fall back to a case-insensitive substring test.
func FuzzyMatchPropertyType(requested, actual string) bool {
	reqLower := strings.ToLower(strings.TrimSpace(requested))
	actLower := strings.ToLower(strings.TrimSpace(actual))
	if reqLower == "" {
		return true
	}

	if strings.Contains(actLower, reqLower) {
		return true
	}

	for _, v := range propertyTypeAliases[reqLower] {
		if actLower == v {
			return true
		}
	}

	return false
}

// NormalizeFeature maps a feature to its display form
func NormalizeFeature(feature string) string {
	featureLower := strings.ToLower(strings.TrimSpace(feature))

	normalizations := map[string]string{
		"kitchen":        "Modern kitchen",
		"modern kitchen": "Modern kitchen",
		"parking":        "Parking",
		"garage":         "Parking",
		"parking garage": "Parking",
		"garden":         "Garden",
		"yard":           "Garden",
		"garden/yard":    "Garden",
		"gym":            "Fitness center",
		"fitness":        "Fitness center",
		"pool":           "Swimming pool",
		"balcony":        "Balcony",
		"terrace":        "Balcony",
		"view":           "City views",
		"views":          "City views",
		"pet-friendly":   "Pet-friendly",
		"pet friendly":   "Pet-friendly",
		"hardwood":       "Hardwood floors",
		"floors":         "Hardwood floors",
	}

	if normalized, ok := normalizations[featureLower]; ok {
		return normalized
	}
	if featureLower == "" {
		return ""
	}
	return strings.ToUpper(featureLower[:1]) + featureLower[1:]
}
