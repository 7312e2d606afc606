package service

import (
	"fmt"
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"propertychat/internal/flow"
	"propertychat/internal/model"
	"propertychat/internal/utils"
)

var (
	moneyRe    = regexp.MustCompile(`(?i)(\$)?\s?(\d+(?:,\d{3})*(?:\.\d+)?)\s*(million|thousand|mil|k|m)?\b`)
	bedroomsRe = regexp.MustCompile(`(?i)\b(\d+|one|two|three|four|five|six|seven|eight|nine|ten)\s*\+?\s*-?\s*(?:bed(?:room)?s?|br|bd)\b`)
	bathsRe    = regexp.MustCompile(`(?i)\b(\d+(?:\.\d+)?|one|two|three|four|five|six|seven|eight|nine|ten)\s*\+?\s*-?\s*(?:bath(?:room)?s?|ba)\b`)
	sqftRe     = regexp.MustCompile(`(?i)(\d[\d,]*)\s*(?:sq\.?\s*ft|sqft|square\s+feet|square\s+foot|sf)\b`)
	placeRe    = regexp.MustCompile(`\b(?:[Ii]n|[Nn]ear|[Aa]round)\s+([A-Z][\w'.-]*(?:\s+[A-Z][\w'.-]*)*)`)
	zipRe      = regexp.MustCompile(`\b\d{5}(?:-\d{4})?\b`)
)

var numberWords = map[string]int{
	"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
	"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
}

var upperBoundWords = []string{"under", "below", "less than", "max", "up to", "within", "no more than"}
var lowerBoundWords = []string{"above", "over", "more than", "at least", "minimum", "starting", "from"}
// priorityByIntent is the preference priority an intent with a "priority" slot sets
var priorityByIntent = map[string]string{
	"family_needs":    "family",
	"commute_concern": "commute",
}

var budgetWords = []string{"budget", "price", "cost", "afford", "under", "below", "above", "over", "between"}

// SlotExtractor pulls criteria and form fields out of free text.
// It records whatever it finds and never reconciles conflicting values.
type SlotExtractor struct {
	customer *flow.Table
	seller   *flow.Table
}

// NewSlotExtractor creates an extractor over the persona tables
func NewSlotExtractor() *SlotExtractor {
	return &SlotExtractor{customer: flow.Customer, seller: flow.Seller}
}

// CustomerSlots is what one customer message contributed
type CustomerSlots struct {
	Criteria    model.SearchCriteria
	Preferences model.UserPreferences
	BudgetLabel string
}

// ExtractCustomer reads search criteria and soft preferences from a customer message
func (x *SlotExtractor) ExtractCustomer(match model.IntentMatch, text string) CustomerSlots {
	lower := strings.ToLower(text)
	var out CustomerSlots

	out.Criteria.PropertyType = longestKeyword(lower, x.customer.Keywords("property_type"))

	if budget, label, ok := ParseBudget(text); ok {
		out.Criteria.Budget = budget
		out.BudgetLabel = label
	}
	if n, ok := parseCount(bedroomsRe, text); ok {
		out.Criteria.Bedrooms = &n
	}
	if n, ok := parseCount(bathsRe, text); ok {
		out.Criteria.Bathrooms = &n
	}
	out.Criteria.Features = containedKeywords(lower, x.customer.Keywords("features"))
	if m := placeRe.FindStringSubmatch(text); m != nil {
		out.Criteria.Location = strings.TrimRight(m[1], ".,!?")
	}

	for _, slot := range match.Entry.Slots {
		switch slot {
		case "location":
			// bare area words are a preference, not a place the catalog can be filtered on
			out.Preferences.Neighborhood = match.Keyword
		case "style":
			out.Preferences.Style = match.Keyword
		case "amenities":
			out.Preferences.Amenities = containedKeywords(lower, match.Entry.Patterns)
		case "priority":
			out.Preferences.Priority = priorityByIntent[match.Intent]
		}
	}

	return out
}

// ExtractSeller reads listing form fields from a seller message
func (x *SlotExtractor) ExtractSeller(match model.IntentMatch, text string) model.FormData {
	lower := strings.ToLower(text)
	raw := strings.TrimSpace(text)
	form := model.FormData{}

	if t := longestKeyword(lower, x.seller.Keywords("property_type")); t != "" {
		form[model.FieldPropertyType] = titleCase(t)
	}
	if n, ok := parseCount(bedroomsRe, text); ok {
		form[model.FieldBedrooms] = strconv.Itoa(n)
	}
	if n, ok := parseCount(bathsRe, text); ok {
		form[model.FieldBathrooms] = strconv.Itoa(n)
	}
	if m := sqftRe.FindStringSubmatch(text); m != nil {
		form[model.FieldSqft] = strings.ReplaceAll(m[1], ",", "")
	}
	if slices.Contains(match.Entry.Slots, model.FieldPrice) || strings.Contains(text, "$") {
		if amounts := parseAmounts(text, true); len(amounts) > 0 {
			form[model.FieldPrice] = strconv.FormatFloat(amounts[0], 'f', 0, 64)
		}
	}

	for _, slot := range match.Entry.Slots {
		switch slot {
		case model.FieldAddress:
			for k, v := range splitAddress(raw) {
				form[k] = v
			}
		case model.FieldFeatures:
			found := containedKeywords(lower, match.Entry.Patterns)
			names := make([]string, 0, len(found))
			for _, f := range found {
				names = append(names, utils.NormalizeFeature(f))
			}
			if len(names) > 0 {
				form[model.FieldFeatures] = strings.Join(names, ", ")
			}
		case model.FieldNeighborhood, model.FieldImages, model.FieldDescription:
			form[slot] = raw
		}
	}

	return form
}

// ParseBudget finds a price window in text and a short label for it
func ParseBudget(text string) (*model.BudgetRange, string, bool) {
	lower := strings.ToLower(text)
	amounts := parseAmounts(text, containsAny(lower, budgetWords))
	if len(amounts) == 0 {
		return nil, "", false
	}

	if len(amounts) >= 2 {
		lo, hi := amounts[0], amounts[1]
		if lo > hi {
			lo, hi = hi, lo
		}
		return &model.BudgetRange{Min: lo, Max: hi}, FormatMoney(lo) + " - " + FormatMoney(hi), true
	}

	v := amounts[0]
	if containsAny(lower, lowerBoundWords) && !containsAny(lower, upperBoundWords) {
		return &model.BudgetRange{Min: v}, "over " + FormatMoney(v), true
	}
	if containsAny(lower, upperBoundWords) {
		return &model.BudgetRange{Max: v}, "under " + FormatMoney(v), true
	}
	return &model.BudgetRange{Max: v}, FormatMoney(v), true
}

// FormatMoney renders a price the way the quick replies do, e.g. $500K or $1.5M
func FormatMoney(v float64) string {
	switch {
	case v >= 1e6:
		return "$" + strconv.FormatFloat(math.Round(v/1e5)/10, 'f', -1, 64) + "M"
	case v >= 1e3:
		return "$" + strconv.FormatFloat(math.Round(v/1e2)/10, 'f', -1, 64) + "K"
	default:
		return fmt.Sprintf("$%.0f", v)
	}
}

// FormatThousands renders 850000 as 850,000
func FormatThousands(v float64) string {
	s := strconv.FormatFloat(math.Round(v), 'f', 0, 64)
	neg := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-" + b.String()
	}
	return b.String()
}

// parseAmounts returns every money amount in text. Bare numbers count only when
// large and lenient is set, so room counts and zip codes are not read as prices.
func parseAmounts(text string, lenient bool) []float64 {
	var out []float64
	for _, m := range moneyRe.FindAllStringSubmatch(text, -1) {
		v, err := strconv.ParseFloat(strings.ReplaceAll(m[2], ",", ""), 64)
		if err != nil {
			continue
		}
		unit := strings.ToLower(m[3])
		switch unit {
		case "k", "thousand":
			v *= 1e3
		case "m", "mil", "million":
			v *= 1e6
		}
		if m[1] == "" && unit == "" && !(lenient && v >= 10000) {
			continue
		}
		out = append(out, v)
	}
	return out
}

func parseCount(re *regexp.Regexp, text string) (int, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return 0, false
	}
	token := strings.ToLower(m[1])
	if n, ok := numberWords[token]; ok {
		return n, true
	}
	f, err := strconv.ParseFloat(token, 64)
	if err != nil {
		return 0, false
	}
	return int(f), true
}

// splitAddress reads "123 Main St, Austin, TX 78701" into form fields
func splitAddress(raw string) model.FormData {
	form := model.FormData{}
	parts := strings.Split(raw, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	form[model.FieldAddress] = parts[0]
	if len(parts) > 1 {
		form[model.FieldCity] = parts[1]
	}
	if len(parts) > 2 {
		rest := parts[2]
		if zip := zipRe.FindString(rest); zip != "" {
			form[model.FieldZipCode] = zip
			rest = strings.TrimSpace(strings.Replace(rest, zip, "", 1))
		}
		if rest != "" {
			form[model.FieldState] = rest
		}
	}
	if _, ok := form[model.FieldZipCode]; !ok {
		if zip := zipRe.FindString(raw); zip != "" {
			form[model.FieldZipCode] = zip
		}
	}
	return form
}

// longestKeyword returns the longest keyword contained in lower, so "townhouse" beats "house"
func longestKeyword(lower string, keywords []string) string {
	best := ""
	for _, k := range keywords {
		if len(k) > len(best) && strings.Contains(lower, k) {
			best = k
		}
	}
	return best
}

func containedKeywords(lower string, keywords []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, k := range keywords {
		if !seen[k] && strings.Contains(lower, k) {
			seen[k] = true
			out = append(out, k)
		}
	}
	return out
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
