package service

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"propertychat/internal/model"
	"propertychat/internal/utils"
)

// competitiveBand is how far, in percent, an asking price may sit from the
// comparable average and still count as competitive
const competitiveBand = 10.0

// FindComparables picks catalog properties like the one described: same type and
// bedrooms within one. It widens to the type alone, then the whole catalog, when
// nothing closer exists.
func FindComparables(catalog []model.Property, propertyType string, bedrooms int) []model.Property {
	var sameType, close []model.Property
	for _, p := range catalog {
		if propertyType != "" && !utils.FuzzyMatchPropertyType(propertyType, p.Details.Type) {
			continue
		}
		sameType = append(sameType, p)
		if bedrooms <= 0 || absInt(p.Details.Bedrooms-bedrooms) <= 1 {
			close = append(close, p)
		}
	}
	switch {
	case len(close) > 0:
		return close
	case len(sameType) > 0:
		return sameType
	default:
		return catalog
	}
}

// AnalyzePricing compares price against comparables. A zero price is replaced
// by the comparable average, which then reads as competitive.
func AnalyzePricing(price float64, comparables []model.Property) model.PricingAnalysis {
	stats := comparableStats(comparables)
	if price <= 0 {
		price = stats.AvgPrice
	}

	var diff float64
	if stats.AvgPrice > 0 {
		diff = math.Round((price-stats.AvgPrice)/stats.AvgPrice*1000) / 10
	}

	position := model.MarketCompetitive
	switch {
	case diff > competitiveBand:
		position = model.MarketAbove
	case diff < -competitiveBand:
		position = model.MarketBelow
	}

	return model.PricingAnalysis{
		MarketPosition:            position,
		Confidence:                math.Min(0.95, 0.5+0.1*float64(stats.SampleSize)),
		PriceDifferencePercentage: diff,
		Comparables:               stats,
		Recommendations:           pricingRecommendations(position),
		MarketInsights:            marketInsights(stats, diff, comparables),
	}
}

func comparableStats(props []model.Property) model.ComparableStats {
	if len(props) == 0 {
		return model.ComparableStats{}
	}
	stats := model.ComparableStats{MinPrice: props[0].Price, MaxPrice: props[0].Price, SampleSize: len(props)}
	var sum float64
	for _, p := range props {
		sum += p.Price
		stats.MinPrice = math.Min(stats.MinPrice, p.Price)
		stats.MaxPrice = math.Max(stats.MaxPrice, p.Price)
	}
	stats.AvgPrice = math.Round(sum / float64(len(props)))
	return stats
}

func pricingRecommendations(position model.MarketPosition) []string {
	switch position {
	case model.MarketAbove:
		return []string{
			"Your asking price is above comparable properties",
			"Highlight premium features to justify the price",
			"Consider a price adjustment if there is little interest in the first weeks",
		}
	case model.MarketBelow:
		return []string{
			"Your asking price is below comparable properties",
			"Expect strong interest and possibly multiple offers",
			"You may have room to raise the price",
		}
	default:
		return []string{
			"Your asking price is competitive for this area",
			"Consider highlighting premium features to justify the price",
			"Market data shows strong demand for similar properties",
		}
	}
}

func marketInsights(stats model.ComparableStats, diff float64, comparables []model.Property) []string {
	if stats.SampleSize == 0 {
		return []string{"No comparable properties are listed yet"}
	}
	insights := []string{
		fmt.Sprintf("Similar properties sell for %s-%s", FormatMoney(stats.MinPrice), FormatMoney(stats.MaxPrice)),
	}
	switch {
	case diff > 0:
		insights = append(insights, fmt.Sprintf("Your property is priced %.1f%% above market average", diff))
	case diff < 0:
		insights = append(insights, fmt.Sprintf("Your property is priced %.1f%% below market average", -diff))
	default:
		insights = append(insights, "Your property is priced at the market average")
	}
	if top := CommonFeatures(comparables, 2); len(top) > 0 {
		insights = append(insights, fmt.Sprintf("Comparable listings emphasize %s", strings.ToLower(strings.Join(top, " and "))))
	}
	var days, n int
	for _, p := range comparables {
		if p.Listing != nil {
			days += p.Listing.DaysOnMarket
			n++
		}
	}
	if n > 0 {
		insights = append(insights, fmt.Sprintf("Comparable listings have been on the market %d days on average", days/n))
	}
	return insights
}

// CommonFeatures returns up to limit features that occur most across props.
// Ties keep the order in which features were first seen.
func CommonFeatures(props []model.Property, limit int) []string {
	counts := map[string]int{}
	var order []string
	for _, p := range props {
		for _, f := range p.Features {
			if counts[f] == 0 {
				order = append(order, f)
			}
			counts[f]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > limit {
		order = order[:limit]
	}
	return order
}

// MarketAdviceVars fills the seller market advice templates from the form and the comparables
func MarketAdviceVars(form model.FormData, comparables []model.Property) map[string]string {
	neighborhood := firstNonEmpty(form[model.FieldNeighborhood], form[model.FieldCity], "your area")

	own := splitList(form[model.FieldFeatures])
	market := CommonFeatures(comparables, 2)
	if len(market) == 0 {
		market = []string{"updated interiors", "good light"}
	}
	if len(own) == 0 {
		own = market
	}
	if len(own) > 2 {
		own = own[:2]
	}

	ownText := strings.ToLower(strings.Join(own, " and "))
	return map[string]string{
		"neighborhood":     neighborhood,
		"topFeatures":      ownText,
		"keyFeatures":      ownText,
		"marketAdvantages": fmt.Sprintf("its location in %s", neighborhood),
		"marketFeatures":   strings.ToLower(strings.Join(market, " and ")),
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
