package query

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"estatehub/server/internal/models"
)

// Relevance weights for property candidates.
const (
	weightPropertyTitle    = 10
	weightPropertyAreaName = 8
	weightPropertyAddress  = 7
	weightPropertyType     = 6
	weightPropertyFeature  = 3
	weightPropertyAmenity  = 3
	weightPropertyPrice    = 4
)

// Relevance weights for area candidates.
const (
	weightAreaName     = 10
	weightAreaCity     = 8
	weightAreaDesc     = 5
	weightAreaPopular  = 6
	weightAreaLandmark = 4
	weightAreaMetro    = 5
	weightAreaHighway  = 3
)

var nonDigits = regexp.MustCompile(`[^\d]`)

// scoreProperty sums the weighted field matches for a property candidate.
// The query must already be lower-cased and trimmed.
func scoreProperty(p models.PropertySummary, query string) int {
	score := 0

	if strings.Contains(strings.ToLower(p.Title), query) {
		score += weightPropertyTitle
	}
	if strings.Contains(strings.ToLower(p.AreaName), query) {
		score += weightPropertyAreaName
	}
	if strings.Contains(strings.ToLower(p.Address), query) {
		score += weightPropertyAddress
	}
	if strings.Contains(strings.ToLower(p.PropertyType), query) ||
		strings.Contains(strings.ToLower(p.SubType), query) {
		score += weightPropertyType
	}
	if anyContains(p.Features, query) {
		score += weightPropertyFeature
	}
	if anyContains(p.Amenities, query) {
		score += weightPropertyAmenity
	}

	// Numeric queries also match listings priced near that many lakhs.
	if digits := nonDigits.ReplaceAllString(query, ""); digits != "" {
		if num, err := strconv.ParseInt(digits, 10, 64); err == nil {
			priceInLakhs := float64(p.Price) / 100000
			diff := priceInLakhs - float64(num)
			if diff < 0 {
				diff = -diff
			}
			if diff < 10 {
				score += weightPropertyPrice
			}
		}
	}

	return score
}

// scoreArea sums the weighted field matches for an area candidate.
func scoreArea(a models.AreaSummary, query string) int {
	score := 0

	if strings.Contains(strings.ToLower(a.Name), query) {
		score += weightAreaName
	}
	if strings.Contains(strings.ToLower(a.City), query) {
		score += weightAreaCity
	}
	if strings.Contains(strings.ToLower(a.Description), query) {
		score += weightAreaDesc
	}
	if anyContains(a.PopularFor, query) {
		score += weightAreaPopular
	}
	if anyContains(a.NearbyLandmarks, query) {
		score += weightAreaLandmark
	}
	if anyContains(a.Connectivity.Metro, query) {
		score += weightAreaMetro
	}
	if anyContains(a.Connectivity.Highway, query) {
		score += weightAreaHighway
	}

	return score
}

func anyContains(values []string, query string) bool {
	for _, v := range values {
		if strings.Contains(strings.ToLower(v), query) {
			return true
		}
	}
	return false
}

// rank orders results by descending relevance. The sort is stable on
// purpose: equal scores keep candidate order, so identical queries always
// return identical lists.
func rank(results []models.SearchResult) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
}
