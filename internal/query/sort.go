package query

import (
	"sort"

	"estatehub/server/internal/models"
)

// Supported sort keys for listing queries. The price keys have two spellings
// because the public filter UI and the legacy API used different names.
const (
	SortNewest    = "newest"
	SortOldest    = "oldest"
	SortPriceAsc  = "price-asc"
	SortPriceLow  = "priceLow"
	SortPriceDesc = "price-desc"
	SortPriceHigh = "priceHigh"
	SortPopular   = "popular"
)

// Sort orders a copy of properties by the given key. Unknown keys fall back
// to newest. Ties keep their input order: listing pages must be
// deterministic across identical requests.
//
// "newest" compares the id strings lexically; snapshot ids are
// creation-ordered, so this matches chronological order for the exported
// data.
func Sort(properties []models.PropertySummary, sortBy string) []models.PropertySummary {
	sorted := make([]models.PropertySummary, len(properties))
	copy(sorted, properties)

	var less func(i, j int) bool
	switch sortBy {
	case SortOldest:
		less = func(i, j int) bool { return sorted[i].ID < sorted[j].ID }
	case SortPriceAsc, SortPriceLow:
		less = func(i, j int) bool { return sorted[i].Price < sorted[j].Price }
	case SortPriceDesc, SortPriceHigh:
		less = func(i, j int) bool { return sorted[i].Price > sorted[j].Price }
	case SortPopular:
		less = func(i, j int) bool { return sorted[i].ViewCount > sorted[j].ViewCount }
	case SortNewest:
		fallthrough
	default:
		less = func(i, j int) bool { return sorted[i].ID > sorted[j].ID }
	}

	sort.SliceStable(sorted, less)
	return sorted
}
