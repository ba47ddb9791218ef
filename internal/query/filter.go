package query

import (
	"strings"

	"estatehub/server/internal/models"
)

// Filters holds the optional listing criteria. Nil or zero-value fields are
// no-ops; supplied criteria compose with logical AND. Parsing query strings
// into these fields is the caller's job — a value that failed to parse must
// simply be left absent.
type Filters struct {
	PropertyType string
	MinPrice     *int64
	MaxPrice     *int64
	Bedrooms     *int
	Bathrooms    *int
	Search       string
	AreaSlug     string
	Status       string
	Page         int
	Limit        int
	SortBy       string
}

// Filter returns the subset of properties satisfying every supplied
// criterion. Price bounds are inclusive; bedrooms and bathrooms match
// exactly; the free-text criterion is a case-insensitive substring match over
// title, address and the denormalized area name.
func Filter(properties []models.PropertySummary, f Filters) []models.PropertySummary {
	result := make([]models.PropertySummary, 0, len(properties))
	search := strings.ToLower(f.Search)

	for _, p := range properties {
		if f.PropertyType != "" && p.PropertyType != f.PropertyType {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.Bedrooms != nil && (p.Bedrooms == nil || *p.Bedrooms != *f.Bedrooms) {
			continue
		}
		if f.Bathrooms != nil && (p.Bathrooms == nil || *p.Bathrooms != *f.Bathrooms) {
			continue
		}
		if f.AreaSlug != "" && p.AreaSlug != f.AreaSlug {
			continue
		}
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Title), search) &&
			!strings.Contains(strings.ToLower(p.Address), search) &&
			!strings.Contains(strings.ToLower(p.AreaName), search) {
			continue
		}
		result = append(result, p)
	}
	return result
}
