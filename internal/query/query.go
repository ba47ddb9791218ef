// Package query implements the listing and search pipelines over the
// in-memory snapshot: filter, sort, paginate for listing requests, and
// weighted relevance ranking for the free-text search bar. All functions are
// pure and safe for concurrent use.
package query

import (
	"strings"

	"estatehub/server/internal/models"
)

// DefaultLimit is the listing page size when the caller does not specify one.
const DefaultLimit = 12

// Result is one page of a filtered, sorted listing query.
type Result struct {
	Items []models.PropertySummary
	Meta  Meta
}

// Properties runs the listing pipeline: filter, sort by key, paginate.
// Page and Limit fall back to 1 and DefaultLimit when unset; validation of
// caller-supplied values happens at the HTTP boundary.
func Properties(properties []models.PropertySummary, f Filters) Result {
	page := f.Page
	if page < 1 {
		page = 1
	}
	limit := f.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	filtered := Filter(properties, f)
	sorted := Sort(filtered, f.SortBy)
	items, meta := Paginate(sorted, page, limit)

	return Result{Items: items, Meta: meta}
}

// Search type filters accepted by SearchAll.
const (
	TypeAll      = "all"
	TypeProperty = "property"
	TypeArea     = "area"
)

// MinSearchLength is the shortest query the ranking engine accepts; callers
// reject anything shorter before invoking SearchAll.
const MinSearchLength = 2

// SearchResults groups ranked hits for the search-bar response.
type SearchResults struct {
	Properties []models.SearchResult `json:"properties"`
	Areas      []models.SearchResult `json:"areas"`
	All        []models.SearchResult `json:"all"`
}

// SearchAll ranks properties and areas against a free-text query and returns
// the top hits grouped by kind. The query must be at least MinSearchLength
// runes after trimming; shorter queries are the caller's to reject. A
// candidate matching no field is excluded, not scored zero. typeFilter
// restricts the candidate kinds ("property", "area", anything else means
// both); limit caps the merged list when positive.
func SearchAll(properties []models.PropertySummary, areas []models.AreaSummary, rawQuery, typeFilter string, limit int) SearchResults {
	query := strings.ToLower(strings.TrimSpace(rawQuery))

	var results []models.SearchResult

	if typeFilter == "" || typeFilter == TypeAll || typeFilter == TypeProperty {
		for _, p := range properties {
			relevance := scoreProperty(p, query)
			if relevance == 0 {
				continue
			}
			price := p.Price
			results = append(results, models.SearchResult{
				Type:      models.SearchTypeProperty,
				ID:        p.ID,
				Title:     p.Title,
				Slug:      p.Slug,
				Price:     &price,
				Location:  joinLocation(p.AreaName, p.City),
				Image:     p.ImageURL,
				Relevance: relevance,
			})
		}
	}

	if typeFilter == "" || typeFilter == TypeAll || typeFilter == TypeArea {
		for _, a := range areas {
			relevance := scoreArea(a, query)
			if relevance == 0 {
				continue
			}
			results = append(results, models.SearchResult{
				Type:        models.SearchTypeArea,
				ID:          a.ID,
				Title:       a.Name,
				Slug:        a.Slug,
				Description: a.Description,
				Location:    joinLocation(a.City, a.State),
				Image:       a.ImageURL,
				Relevance:   relevance,
			})
		}
	}

	rank(results)

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}

	if results == nil {
		results = []models.SearchResult{}
	}
	grouped := SearchResults{
		Properties: []models.SearchResult{},
		Areas:      []models.SearchResult{},
		All:        results,
	}
	for _, r := range results {
		switch r.Type {
		case models.SearchTypeProperty:
			grouped.Properties = append(grouped.Properties, r)
		case models.SearchTypeArea:
			grouped.Areas = append(grouped.Areas, r)
		}
	}
	return grouped
}

func joinLocation(parts ...string) string {
	var nonEmpty []string
	for _, p := range parts {
		if p != "" {
			nonEmpty = append(nonEmpty, p)
		}
	}
	return strings.Join(nonEmpty, ", ")
}
