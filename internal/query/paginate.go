package query

// Meta describes one page of a paginated result set.
type Meta struct {
	Total      int  `json:"total"`
	Page       int  `json:"page"`
	Limit      int  `json:"limit"`
	TotalPages int  `json:"totalPages"`
	HasMore    bool `json:"hasMore"`
}

// Paginate slices items into the 1-based page of size limit. Callers must
// pass validated positive integers. A page past the end yields an empty
// slice with HasMore false, not an error.
func Paginate[T any](items []T, page, limit int) ([]T, Meta) {
	total := len(items)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	end := start + limit
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return items[start:end], Meta{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
		HasMore:    page*limit < total,
	}
}
