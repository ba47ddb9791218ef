package models

// Search result kinds. A result is either a property or an area; the two are
// scored by different weight tables but merged into one ranked list.
const (
	SearchTypeProperty = "property"
	SearchTypeArea     = "area"
)

// SearchResult is one ranked hit from the free-text search.
type SearchResult struct {
	Type        string `json:"type"`
	ID          string `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	Price       *int64 `json:"price,omitempty"`
	Location    string `json:"location,omitempty"`
	Image       string `json:"image,omitempty"`
	Relevance   int    `json:"relevance"`
}
