package models

// PropertySummary is a property record from the listings index. It carries
// everything the filter and ranking engines look at, denormalized with the
// owning area's display name at load time.
type PropertySummary struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Slug         string   `json:"slug"`
	Price        int64    `json:"price"`
	PropertyType string   `json:"propertyType"`
	SubType      string   `json:"subType,omitempty"`
	Status       string   `json:"status"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *int     `json:"bathrooms"`
	AreaSize     float64  `json:"areaSize"`
	AreaSlug     string   `json:"areaSlug"`
	AreaName     string   `json:"areaName"`
	City         string   `json:"city,omitempty"`
	Address      string   `json:"address"`
	Features     []string `json:"features,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	ImageURL     string   `json:"imageUrl"`
	ViewCount    int      `json:"viewCount"`
	IsFeatured   bool     `json:"isFeatured"`
	IsActive     bool     `json:"isActive"`
}

// Property is the full detail record stored one file per slug in the snapshot.
type Property struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Slug         string        `json:"slug"`
	Description  string        `json:"description"`
	Price        int64         `json:"price"`
	PropertyType string        `json:"propertyType"`
	SubType      string        `json:"subType,omitempty"`
	Status       string        `json:"status"`
	Bedrooms     *int          `json:"bedrooms"`
	Bathrooms    *int          `json:"bathrooms"`
	AreaSize     float64       `json:"areaSize"`
	Floors       *int          `json:"floors,omitempty"`
	YearBuilt    *int          `json:"yearBuilt,omitempty"`
	Furnishing   string        `json:"furnishing,omitempty"`
	Address      string        `json:"address"`
	Locality     string        `json:"locality,omitempty"`
	Area         PropertyArea  `json:"area"`
	Coordinates  *Coordinates  `json:"coordinates,omitempty"`
	Features     []string      `json:"features,omitempty"`
	Amenities    []string      `json:"amenities,omitempty"`
	NearbyPlaces []NearbyPlace `json:"nearbyPlaces,omitempty"`
	Images       []string      `json:"images"`
	ViewCount    int           `json:"viewCount"`
	IsFeatured   bool          `json:"isFeatured"`
	IsActive     bool          `json:"isActive"`
	CreatedAt    string        `json:"createdAt,omitempty"`
	UpdatedAt    string        `json:"updatedAt,omitempty"`
}

// PropertyArea is the embedded owning-area reference on a detail record.
type PropertyArea struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
	Slug string `json:"slug"`
	City string `json:"city,omitempty"`
}

type Coordinates struct {
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lng"`
}

type NearbyPlace struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Distance string `json:"distance,omitempty"`
}
