package models

// AreaSummary is an area record from the areas index.
type AreaSummary struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Slug            string       `json:"slug"`
	City            string       `json:"city"`
	State           string       `json:"state,omitempty"`
	Description     string       `json:"description"`
	ImageURL        string       `json:"imageUrl"`
	PropertyCount   int          `json:"propertyCount"`
	PriceRangeMin   *int64       `json:"priceRangeMin,omitempty"`
	PriceRangeMax   *int64       `json:"priceRangeMax,omitempty"`
	PopularFor      []string     `json:"popularFor,omitempty"`
	NearbyLandmarks []string     `json:"nearbyLandmarks,omitempty"`
	Connectivity    Connectivity `json:"connectivity"`
	Coordinates     *Coordinates `json:"coordinates,omitempty"`
	Featured        bool         `json:"featured"`
}

// Connectivity lists the transport links an area advertises.
type Connectivity struct {
	Metro   []string `json:"metro,omitempty"`
	Highway []string `json:"highway,omitempty"`
}

// Area is the full detail record stored one file per slug in the snapshot.
type Area struct {
	ID              string       `json:"id"`
	Name            string       `json:"name"`
	Slug            string       `json:"slug"`
	City            string       `json:"city"`
	State           string       `json:"state,omitempty"`
	Description     string       `json:"description"`
	Overview        string       `json:"overview,omitempty"`
	ImageURL        string       `json:"imageUrl,omitempty"`
	PriceRangeMin   *int64       `json:"priceRangeMin,omitempty"`
	PriceRangeMax   *int64       `json:"priceRangeMax,omitempty"`
	AvgPricePerSqFt *float64     `json:"avgPricePerSqFt,omitempty"`
	PopularFor      []string     `json:"popularFor,omitempty"`
	NearbyLandmarks []string     `json:"nearbyLandmarks,omitempty"`
	Connectivity    Connectivity `json:"connectivity"`
	Coordinates     *Coordinates `json:"coordinates,omitempty"`
	Amenities       []string     `json:"amenities,omitempty"`
	FAQs            []AreaFAQ    `json:"faqs,omitempty"`
	CreatedAt       string       `json:"createdAt,omitempty"`
	UpdatedAt       string       `json:"updatedAt,omitempty"`
}

type AreaFAQ struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
