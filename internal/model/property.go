package model

// Coordinates is a latitude/longitude pair
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PropertyLocation is where a property is
type PropertyLocation struct {
	Address      string       `json:"address"`
	City         string       `json:"city"`
	State        string       `json:"state"`
	ZipCode      string       `json:"zip_code"`
	Coordinates  *Coordinates `json:"coordinates,omitempty"`
	Neighborhood string       `json:"neighborhood,omitempty"`
}

// PropertyDetails is the physical description of a property
type PropertyDetails struct {
	Bedrooms  int    `json:"bedrooms"`
	Bathrooms int    `json:"bathrooms"`
	Sqft      int    `json:"sqft"`
	Type      string `json:"type"`
	YearBuilt int    `json:"year_built,omitempty"`
	Parking   int    `json:"parking,omitempty"`
	LotSize   int    `json:"lot_size,omitempty"`
}

// Agent is the listing contact
type Agent struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// ListingInfo is the market status of a property
type ListingInfo struct {
	DatePosted   string `json:"date_posted"`
	DaysOnMarket int    `json:"days_on_market"`
	Status       string `json:"status"`
	Agent        Agent  `json:"agent"`
}

// AIRanking explains a property's match score
type AIRanking struct {
	Factors []string `json:"factors"`
}

// Property is a catalog record. Records are reference data: filtered and sorted, never edited in place.
type Property struct {
	ID           string           `json:"id"`
	Title        string           `json:"title"`
	Price        float64          `json:"price"`
	PricePerSqft float64          `json:"price_per_sqft,omitempty"`
	Location     PropertyLocation `json:"location"`
	Details      PropertyDetails  `json:"details"`
	Images       []string         `json:"images"`
	Features     []string         `json:"features,omitempty"`
	Description  string           `json:"description"`
	MatchScore   float64          `json:"match_score"`
	AIRanking    *AIRanking       `json:"ai_ranking,omitempty"`
	Listing      *ListingInfo     `json:"listing,omitempty"`
}

// PropertyFilter is the manual filter panel state. Nil or empty fields do not filter.
type PropertyFilter struct {
	PriceRange   *BudgetRange `json:"price_range,omitempty"`
	Bedrooms     *int         `json:"bedrooms,omitempty"`
	Bathrooms    *int         `json:"bathrooms,omitempty"`
	PropertyType string       `json:"property_type,omitempty"`
	Location     string       `json:"location,omitempty"`
	Features     []string     `json:"features,omitempty"`
}

// PropertyResult is a property with the score it was ranked by and why
type PropertyResult struct {
	Property
	Score          float64  `json:"score"`
	MatchedReasons []string `json:"matched_reasons"`
}
