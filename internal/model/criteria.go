package model

// BudgetRange is an inclusive price window. A zero Max means no upper bound.
type BudgetRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains reports whether price lies inside the range
func (b BudgetRange) Contains(price float64) bool {
	if price < b.Min {
		return false
	}
	return b.Max <= 0 || price <= b.Max
}

// SearchCriteria is what a customer conversation has collected so far
type SearchCriteria struct {
	Location     string       `json:"location,omitempty"`
	Budget       *BudgetRange `json:"budget,omitempty"`
	PropertyType string       `json:"property_type,omitempty"`
	Bedrooms     *int         `json:"bedrooms,omitempty"`
	Bathrooms    *int         `json:"bathrooms,omitempty"`
	Features     []string     `json:"features,omitempty"`
}

// Merge copies every set field of partial over c
func (c *SearchCriteria) Merge(partial SearchCriteria) {
	if partial.Location != "" {
		c.Location = partial.Location
	}
	if partial.Budget != nil {
		b := *partial.Budget
		c.Budget = &b
	}
	if partial.PropertyType != "" {
		c.PropertyType = partial.PropertyType
	}
	if partial.Bedrooms != nil {
		n := *partial.Bedrooms
		c.Bedrooms = &n
	}
	if partial.Bathrooms != nil {
		n := *partial.Bathrooms
		c.Bathrooms = &n
	}
	if len(partial.Features) > 0 {
		c.Features = append([]string(nil), partial.Features...)
	}
}

// IsEmpty reports whether no field is set
func (c SearchCriteria) IsEmpty() bool {
	return c.Location == "" && c.Budget == nil && c.PropertyType == "" &&
		c.Bedrooms == nil && c.Bathrooms == nil && len(c.Features) == 0
}

// ToFilter converts collected criteria into the same filter the manual panel uses
func (c SearchCriteria) ToFilter() PropertyFilter {
	f := PropertyFilter{
		PropertyType: c.PropertyType,
		Location:     c.Location,
		Bedrooms:     c.Bedrooms,
		Bathrooms:    c.Bathrooms,
		Features:     c.Features,
	}
	if c.Budget != nil {
		b := *c.Budget
		f.PriceRange = &b
	}
	return f
}

// UserPreferences are soft signals used for re-ranking, never for filtering
type UserPreferences struct {
	Style        string   `json:"style,omitempty"`
	Neighborhood string   `json:"neighborhood,omitempty"`
	Amenities    []string `json:"amenities,omitempty"`
	Priority     string   `json:"priority,omitempty"`
}

// Merge copies every set field of partial over p
func (p *UserPreferences) Merge(partial UserPreferences) {
	if partial.Style != "" {
		p.Style = partial.Style
	}
	if partial.Neighborhood != "" {
		p.Neighborhood = partial.Neighborhood
	}
	if len(partial.Amenities) > 0 {
		p.Amenities = append([]string(nil), partial.Amenities...)
	}
	if partial.Priority != "" {
		p.Priority = partial.Priority
	}
}

// FormData holds seller answers keyed by form field name
type FormData map[string]string

// Form field names filled by the seller conversation
const (
	FieldPropertyType = "propertyType"
	FieldAddress      = "address"
	FieldCity         = "city"
	FieldState        = "state"
	FieldZipCode      = "zipCode"
	FieldBedrooms     = "bedrooms"
	FieldBathrooms    = "bathrooms"
	FieldSqft         = "sqft"
	FieldPrice        = "price"
	FieldFeatures     = "features"
	FieldNeighborhood = "neighborhood"
	FieldImages       = "images"
	FieldDescription  = "description"
)

// FormFieldLabels maps form fields to the labels shown on the generated listing form
var FormFieldLabels = map[string]string{
	FieldPropertyType: "Property Type",
	FieldAddress:      "Street Address",
	FieldCity:         "City",
	FieldState:        "State",
	FieldZipCode:      "ZIP Code",
	FieldBedrooms:     "Bedrooms",
	FieldBathrooms:    "Bathrooms",
	FieldSqft:         "Square Footage",
	FieldPrice:        "Listing Price",
	FieldFeatures:     "Key Features",
	FieldNeighborhood: "Neighborhood",
	FieldDescription:  "Property Description",
	FieldImages:       "Property Photos",
}
