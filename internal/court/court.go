package court

// Court represents a single pickleball court location.
//
// Enrichment fields are pointers so that records serialize with explicit
// nulls until the details fetch fills them in. Lat/Lng are pointers because
// the search endpoint can omit coordinates entirely.
type Court struct {
	PlaceID         string            `json:"place_id"`
	Name            string            `json:"name"`
	Address         string            `json:"address"`
	Lat             *float64          `json:"lat"`
	Lng             *float64          `json:"lng"`
	Types           []string          `json:"types"`
	Rating          *float64          `json:"rating"`
	UserRatingCount *int              `json:"user_rating_count"`
	Phone           *string           `json:"phone"`
	Website         *string           `json:"website"`
	Hours           map[string]string `json:"hours"`
	Photo           *string           `json:"photo"`
	StreetViewURL   *string           `json:"street_view_url"`
}

// Enrichment holds the optional detail fields fetched for a court.
type Enrichment struct {
	Rating          *float64
	UserRatingCount *int
	Phone           *string
	Website         *string
	Hours           map[string]string
}

// Enriched reports whether the court has already been through a successful
// details fetch. A court counts as enriched once any detail field is set.
func (c *Court) Enriched() bool {
	return c.Rating != nil || c.Phone != nil || c.Website != nil || c.Hours != nil
}

// Apply copies enrichment fields onto the court. Only non-nil incoming
// values are applied, so a sparse details response never clears a field
// that an earlier run already set.
func (c *Court) Apply(e Enrichment) {
	if e.Rating != nil {
		c.Rating = e.Rating
	}
	if e.UserRatingCount != nil {
		c.UserRatingCount = e.UserRatingCount
	}
	if e.Phone != nil {
		c.Phone = e.Phone
	}
	if e.Website != nil {
		c.Website = e.Website
	}
	if e.Hours != nil {
		c.Hours = e.Hours
	}
}

// HasCoordinates reports whether both coordinates are present.
func (c *Court) HasCoordinates() bool {
	return c.Lat != nil && c.Lng != nil
}
