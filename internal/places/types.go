package places

import "strings"

// searchRequest is the text search POST body.
type searchRequest struct {
	TextQuery string `json:"textQuery"`
	PageSize  int    `json:"pageSize"`
	PageToken string `json:"pageToken,omitempty"`
}

// SearchResponse is one page of text search results.
type SearchResponse struct {
	Places        []Place `json:"places"`
	NextPageToken string  `json:"nextPageToken"`
}

// Place is a single text search hit.
type Place struct {
	ID               string        `json:"id"`
	DisplayName      LocalizedText `json:"displayName"`
	FormattedAddress string        `json:"formattedAddress"`
	Location         *LatLng       `json:"location"`
	Types            []string      `json:"types"`
}

// LocalizedText is the API's wrapper around display strings.
type LocalizedText struct {
	Text string `json:"text"`
}

// LatLng is a coordinate pair.
type LatLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Details is the place details response. Every field is optional; absent
// fields decode as nil and are treated as "no data", never as an error.
type Details struct {
	Rating                   *float64      `json:"rating"`
	UserRatingCount          *int          `json:"userRatingCount"`
	RegularOpeningHours      *OpeningHours `json:"regularOpeningHours"`
	InternationalPhoneNumber *string       `json:"internationalPhoneNumber"`
	WebsiteURI               *string       `json:"websiteUri"`
	Photos                   []PhotoRef    `json:"photos"`
}

// OpeningHours carries the human-readable weekly schedule.
type OpeningHours struct {
	WeekdayDescriptions []string `json:"weekdayDescriptions"`
}

// PhotoRef is a reference to a photo resource, fetchable via the media
// endpoint.
type PhotoRef struct {
	Name string `json:"name"`
}

// ParseHours converts opening hours into a lowercase weekday -> free-text
// map. Descriptions look like "Monday: 6:00 AM – 10:00 PM"; entries that
// don't split on ": " are skipped. Returns nil when there is no usable
// hours data, which serializes as a null hours field.
func ParseHours(oh *OpeningHours) map[string]string {
	if oh == nil || len(oh.WeekdayDescriptions) == 0 {
		return nil
	}

	hours := make(map[string]string)
	for _, desc := range oh.WeekdayDescriptions {
		day, text, found := strings.Cut(desc, ": ")
		if !found {
			continue
		}
		hours[strings.ToLower(day)] = text
	}
	if len(hours) == 0 {
		return nil
	}
	return hours
}
