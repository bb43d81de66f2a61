package court

import (
	"fmt"
	"strconv"
	"strings"
)

const streetViewBaseURL = "https://www.google.com/maps/@?api=1&map_action=pano"

// StreetViewURL builds the map panorama link for a coordinate pair.
// It is a pure function of the coordinates.
func StreetViewURL(lat, lng float64) string {
	return fmt.Sprintf("%s&viewpoint=%s,%s", streetViewBaseURL, formatCoord(lat), formatCoord(lng))
}

// SetStreetViewURL sets the derived map link if the court has coordinates
// and no link yet. Returns true if the link was set. Calling it again on
// the same court is a no-op.
func (c *Court) SetStreetViewURL() bool {
	if !c.HasCoordinates() || c.StreetViewURL != nil {
		return false
	}
	u := StreetViewURL(*c.Lat, *c.Lng)
	c.StreetViewURL = &u
	return true
}

// formatCoord renders a coordinate with the shortest exact decimal form.
// Integral values keep a trailing .0 so URLs stay byte-identical to the
// ones already present in the published dataset.
func formatCoord(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
