package catalog

import "fmt"

// DefaultCities is the built-in search coverage list.
var DefaultCities = []string{
	"Phoenix, AZ",
	"Scottsdale, AZ",
	"Mesa, AZ",
	"Los Angeles, CA",
	"San Diego, CA",
	"Palm Springs, CA",
	"Austin, TX",
	"Houston, TX",
	"Dallas, TX",
	"Denver, CO",
	"Seattle, WA",
	"Portland, OR",
	"Naples, FL",
	"Tampa, FL",
	"Orlando, FL",
	"Miami, FL",
	"Salt Lake City, UT",
	"Las Vegas, NV",
	"Atlanta, GA",
	"Chicago, IL",
	"New York, NY",
	"Charlotte, NC",
	"Minneapolis, MN",
	"Kansas City, MO",
	"Pittsburgh, PA",
}

// DefaultTemplates is the built-in query template list. Each template has
// exactly one %s verb, filled with a city. The first template is the one
// historical runs used before templates existed, which is what the legacy
// checkpoint fallback assumes (see LegacyQueries).
var DefaultTemplates = []string{
	"pickleball courts near %s",
	"indoor pickleball %s",
	"pickleball club %s",
}

// Catalog holds the template and city lists that generate search queries.
type Catalog struct {
	Templates []string
	Cities    []string
}

// Default returns a catalog with the built-in templates and cities.
func Default() *Catalog {
	return &Catalog{
		Templates: DefaultTemplates,
		Cities:    DefaultCities,
	}
}

// Queries produces the full ordered query list: for each template in order,
// one query per city in order. Pure and deterministic.
func (c *Catalog) Queries() []string {
	queries := make([]string, 0, len(c.Templates)*len(c.Cities))
	for _, tmpl := range c.Templates {
		for _, city := range c.Cities {
			queries = append(queries, fmt.Sprintf(tmpl, city))
		}
	}
	return queries
}

// LegacyQueries returns the query set assumed to have run already when a
// court dataset exists without a checkpoint file. Older versions of the
// scraper ran exactly one query per default city.
func LegacyQueries() []string {
	queries := make([]string, 0, len(DefaultCities))
	for _, city := range DefaultCities {
		queries = append(queries, fmt.Sprintf(DefaultTemplates[0], city))
	}
	return queries
}
