package pipeline

import (
	"context"

	"github.com/swishapp/court-scraper/internal/court"
	"github.com/swishapp/court-scraper/internal/logger"
	"github.com/swishapp/court-scraper/internal/places"
	"github.com/swishapp/court-scraper/internal/storage"
)

// maxSearchPages caps pagination per query.
const maxSearchPages = 3

// searchStage runs every query not yet in the checkpoint and folds results
// into the table. A failed first page leaves the query uncompleted so a
// later run retries it; a failure on a later page keeps the partial
// results and still completes the query, since rerunning it would mostly
// refetch places the table already has.
func (p *Pipeline) searchStage(ctx context.Context, queries []string, table *court.Table, cp *storage.Checkpoint, summary *Summary) {
	for _, query := range queries {
		if cp.Contains(query) {
			summary.QueriesSkipped++
			continue
		}

		added, err := p.runQuery(ctx, query, table)
		summary.NewCourts += added
		if err != nil {
			p.log.Error("search query failed", logger.Fields{"query": query}, err)
			continue
		}

		cp.Add(query)
		summary.QueriesRun++
		p.log.Info("query complete", logger.Fields{
			"query":  query,
			"added":  added,
			"unique": table.Len(),
		})
	}
}

// runQuery pages through one text search and merges its places. The error
// return is non-nil only for a first-page failure; later-page failures are
// logged here and reported as success with partial results.
func (p *Pipeline) runQuery(ctx context.Context, query string, table *court.Table) (added int, err error) {
	result, err := p.client.TextSearch(ctx, query, "")
	if err != nil {
		return 0, err
	}

	for page := 1; ; page++ {
		added += mergePlaces(table, result.Places)

		if result.NextPageToken == "" || page >= maxSearchPages {
			return added, nil
		}

		result, err = p.client.TextSearch(ctx, query, result.NextPageToken)
		if err != nil {
			p.log.Error("search page failed, keeping partial results", logger.Fields{
				"query": query,
				"page":  page + 1,
			}, err)
			return added, nil
		}
	}
}

// mergePlaces adds search hits to the table, first-seen-wins. Hits without
// an ID are dropped.
func mergePlaces(table *court.Table, hits []places.Place) int {
	added := 0
	for _, pl := range hits {
		if pl.ID == "" {
			continue
		}
		if table.Add(newCourt(pl)) {
			added++
		}
	}
	return added
}

// newCourt maps a search hit onto a fresh court record with all
// enrichment fields still null.
func newCourt(pl places.Place) *court.Court {
	name := pl.DisplayName.Text
	if name == "" {
		name = "Unknown"
	}
	types := pl.Types
	if types == nil {
		types = []string{}
	}

	c := &court.Court{
		PlaceID: pl.ID,
		Name:    name,
		Address: pl.FormattedAddress,
		Types:   types,
	}
	if pl.Location != nil {
		lat, lng := pl.Location.Latitude, pl.Location.Longitude
		c.Lat, c.Lng = &lat, &lng
	}
	return c
}
