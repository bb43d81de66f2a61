package pipeline

import (
	"context"

	"github.com/swishapp/court-scraper/internal/court"
	"github.com/swishapp/court-scraper/internal/logger"
	"github.com/swishapp/court-scraper/internal/places"
)

// progressEvery controls how often enrichment progress is logged.
const progressEvery = 50

// enrichStage fetches details for unenriched courts, up to the per-run
// cap, in table order. Courts beyond the cap stay unenriched and become
// candidates on the next run. A failed fetch leaves the court untouched
// and still counts against the cap, matching the selection the cap
// promises: at most N candidates attempted per run.
func (p *Pipeline) enrichStage(ctx context.Context, table *court.Table, summary *Summary) {
	if p.maxEnrich < 0 {
		return
	}

	candidates := make([]*court.Court, 0, p.maxEnrich)
	for _, c := range table.Courts() {
		if c.Enriched() {
			continue
		}
		candidates = append(candidates, c)
		if len(candidates) == p.maxEnrich {
			break
		}
	}

	if len(candidates) == 0 {
		return
	}
	p.log.Info("enriching courts", logger.Fields{"candidates": len(candidates)})

	for i, c := range candidates {
		p.enrichCourt(ctx, c)

		if (i+1)%progressEvery == 0 {
			p.log.Info("enrichment progress", logger.Fields{
				"done":  i + 1,
				"total": len(candidates),
			})
		}
	}
}

// enrichCourt applies one court's details and, optionally, its first
// photo. Failures are logged and leave already-set fields alone.
func (p *Pipeline) enrichCourt(ctx context.Context, c *court.Court) {
	details, err := p.client.Details(ctx, c.PlaceID)
	if err != nil {
		p.log.Error("details fetch failed", logger.Fields{"place_id": c.PlaceID}, err)
		return
	}

	c.Apply(court.Enrichment{
		Rating:          details.Rating,
		UserRatingCount: details.UserRatingCount,
		Phone:           details.InternationalPhoneNumber,
		Website:         details.WebsiteURI,
		Hours:           places.ParseHours(details.RegularOpeningHours),
	})

	if p.fetchPhotos && c.Photo == nil && len(details.Photos) > 0 {
		p.fetchPhoto(ctx, c, details.Photos[0].Name)
	}
}

// fetchPhoto downloads and persists one photo, recording its relative path
// on the court. A photo failure never rolls back the details enrichment.
func (p *Pipeline) fetchPhoto(ctx context.Context, c *court.Court, name string) {
	data, err := p.client.Photo(ctx, name)
	if err != nil {
		p.log.Error("photo fetch failed", logger.Fields{"place_id": c.PlaceID}, err)
		return
	}

	rel, err := p.store.SavePhoto(c.PlaceID, data)
	if err != nil {
		p.log.Error("photo save failed", logger.Fields{"place_id": c.PlaceID}, err)
		return
	}
	c.Photo = &rel
}
