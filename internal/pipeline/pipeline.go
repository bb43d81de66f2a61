package pipeline

import (
	"context"
	"fmt"

	"github.com/swishapp/court-scraper/internal/court"
	"github.com/swishapp/court-scraper/internal/logger"
	"github.com/swishapp/court-scraper/internal/places"
	"github.com/swishapp/court-scraper/internal/storage"
)

// DefaultMaxEnrichment caps how many courts get a details fetch per run.
const DefaultMaxEnrichment = 500

// PlacesClient is the slice of the Places API the pipeline needs. The
// concrete implementation is places.Client; tests substitute fakes.
type PlacesClient interface {
	TextSearch(ctx context.Context, query, pageToken string) (*places.SearchResponse, error)
	Details(ctx context.Context, placeID string) (*places.Details, error)
	Photo(ctx context.Context, name string) ([]byte, error)
}

// Config wires a Pipeline.
type Config struct {
	Client PlacesClient
	Store  *storage.Store
	Log    *logger.Logger

	// MaxEnrichment caps newly enriched courts per run; zero means the
	// default, negative means no enrichment.
	MaxEnrichment int

	// SkipPhotos disables photo downloads during enrichment.
	SkipPhotos bool
}

// Pipeline runs the fetch-merge-enrich sequence.
type Pipeline struct {
	client      PlacesClient
	store       *storage.Store
	log         *logger.Logger
	maxEnrich   int
	fetchPhotos bool
}

// Summary reports what a run did.
type Summary struct {
	TotalCourts    int `json:"total_courts"`
	Enriched       int `json:"enriched"`
	Photographed   int `json:"photographed"`
	QueriesRun     int `json:"queries_run"`
	QueriesSkipped int `json:"queries_skipped"`
	NewCourts      int `json:"new_courts"`
	LinksDerived   int `json:"links_derived"`
}

// New creates a Pipeline from a Config.
func New(cfg Config) (*Pipeline, error) {
	if cfg.Client == nil {
		return nil, fmt.Errorf("pipeline requires a places client")
	}
	if cfg.Store == nil {
		return nil, fmt.Errorf("pipeline requires a store")
	}

	log := cfg.Log
	if log == nil {
		log = logger.Default()
	}

	maxEnrich := cfg.MaxEnrichment
	if maxEnrich == 0 {
		maxEnrich = DefaultMaxEnrichment
	}

	return &Pipeline{
		client:      cfg.Client,
		store:       cfg.Store,
		log:         log,
		maxEnrich:   maxEnrich,
		fetchPhotos: !cfg.SkipPhotos,
	}, nil
}

// Run loads persisted state, executes the three stages against the given
// query list, and writes everything back. Per-query and per-court failures
// are logged and skipped; an error return means the run could not load or
// persist its state.
func (p *Pipeline) Run(ctx context.Context, queries []string) (*Summary, error) {
	table, cp, err := p.store.Load()
	if err != nil {
		return nil, fmt.Errorf("loading state: %w", err)
	}

	summary := &Summary{}

	p.searchStage(ctx, queries, table, cp, summary)

	// Checkpoint at the phase boundary so completed queries survive even
	// if enrichment dies mid-run.
	if err := p.store.SaveCheckpoint(cp); err != nil {
		return nil, fmt.Errorf("saving checkpoint: %w", err)
	}

	p.enrichStage(ctx, table, summary)

	summary.LinksDerived = deriveStreetViewLinks(table)

	if err := p.store.SaveCourts(table); err != nil {
		return nil, fmt.Errorf("saving court data: %w", err)
	}

	summary.TotalCourts = table.Len()
	for _, c := range table.Courts() {
		if c.Enriched() {
			summary.Enriched++
		}
		if c.Photo != nil {
			summary.Photographed++
		}
	}

	return summary, nil
}

// deriveStreetViewLinks is the pure post-pass: set the map link once for
// every court that has coordinates and no link yet.
func deriveStreetViewLinks(table *court.Table) int {
	derived := 0
	for _, c := range table.Courts() {
		if c.SetStreetViewURL() {
			derived++
		}
	}
	return derived
}
