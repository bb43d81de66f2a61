package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/swishapp/court-scraper/internal/pipeline"
)

// OutputFormat specifies the summary output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// WriteSummary writes the run summary in the specified format
func WriteSummary(w io.Writer, summary *pipeline.Summary, format OutputFormat) error {
	switch format {
	case FormatJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(summary)
	case FormatText:
		return writeText(w, summary)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeText outputs the summary as human-readable text
func writeText(w io.Writer, s *pipeline.Summary) error {
	fmt.Fprintf(w, "Queries: %d run, %d already complete\n", s.QueriesRun, s.QueriesSkipped)
	fmt.Fprintf(w, "Courts: %d total (%d new this run)\n", s.TotalCourts, s.NewCourts)
	fmt.Fprintf(w, "Enriched: %d of %d\n", s.Enriched, s.TotalCourts)
	fmt.Fprintf(w, "Photos: %d\n", s.Photographed)
	if s.LinksDerived > 0 {
		fmt.Fprintf(w, "Street view links derived: %d\n", s.LinksDerived)
	}
	return nil
}
