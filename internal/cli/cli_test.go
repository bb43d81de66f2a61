package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/swishapp/court-scraper/internal/pipeline"
)

func TestRequireAPIKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{"valid key", "AIzaExampleKey123", false},
		{"empty key", "", true},
		{"whitespace only", "   ", true},
		{"placeholder from the env template", "paste_your_key_here", true},
		{"valid key with surrounding whitespace", "  AIzaExampleKey123  ", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := requireAPIKey(tt.key)
			if tt.wantErr {
				if err == nil {
					t.Fatal("requireAPIKey() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("requireAPIKey() error: %v", err)
			}
			if key != strings.TrimSpace(tt.key) {
				t.Errorf("requireAPIKey() = %q", key)
			}
		})
	}
}

func TestWriteSummaryText(t *testing.T) {
	summary := &pipeline.Summary{
		TotalCourts:    120,
		Enriched:       90,
		Photographed:   45,
		QueriesRun:     5,
		QueriesSkipped: 70,
		NewCourts:      12,
		LinksDerived:   12,
	}

	var buf bytes.Buffer
	if err := WriteSummary(&buf, summary, FormatText); err != nil {
		t.Fatalf("WriteSummary() error: %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"Queries: 5 run, 70 already complete",
		"Courts: 120 total (12 new this run)",
		"Enriched: 90 of 120",
		"Photos: 45",
		"Street view links derived: 12",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("text summary missing %q in:\n%s", want, out)
		}
	}
}

func TestWriteSummaryJSON(t *testing.T) {
	summary := &pipeline.Summary{TotalCourts: 3, Enriched: 1}

	var buf bytes.Buffer
	if err := WriteSummary(&buf, summary, FormatJSON); err != nil {
		t.Fatalf("WriteSummary() error: %v", err)
	}

	var decoded pipeline.Summary
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("JSON summary does not decode: %v", err)
	}
	if decoded.TotalCourts != 3 || decoded.Enriched != 1 {
		t.Errorf("decoded summary = %+v", decoded)
	}
}

func TestWriteSummaryUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSummary(&buf, &pipeline.Summary{}, OutputFormat("xml")); err == nil {
		t.Error("WriteSummary() accepted an unknown format")
	}
}
