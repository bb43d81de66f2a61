package court

import "testing"

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func strPtr(s string) *string     { return &s }

func TestEnriched(t *testing.T) {
	tests := []struct {
		name  string
		court Court
		want  bool
	}{
		{
			name:  "fresh court is not enriched",
			court: Court{PlaceID: "a"},
			want:  false,
		},
		{
			name:  "rating alone counts",
			court: Court{PlaceID: "a", Rating: floatPtr(4.5)},
			want:  true,
		},
		{
			name:  "phone alone counts",
			court: Court{PlaceID: "a", Phone: strPtr("+1 555-0100")},
			want:  true,
		},
		{
			name:  "website alone counts",
			court: Court{PlaceID: "a", Website: strPtr("https://example.com")},
			want:  true,
		},
		{
			name:  "hours alone counts",
			court: Court{PlaceID: "a", Hours: map[string]string{"monday": "6:00 AM – 10:00 PM"}},
			want:  true,
		},
		{
			name:  "rating count alone does not count",
			court: Court{PlaceID: "a", UserRatingCount: intPtr(12)},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.court.Enriched(); got != tt.want {
				t.Errorf("Enriched() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyIsMonotonic(t *testing.T) {
	c := &Court{PlaceID: "a"}
	c.Apply(Enrichment{
		Rating:  floatPtr(4.2),
		Phone:   strPtr("+1 555-0100"),
		Website: strPtr("https://example.com"),
		Hours:   map[string]string{"monday": "6:00 AM – 10:00 PM"},
	})

	// A second, sparser response must not clear anything.
	c.Apply(Enrichment{UserRatingCount: intPtr(7)})

	if c.Rating == nil || *c.Rating != 4.2 {
		t.Error("Rating was cleared by a sparse enrichment")
	}
	if c.Phone == nil || *c.Phone != "+1 555-0100" {
		t.Error("Phone was cleared by a sparse enrichment")
	}
	if c.Website == nil {
		t.Error("Website was cleared by a sparse enrichment")
	}
	if c.Hours == nil {
		t.Error("Hours were cleared by a sparse enrichment")
	}
	if c.UserRatingCount == nil || *c.UserRatingCount != 7 {
		t.Error("UserRatingCount was not applied")
	}
}

func TestApplyEmptyEnrichmentIsNoop(t *testing.T) {
	c := &Court{PlaceID: "a", Rating: floatPtr(3.9)}
	c.Apply(Enrichment{})

	if c.Rating == nil || *c.Rating != 3.9 {
		t.Error("empty enrichment modified the record")
	}
	if !c.Enriched() {
		t.Error("court lost its enriched status")
	}
}

func TestTableFirstSeenWins(t *testing.T) {
	table := NewTable()

	first := &Court{PlaceID: "a", Name: "Original Name", Address: "1 Main St"}
	if !table.Add(first) {
		t.Fatal("Add() rejected the first record")
	}

	dup := &Court{PlaceID: "a", Name: "Later Name", Address: "99 Other St"}
	if table.Add(dup) {
		t.Error("Add() accepted a duplicate place ID")
	}

	got := table.Get("a")
	if got.Name != "Original Name" || got.Address != "1 Main St" {
		t.Errorf("duplicate overwrote descriptive fields: got %q / %q", got.Name, got.Address)
	}
	if table.Len() != 1 {
		t.Errorf("Len() = %d, want 1", table.Len())
	}
}

func TestTableRejectsEmptyAndNil(t *testing.T) {
	table := NewTable()

	if table.Add(nil) {
		t.Error("Add(nil) succeeded")
	}
	if table.Add(&Court{}) {
		t.Error("Add() accepted a record without a place ID")
	}
	if table.Len() != 0 {
		t.Errorf("Len() = %d, want 0", table.Len())
	}
}

func TestTablePreservesInsertionOrder(t *testing.T) {
	table := NewTable()
	ids := []string{"c", "a", "b", "e", "d"}
	for _, id := range ids {
		table.Add(&Court{PlaceID: id})
	}

	courts := table.Courts()
	if len(courts) != len(ids) {
		t.Fatalf("Courts() returned %d records, want %d", len(courts), len(ids))
	}
	for i, id := range ids {
		if courts[i].PlaceID != id {
			t.Errorf("courts[%d].PlaceID = %q, want %q", i, courts[i].PlaceID, id)
		}
	}
}

func TestHasCoordinates(t *testing.T) {
	if (&Court{PlaceID: "a", Lat: floatPtr(40)}).HasCoordinates() {
		t.Error("court with only lat reports coordinates")
	}
	if !(&Court{PlaceID: "a", Lat: floatPtr(40), Lng: floatPtr(-75)}).HasCoordinates() {
		t.Error("court with both coordinates reports none")
	}
}
