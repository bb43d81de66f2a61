package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestQueriesProduct(t *testing.T) {
	cat := &Catalog{
		Templates: []string{"pickleball courts near %s", "indoor pickleball %s"},
		Cities:    []string{"Phoenix, AZ", "Austin, TX", "Denver, CO"},
	}

	queries := cat.Queries()

	if len(queries) != 6 {
		t.Fatalf("Queries() returned %d queries, want 6", len(queries))
	}

	want := []string{
		"pickleball courts near Phoenix, AZ",
		"pickleball courts near Austin, TX",
		"pickleball courts near Denver, CO",
		"indoor pickleball Phoenix, AZ",
		"indoor pickleball Austin, TX",
		"indoor pickleball Denver, CO",
	}
	for i, q := range want {
		if queries[i] != q {
			t.Errorf("queries[%d] = %q, want %q", i, queries[i], q)
		}
	}
}

func TestQueriesDeterministic(t *testing.T) {
	cat := Default()

	first := cat.Queries()
	second := cat.Queries()

	if len(first) != len(second) {
		t.Fatalf("query counts differ between calls: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("queries[%d] differs between calls: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestQueriesUnique(t *testing.T) {
	queries := Default().Queries()

	seen := make(map[string]bool)
	for _, q := range queries {
		if seen[q] {
			t.Errorf("duplicate query generated: %q", q)
		}
		seen[q] = true
	}
}

// The legacy query set must be a prefix of the default catalog's output so
// the checkpoint fallback marks exactly the right queries as done.
func TestLegacyQueriesArePrefixOfDefault(t *testing.T) {
	legacy := LegacyQueries()
	all := Default().Queries()

	if len(legacy) != len(DefaultCities) {
		t.Fatalf("LegacyQueries() returned %d queries, want %d", len(legacy), len(DefaultCities))
	}
	for i, q := range legacy {
		if all[i] != q {
			t.Errorf("legacy query %d = %q, but default catalog has %q at that position", i, q, all[i])
		}
	}
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name          string
		yaml          string
		wantTemplates int
		wantCities    int
		wantErr       bool
	}{
		{
			name:          "cities only, templates default",
			yaml:          "cities:\n  - \"Boise, ID\"\n  - \"Reno, NV\"\n",
			wantTemplates: len(DefaultTemplates),
			wantCities:    2,
		},
		{
			name:          "templates only, cities default",
			yaml:          "templates:\n  - \"pickleball near %s\"\n",
			wantTemplates: 1,
			wantCities:    len(DefaultCities),
		},
		{
			name:          "empty file keeps all defaults",
			yaml:          "",
			wantTemplates: len(DefaultTemplates),
			wantCities:    len(DefaultCities),
		},
		{
			name:    "template without placeholder rejected",
			yaml:    "templates:\n  - \"pickleball courts\"\n",
			wantErr: true,
		},
		{
			name:    "template with two placeholders rejected",
			yaml:    "templates:\n  - \"%s courts %s\"\n",
			wantErr: true,
		},
		{
			name:    "invalid yaml rejected",
			yaml:    "cities: [unclosed",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0644); err != nil {
				t.Fatalf("writing config: %v", err)
			}

			cat, err := Load(path)
			if tt.wantErr {
				if err == nil {
					t.Fatal("Load() succeeded, want error")
				}
				return
			}
			if err != nil {
				t.Fatalf("Load() error: %v", err)
			}
			if len(cat.Templates) != tt.wantTemplates {
				t.Errorf("got %d templates, want %d", len(cat.Templates), tt.wantTemplates)
			}
			if len(cat.Cities) != tt.wantCities {
				t.Errorf("got %d cities, want %d", len(cat.Cities), tt.wantCities)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	if err == nil {
		t.Fatal("Load() succeeded for missing file, want error")
	}
	if !strings.Contains(err.Error(), "reading catalog config") {
		t.Errorf("unexpected error: %v", err)
	}
}
