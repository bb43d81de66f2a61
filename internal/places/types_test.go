package places

import "testing"

func TestParseHours(t *testing.T) {
	tests := []struct {
		name string
		in   *OpeningHours
		want map[string]string
	}{
		{
			name: "nil opening hours",
			in:   nil,
			want: nil,
		},
		{
			name: "empty descriptions",
			in:   &OpeningHours{},
			want: nil,
		},
		{
			name: "standard week",
			in: &OpeningHours{WeekdayDescriptions: []string{
				"Monday: 6:00 AM – 10:00 PM",
				"Tuesday: 6:00 AM – 10:00 PM",
				"Sunday: Closed",
			}},
			want: map[string]string{
				"monday":  "6:00 AM – 10:00 PM",
				"tuesday": "6:00 AM – 10:00 PM",
				"sunday":  "Closed",
			},
		},
		{
			name: "entries without separator are skipped",
			in: &OpeningHours{WeekdayDescriptions: []string{
				"Monday: 8:00 AM – 9:00 PM",
				"garbage line",
			}},
			want: map[string]string{
				"monday": "8:00 AM – 9:00 PM",
			},
		},
		{
			name: "only garbage yields nil",
			in:   &OpeningHours{WeekdayDescriptions: []string{"no separator here"}},
			want: nil,
		},
		{
			name: "hours text containing colons splits on first separator only",
			in: &OpeningHours{WeekdayDescriptions: []string{
				"Friday: Open 24 hours: really",
			}},
			want: map[string]string{
				"friday": "Open 24 hours: really",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseHours(tt.in)
			if tt.want == nil {
				if got != nil {
					t.Fatalf("ParseHours() = %v, want nil", got)
				}
				return
			}
			if got == nil {
				t.Fatal("ParseHours() = nil, want a map")
			}
			if len(got) != len(tt.want) {
				t.Fatalf("ParseHours() has %d entries, want %d", len(got), len(tt.want))
			}
			for day, text := range tt.want {
				if got[day] != text {
					t.Errorf("hours[%q] = %q, want %q", day, got[day], text)
				}
			}
		})
	}
}
