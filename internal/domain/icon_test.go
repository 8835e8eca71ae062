package domain

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want IconCategory
	}{
		{"attraction beats establishment", []string{"tourist_attraction", "establishment"}, IconAttraction},
		{"input order ignored", []string{"establishment", "tourist_attraction"}, IconAttraction},
		{"establishment beats nature", []string{"natural_feature", "establishment"}, IconEstablishment},
		{"nature", []string{"natural_feature", "geocode"}, IconNature},
		{"worship beats park", []string{"park", "place_of_worship"}, IconWorship},
		{"park beats museum", []string{"museum", "park"}, IconPark},
		{"museum", []string{"museum"}, IconMuseum},
		{"locality", []string{"locality", "political"}, IconCity},
		{"no match", []string{"route", "geocode"}, IconLocation},
		{"empty", []string{}, IconLocation},
		{"nil", nil, IconLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.tags); got != tt.want {
				t.Fatalf("Classify(%v) = %q, want %q", tt.tags, got, tt.want)
			}
		})
	}
}

func TestIconCategoryGlyphDefaultsToLocation(t *testing.T) {
	if got := IconCategory("unknown").Glyph(); got != "location" {
		t.Fatalf("glyph = %q, want location", got)
	}
	if got := IconAttraction.Glyph(); got != "camera" {
		t.Fatalf("glyph = %q, want camera", got)
	}
}

func TestPlaceSuggestionIcon(t *testing.T) {
	p := PlaceSuggestion{TypeTags: []string{"locality", "political"}}
	if p.Icon() != IconCity {
		t.Fatalf("icon = %q, want %q", p.Icon(), IconCity)
	}
}
