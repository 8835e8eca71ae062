package places

import "travel-locator-service/internal/domain"

// BuiltinCatalog returns a fresh copy of the offline destination list.
// Order is the display order for local matches.
func BuiltinCatalog() []domain.PlaceSuggestion {
	out := make([]domain.PlaceSuggestion, len(builtinCatalog))
	for i, p := range builtinCatalog {
		p.TypeTags = append([]string(nil), p.TypeTags...)
		out[i] = p
	}
	return out
}

var builtinCatalog = []domain.PlaceSuggestion{
	{
		ID:             "local-sigiriya",
		Description:    "Sigiriya Rock Fortress, Sigiriya, Sri Lanka",
		PrimaryLabel:   "Sigiriya Rock Fortress",
		SecondaryLabel: "Sigiriya, Sri Lanka",
		TypeTags:       []string{"tourist_attraction", "establishment"},
	},
	{
		ID:             "local-pidurangala",
		Description:    "Pidurangala Rock, Sigiriya, Sri Lanka",
		PrimaryLabel:   "Pidurangala Rock",
		SecondaryLabel: "Sigiriya, Sri Lanka",
		TypeTags:       []string{"natural_feature"},
	},
	{
		ID:             "local-galle-fort",
		Description:    "Galle Fort, Galle, Sri Lanka",
		PrimaryLabel:   "Galle Fort",
		SecondaryLabel: "Galle, Sri Lanka",
		TypeTags:       []string{"tourist_attraction", "establishment"},
	},
	{
		ID:             "local-galle",
		Description:    "Galle, Southern Province, Sri Lanka",
		PrimaryLabel:   "Galle",
		SecondaryLabel: "Southern Province, Sri Lanka",
		TypeTags:       []string{"locality", "political"},
	},
	{
		ID:             "local-galle-face",
		Description:    "Galle Face Green, Colombo, Sri Lanka",
		PrimaryLabel:   "Galle Face Green",
		SecondaryLabel: "Colombo, Sri Lanka",
		TypeTags:       []string{"park"},
	},
	{
		ID:             "local-temple-of-the-tooth",
		Description:    "Temple of the Sacred Tooth Relic, Kandy, Sri Lanka",
		PrimaryLabel:   "Temple of the Sacred Tooth Relic",
		SecondaryLabel: "Kandy, Sri Lanka",
		TypeTags:       []string{"place_of_worship", "establishment"},
	},
	{
		ID:             "local-kandy",
		Description:    "Kandy, Central Province, Sri Lanka",
		PrimaryLabel:   "Kandy",
		SecondaryLabel: "Central Province, Sri Lanka",
		TypeTags:       []string{"locality", "political"},
	},
	{
		ID:             "local-dambulla",
		Description:    "Dambulla Cave Temple, Dambulla, Sri Lanka",
		PrimaryLabel:   "Dambulla Cave Temple",
		SecondaryLabel: "Dambulla, Sri Lanka",
		TypeTags:       []string{"place_of_worship"},
	},
	{
		ID:             "local-yala",
		Description:    "Yala National Park, Southern Province, Sri Lanka",
		PrimaryLabel:   "Yala National Park",
		SecondaryLabel: "Southern Province, Sri Lanka",
		TypeTags:       []string{"park", "natural_feature"},
	},
	{
		ID:             "local-horton-plains",
		Description:    "Horton Plains National Park, Nuwara Eliya, Sri Lanka",
		PrimaryLabel:   "Horton Plains National Park",
		SecondaryLabel: "Nuwara Eliya, Sri Lanka",
		TypeTags:       []string{"park"},
	},
	{
		ID:             "local-nine-arch",
		Description:    "Nine Arch Bridge, Ella, Sri Lanka",
		PrimaryLabel:   "Nine Arch Bridge",
		SecondaryLabel: "Ella, Sri Lanka",
		TypeTags:       []string{"tourist_attraction"},
	},
	{
		ID:             "local-ella",
		Description:    "Ella, Uva Province, Sri Lanka",
		PrimaryLabel:   "Ella",
		SecondaryLabel: "Uva Province, Sri Lanka",
		TypeTags:       []string{"locality", "political"},
	},
	{
		ID:             "local-national-museum",
		Description:    "Colombo National Museum, Colombo, Sri Lanka",
		PrimaryLabel:   "Colombo National Museum",
		SecondaryLabel: "Colombo, Sri Lanka",
		TypeTags:       []string{"museum", "establishment"},
	},
	{
		ID:             "local-colombo",
		Description:    "Colombo, Western Province, Sri Lanka",
		PrimaryLabel:   "Colombo",
		SecondaryLabel: "Western Province, Sri Lanka",
		TypeTags:       []string{"locality", "political"},
	},
	{
		ID:             "local-mirissa",
		Description:    "Mirissa Beach, Mirissa, Sri Lanka",
		PrimaryLabel:   "Mirissa Beach",
		SecondaryLabel: "Mirissa, Sri Lanka",
		TypeTags:       []string{"natural_feature"},
	},
	{
		ID:             "local-anuradhapura",
		Description:    "Sri Maha Bodhi, Anuradhapura, Sri Lanka",
		PrimaryLabel:   "Sri Maha Bodhi",
		SecondaryLabel: "Anuradhapura, Sri Lanka",
		TypeTags:       []string{"place_of_worship", "tourist_attraction"},
	},
}
