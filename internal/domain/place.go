package domain

// Represents a single place suggestion shown under a search field.
// Remote suggestions split Description into PrimaryLabel and SecondaryLabel
// using the provider's structured formatting; catalog entries carry the
// labels verbatim.
type PlaceSuggestion struct {
	ID             string   `json:"id"`
	Description    string   `json:"description"`
	PrimaryLabel   string   `json:"primary_label"`
	SecondaryLabel string   `json:"secondary_label"`
	TypeTags       []string `json:"types"`
}

// Icon derives the display category from the suggestion's type tags.
func (p PlaceSuggestion) Icon() IconCategory { return Classify(p.TypeTags) }
