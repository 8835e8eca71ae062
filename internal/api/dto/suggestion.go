package dto

// Query parameters of GET /v1/suggestions. Short queries are not a
// validation error; they simply produce no suggestions.
type SuggestionsQuery struct {
	Query string `validate:"max=200"`
	Mode  string `validate:"omitempty,oneof=remote local"`
}

type SuggestionResponse struct {
	ID             string   `json:"id"`
	Description    string   `json:"description"`
	PrimaryLabel   string   `json:"primary_label"`
	SecondaryLabel string   `json:"secondary_label"`
	Types          []string `json:"types"`
	Icon           string   `json:"icon"`
	Glyph          string   `json:"glyph"`
}

type ListSuggestionsResponse struct {
	Mode        string               `json:"mode"`
	Suggestions []SuggestionResponse `json:"suggestions"`
}

type IconResponse struct {
	Icon  string `json:"icon"`
	Glyph string `json:"glyph"`
}
