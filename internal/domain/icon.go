package domain

import "slices"

// Display category derived from a place's type tags.
type IconCategory string

const (
	IconAttraction    IconCategory = "attraction"
	IconEstablishment IconCategory = "establishment"
	IconNature        IconCategory = "nature"
	IconWorship       IconCategory = "worship"
	IconPark          IconCategory = "park"
	IconMuseum        IconCategory = "museum"
	IconCity          IconCategory = "city"
	IconLocation      IconCategory = "location"
)

type iconRule struct {
	tag      string
	category IconCategory
}

// Evaluated top to bottom; the first rule whose tag is present wins.
var iconRules = []iconRule{
	{tag: "tourist_attraction", category: IconAttraction},
	{tag: "establishment", category: IconEstablishment},
	{tag: "natural_feature", category: IconNature},
	{tag: "place_of_worship", category: IconWorship},
	{tag: "park", category: IconPark},
	{tag: "museum", category: IconMuseum},
	{tag: "locality", category: IconCity},
}

// Classify maps type tags to a single icon category.
//
// Only the rule table's order matters: ["establishment", "tourist_attraction"]
// and ["tourist_attraction", "establishment"] both classify as IconAttraction.
// Tags that match no rule, or no tags at all, yield IconLocation.
func Classify(typeTags []string) IconCategory {
	for _, r := range iconRules {
		if slices.Contains(typeTags, r.tag) {
			return r.category
		}
	}
	return IconLocation
}

// Glyph returns the icon name rendered by clients for the category.
func (c IconCategory) Glyph() string {
	switch c {
	case IconAttraction:
		return "camera"
	case IconEstablishment:
		return "business"
	case IconNature:
		return "leaf"
	case IconWorship:
		return "flower"
	case IconPark:
		return "trees"
	case IconMuseum:
		return "library"
	case IconCity:
		return "city"
	default:
		return "location"
	}
}
