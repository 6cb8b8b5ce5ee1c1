package recommend

import "github.com/dkazmin/lookbook/internal/wardrobe"

// Style labels attached to recommendations.
const (
	StyleElegant     = "Elegant"
	StyleSmartCasual = "Smart Casual"
	StyleCasual      = "Casual"
	StyleAthletic    = "Athletic"
)

// ClassifyStyle labels an outfit by a fixed priority list over the
// categories present. First match wins.
func ClassifyStyle(items []*wardrobe.Item) string {
	present := make(map[wardrobe.Category]bool, len(items))
	for _, item := range items {
		present[item.Category] = true
	}

	switch {
	case present[wardrobe.CategoryDress]:
		return StyleElegant
	case present[wardrobe.CategoryShirt] && present[wardrobe.CategoryJeans]:
		return StyleSmartCasual
	case present[wardrobe.CategoryTShirt] && present[wardrobe.CategoryJeans]:
		return StyleCasual
	case present[wardrobe.CategorySweatpants] || present[wardrobe.CategoryShorts]:
		return StyleAthletic
	default:
		return StyleCasual
	}
}
