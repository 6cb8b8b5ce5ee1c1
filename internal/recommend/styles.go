package recommend

import "github.com/dkazmin/lookbook/internal/wardrobe"

// styleRules scores how well one garment category wears with another. The
// table is direction-sensitive: the row is the first item in generation
// order (top before bottom), the column the second. Some pairs are authored
// with different scores per direction (dress/skirt, for one); that
// asymmetry is deliberate and must not be folded into a symmetric lookup.
var styleRules = map[string]map[string]float64{
	"t-shirt": {
		"jeans": 0.9, "skirt": 0.7, "shirt": 0.3, "dress": 0.2,
	},
	"shirt": {
		"jeans": 0.8, "skirt": 0.8, "t-shirt": 0.3, "dress": 0.2,
	},
	"jeans": {
		"t-shirt": 0.9, "shirt": 0.8, "dress": 0.3,
	},
	"dress": {
		"skirt": 0.1, "jeans": 0.2, "t-shirt": 0.2, "shirt": 0.2,
	},
	"skirt": {
		"dress": 0.2, "shirt": 0.8, "t-shirt": 0.7,
	},
}

// StyleCompatibility scores two categories in the given order. Pairs not in
// the authored table score the default.
func StyleCompatibility(first, second wardrobe.Category) float64 {
	if row, ok := styleRules[first.Key()]; ok {
		if score, ok := row[second.Key()]; ok {
			return score
		}
	}
	return defaultCompatibility
}
