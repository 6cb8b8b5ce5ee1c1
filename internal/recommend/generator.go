package recommend

import "github.com/dkazmin/lookbook/internal/wardrobe"

// Rand is the random source used for candidate assembly. *math/rand.Rand
// satisfies it; tests fix a seed to make generation reproducible.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

// topCategories cover the upper body; a dress covers both layers.
var topCategories = []wardrobe.Category{
	wardrobe.CategoryTShirt, wardrobe.CategoryShirt, wardrobe.CategoryDress,
	wardrobe.CategoryHoodie, wardrobe.CategoryJacket,
}

var bottomCategories = []wardrobe.Category{
	wardrobe.CategoryJeans, wardrobe.CategorySweatpants,
	wardrobe.CategoryShorts, wardrobe.CategorySkirt,
}

// Accessory inclusion probabilities.
const (
	shoesChance = 0.7
	hatChance   = 0.5
	otherChance = 0.3
)

// generateCandidate assembles one random outfit from the pool:
//
//  1. A dress, when present, is the whole base.
//  2. Otherwise one random top-layer item and one random bottom-layer
//     item, each skipped when the pool lacks that layer.
//  3. Required categories not yet covered get one random matching item.
//  4. Shoes, hat and an "other" accessory join with fixed probabilities.
//
// All draws are uniform over the matching items. The result may have fewer
// than two items for sparse pools; the caller discards those.
func generateCandidate(rnd Rand, pool *wardrobe.Collection, required []wardrobe.Category) []*wardrobe.Item {
	var items []*wardrobe.Item
	included := make(map[wardrobe.Category]bool)

	addItem := func(item *wardrobe.Item) {
		items = append(items, item)
		included[item.Category] = true
	}

	if dresses := pool.OfCategory(wardrobe.CategoryDress); len(dresses) > 0 {
		addItem(dresses[rnd.Intn(len(dresses))])
	} else {
		if top := itemsOfCategories(pool, topCategories); len(top) > 0 {
			addItem(top[rnd.Intn(len(top))])
		}
		if bottom := itemsOfCategories(pool, bottomCategories); len(bottom) > 0 {
			addItem(bottom[rnd.Intn(len(bottom))])
		}
	}

	for _, cat := range required {
		if included[cat] {
			continue
		}
		if matching := pool.OfCategory(cat); len(matching) > 0 {
			addItem(matching[rnd.Intn(len(matching))])
		}
	}

	accessories := []struct {
		category wardrobe.Category
		chance   float64
	}{
		{wardrobe.CategoryShoes, shoesChance},
		{wardrobe.CategoryHat, hatChance},
		{wardrobe.CategoryOther, otherChance},
	}

	for _, acc := range accessories {
		if included[acc.category] {
			continue
		}
		if rnd.Float64() >= acc.chance {
			continue
		}
		if matching := pool.OfCategory(acc.category); len(matching) > 0 {
			addItem(matching[rnd.Intn(len(matching))])
		}
	}

	return items
}

func itemsOfCategories(pool *wardrobe.Collection, cats []wardrobe.Category) []*wardrobe.Item {
	set := make(map[wardrobe.Category]bool, len(cats))
	for _, cat := range cats {
		set[cat] = true
	}

	var items []*wardrobe.Item
	for _, item := range pool.Items {
		if set[item.Category] {
			items = append(items, item)
		}
	}
	return items
}
