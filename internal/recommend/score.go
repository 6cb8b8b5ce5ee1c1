package recommend

import "github.com/dkazmin/lookbook/internal/wardrobe"

// ScoreOutfit rates an outfit as the mean over every item pair (i<j in
// generation order) of the averaged color and style compatibility. Outfits
// with fewer than two items score zero.
func ScoreOutfit(items []*wardrobe.Item) float64 {
	if len(items) < 2 {
		return 0
	}

	var sum float64
	var pairs int
	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			color := ColorCompatibility(items[i].Color, items[j].Color)
			style := StyleCompatibility(items[i].Category, items[j].Category)
			sum += (color + style) / 2
			pairs++
		}
	}

	return sum / float64(pairs)
}
