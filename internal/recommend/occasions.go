package recommend

import (
	"fmt"
	"strings"

	"github.com/dkazmin/lookbook/internal/wardrobe"
)

// Occasion restricts the candidate pool to categories that suit the event.
type Occasion string

const (
	OccasionAll      Occasion = "All"
	OccasionCasual   Occasion = "Casual"
	OccasionFormal   Occasion = "Formal"
	OccasionAthletic Occasion = "Athletic"
	OccasionBusiness Occasion = "Business"
)

// Weather restricts the candidate pool to categories that fit the forecast.
type Weather string

const (
	WeatherAny   Weather = "Any"
	WeatherHot   Weather = "Hot"
	WeatherMild  Weather = "Mild"
	WeatherCold  Weather = "Cold"
	WeatherRainy Weather = "Rainy"
)

// occasionCategories are the allow-lists per occasion. OccasionAll is
// absent on purpose: it means unfiltered.
var occasionCategories = map[Occasion][]wardrobe.Category{
	OccasionCasual: {
		wardrobe.CategoryTShirt, wardrobe.CategoryShirt, wardrobe.CategoryJeans,
		wardrobe.CategoryShorts, wardrobe.CategorySkirt, wardrobe.CategoryHoodie,
		wardrobe.CategoryJacket, wardrobe.CategoryShoes, wardrobe.CategoryHat,
		wardrobe.CategoryOther,
	},
	OccasionFormal: {
		wardrobe.CategoryShirt, wardrobe.CategoryDress, wardrobe.CategorySkirt,
		wardrobe.CategoryJacket, wardrobe.CategoryShoes, wardrobe.CategoryOther,
	},
	OccasionAthletic: {
		wardrobe.CategoryTShirt, wardrobe.CategorySweatpants, wardrobe.CategoryShorts,
		wardrobe.CategoryHoodie, wardrobe.CategoryShoes, wardrobe.CategoryHat,
		wardrobe.CategoryOther,
	},
	OccasionBusiness: {
		wardrobe.CategoryShirt, wardrobe.CategoryJeans, wardrobe.CategorySkirt,
		wardrobe.CategoryDress, wardrobe.CategoryJacket, wardrobe.CategoryShoes,
		wardrobe.CategoryOther,
	},
}

// weatherCategories are the allow-lists per weather bucket. WeatherAny is
// absent: unfiltered.
var weatherCategories = map[Weather][]wardrobe.Category{
	WeatherHot: {
		wardrobe.CategoryTShirt, wardrobe.CategoryShorts, wardrobe.CategorySkirt,
		wardrobe.CategoryDress, wardrobe.CategoryShoes, wardrobe.CategoryHat,
		wardrobe.CategoryOther,
	},
	WeatherMild: {
		wardrobe.CategoryTShirt, wardrobe.CategoryShirt, wardrobe.CategoryJeans,
		wardrobe.CategorySkirt, wardrobe.CategoryDress, wardrobe.CategoryHoodie,
		wardrobe.CategoryShoes, wardrobe.CategoryHat, wardrobe.CategoryOther,
	},
	WeatherCold: {
		wardrobe.CategoryShirt, wardrobe.CategoryJeans, wardrobe.CategorySweatpants,
		wardrobe.CategoryHoodie, wardrobe.CategoryJacket, wardrobe.CategoryShoes,
		wardrobe.CategoryHat, wardrobe.CategoryOther,
	},
	WeatherRainy: {
		wardrobe.CategoryShirt, wardrobe.CategoryJeans, wardrobe.CategorySweatpants,
		wardrobe.CategoryHoodie, wardrobe.CategoryJacket, wardrobe.CategoryShoes,
		wardrobe.CategoryHat, wardrobe.CategoryOther,
	},
}

// OccasionCategories returns the allow-list for an occasion. The second
// return is false for OccasionAll, meaning no restriction applies.
func OccasionCategories(o Occasion) ([]wardrobe.Category, bool) {
	cats, ok := occasionCategories[o]
	return cats, ok
}

// WeatherCategories returns the allow-list for a weather bucket. The second
// return is false for WeatherAny, meaning no restriction applies.
func WeatherCategories(w Weather) ([]wardrobe.Category, bool) {
	cats, ok := weatherCategories[w]
	return cats, ok
}

// ParseOccasion resolves user input case-insensitively. Empty input means
// OccasionAll.
func ParseOccasion(s string) (Occasion, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	if needle == "" {
		return OccasionAll, nil
	}
	for _, o := range []Occasion{OccasionAll, OccasionCasual, OccasionFormal, OccasionAthletic, OccasionBusiness} {
		if strings.ToLower(string(o)) == needle {
			return o, nil
		}
	}
	return "", fmt.Errorf("unknown occasion: %q", s)
}

// ParseWeather resolves user input case-insensitively. Empty input means
// WeatherAny.
func ParseWeather(s string) (Weather, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	if needle == "" {
		return WeatherAny, nil
	}
	for _, w := range []Weather{WeatherAny, WeatherHot, WeatherMild, WeatherCold, WeatherRainy} {
		if strings.ToLower(string(w)) == needle {
			return w, nil
		}
	}
	return "", fmt.Errorf("unknown weather: %q", s)
}
