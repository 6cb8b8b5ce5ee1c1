package filtering

import (
	"context"

	"github.com/dkazmin/lookbook/internal/recommend"
	"github.com/dkazmin/lookbook/internal/wardrobe"
)

type weatherFilter struct {
	weather  recommend.Weather
	disabled bool
}

// NewWeather creates a filter that keeps only categories fitting the
// weather bucket. WeatherAny keeps everything.
func NewWeather(weather recommend.Weather) Filter {
	return &weatherFilter{weather: weather}
}

func (f *weatherFilter) Name() string { return "weather" }

func (f *weatherFilter) Disable(string) { f.disabled = true }

func (f *weatherFilter) IsEnabled() bool { return !f.disabled }

func (f *weatherFilter) Validate() error {
	if _, err := recommend.ParseWeather(string(f.weather)); err != nil {
		return err
	}
	return nil
}

func (f *weatherFilter) Apply(_ context.Context, pool *wardrobe.Collection) (*wardrobe.Collection, Step, error) {
	initial := pool.Len()

	allowed, ok := recommend.WeatherCategories(f.weather)
	if !ok {
		return pool, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept, dropped := pool.KeepCategories(allowed)
	return kept, Step{Initial: initial, Dropped: len(dropped), Left: kept.Len()}, nil
}
