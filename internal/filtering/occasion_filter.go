package filtering

import (
	"context"

	"github.com/dkazmin/lookbook/internal/recommend"
	"github.com/dkazmin/lookbook/internal/wardrobe"
)

type occasionFilter struct {
	occasion recommend.Occasion
	disabled bool
}

// NewOccasion creates a filter that keeps only categories suiting the
// occasion. OccasionAll keeps everything.
func NewOccasion(occasion recommend.Occasion) Filter {
	return &occasionFilter{occasion: occasion}
}

func (f *occasionFilter) Name() string { return "occasion" }

func (f *occasionFilter) Disable(string) { f.disabled = true }

func (f *occasionFilter) IsEnabled() bool { return !f.disabled }

func (f *occasionFilter) Validate() error {
	if _, err := recommend.ParseOccasion(string(f.occasion)); err != nil {
		return err
	}
	return nil
}

func (f *occasionFilter) Apply(_ context.Context, pool *wardrobe.Collection) (*wardrobe.Collection, Step, error) {
	initial := pool.Len()

	allowed, ok := recommend.OccasionCategories(f.occasion)
	if !ok {
		return pool, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept, dropped := pool.KeepCategories(allowed)
	return kept, Step{Initial: initial, Dropped: len(dropped), Left: kept.Len()}, nil
}
