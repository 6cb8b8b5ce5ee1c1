package filtering

import (
	"context"
	"fmt"

	"github.com/dkazmin/lookbook/internal/wardrobe"
)

type excludedCategoriesFilter struct {
	raw      []string
	banned   []wardrobe.Category
	disabled bool
}

// NewExcludedCategories creates a filter that removes categories the user
// ruled out in the configuration.
func NewExcludedCategories(categories []string) Filter {
	return &excludedCategoriesFilter{raw: categories}
}

func (f *excludedCategoriesFilter) Name() string { return "excluded_categories" }

func (f *excludedCategoriesFilter) Disable(string) { f.disabled = true }

func (f *excludedCategoriesFilter) IsEnabled() bool { return !f.disabled }

func (f *excludedCategoriesFilter) Validate() error {
	f.banned = f.banned[:0]
	for _, raw := range f.raw {
		cat, err := wardrobe.ParseCategory(raw)
		if err != nil {
			return fmt.Errorf("exclude list: %w", err)
		}
		f.banned = append(f.banned, cat)
	}
	return nil
}

func (f *excludedCategoriesFilter) Apply(_ context.Context, pool *wardrobe.Collection) (*wardrobe.Collection, Step, error) {
	initial := pool.Len()
	if len(f.banned) == 0 {
		return pool, Step{Initial: initial, Dropped: 0, Left: initial}, nil
	}

	kept, dropped := pool.DropCategories(f.banned)
	return kept, Step{Initial: initial, Dropped: len(dropped), Left: kept.Len()}, nil
}
