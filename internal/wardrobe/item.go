package wardrobe

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Category is the closed set of garment types an item can have.
type Category string

const (
	CategoryTShirt     Category = "T-shirt"
	CategoryShirt      Category = "Shirt"
	CategoryJeans      Category = "Jeans"
	CategoryDress      Category = "Dress"
	CategorySkirt      Category = "Skirt"
	CategoryHoodie     Category = "Hoodie"
	CategoryJacket     Category = "Jacket"
	CategorySweatpants Category = "Sweatpants"
	CategoryShorts     Category = "Shorts"
	CategoryShoes      Category = "Shoes"
	CategoryHat        Category = "Hat"
	CategoryOther      Category = "Other"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategoryTShirt,
	CategoryShirt,
	CategoryJeans,
	CategoryDress,
	CategorySkirt,
	CategoryHoodie,
	CategoryJacket,
	CategorySweatpants,
	CategoryShorts,
	CategoryShoes,
	CategoryHat,
	CategoryOther,
}

// ParseCategory resolves a case-insensitive category name to its canonical form.
func ParseCategory(s string) (Category, error) {
	needle := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if strings.ToLower(string(c)) == needle {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// Key returns the lowercase form used by the compatibility tables.
func (c Category) Key() string {
	return strings.ToLower(string(c))
}

// Item is a single piece of clothing. URI is an opaque image reference and
// doubles as the item identity inside outfit keys.
type Item struct {
	URI      string   `json:"image" yaml:"image" validate:"required"`
	Category Category `json:"category" yaml:"category" validate:"required"`
	Color    string   `json:"color" yaml:"color"`
}

type Collection struct {
	Items []*Item `json:"items" yaml:"items"`
}

func (c *Collection) Len() int {
	return len(c.Items)
}

func (c *Collection) FindByURI(uri string) *Item {
	for _, item := range c.Items {
		if item.URI == uri {
			return item
		}
	}
	return nil
}

// Categories returns the distinct categories present, in item order.
func (c *Collection) Categories() []Category {
	seen := make(map[Category]bool)
	var cats []Category
	for _, item := range c.Items {
		if !seen[item.Category] {
			seen[item.Category] = true
			cats = append(cats, item.Category)
		}
	}
	return cats
}

// OfCategory returns the items of the given category, preserving order.
func (c *Collection) OfCategory(cat Category) []*Item {
	var items []*Item
	for _, item := range c.Items {
		if item.Category == cat {
			items = append(items, item)
		}
	}
	return items
}

// KeepCategories returns a new collection holding only items whose category
// is in allowed, plus the URIs of everything dropped. The receiver is left
// untouched so callers can reuse the unfiltered pool.
func (c *Collection) KeepCategories(allowed []Category) (*Collection, []string) {
	set := make(map[Category]bool, len(allowed))
	for _, cat := range allowed {
		set[cat] = true
	}

	kept := &Collection{}
	var dropped []string
	for _, item := range c.Items {
		if set[item.Category] {
			kept.Items = append(kept.Items, item)
			continue
		}
		dropped = append(dropped, item.URI)
	}
	return kept, dropped
}

// DropCategories is the inverse of KeepCategories.
func (c *Collection) DropCategories(banned []Category) (*Collection, []string) {
	set := make(map[Category]bool, len(banned))
	for _, cat := range banned {
		set[cat] = true
	}

	kept := &Collection{}
	var dropped []string
	for _, item := range c.Items {
		if set[item.Category] {
			dropped = append(dropped, item.URI)
			continue
		}
		kept.Items = append(kept.Items, item)
	}
	return kept, dropped
}

// RemoveByURI removes the first item with the given URI. It reports whether
// anything was removed. Order of the remaining items is preserved.
func (c *Collection) RemoveByURI(uri string) bool {
	for idx, item := range c.Items {
		if item.URI == uri {
			c.Items = append(c.Items[:idx], c.Items[idx+1:]...)
			return true
		}
	}
	return false
}

// ReportByCategory groups items per category for the interactive report.
func (c *Collection) ReportByCategory() map[string][]map[string]string {
	report := make(map[string][]map[string]string)
	for _, item := range c.Items {
		key := string(item.Category)
		report[key] = append(report[key], map[string]string{
			"image": item.URI,
			"color": item.Color,
		})
	}
	return report
}

func (c *Collection) DumpToTmpFile() (string, error) {
	file, err := os.CreateTemp("", "wardrobe_*.json")
	if err != nil {
		return "", err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c); err != nil {
		return "", err
	}
	return file.Name(), nil
}
