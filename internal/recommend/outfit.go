package recommend

import (
	"sort"
	"strings"

	"github.com/dkazmin/lookbook/internal/wardrobe"
)

// Recommendation is one scored, labeled outfit suggestion.
type Recommendation struct {
	Items  []*wardrobe.Item `json:"items"`
	Score  float64          `json:"score"`
	Style  string           `json:"style"`
	Reason string           `json:"reason"`
}

// Key identifies an outfit by its member items regardless of order: the
// sorted item URIs joined with pipes. Used for per-call deduplication and
// as the feedback store key.
func (r *Recommendation) Key() string {
	return OutfitKey(r.Items)
}

func OutfitKey(items []*wardrobe.Item) string {
	uris := make([]string, 0, len(items))
	for _, item := range items {
		uris = append(uris, item.URI)
	}
	sort.Strings(uris)
	return strings.Join(uris, "|")
}
