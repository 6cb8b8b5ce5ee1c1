package recommend

import (
	"testing"

	"github.com/dkazmin/lookbook/internal/wardrobe"
)

func TestRecommendSinglePossiblePair(t *testing.T) {
	t.Parallel()

	pool := &wardrobe.Collection{Items: []*wardrobe.Item{
		item("a", wardrobe.CategoryTShirt, "red"),
		item("b", wardrobe.CategoryJeans, "blue"),
	}}

	r := New(testRand(42), nil)
	outfits := r.Recommend(pool, Params{Count: 3})

	if len(outfits) != 1 {
		t.Fatalf("expected exactly one unique outfit, got %d", len(outfits))
	}

	outfit := outfits[0]
	if outfit.Score != 0.8 {
		t.Fatalf("expected score 0.8, got %v", outfit.Score)
	}
	if outfit.Style != StyleCasual {
		t.Fatalf("expected style %q, got %q", StyleCasual, outfit.Style)
	}
	if len(outfit.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(outfit.Items))
	}
	if outfit.Reason == "" {
		t.Fatalf("expected a non-empty reason")
	}
}

func TestRecommendDressOnlyWardrobe(t *testing.T) {
	t.Parallel()

	pool := &wardrobe.Collection{Items: []*wardrobe.Item{
		item("dress", wardrobe.CategoryDress, "black"),
	}}

	r := New(testRand(7), nil)
	outfits := r.Recommend(pool, Params{Count: 2})

	if len(outfits) != 1 {
		t.Fatalf("expected one dress-only outfit, got %d", len(outfits))
	}

	outfit := outfits[0]
	if len(outfit.Items) != 1 || outfit.Items[0].Category != wardrobe.CategoryDress {
		t.Fatalf("expected the outfit to be the dress alone, got %+v", outfit.Items)
	}
	if outfit.Style != StyleElegant {
		t.Fatalf("expected style %q, got %q", StyleElegant, outfit.Style)
	}
}

func TestRecommendOverRestrictedPoolIsNotAnError(t *testing.T) {
	t.Parallel()

	// Cold weather excludes t-shirts, leaving only the jeans: no outfit
	// of two items is possible and the result is simply short.
	pool := &wardrobe.Collection{Items: []*wardrobe.Item{
		item("a", wardrobe.CategoryTShirt, "red"),
		item("b", wardrobe.CategoryJeans, "blue"),
	}}

	r := New(testRand(11), nil)
	outfits := r.Recommend(pool, Params{Count: 3, Weather: WeatherCold})

	if len(outfits) != 0 {
		t.Fatalf("expected no outfits from the over-restricted pool, got %d", len(outfits))
	}
}

func TestRecommendDeduplicatesOutfits(t *testing.T) {
	t.Parallel()

	pool := &wardrobe.Collection{Items: []*wardrobe.Item{
		item("t1", wardrobe.CategoryTShirt, "red"),
		item("t2", wardrobe.CategoryTShirt, "white"),
		item("j1", wardrobe.CategoryJeans, "blue"),
		item("j2", wardrobe.CategoryJeans, "black"),
		item("s1", wardrobe.CategoryShoes, "white"),
	}}

	r := New(testRand(3), nil)
	outfits := r.Recommend(pool, Params{Count: 10})

	seen := make(map[string]bool)
	for _, outfit := range outfits {
		key := outfit.Key()
		if seen[key] {
			t.Fatalf("duplicate outfit key %q in one call", key)
		}
		seen[key] = true
	}
}

func TestRecommendSortedByScoreDescending(t *testing.T) {
	t.Parallel()

	pool := &wardrobe.Collection{Items: []*wardrobe.Item{
		item("t1", wardrobe.CategoryTShirt, "red"),
		item("t2", wardrobe.CategoryTShirt, "green"),
		item("j1", wardrobe.CategoryJeans, "blue"),
		item("j2", wardrobe.CategoryJeans, "red"),
		item("s1", wardrobe.CategoryShoes, "black"),
		item("h1", wardrobe.CategoryHat, "purple"),
	}}

	r := New(testRand(5), nil)
	outfits := r.Recommend(pool, Params{Count: 8})

	for i := 1; i < len(outfits); i++ {
		if outfits[i-1].Score < outfits[i].Score {
			t.Fatalf("outfits not sorted by score: %v before %v", outfits[i-1].Score, outfits[i].Score)
		}
	}
}

func TestRecommendIsDeterministicForFixedSeed(t *testing.T) {
	t.Parallel()

	pool := &wardrobe.Collection{Items: []*wardrobe.Item{
		item("t1", wardrobe.CategoryTShirt, "red"),
		item("t2", wardrobe.CategoryTShirt, "white"),
		item("j1", wardrobe.CategoryJeans, "blue"),
		item("sk1", wardrobe.CategorySkirt, "black"),
		item("s1", wardrobe.CategoryShoes, "brown"),
		item("h1", wardrobe.CategoryHat, "gray"),
	}}

	params := Params{Count: 5}

	first := New(testRand(99), nil).Recommend(pool, params)
	second := New(testRand(99), nil).Recommend(pool, params)

	if len(first) != len(second) {
		t.Fatalf("expected identical result lengths, got %d and %d", len(first), len(second))
	}

	for i := range first {
		if first[i].Key() != second[i].Key() {
			t.Fatalf("result %d differs: %q vs %q", i, first[i].Key(), second[i].Key())
		}
		if first[i].Score != second[i].Score {
			t.Fatalf("result %d score differs: %v vs %v", i, first[i].Score, second[i].Score)
		}
	}
}

func TestRecommendRespectsCount(t *testing.T) {
	t.Parallel()

	pool := &wardrobe.Collection{Items: []*wardrobe.Item{
		item("t1", wardrobe.CategoryTShirt, "red"),
		item("t2", wardrobe.CategoryTShirt, "white"),
		item("t3", wardrobe.CategoryTShirt, "blue"),
		item("j1", wardrobe.CategoryJeans, "blue"),
		item("j2", wardrobe.CategoryJeans, "black"),
		item("j3", wardrobe.CategoryJeans, "gray"),
	}}

	r := New(testRand(17), nil)
	outfits := r.Recommend(pool, Params{Count: 2})

	if len(outfits) > 2 {
		t.Fatalf("expected at most 2 outfits, got %d", len(outfits))
	}
}

func TestRecommendZeroCount(t *testing.T) {
	t.Parallel()

	pool := &wardrobe.Collection{Items: []*wardrobe.Item{
		item("t1", wardrobe.CategoryTShirt, "red"),
		item("j1", wardrobe.CategoryJeans, "blue"),
	}}

	if outfits := New(testRand(1), nil).Recommend(pool, Params{Count: 0}); len(outfits) != 0 {
		t.Fatalf("expected no outfits for zero count, got %d", len(outfits))
	}
}

func TestRecommendOccasionRestrictsPool(t *testing.T) {
	t.Parallel()

	// Athletic allows the t-shirt and sweatpants but not the jeans.
	pool := &wardrobe.Collection{Items: []*wardrobe.Item{
		item("t1", wardrobe.CategoryTShirt, "white"),
		item("j1", wardrobe.CategoryJeans, "blue"),
		item("sw1", wardrobe.CategorySweatpants, "gray"),
	}}

	r := New(testRand(23), nil)
	outfits := r.Recommend(pool, Params{Count: 5, Occasion: OccasionAthletic})

	if len(outfits) == 0 {
		t.Fatalf("expected at least one athletic outfit")
	}
	for _, outfit := range outfits {
		for _, it := range outfit.Items {
			if it.Category == wardrobe.CategoryJeans {
				t.Fatalf("jeans must be filtered out for the athletic occasion")
			}
		}
	}
}
