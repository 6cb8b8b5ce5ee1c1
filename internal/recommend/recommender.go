package recommend

import (
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/dkazmin/lookbook/internal/wardrobe"
)

// attemptsPerOutfit bounds generation: up to Count*attemptsPerOutfit
// candidates are drawn before giving up on filling the request.
const attemptsPerOutfit = 10

// Params control a single recommendation request.
type Params struct {
	// Count is the number of outfits requested. The result may be shorter
	// when the pool cannot support enough distinct combinations.
	Count int
	// Occasion and Weather restrict the pool before generation.
	// OccasionAll / WeatherAny leave it untouched.
	Occasion Occasion
	Weather  Weather
	// Require lists categories every outfit must include when the pool
	// has them.
	Require []wardrobe.Category
}

// Recommender produces ranked outfit suggestions. It holds no state besides
// its random source, so a single instance can serve repeated calls.
type Recommender struct {
	rnd    Rand
	logger *zap.Logger
}

// New creates a Recommender. A nil rnd falls back to a time-seeded source;
// tests pass a fixed-seed rand to get reproducible output. A nil logger
// disables logging.
func New(rnd Rand, logger *zap.Logger) *Recommender {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Recommender{rnd: rnd, logger: logger}
}

// Recommend assembles, scores and ranks up to p.Count unique outfits from
// the wardrobe. Over-restricted pools yield a short or empty result, never
// an error.
func (r *Recommender) Recommend(pool *wardrobe.Collection, p Params) []*Recommendation {
	if p.Count <= 0 {
		return nil
	}

	if cats, ok := OccasionCategories(p.Occasion); ok {
		pool, _ = pool.KeepCategories(cats)
	}
	if cats, ok := WeatherCategories(p.Weather); ok {
		pool, _ = pool.KeepCategories(cats)
	}

	seen := make(map[string]bool)
	recommendations := make([]*Recommendation, 0, p.Count)

	attempts := p.Count * attemptsPerOutfit
	for attempt := 0; attempt < attempts && len(recommendations) < p.Count; attempt++ {
		items := generateCandidate(r.rnd, pool, p.Require)
		// A lone dress already covers top and bottom; anything else needs
		// at least two pieces.
		if len(items) < 2 && !containsCategory(items, wardrobe.CategoryDress) {
			continue
		}

		key := OutfitKey(items)
		if seen[key] {
			continue
		}
		seen[key] = true

		score := ScoreOutfit(items)
		style := ClassifyStyle(items)

		recommendations = append(recommendations, &Recommendation{
			Items:  items,
			Score:  score,
			Style:  style,
			Reason: Explain(score, style),
		})
	}

	// Stable: ties keep generation order, so a fixed seed gives a fixed
	// result list.
	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	r.logger.Debug("recommendation pass finished",
		zap.Int("requested", p.Count),
		zap.Int("produced", len(recommendations)),
		zap.Int("pool_size", pool.Len()),
	)

	return recommendations
}

func containsCategory(items []*wardrobe.Item, cat wardrobe.Category) bool {
	for _, item := range items {
		if item.Category == cat {
			return true
		}
	}
	return false
}
