// Package recommend assembles, scores and ranks outfit suggestions from a
// wardrobe pool. Scoring is driven by two static rule tables (color and
// style compatibility) built once at package init; every function here is
// total, so an unknown color or category degrades to a default score
// instead of failing.
package recommend

import "strings"

// ColorToken is one of the canonical color buckets used for scoring.
type ColorToken string

const (
	ColorBlack  ColorToken = "black"
	ColorWhite  ColorToken = "white"
	ColorGray   ColorToken = "gray"
	ColorBlue   ColorToken = "blue"
	ColorRed    ColorToken = "red"
	ColorGreen  ColorToken = "green"
	ColorYellow ColorToken = "yellow"
	ColorBrown  ColorToken = "brown"
	ColorPink   ColorToken = "pink"
	ColorPurple ColorToken = "purple"
	ColorOrange ColorToken = "orange"
)

// ColorTokens lists all canonical colors.
var ColorTokens = []ColorToken{
	ColorBlack, ColorWhite, ColorGray, ColorBlue, ColorRed, ColorGreen,
	ColorYellow, ColorBrown, ColorPink, ColorPurple, ColorOrange,
}

// colorSynonyms folds common free-text color names into canonical tokens.
var colorSynonyms = map[string]ColorToken{
	"black":      ColorBlack,
	"white":      ColorWhite,
	"ivory":      ColorWhite,
	"cream":      ColorWhite,
	"gray":       ColorGray,
	"grey":       ColorGray,
	"charcoal":   ColorGray,
	"silver":     ColorGray,
	"blue":       ColorBlue,
	"navy":       ColorBlue,
	"denim":      ColorBlue,
	"teal":       ColorBlue,
	"red":        ColorRed,
	"maroon":     ColorRed,
	"burgundy":   ColorRed,
	"green":      ColorGreen,
	"olive":      ColorGreen,
	"khaki":      ColorGreen,
	"yellow":     ColorYellow,
	"gold":       ColorYellow,
	"mustard":    ColorYellow,
	"brown":      ColorBrown,
	"beige":      ColorBrown,
	"tan":        ColorBrown,
	"camel":      ColorBrown,
	"pink":       ColorPink,
	"rose":       ColorPink,
	"purple":     ColorPurple,
	"violet":     ColorPurple,
	"lavender":   ColorPurple,
	"orange":     ColorOrange,
	"coral":      ColorOrange,
	"terracotta": ColorOrange,
}

// NormalizeColor maps free-text color input to a canonical token. Unknown
// colors fold into gray so scoring stays total.
func NormalizeColor(raw string) ColorToken {
	if token, ok := colorSynonyms[strings.ToLower(strings.TrimSpace(raw))]; ok {
		return token
	}
	return ColorGray
}

const defaultCompatibility = 0.5

// colorRules is the authored half of the color matrix. Pairs are listed in
// one direction only; the matrix build mirrors them.
var colorRules = map[ColorToken]map[ColorToken]float64{
	ColorBlack: {
		ColorWhite: 0.9, ColorGray: 0.8, ColorBlue: 0.8, ColorRed: 0.8,
		ColorGreen: 0.7, ColorYellow: 0.7, ColorBrown: 0.6, ColorPink: 0.7,
		ColorPurple: 0.7, ColorOrange: 0.6,
	},
	ColorWhite: {
		ColorGray: 0.8, ColorBlue: 0.9, ColorRed: 0.8, ColorGreen: 0.8,
		ColorYellow: 0.7, ColorBrown: 0.7, ColorPink: 0.8, ColorPurple: 0.7,
		ColorOrange: 0.7,
	},
	ColorGray: {
		ColorBlue: 0.8, ColorRed: 0.7, ColorGreen: 0.6, ColorYellow: 0.6,
		ColorBrown: 0.6, ColorPink: 0.7, ColorPurple: 0.7, ColorOrange: 0.5,
	},
	ColorBlue: {
		ColorRed: 0.7, ColorGreen: 0.6, ColorYellow: 0.7, ColorBrown: 0.7,
		ColorPink: 0.6, ColorPurple: 0.6, ColorOrange: 0.5,
	},
	ColorRed: {
		ColorGreen: 0.3, ColorYellow: 0.5, ColorBrown: 0.5, ColorPink: 0.4,
		ColorPurple: 0.4, ColorOrange: 0.4,
	},
	ColorGreen: {
		ColorYellow: 0.6, ColorBrown: 0.7, ColorPink: 0.4, ColorPurple: 0.4,
		ColorOrange: 0.5,
	},
	ColorYellow: {
		ColorBrown: 0.6, ColorPink: 0.5, ColorPurple: 0.6, ColorOrange: 0.6,
	},
	ColorBrown: {
		ColorPink: 0.5, ColorPurple: 0.4, ColorOrange: 0.6,
	},
	ColorPink: {
		ColorPurple: 0.6, ColorOrange: 0.4,
	},
	ColorPurple: {
		ColorOrange: 0.4,
	},
}

// colorMatrix is the full symmetric matrix, built once at init.
var colorMatrix map[ColorToken]map[ColorToken]float64

func init() {
	colorMatrix = make(map[ColorToken]map[ColorToken]float64, len(ColorTokens))
	for _, a := range ColorTokens {
		row := make(map[ColorToken]float64, len(ColorTokens))
		for _, b := range ColorTokens {
			row[b] = authoredColorScore(a, b)
		}
		colorMatrix[a] = row
	}
}

// authoredColorScore resolves a pair against the rule table: identical
// colors are always 1.0, the first matching direction wins, anything
// unlisted falls back to the default.
func authoredColorScore(a, b ColorToken) float64 {
	if a == b {
		return 1.0
	}
	if row, ok := colorRules[a]; ok {
		if score, ok := row[b]; ok {
			return score
		}
	}
	if row, ok := colorRules[b]; ok {
		if score, ok := row[a]; ok {
			return score
		}
	}
	return defaultCompatibility
}

// ColorCompatibility scores two free-text colors after normalization.
func ColorCompatibility(rawA, rawB string) float64 {
	return colorMatrix[NormalizeColor(rawA)][NormalizeColor(rawB)]
}
