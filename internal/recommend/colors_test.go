package recommend

import "testing"

func TestNormalizeColor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		expect ColorToken
	}{
		{name: "canonical color passes through", input: "red", expect: ColorRed},
		{name: "uppercase input", input: "Navy", expect: ColorBlue},
		{name: "synonym beige", input: "beige", expect: ColorBrown},
		{name: "synonym grey spelling", input: "grey", expect: ColorGray},
		{name: "surrounding whitespace", input: "  olive ", expect: ColorGreen},
		{name: "synonym terracotta", input: "terracotta", expect: ColorOrange},
		{name: "unknown color folds to gray", input: "chartreuse", expect: ColorGray},
		{name: "empty input folds to gray", input: "", expect: ColorGray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeColor(tt.input); got != tt.expect {
				t.Fatalf("expected %q, got %q", tt.expect, got)
			}
		})
	}
}

func TestColorMatrixIdentity(t *testing.T) {
	t.Parallel()

	for _, token := range ColorTokens {
		if got := colorMatrix[token][token]; got != 1.0 {
			t.Fatalf("expected %s/%s to score 1.0, got %v", token, token, got)
		}
	}
}

func TestColorMatrixSymmetricAndBounded(t *testing.T) {
	t.Parallel()

	for _, a := range ColorTokens {
		for _, b := range ColorTokens {
			score := colorMatrix[a][b]
			if score < 0 || score > 1 {
				t.Fatalf("score for %s/%s out of range: %v", a, b, score)
			}
			if mirror := colorMatrix[b][a]; mirror != score {
				t.Fatalf("matrix not symmetric for %s/%s: %v vs %v", a, b, score, mirror)
			}
		}
	}
}

func TestColorCompatibility(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		a, b   string
		expect float64
	}{
		{name: "red and blue", a: "red", b: "blue", expect: 0.7},
		{name: "direction does not matter", a: "blue", b: "red", expect: 0.7},
		{name: "synonyms normalized first", a: "navy", b: "burgundy", expect: 0.7},
		{name: "same color always perfect", a: "Green", b: "olive", expect: 1.0},
		{name: "unknown colors fold to gray pair", a: "zigzag", b: "sparkle", expect: 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := ColorCompatibility(tt.a, tt.b); got != tt.expect {
				t.Fatalf("expected %v, got %v", tt.expect, got)
			}
		})
	}
}
