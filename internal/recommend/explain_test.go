package recommend

import (
	"strings"
	"testing"
)

func TestExplainBuckets(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		score float64
		want  string
	}{
		{name: "lowest bucket", score: 0.0, want: reasonTemplates[0]},
		{name: "second bucket", score: 0.25, want: reasonTemplates[1]},
		{name: "middle bucket", score: 0.5, want: reasonTemplates[2]},
		{name: "fourth bucket", score: 0.79, want: reasonTemplates[3]},
		{name: "top bucket", score: 0.95, want: reasonTemplates[4]},
		{name: "perfect score clamps to top bucket", score: 1.0, want: reasonTemplates[4]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Explain(tt.score, StyleCasual)
			expect := strings.Replace(tt.want, "%s", StyleCasual, 1)
			if got != expect {
				t.Fatalf("expected %q, got %q", expect, got)
			}
		})
	}
}

func TestExplainMentionsStyle(t *testing.T) {
	t.Parallel()

	if got := Explain(0.8, StyleElegant); !strings.Contains(got, StyleElegant) {
		t.Fatalf("expected reason to mention the style, got %q", got)
	}
}
