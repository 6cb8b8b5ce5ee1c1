package recommend

import "fmt"

// reasonTemplates are ordered from worst to best score bucket. Each takes
// the style label.
var reasonTemplates = []string{
	"An unusual %s combination. The pieces clash, but bold choices can work.",
	"A %s look with mixed signals. Consider swapping one piece.",
	"A decent %s outfit. The colors and cuts get along well enough.",
	"A well-matched %s outfit. Colors and styles complement each other.",
	"A standout %s look. Everything here works together beautifully.",
}

// Explain picks a templated sentence for the score bucket. Buckets are
// floor(score*5), with a perfect score clamped into the last template.
func Explain(score float64, style string) string {
	idx := int(score * float64(len(reasonTemplates)))
	if idx >= len(reasonTemplates) {
		idx = len(reasonTemplates) - 1
	}
	if idx < 0 {
		idx = 0
	}
	return fmt.Sprintf(reasonTemplates[idx], style)
}
