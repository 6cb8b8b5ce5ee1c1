package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkazmin/lookbook/internal/recommend"
)

// printStyles holds all the styles used in the suggestion report.
type printStyles struct {
	header    lipgloss.Style
	scoreHigh lipgloss.Style
	scoreMid  lipgloss.Style
	scoreLow  lipgloss.Style
	dim       lipgloss.Style
}

// newPrintStyles creates a new set of print styles.
func newPrintStyles() printStyles {
	return printStyles{
		header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		scoreHigh: lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		scoreMid:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
		scoreLow:  lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
		dim:       lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (s printStyles) scoreStyle(score float64) lipgloss.Style {
	switch {
	case score >= 0.75:
		return s.scoreHigh
	case score >= 0.5:
		return s.scoreMid
	default:
		return s.scoreLow
	}
}

func renderSuggestions(outfits []*recommend.Recommendation) {
	styles := newPrintStyles()

	fmt.Println()
	fmt.Println(styles.header.Render(fmt.Sprintf("OUTFIT SUGGESTIONS (%d)", len(outfits))))

	for idx, outfit := range outfits {
		fmt.Printf("%s %s  %s\n",
			styles.header.Render(fmt.Sprintf("%d.", idx+1)),
			styles.scoreStyle(outfit.Score).Render(fmt.Sprintf("%.2f", outfit.Score)),
			outfit.Style,
		)

		for _, item := range outfit.Items {
			fmt.Printf("   - %-10s %-8s %s\n",
				item.Category, item.Color, styles.dim.Render(item.URI),
			)
		}

		fmt.Printf("   %s\n", styles.dim.Render(outfit.Reason))
	}

	fmt.Println()
}
