package format

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/radj307/caco-alch-potion-builder/internal/alchemy"
)

// Styles holds the lipgloss styles for every UI element the formatter
// renders. Polarity colors follow the convention players expect:
// harmful effects red, beneficial green, magic-influence and unknown
// effects neutral.
type Styles struct {
	Ingredient lipgloss.Style
	Positive   lipgloss.Style
	Negative   lipgloss.Style
	Neutral    lipgloss.Style
	Magnitude  lipgloss.Style
	Duration   lipgloss.Style
	Keyword    lipgloss.Style
	Highlight  lipgloss.Style
}

// DefaultStyles returns the standard color scheme.
func DefaultStyles() Styles {
	return Styles{
		Ingredient: lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true), // cyan
		Positive:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),            // green
		Negative:   lipgloss.NewStyle().Foreground(lipgloss.Color("1")),            // red
		Neutral:    lipgloss.NewStyle().Foreground(lipgloss.Color("7")),            // white
		Magnitude:  lipgloss.NewStyle().Foreground(lipgloss.Color("5")),            // magenta
		Duration:   lipgloss.NewStyle().Foreground(lipgloss.Color("4")),            // blue
		Keyword:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),            // gray
		Highlight:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true), // yellow
	}
}

// plainStyles renders everything unstyled; used when color is off so
// output stays byte-stable for piping and tests.
func plainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Ingredient: plain, Positive: plain, Negative: plain, Neutral: plain,
		Magnitude: plain, Duration: plain, Keyword: plain, Highlight: plain,
	}
}

// negativeHints and positiveHints classify effects whose dataset carries
// no polarity keywords. Matching is on the lowercased effect name.
var (
	negativeHints = []string{"damage", "drain", "ravage", "weakness", "fear", "frenzy", "paralysis", "poison", "silence", "burden"}
	positiveHints = []string{"restore", "fortify", "resist", "regenerate", "cure", "invisibility", "waterbreathing", "detect", "feather"}
)

// effectStyle picks the style for an effect name: keywords first, then
// the name-based fallback, then neutral.
func (f *Formatter) effectStyle(fx alchemy.Effect) lipgloss.Style {
	if len(fx.Keywords) > 0 {
		switch {
		case fx.IsNegative():
			return f.styles.Negative
		case fx.IsPositive():
			return f.styles.Positive
		case fx.HasKeyword(alchemy.KeywordMagicInfluence):
			return f.styles.Neutral
		}
	}
	name := strings.ToLower(fx.Name)
	for _, hint := range negativeHints {
		if strings.Contains(name, hint) {
			return f.styles.Negative
		}
	}
	for _, hint := range positiveHints {
		if strings.Contains(name, hint) {
			return f.styles.Positive
		}
	}
	return f.styles.Neutral
}
