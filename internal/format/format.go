// Package format renders ingredients, search results, and brewed potions
// for the terminal. It owns the presentation flags (quiet, verbose,
// exact, all, export, reverse, color), indentation, float precision,
// search-term highlighting, and the keyword-driven effect coloring.
//
// The export flag switches rendering to the registry file format so
// output can be piped to a file and loaded back in.
package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/radj307/caco-alch-potion-builder/internal/alchemy"
	"github.com/radj307/caco-alch-potion-builder/internal/codec"
)

// suffixColumn is the column effect magnitudes are padded out to,
// relative to the start of the effect name.
const suffixColumn = 25

// Options are the presentation flags. Zero value is usable: plain
// uncolored output, two decimal places, two-space indent.
type Options struct {
	// Quiet omits effects that do not match a search term.
	Quiet bool
	// Verbose prints keyword lines under each effect.
	Verbose bool
	// Exact disables partial matches in quiet-mode effect filtering.
	Exact bool
	// All prints zero magnitudes/durations and keyword lines.
	All bool
	// Export renders registry file format instead of human-readable text.
	Export bool
	// Reverse flips list order.
	Reverse bool
	// Color enables ANSI styling.
	Color bool
	// Indent is the number of spaces before ingredient names; effect
	// lines are indented twice that.
	Indent int
	// Precision is the number of decimal places for magnitudes.
	Precision int
}

// Formatter renders catalog values according to a fixed set of Options.
type Formatter struct {
	opts   Options
	styles Styles
}

// New builds a Formatter. Styling follows opts.Color.
func New(opts Options) *Formatter {
	if opts.Indent < 0 {
		opts.Indent = 0
	}
	if opts.Precision < 0 {
		opts.Precision = 0
	}
	f := &Formatter{opts: opts, styles: plainStyles()}
	if opts.Color {
		f.styles = DefaultStyles()
	}
	return f
}

// Options returns the formatter's option set.
func (f *Formatter) Options() Options { return f.opts }

// splitName splits name around the first search term found in it,
// case-insensitively: the text before the hit, the hit itself (original
// casing), and the text after. With no hit the whole name lands in pre.
func (f *Formatter) splitName(name string, terms []string) (pre, hit, post string) {
	lower := strings.ToLower(name)
	for _, term := range terms {
		term = strings.ToLower(term)
		if term == "" {
			continue
		}
		if pos := strings.Index(lower, term); pos >= 0 {
			return name[:pos], name[pos : pos+len(term)], name[pos+len(term):]
		}
	}
	return name, "", ""
}

// renderName renders a name with the matched search term highlighted.
func (f *Formatter) renderName(name string, terms []string, base func(...string) string) string {
	pre, hit, post := f.splitName(name, terms)
	if hit == "" {
		return base(pre)
	}
	return base(pre) + f.styles.Highlight.Render(hit) + base(post)
}

// matchedEffects applies quiet-mode filtering to an ingredient's effects:
// with quiet off every effect passes; with quiet on only effects whose
// name matches a search term survive. Exact mode requires full equality.
func (f *Formatter) matchedEffects(ingr alchemy.Ingredient, terms []string) []alchemy.Effect {
	if !f.opts.Quiet || len(terms) == 0 {
		return ingr.EffectList()
	}
	policy := alchemy.MatchContains
	if f.opts.Exact {
		policy = alchemy.MatchExact
	}
	var out []alchemy.Effect
	for _, fx := range ingr.EffectList() {
		name := strings.ToLower(fx.Name)
		for _, term := range terms {
			if policy.Matches(name, strings.ToLower(term)) {
				out = append(out, fx)
				break
			}
		}
	}
	return out
}

func (f *Formatter) magnitude(m float64) string {
	return strconv.FormatFloat(m, 'f', f.opts.Precision, 64)
}

func (f *Formatter) indent() string       { return strings.Repeat(" ", f.opts.Indent) }
func (f *Formatter) effectIndent() string { return strings.Repeat(" ", f.opts.Indent*2) }

// Effect writes one human-readable effect line: colored name, padded
// magnitude column, duration with an "s" suffix. Zero values are hidden
// unless All is set; Verbose or All adds keyword lines underneath.
func (f *Formatter) Effect(w io.Writer, fx alchemy.Effect, terms []string) {
	style := f.effectStyle(fx)
	line := f.effectIndent() + f.renderName(fx.Name, terms, style.Render)

	pad := suffixColumn - len(fx.Name)
	if pad < 2 {
		pad = 2
	}
	if fx.Magnitude > 0 || f.opts.All {
		line += strings.Repeat(" ", pad) + f.styles.Magnitude.Render(f.magnitude(fx.Magnitude))
		pad = 10 - len(f.magnitude(fx.Magnitude))
		if pad < 2 {
			pad = 2
		}
	}
	if fx.Duration > 0 || f.opts.All {
		line += strings.Repeat(" ", pad) + f.styles.Duration.Render(fmt.Sprintf("%ds", fx.Duration))
	}
	fmt.Fprintln(w, line)

	if f.opts.Verbose || f.opts.All {
		for _, kw := range fx.Keywords {
			fmt.Fprintln(w, f.effectIndent()+f.indent()+f.styles.Keyword.Render(string(kw)))
		}
	}
}

// Ingredient writes an ingredient name and its (quiet-filtered) effects.
func (f *Formatter) Ingredient(w io.Writer, ingr alchemy.Ingredient, terms []string) {
	fmt.Fprintln(w, f.indent()+f.renderName(ingr.Name, terms, f.styles.Ingredient.Render))
	for _, fx := range f.matchedEffects(ingr, terms) {
		f.Effect(w, fx, terms)
	}
}

// List writes a list of ingredients, honoring Reverse and Export.
func (f *Formatter) List(w io.Writer, list []alchemy.Ingredient, terms []string) error {
	if f.opts.Reverse {
		reversed := make([]alchemy.Ingredient, 0, len(list))
		for i := len(list) - 1; i >= 0; i-- {
			reversed = append(reversed, list[i])
		}
		list = reversed
	}
	if f.opts.Export {
		return codec.Write(w, list)
	}
	for _, ingr := range list {
		f.Ingredient(w, ingr, terms)
	}
	return nil
}

// Potion writes a brewed potion: name, then its final effects. With
// Verbose or All the base (pre-scaling) effects are shown as well.
func (f *Formatter) Potion(w io.Writer, p alchemy.Potion) {
	fmt.Fprintln(w, f.indent()+f.styles.Ingredient.Render(p.Name))
	for _, fx := range p.FinalEffects {
		f.Effect(w, fx, nil)
	}
	if (f.opts.Verbose || f.opts.All) && len(p.BaseEffects) > 0 {
		fmt.Fprintln(w, f.indent()+f.styles.Neutral.Render("base effects"))
		for _, fx := range p.BaseEffects {
			f.Effect(w, fx, nil)
		}
	}
}

// Build writes a full brew report: each ingredient used, filtered to the
// effects that made it into the potion, followed by the potion itself.
func (f *Formatter) Build(w io.Writer, used []alchemy.Ingredient, p alchemy.Potion) {
	terms := make([]string, 0, len(p.BaseEffects))
	for _, fx := range p.BaseEffects {
		terms = append(terms, strings.ToLower(fx.Name))
	}
	quiet := *f
	quiet.opts.Quiet = true
	quiet.opts.Exact = true
	for _, ingr := range used {
		quiet.Ingredient(w, ingr, terms)
	}
	fmt.Fprintln(w)
	f.Potion(w, p)
}
