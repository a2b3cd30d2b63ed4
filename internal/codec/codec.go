// Package codec reads and writes the on-disk ingredient registry format:
// one brace-delimited block per ingredient, one nested block per effect,
// keyword lines carried verbatim. External tooling round-trips catalogs
// through this text form, so Write emits the shape exactly and Parse is
// lenient about surrounding whitespace, blank lines, and CRLF endings.
//
//	Wheat
//	{
//		Restore Health
//		{
//			magnitude = 5
//			duration = 0
//			MagicAlchBeneficial
//		}
//		...
//	}
package codec

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/radj307/caco-alch-potion-builder/internal/alchemy"
)

// Write serializes ingredients to w in registry format, in the order
// given. Effects appear in slot order.
func Write(w io.Writer, ingredients []alchemy.Ingredient) error {
	bw := bufio.NewWriter(w)
	for _, ingr := range ingredients {
		fmt.Fprintf(bw, "%s\n{\n", ingr.Name)
		for _, fx := range ingr.Effects {
			fmt.Fprintf(bw, "\t%s\n\t{\n", fx.Name)
			fmt.Fprintf(bw, "\t\tmagnitude = %s\n", formatMagnitude(fx.Magnitude))
			fmt.Fprintf(bw, "\t\tduration = %d\n", fx.Duration)
			for _, kw := range fx.Keywords {
				fmt.Fprintf(bw, "\t\t%s\n", kw)
			}
			fmt.Fprint(bw, "\t}\n")
		}
		fmt.Fprint(bw, "}\n")
	}
	return bw.Flush()
}

// formatMagnitude renders a magnitude the way the registry format expects:
// shortest decimal representation, no exponent for the magnitudes that
// occur in practice.
func formatMagnitude(m float64) string {
	return strconv.FormatFloat(m, 'f', -1, 64)
}

// ParseError reports a malformed registry file with the offending line.
type ParseError struct {
	Line int
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("registry: line %d: %s", e.Line, e.Msg)
}

// parser is a line-oriented scanner over the registry text.
type parser struct {
	sc   *bufio.Scanner
	line int
	cur  string
	eof  bool
}

// next advances to the next non-blank line, trimmed of surrounding
// whitespace and CR.
func (p *parser) next() bool {
	for p.sc.Scan() {
		p.line++
		line := strings.TrimSpace(strings.TrimSuffix(p.sc.Text(), "\r"))
		if line == "" {
			continue
		}
		p.cur = line
		return true
	}
	p.eof = true
	return false
}

func (p *parser) errorf(format string, args ...any) error {
	return &ParseError{Line: p.line, Msg: fmt.Sprintf(format, args...)}
}

// Parse reads a registry document and returns the raw ingredient list in
// file order, duplicates included. Callers feed the result to
// alchemy.NewRegistry, which owns dedup policy.
func Parse(r io.Reader) ([]alchemy.Ingredient, error) {
	p := &parser{sc: bufio.NewScanner(r)}
	p.sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var out []alchemy.Ingredient
	for p.next() {
		ingr, err := p.parseIngredient()
		if err != nil {
			return nil, err
		}
		out = append(out, ingr)
	}
	if err := p.sc.Err(); err != nil {
		return nil, fmt.Errorf("registry: read: %w", err)
	}
	return out, nil
}

// parseIngredient consumes one ingredient block. p.cur holds the
// ingredient name on entry.
func (p *parser) parseIngredient() (alchemy.Ingredient, error) {
	name := p.cur
	if name == "{" || name == "}" {
		return alchemy.Ingredient{}, p.errorf("expected ingredient name, got %q", name)
	}
	if !p.next() || p.cur != "{" {
		return alchemy.Ingredient{}, p.errorf("expected '{' after ingredient %q", name)
	}

	var effects []alchemy.Effect
	for {
		if !p.next() {
			return alchemy.Ingredient{}, p.errorf("unterminated block for ingredient %q", name)
		}
		if p.cur == "}" {
			break
		}
		fx, err := p.parseEffect()
		if err != nil {
			return alchemy.Ingredient{}, err
		}
		effects = append(effects, fx)
	}

	ingr, err := alchemy.NewIngredient(name, effects)
	if err != nil {
		return alchemy.Ingredient{}, p.errorf("%v", err)
	}
	return ingr, nil
}

// parseEffect consumes one effect block. p.cur holds the effect name on
// entry.
func (p *parser) parseEffect() (alchemy.Effect, error) {
	fx := alchemy.Effect{Name: p.cur}
	if !p.next() || p.cur != "{" {
		return alchemy.Effect{}, p.errorf("expected '{' after effect %q", fx.Name)
	}
	for {
		if !p.next() {
			return alchemy.Effect{}, p.errorf("unterminated block for effect %q", fx.Name)
		}
		if p.cur == "}" {
			return fx, nil
		}
		key, value, found := strings.Cut(p.cur, "=")
		switch strings.TrimSpace(strings.ToLower(key)) {
		case "magnitude":
			if !found {
				return alchemy.Effect{}, p.errorf("magnitude line missing '='")
			}
			m, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil || m < 0 {
				return alchemy.Effect{}, p.errorf("invalid magnitude %q", strings.TrimSpace(value))
			}
			fx.Magnitude = m
		case "duration":
			if !found {
				return alchemy.Effect{}, p.errorf("duration line missing '='")
			}
			d, err := strconv.ParseUint(strings.TrimSpace(value), 10, 32)
			if err != nil {
				return alchemy.Effect{}, p.errorf("invalid duration %q", strings.TrimSpace(value))
			}
			fx.Duration = uint(d)
		default:
			if found {
				return alchemy.Effect{}, p.errorf("unknown attribute %q", strings.TrimSpace(key))
			}
			// Any other bare line inside an effect block is a keyword.
			fx.Keywords = append(fx.Keywords, alchemy.Keyword(p.cur))
		}
	}
}
