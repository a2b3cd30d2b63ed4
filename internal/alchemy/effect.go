// Package alchemy implements the ingredient catalog and the potion
// combination engine: a name-unique, name-ordered registry of ingredients
// with case-insensitive exact/substring queries, and the shared-effect
// aggregation that combines 2-4 ingredients into a potion.
//
// The package is a pure, synchronous, in-memory library. It performs no
// I/O and holds no locks; a registry is bulk-loaded once and queried
// read-only afterwards. All query results and brew results are
// independent copies with no aliasing back into the registry.
package alchemy

import "strings"

// Keyword is an opaque tag attached to an effect. A handful of well-known
// keywords mark effect polarity; everything else is carried through
// untouched for presentation and export.
type Keyword string

// Well-known CACO keywords recognized by the polarity helpers.
const (
	KeywordHarmful        Keyword = "MagicAlchHarmful"
	KeywordBeneficial     Keyword = "MagicAlchBeneficial"
	KeywordMagicInfluence Keyword = "MagicInfluence"
	KeywordDurationBased  Keyword = "MagicAlchDurationBased"
)

// Effect is a single magical effect carried by an ingredient: a name, a
// magnitude, a duration in seconds, and zero or more keyword tags.
//
// Within a combination computation two effects are "the same effect" iff
// their names are equal under case-sensitive comparison; magnitude and
// duration never participate in identity.
type Effect struct {
	Name      string
	Magnitude float64
	Duration  uint
	Keywords  []Keyword
}

// HasKeyword reports whether the effect carries kw, or any keyword whose
// name contains kw as a substring (keyword families such as
// "MagicInfluence*" share a common prefix).
func (e Effect) HasKeyword(kw Keyword) bool {
	for _, k := range e.Keywords {
		if k == kw || strings.Contains(string(k), string(kw)) {
			return true
		}
	}
	return false
}

// IsNegative reports whether the effect is tagged harmful.
func (e Effect) IsNegative() bool { return e.HasKeyword(KeywordHarmful) }

// IsPositive reports whether the effect is tagged beneficial.
func (e Effect) IsPositive() bool { return e.HasKeyword(KeywordBeneficial) }

// clone returns a deep copy of the effect. Keyword slices are copied so
// results never alias registry storage.
func (e Effect) clone() Effect {
	out := e
	if len(e.Keywords) > 0 {
		out.Keywords = append([]Keyword(nil), e.Keywords...)
	}
	return out
}
