package alchemy

import (
	"sort"
	"strings"
)

// NotFound is the sentinel index returned by cursor-style lookups when no
// further match exists. "Nothing matched" is a normal outcome, not an
// error.
const NotFound = -1

// Registry is an ordered, name-unique collection of ingredients. Ordering
// is alphabetical by name under case-insensitive collation; it is a
// presentation convenience, insertion order carries no meaning.
//
// The registry is built once from a raw list and queried read-only
// afterwards. It is not safe for concurrent mutation; callers that share
// one across goroutines must add their own synchronization around Clear.
type Registry struct {
	ingredients []Ingredient
}

// NewRegistry builds a registry from an arbitrary ingredient list,
// dropping later entries whose name was already seen. The first
// occurrence in iteration order wins. The number of dropped duplicates is
// reported as data; duplicates are never an error, the caller decides
// whether to warn.
func NewRegistry(list []Ingredient) (*Registry, int) {
	seen := make(map[string]struct{}, len(list))
	kept := make([]Ingredient, 0, len(list))
	duplicates := 0
	for _, ingr := range list {
		if _, ok := seen[ingr.Name]; ok {
			duplicates++
			continue
		}
		seen[ingr.Name] = struct{}{}
		kept = append(kept, ingr.clone())
	}
	sortIngredients(kept)
	return &Registry{ingredients: kept}, duplicates
}

// sortIngredients orders a slice alphabetically, case-insensitive, with
// the raw name as tie-break so ordering stays total.
func sortIngredients(list []Ingredient) {
	sort.SliceStable(list, func(a, b int) bool {
		la, lb := strings.ToLower(list[a].Name), strings.ToLower(list[b].Name)
		if la != lb {
			return la < lb
		}
		return list[a].Name < list[b].Name
	})
}

// Len returns the number of stored ingredients.
func (r *Registry) Len() int { return len(r.ingredients) }

// Empty reports whether the registry holds no ingredients.
func (r *Registry) Empty() bool { return len(r.ingredients) == 0 }

// At returns a copy of the ingredient at index i in collation order.
func (r *Registry) At(i int) Ingredient { return r.ingredients[i].clone() }

// List returns an independent copy of all ingredients in collation order.
func (r *Registry) List() []Ingredient {
	out := make([]Ingredient, 0, len(r.ingredients))
	for _, ingr := range r.ingredients {
		out = append(out, ingr.clone())
	}
	return out
}

// Clear empties the registry and returns its prior contents.
func (r *Registry) Clear() []Ingredient {
	prior := r.ingredients
	r.ingredients = nil
	return prior
}

// Get scans forward from start and returns the index of the next match,
// or NotFound. With onlyEffects false it matches ingredients whose name
// equals name exactly (case-sensitive); with onlyEffects true it matches
// ingredients carrying at least one effect whose lowercased name
// satisfies policy against the lowercased search term.
//
// Repeated calls with start set past the previous hit enumerate every
// match.
func (r *Registry) Get(name string, start int, onlyEffects bool, policy MatchPolicy) int {
	if start < 0 {
		start = 0
	}
	needle := strings.ToLower(name)
	for i := start; i < len(r.ingredients); i++ {
		if !onlyEffects {
			if r.ingredients[i].Name == name {
				return i
			}
			continue
		}
		for _, fx := range r.ingredients[i].Effects {
			if policy.Matches(strings.ToLower(fx.Name), needle) {
				return i
			}
		}
	}
	return NotFound
}

// Find returns copies of every ingredient satisfying policy within scope,
// in collation order. The scan is a pure read.
func (r *Registry) Find(name string, policy MatchPolicy, scope SearchScope) []Ingredient {
	needle := strings.ToLower(name)
	var out []Ingredient
	for _, ingr := range r.ingredients {
		if r.matches(ingr, needle, policy, scope) {
			out = append(out, ingr.clone())
		}
	}
	return out
}

func (r *Registry) matches(ingr Ingredient, needle string, policy MatchPolicy, scope SearchScope) bool {
	if scope.includesNames() && policy.Matches(strings.ToLower(ingr.Name), needle) {
		return true
	}
	if scope.includesEffects() {
		for _, fx := range ingr.Effects {
			if policy.Matches(strings.ToLower(fx.Name), needle) {
				return true
			}
		}
	}
	return false
}

// FindBestFit resolves a single ingredient for a search term, scanning in
// collation order with this priority:
//
//  1. An ingredient whose name equals the term (case-insensitive) wins
//     immediately and short-circuits the scan.
//  2. If scope permits name matching, a name containing the term is
//     remembered as a candidate.
//  3. If scope permits effect matching, an effect name equal to the term
//     wins immediately; an effect name containing it is remembered.
//  4. With no exact hit, the first candidate encountered wins. Ties break
//     on collection order, not match quality; FindBestFitRanked offers a
//     quality-ranked alternative as a separate opt-in.
//
// The second return is false when nothing matched.
func (r *Registry) FindBestFit(name string, scope SearchScope) (Ingredient, bool) {
	needle := strings.ToLower(name)
	candidate := NotFound
	for i, ingr := range r.ingredients {
		nameLC := strings.ToLower(ingr.Name)
		if nameLC == needle {
			return ingr.clone(), true
		}
		if scope.includesNames() && strings.Contains(nameLC, needle) {
			if candidate == NotFound {
				candidate = i
			}
			continue
		}
		if !scope.includesEffects() {
			continue
		}
		for _, fx := range ingr.Effects {
			fxLC := strings.ToLower(fx.Name)
			if fxLC == needle {
				return ingr.clone(), true
			}
			if strings.Contains(fxLC, needle) && candidate == NotFound {
				candidate = i
			}
		}
	}
	if candidate == NotFound {
		return Ingredient{}, false
	}
	return r.ingredients[candidate].clone(), true
}

// FindBestFitRanked is the opt-in alternative to FindBestFit: exact
// matches still win immediately, but among substring candidates the one
// with the earliest match position wins, then the shortest matched name.
// Kept separate so the compatible first-candidate behavior never changes
// underneath existing callers.
func (r *Registry) FindBestFitRanked(name string, scope SearchScope) (Ingredient, bool) {
	needle := strings.ToLower(name)
	best := NotFound
	bestPos, bestLen := 0, 0
	consider := func(i int, haystack string) {
		pos := strings.Index(haystack, needle)
		if pos < 0 {
			return
		}
		if best == NotFound || pos < bestPos || (pos == bestPos && len(haystack) < bestLen) {
			best, bestPos, bestLen = i, pos, len(haystack)
		}
	}
	for i, ingr := range r.ingredients {
		nameLC := strings.ToLower(ingr.Name)
		if nameLC == needle {
			return ingr.clone(), true
		}
		if scope.includesNames() {
			consider(i, nameLC)
		}
		if !scope.includesEffects() {
			continue
		}
		for _, fx := range ingr.Effects {
			fxLC := strings.ToLower(fx.Name)
			if fxLC == needle {
				return ingr.clone(), true
			}
			consider(i, fxLC)
		}
	}
	if best == NotFound {
		return Ingredient{}, false
	}
	return r.ingredients[best].clone(), true
}

// EffectNames returns the distinct effect names present in the registry,
// lowercase, in collation order. Backs the list --effects display.
func (r *Registry) EffectNames() []string {
	set := make(map[string]struct{})
	for _, ingr := range r.ingredients {
		for _, fx := range ingr.Effects {
			set[strings.ToLower(fx.Name)] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for name := range set {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}
