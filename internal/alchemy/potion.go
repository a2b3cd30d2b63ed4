package alchemy

import (
	"errors"
	"sort"
	"strings"
)

// Brew failure reasons. An out-of-range ingredient count is the only hard
// failure in the package: no recipe exists for it, so there is no partial
// result to return.
var (
	ErrTooFewIngredients  = errors.New("not enough ingredients: need at least 2")
	ErrTooManyIngredients = errors.New("too many ingredients: at most 4")
)

// ScaleFunc maps a base effect magnitude to a final magnitude. It is
// supplied by game-settings logic outside this package; the engine treats
// it as opaque and never embeds a formula of its own.
type ScaleFunc func(float64) float64

// DefaultPotionName is used when Brew is given an empty name.
const DefaultPotionName = "Potion"

// Potion is the immutable result of combining ingredients. BaseEffects is
// the shared-effect aggregate; FinalEffects is BaseEffects with each
// magnitude rescaled, duration carried through unchanged. The two slices
// always have equal length.
type Potion struct {
	Name         string
	BaseEffects  []Effect
	FinalEffects []Effect
}

// CommonEffects computes the effects shared by at least two of the given
// ingredients. Each shared effect carries the maximum magnitude and the
// maximum duration observed across all of its occurrences; the two maxima
// are tracked independently and need not come from the same occurrence.
//
// The input must contain between 2 and 4 ingredients; otherwise
// ErrTooFewIngredients or ErrTooManyIngredients is returned before any
// aggregation work. The result is sorted by effect name, so it is
// invariant under permutation of the input.
//
// An ingredient sharing no effect with any other contributes nothing;
// that is a normal outcome, not an error.
func CommonEffects(ingredients []Ingredient) ([]Effect, error) {
	if len(ingredients) < 2 {
		return nil, ErrTooFewIngredients
	}
	if len(ingredients) > 4 {
		return nil, ErrTooManyIngredients
	}

	// Two working maps keyed by effect name: seenOnce holds effects
	// observed exactly once so far, common holds effects confirmed shared.
	// Promotion from seenOnce to common keeps whichever occurrence has the
	// larger magnitude.
	seenOnce := make(map[string]Effect)
	common := make(map[string]Effect)
	for _, ingr := range ingredients {
		for _, fx := range ingr.Effects {
			if current, ok := common[fx.Name]; ok {
				// Third or later occurrence: max magnitude and duration
				// independently.
				if fx.Magnitude > current.Magnitude {
					current.Magnitude = fx.Magnitude
				}
				if fx.Duration > current.Duration {
					current.Duration = fx.Duration
				}
				common[fx.Name] = current
				continue
			}
			if first, ok := seenOnce[fx.Name]; ok {
				// Second occurrence: promote. Magnitude decides which
				// occurrence is stored, not encounter order; duration takes
				// the max of both so the final maxima stay order-independent.
				stored := first
				if fx.Magnitude >= first.Magnitude {
					stored = fx.clone()
				}
				stored.Duration = max(first.Duration, fx.Duration)
				common[fx.Name] = stored
				delete(seenOnce, fx.Name)
				continue
			}
			seenOnce[fx.Name] = fx.clone()
		}
	}

	out := make([]Effect, 0, len(common))
	for _, fx := range common {
		out = append(out, fx)
	}
	sort.Slice(out, func(a, b int) bool {
		la, lb := strings.ToLower(out[a].Name), strings.ToLower(out[b].Name)
		if la != lb {
			return la < lb
		}
		return out[a].Name < out[b].Name
	})
	return out, nil
}

// Brew combines 2-4 ingredients into a potion. The base effect list is
// the shared-effect aggregate from CommonEffects; the final list applies
// scale to each base magnitude. Scaling never drops, adds, or reorders
// effects and never touches duration.
//
// A nil scale is treated as identity.
func Brew(name string, ingredients []Ingredient, scale ScaleFunc) (Potion, error) {
	base, err := CommonEffects(ingredients)
	if err != nil {
		return Potion{}, err
	}
	if name == "" {
		name = DefaultPotionName
	}
	if scale == nil {
		scale = func(m float64) float64 { return m }
	}
	final := make([]Effect, 0, len(base))
	for _, fx := range base {
		scaled := fx.clone()
		scaled.Magnitude = scale(fx.Magnitude)
		final = append(final, scaled)
	}
	return Potion{Name: name, BaseEffects: base, FinalEffects: final}, nil
}
