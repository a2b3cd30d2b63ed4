package alchemy

import "fmt"

// EffectSlots is the number of effect slots on every ingredient. This is
// a fixed property of the source dataset, not a configurable limit.
const EffectSlots = 4

// Ingredient is a named catalog entry with exactly four effect slots.
// Ingredients are immutable once constructed; construct them with
// NewIngredient so the slot invariant holds everywhere downstream.
type Ingredient struct {
	Name    string
	Effects [EffectSlots]Effect
}

// NewIngredient builds an Ingredient from a name and exactly four
// effects. Any other effect count is rejected: the fixed slot count is a
// domain invariant, and enforcing it here removes bounds checks from
// every consumer.
func NewIngredient(name string, effects []Effect) (Ingredient, error) {
	if len(effects) != EffectSlots {
		return Ingredient{}, fmt.Errorf("ingredient %q: got %d effects, want exactly %d", name, len(effects), EffectSlots)
	}
	ingr := Ingredient{Name: name}
	for i, fx := range effects {
		ingr.Effects[i] = fx.clone()
	}
	return ingr, nil
}

// EffectList returns the ingredient's effects as a slice copy, in slot
// order.
func (i Ingredient) EffectList() []Effect {
	out := make([]Effect, 0, EffectSlots)
	for _, fx := range i.Effects {
		out = append(out, fx.clone())
	}
	return out
}

// clone returns a deep copy of the ingredient.
func (i Ingredient) clone() Ingredient {
	out := Ingredient{Name: i.Name}
	for n, fx := range i.Effects {
		out.Effects[n] = fx.clone()
	}
	return out
}
