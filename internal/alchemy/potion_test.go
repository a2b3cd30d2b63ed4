package alchemy

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommonEffects_CountBoundary(t *testing.T) {
	one := testIngredient(t, "Wheat")
	tests := []struct {
		name    string
		count   int
		wantErr error
	}{
		{"one is too few", 1, ErrTooFewIngredients},
		{"zero is too few", 0, ErrTooFewIngredients},
		{"five is too many", 5, ErrTooManyIngredients},
		{"two is fine", 2, nil},
		{"four is fine", 4, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := make([]Ingredient, tt.count)
			for i := range input {
				input[i] = one
			}
			_, err := CommonEffects(input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCommonEffects_MaxPolicy(t *testing.T) {
	// "Fire" appears in all three with different magnitudes and durations;
	// the aggregate must carry the max of each, tracked independently.
	e1 := testIngredient(t, "E1", Effect{Name: "Fire", Magnitude: 10, Duration: 3})
	e2 := testIngredient(t, "E2", Effect{Name: "Fire", Magnitude: 5, Duration: 30})
	e3 := testIngredient(t, "E3", Effect{Name: "Fire", Magnitude: 8, Duration: 12})

	got, err := CommonEffects([]Ingredient{e1, e2, e3})
	require.NoError(t, err)

	var fire *Effect
	for i := range got {
		if got[i].Name == "Fire" {
			fire = &got[i]
		}
	}
	require.NotNil(t, fire, "Fire is shared by all three")
	assert.Equal(t, float64(10), fire.Magnitude)
	assert.Equal(t, uint(30), fire.Duration, "duration max need not come from the max-magnitude occurrence")
}

func TestCommonEffects_Commutative(t *testing.T) {
	ingredients := []Ingredient{
		testIngredient(t, "A",
			Effect{Name: "Restore Health", Magnitude: 15, Duration: 0},
			Effect{Name: "Fortify Health", Magnitude: 2, Duration: 300},
			Effect{Name: "Damage Magicka", Magnitude: 4, Duration: 0},
			Effect{Name: "Fear", Magnitude: 1, Duration: 10}),
		testIngredient(t, "B",
			Effect{Name: "Restore Health", Magnitude: 5, Duration: 2},
			Effect{Name: "Ravage Stamina", Magnitude: 3, Duration: 10},
			Effect{Name: "Fortify Health", Magnitude: 9, Duration: 60},
			Effect{Name: "Invisibility", Magnitude: 0, Duration: 15}),
		testIngredient(t, "C",
			Effect{Name: "Damage Magicka", Magnitude: 7, Duration: 1},
			Effect{Name: "Fear", Magnitude: 6, Duration: 5},
			Effect{Name: "Restore Health", Magnitude: 1, Duration: 9},
			Effect{Name: "Paralysis", Magnitude: 0, Duration: 4}),
	}

	want, err := CommonEffects(ingredients)
	require.NoError(t, err)

	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 20; i++ {
		shuffled := append([]Ingredient(nil), ingredients...)
		rng.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		got, err := CommonEffects(shuffled)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("aggregate differs under permutation (-want +got):\n%s", diff)
		}
	}
}

func TestCommonEffects_UnsharedExcluded(t *testing.T) {
	a := testIngredient(t, "A",
		Effect{Name: "Alpha", Magnitude: 1},
		Effect{Name: "Beta", Magnitude: 1},
		Effect{Name: "Gamma", Magnitude: 1},
		Effect{Name: "Delta", Magnitude: 1})
	b := testIngredient(t, "B",
		Effect{Name: "Alpha", Magnitude: 2},
		Effect{Name: "Epsilon", Magnitude: 1},
		Effect{Name: "Zeta", Magnitude: 1},
		Effect{Name: "Eta", Magnitude: 1})
	loner := testIngredient(t, "Loner",
		Effect{Name: "Theta", Magnitude: 1},
		Effect{Name: "Iota", Magnitude: 1},
		Effect{Name: "Kappa", Magnitude: 1},
		Effect{Name: "Lambda", Magnitude: 1})

	got, err := CommonEffects([]Ingredient{a, b, loner})
	require.NoError(t, err)
	require.Len(t, got, 1, "only Alpha is shared; the loner contributes nothing")
	assert.Equal(t, "Alpha", got[0].Name)
	assert.Equal(t, float64(2), got[0].Magnitude)
}

func TestBrew(t *testing.T) {
	a := testIngredient(t, "Blue Mountain Flower",
		Effect{Name: "Restore Health", Magnitude: 15, Duration: 0, Keywords: []Keyword{KeywordBeneficial}},
		Effect{Name: "Fortify Conjuration", Magnitude: 4, Duration: 60},
		Effect{Name: "Fortify Health", Magnitude: 2, Duration: 300},
		Effect{Name: "Damage Magicka Regen", Magnitude: 100, Duration: 5})
	b := testIngredient(t, "Wheat",
		Effect{Name: "Restore Health", Magnitude: 5, Duration: 0, Keywords: []Keyword{KeywordBeneficial}},
		Effect{Name: "Fortify Health", Magnitude: 9, Duration: 300},
		Effect{Name: "Damage Stamina Regen", Magnitude: 100, Duration: 5},
		Effect{Name: "Lingering Damage Magicka", Magnitude: 2, Duration: 10})

	t.Run("identity scaling keeps final equal to base", func(t *testing.T) {
		p, err := Brew("", []Ingredient{a, b}, func(m float64) float64 { return m })
		require.NoError(t, err)
		assert.Equal(t, DefaultPotionName, p.Name)
		assert.Equal(t, len(p.BaseEffects), len(p.FinalEffects))
		if diff := cmp.Diff(p.BaseEffects, p.FinalEffects); diff != "" {
			t.Fatalf("identity scaling must not change effects (-base +final):\n%s", diff)
		}
	})

	t.Run("scaling touches magnitude only", func(t *testing.T) {
		p, err := Brew("Health Mix", []Ingredient{a, b}, func(m float64) float64 { return m * 4 })
		require.NoError(t, err)
		assert.Equal(t, "Health Mix", p.Name)
		require.Equal(t, len(p.BaseEffects), len(p.FinalEffects))
		for i, fx := range p.FinalEffects {
			base := p.BaseEffects[i]
			assert.Equal(t, base.Name, fx.Name)
			assert.Equal(t, base.Duration, fx.Duration, "duration is carried through unchanged")
			assert.InDelta(t, base.Magnitude*4, fx.Magnitude, 1e-9)
		}
	})

	t.Run("nil scale behaves as identity", func(t *testing.T) {
		p, err := Brew("", []Ingredient{a, b}, nil)
		require.NoError(t, err)
		assert.Equal(t, p.BaseEffects, p.FinalEffects)
	})

	t.Run("count precondition runs before any aggregation", func(t *testing.T) {
		_, err := Brew("", []Ingredient{a}, nil)
		assert.ErrorIs(t, err, ErrTooFewIngredients)
		_, err = Brew("", []Ingredient{a, b, a, b, a}, nil)
		assert.ErrorIs(t, err, ErrTooManyIngredients)
	})
}

func TestBrew_ResultOwnsItsEffects(t *testing.T) {
	a := testIngredient(t, "A", Effect{Name: "Shared", Magnitude: 1, Keywords: []Keyword{KeywordHarmful}})
	b := testIngredient(t, "B", Effect{Name: "Shared", Magnitude: 2, Keywords: []Keyword{KeywordHarmful}})
	p, err := Brew("", []Ingredient{a, b}, nil)
	require.NoError(t, err)
	require.NotEmpty(t, p.BaseEffects)

	p.BaseEffects[0].Keywords[0] = "Mutated"
	assert.Equal(t, KeywordHarmful, b.Effects[0].Keywords[0], "potion effects are decoupled from source ingredients")
}
