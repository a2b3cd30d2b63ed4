package gamesettings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radj307/caco-alch-potion-builder/internal/alchemy"
)

func TestMultiplier(t *testing.T) {
	tests := []struct {
		name     string
		settings Settings
		want     float64
	}{
		{"defaults", Default(), 4.0 * (1 + 0.5*0.15)},
		{
			"maxed skill",
			Settings{IngredientInitMult: 4, SkillFactor: 1.5, AlchemySkill: 100, PerkMultiplier: 1},
			4.0 * 1.5,
		},
		{
			"gear and perks stack",
			Settings{IngredientInitMult: 2, SkillFactor: 1.5, AlchemySkill: 0, FortifyAlchemy: 50, PerkMultiplier: 2},
			2.0 * 1.0 * 1.5 * 2,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.settings.Multiplier(), 1e-9)
		})
	}
}

func TestScale(t *testing.T) {
	s := Default()
	scale := s.Scale()
	assert.InDelta(t, 10*s.Multiplier(), scale(10), 1e-9)
	assert.Zero(t, scale(0))

	// The scale function is a snapshot; later edits don't leak in.
	s.AlchemySkill = 100
	assert.InDelta(t, 10*Default().Multiplier(), scale(10), 1e-9)
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Default().Validate())

	bad := []Settings{
		{IngredientInitMult: 0, SkillFactor: 1.5, PerkMultiplier: 1},
		{IngredientInitMult: 4, SkillFactor: 0, PerkMultiplier: 1},
		{IngredientInitMult: 4, SkillFactor: 1.5, AlchemySkill: 101, PerkMultiplier: 1},
		{IngredientInitMult: 4, SkillFactor: 1.5, FortifyAlchemy: -1, PerkMultiplier: 1},
		{IngredientInitMult: 4, SkillFactor: 1.5, PerkMultiplier: 0},
	}
	for i, s := range bad {
		assert.Error(t, s.Validate(), "case %d", i)
	}
}

func TestApplyDuration(t *testing.T) {
	a, err := alchemy.NewIngredient("A", []alchemy.Effect{
		{Name: "Fire", Magnitude: 10, Duration: 3},
		{Name: "B1", Magnitude: 1}, {Name: "B2", Magnitude: 1}, {Name: "B3", Magnitude: 1},
	})
	require.NoError(t, err)
	b, err := alchemy.NewIngredient("B", []alchemy.Effect{
		{Name: "Fire", Magnitude: 5, Duration: 30},
		{Name: "C1", Magnitude: 1}, {Name: "C2", Magnitude: 1}, {Name: "C3", Magnitude: 1},
	})
	require.NoError(t, err)

	p, err := alchemy.Brew("", []alchemy.Ingredient{a, b}, nil)
	require.NoError(t, err)

	t.Run("zero is a no-op", func(t *testing.T) {
		s := Default()
		before := append([]alchemy.Effect(nil), p.FinalEffects...)
		s.ApplyDuration(&p)
		assert.Equal(t, before, p.FinalEffects)
	})

	t.Run("nonzero locks every final duration", func(t *testing.T) {
		s := Default()
		s.DefaultDuration = 10
		s.ApplyDuration(&p)
		for _, fx := range p.FinalEffects {
			assert.Equal(t, uint(10), fx.Duration)
		}
		// Base effects keep the observed maxima.
		assert.Equal(t, uint(30), p.BaseEffects[0].Duration)
	})
}
