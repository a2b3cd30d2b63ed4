// Package gamesettings supplies the magnitude scaling collaborator used
// when brewing. The combination engine treats scaling as an opaque
// function; this package owns the actual formula, parameterized by the
// game-setting values a CACO install exposes (ingredient multiplier,
// skill factor, character skill, gear and perk bonuses).
package gamesettings

import (
	"fmt"

	"github.com/radj307/caco-alch-potion-builder/internal/alchemy"
)

// Settings holds the game-setting values that drive the potion magnitude
// formula. Zero values are not useful; start from Default and override.
type Settings struct {
	// IngredientInitMult mirrors fAlchemyIngredientInitMult, the flat
	// multiplier applied to every base magnitude.
	IngredientInitMult float64 `yaml:"ingredient_init_mult" env:"ALCH_INGREDIENT_INIT_MULT"`
	// SkillFactor mirrors fAlchemySkillFactor, the weight of character
	// skill in the formula.
	SkillFactor float64 `yaml:"skill_factor" env:"ALCH_SKILL_FACTOR"`
	// AlchemySkill is the character's alchemy skill level, 0-100.
	AlchemySkill float64 `yaml:"alchemy_skill" env:"ALCH_SKILL"`
	// FortifyAlchemy is the total fortify-alchemy gear bonus, in percent.
	FortifyAlchemy float64 `yaml:"fortify_alchemy" env:"ALCH_FORTIFY"`
	// PerkMultiplier is the combined flat multiplier from perks; 1 means
	// no perks.
	PerkMultiplier float64 `yaml:"perk_multiplier" env:"ALCH_PERK_MULT"`
	// DefaultDuration, when nonzero, overrides every brewed effect's
	// duration in seconds. CACO locks some potions to fixed durations
	// (1s/5s/10s); this is applied after brewing, never by the scaling
	// function itself.
	DefaultDuration uint `yaml:"default_duration" env:"ALCH_DEFAULT_DURATION"`
}

// Default returns vanilla-flavored settings: no gear, no perks, a fresh
// character.
func Default() Settings {
	return Settings{
		IngredientInitMult: 4.0,
		SkillFactor:        1.5,
		AlchemySkill:       15,
		FortifyAlchemy:     0,
		PerkMultiplier:     1,
	}
}

// Validate rejects settings that would produce meaningless magnitudes.
func (s Settings) Validate() error {
	if s.IngredientInitMult <= 0 {
		return fmt.Errorf("gamesettings: ingredient_init_mult must be positive, got %v", s.IngredientInitMult)
	}
	if s.SkillFactor <= 0 {
		return fmt.Errorf("gamesettings: skill_factor must be positive, got %v", s.SkillFactor)
	}
	if s.AlchemySkill < 0 || s.AlchemySkill > 100 {
		return fmt.Errorf("gamesettings: alchemy_skill must be in [0,100], got %v", s.AlchemySkill)
	}
	if s.FortifyAlchemy < 0 {
		return fmt.Errorf("gamesettings: fortify_alchemy must not be negative, got %v", s.FortifyAlchemy)
	}
	if s.PerkMultiplier <= 0 {
		return fmt.Errorf("gamesettings: perk_multiplier must be positive, got %v", s.PerkMultiplier)
	}
	return nil
}

// Multiplier computes the flat factor applied to every base magnitude:
//
//	init * (1 + (skillFactor-1) * skill/100) * (1 + fortify/100) * perks
func (s Settings) Multiplier() float64 {
	skill := 1 + (s.SkillFactor-1)*(s.AlchemySkill/100)
	gear := 1 + s.FortifyAlchemy/100
	return s.IngredientInitMult * skill * gear * s.PerkMultiplier
}

// Scale returns the ScaleFunc handed to the combination engine. The
// returned function captures the multiplier at call time; later edits to
// the settings do not retroactively change a brew in flight.
func (s Settings) Scale() alchemy.ScaleFunc {
	mult := s.Multiplier()
	return func(magnitude float64) float64 {
		return magnitude * mult
	}
}

// ApplyDuration applies the locked-duration override to a brewed potion's
// final effects, in place. No-op when DefaultDuration is zero.
func (s Settings) ApplyDuration(p *alchemy.Potion) {
	if s.DefaultDuration == 0 {
		return
	}
	for i := range p.FinalEffects {
		p.FinalEffects[i].Duration = s.DefaultDuration
	}
}
