package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/radj307/caco-alch-potion-builder/internal/alchemy"
	"github.com/radj307/caco-alch-potion-builder/internal/codec"
	"github.com/radj307/caco-alch-potion-builder/internal/logging"
)

var (
	buildPotionName string
	buildRanked     bool
)

var buildCmd = &cobra.Command{
	Use:   "build INGREDIENT...",
	Short: "Predict the potion brewed from 2-4 ingredients",
	Long: `Resolves each name against the registry and combines the matched
ingredients. Effects shared by at least two ingredients make it into the
potion, at the strongest magnitude and longest duration found; the final
magnitudes are scaled by the configured game settings.

Names resolve by best fit: an exact match wins outright, otherwise the
first substring match is taken (--ranked prefers the closest match
instead). Pass "-" as the only argument to read ingredient blocks in
registry format from stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&buildPotionName, "name", "", "name for the resulting potion")
	buildCmd.Flags().BoolVar(&buildRanked, "ranked", false, "rank substring matches by quality instead of catalog order")
	rootCmd.AddCommand(buildCmd)
}

// resolveIngredients maps the command arguments to catalog entries via
// best-fit resolution.
func resolveIngredients(reg *alchemy.Registry, names []string) ([]alchemy.Ingredient, error) {
	lg := logging.L(logging.CategorySearch)
	out := make([]alchemy.Ingredient, 0, len(names))
	for _, name := range names {
		var (
			ingr alchemy.Ingredient
			ok   bool
		)
		if buildRanked {
			ingr, ok = reg.FindBestFitRanked(name, alchemy.ScopeBoth)
		} else {
			ingr, ok = reg.FindBestFit(name, alchemy.ScopeBoth)
		}
		if !ok {
			return nil, fmt.Errorf("no ingredient matches %q", name)
		}
		lg.Debug("resolved", zap.String("arg", name), zap.String("ingredient", ingr.Name))
		out = append(out, ingr)
	}
	return out, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	var (
		ingredients []alchemy.Ingredient
		err         error
	)
	if len(args) == 1 && args[0] == "-" {
		// Registry-format blocks piped in; no catalog lookup involved.
		ingredients, err = codec.Parse(os.Stdin)
		if err != nil {
			return err
		}
	} else {
		reg, lerr := loadRegistry()
		if lerr != nil {
			return lerr
		}
		ingredients, err = resolveIngredients(reg, args)
		if err != nil {
			return err
		}
	}

	potion, err := alchemy.Brew(buildPotionName, ingredients, cfg.GameSettings.Scale())
	switch {
	case errors.Is(err, alchemy.ErrTooFewIngredients), errors.Is(err, alchemy.ErrTooManyIngredients):
		return fmt.Errorf("%w (got %d)", err, len(ingredients))
	case err != nil:
		return err
	}
	cfg.GameSettings.ApplyDuration(&potion)

	logging.L(logging.CategoryBrew).Debug("brewed",
		zap.String("potion", potion.Name),
		zap.Int("ingredients", len(ingredients)),
		zap.Int("effects", len(potion.FinalEffects)))

	if len(potion.FinalEffects) == 0 {
		var names []string
		for _, ingr := range ingredients {
			names = append(names, ingr.Name)
		}
		fmt.Fprintf(os.Stdout, "%s share no effects; the brew fails\n", strings.Join(names, ", "))
		return nil
	}

	f := formatter()
	if f.Options().Export {
		// Export mode prints the raw ingredients used.
		return codec.Write(os.Stdout, ingredients)
	}
	f.Build(os.Stdout, ingredients, potion)
	return nil
}
