package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/radj307/caco-alch-potion-builder/internal/alchemy"
	"github.com/radj307/caco-alch-potion-builder/internal/logging"
)

var smartCmd = &cobra.Command{
	Use:   "smart EFFECT...",
	Short: "Find ingredients that share the searched effects",
	Long: `Smart search narrows the catalog one effect term at a time: the
first term searches the whole registry, each following term searches only
the ingredients already matched. The survivors are the ingredients that
carry every searched effect, which is what a potion combining those
effects must be built from.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSmart,
}

func init() {
	rootCmd.AddCommand(smartCmd)
}

func runSmart(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	policy := alchemy.MatchContains
	if flagExact {
		policy = alchemy.MatchExact
	}
	f := formatter()
	lg := logging.L(logging.CategorySearch)

	// Narrow a working cache per term, the way repeated -S searches reuse
	// the previous result set.
	cache := reg
	for i, term := range args {
		matched := cache.Find(term, policy, alchemy.ScopeEffects)
		lg.Debug("smart narrowing",
			zap.String("term", term), zap.Int("pool", cache.Len()), zap.Int("hits", len(matched)))
		if len(matched) == 0 {
			return fmt.Errorf("no ingredient in the remaining pool has an effect matching %q", term)
		}
		cache, _ = alchemy.NewRegistry(matched)

		fmt.Fprintf(os.Stdout, "%s (%d)\n", term, len(matched))
		if i == len(args)-1 {
			terms := make([]string, len(args))
			for n, t := range args {
				terms[n] = strings.ToLower(t)
			}
			if err := f.List(os.Stdout, matched, terms); err != nil {
				return err
			}
		}
	}
	return nil
}
