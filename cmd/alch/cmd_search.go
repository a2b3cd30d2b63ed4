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

var (
	searchNamesOnly   bool
	searchEffectsOnly bool
)

var searchCmd = &cobra.Command{
	Use:   "search TERM...",
	Short: "Search ingredient and effect names",
	Long: `Searches the registry for each term, case-insensitively. A term
matches an ingredient by its name or by any of its effect names; matched
substrings are highlighted. Use --exact to require full-name matches and
--quiet to hide the effects that didn't match.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&searchNamesOnly, "names-only", false, "match ingredient names only")
	searchCmd.Flags().BoolVar(&searchEffectsOnly, "effects-only", false, "match effect names only")
	searchCmd.MarkFlagsMutuallyExclusive("names-only", "effects-only")
	rootCmd.AddCommand(searchCmd)
}

func searchScope() alchemy.SearchScope {
	switch {
	case searchNamesOnly:
		return alchemy.ScopeNames
	case searchEffectsOnly:
		return alchemy.ScopeEffects
	default:
		return alchemy.ScopeBoth
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	policy := alchemy.MatchContains
	if flagExact {
		policy = alchemy.MatchExact
	}
	scope := searchScope()
	f := formatter()
	lg := logging.L(logging.CategorySearch)

	misses := 0
	for _, term := range args {
		results := reg.Find(term, policy, scope)
		lg.Debug("search", zap.String("term", term), zap.Int("hits", len(results)))
		if len(results) == 0 {
			misses++
			fmt.Fprintf(os.Stdout, "no results for %q\n", term)
			continue
		}
		if err := f.List(os.Stdout, results, []string{strings.ToLower(term)}); err != nil {
			return err
		}
	}
	if misses == len(args) {
		return fmt.Errorf("no results for %s", strings.Join(args, ", "))
	}
	return nil
}
