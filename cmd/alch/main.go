// Command alch is a CACO alchemy reference tool: it loads an ingredient
// registry, answers search queries over ingredient and effect names, and
// predicts the potion produced by combining 2-4 ingredients.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/radj307/caco-alch-potion-builder/internal/alchemy"
	"github.com/radj307/caco-alch-potion-builder/internal/codec"
	"github.com/radj307/caco-alch-potion-builder/internal/config"
	"github.com/radj307/caco-alch-potion-builder/internal/format"
	"github.com/radj307/caco-alch-potion-builder/internal/logging"
)

var (
	// Global flags.
	flagConfig    string
	flagRegistry  string
	flagVerbose   bool
	flagQuiet     bool
	flagExact     bool
	flagAll       bool
	flagExport    bool
	flagReverse   bool
	flagColor     bool
	flagPrecision int
	flagIndent    int

	// Loaded in PersistentPreRunE, shared by every command.
	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "alch",
	Short: "CACO alchemy ingredient catalog and potion builder",
	Long: `alch is a reference tool for the Complete Alchemy & Cooking Overhaul.

It loads an ingredient registry file, searches ingredient and effect
names, and predicts the potion brewed from 2-4 ingredients using the
configured game settings.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := logging.Init(flagVerbose); err != nil {
			return fmt.Errorf("init logging: %w", err)
		}

		// config init has to run before a config file exists.
		if cmd.Name() == "init" && cmd.Parent() != nil && cmd.Parent().Name() == "config" {
			return nil
		}

		path := flagConfig
		explicit := cmd.Flags().Changed("config") || cmd.Root().PersistentFlags().Changed("config")
		if path == "" {
			path = config.DefaultFileName
		}
		loaded, err := config.Load(path, explicit)
		if err != nil {
			return err
		}
		cfg = loaded
		if flagRegistry != "" {
			cfg.Registry = flagRegistry
		}
		logging.L(logging.CategoryConfig).Debug("config loaded",
			zap.String("path", path), zap.String("registry", cfg.Registry))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logging.Sync()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagConfig, "config", "", "config file (default "+config.DefaultFileName+")")
	pf.StringVar(&flagRegistry, "registry", "", "ingredient registry file (overrides config)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "verbose output: keyword lines and debug logging")
	pf.BoolVarP(&flagQuiet, "quiet", "q", false, "only show effects matching the search terms")
	pf.BoolVarP(&flagExact, "exact", "e", false, "disallow partial matches")
	pf.BoolVarP(&flagAll, "all", "a", false, "show zero magnitudes, durations, and keywords")
	pf.BoolVarP(&flagExport, "export", "E", false, "emit registry file format instead of readable text")
	pf.BoolVarP(&flagReverse, "reverse", "R", false, "reverse output order")
	pf.BoolVar(&flagColor, "color", true, "colorize effect names by polarity")
	pf.IntVar(&flagPrecision, "precision", -1, "decimal places for magnitudes (default from config)")
	pf.IntVar(&flagIndent, "indent", -1, "spaces before ingredient names (default from config)")
}

// formatter builds the output formatter from config defaults overlaid
// with whatever flags the user set on this invocation.
func formatter() *format.Formatter {
	opts := format.Options{
		Quiet:     flagQuiet,
		Verbose:   flagVerbose,
		Exact:     flagExact,
		All:       flagAll,
		Export:    flagExport,
		Reverse:   flagReverse || cfg.Output.Reverse,
		Color:     flagColor && cfg.Output.Color,
		Indent:    cfg.Output.Indent,
		Precision: cfg.Output.Precision,
	}
	if flagPrecision >= 0 {
		opts.Precision = flagPrecision
	}
	if flagIndent >= 0 {
		opts.Indent = flagIndent
	}
	return format.New(opts)
}

// loadRegistry parses the configured registry file and bulk-loads it.
// Duplicate entries are reported through the registry logger, not
// treated as an error.
func loadRegistry() (*alchemy.Registry, error) {
	f, err := os.Open(cfg.Registry)
	if err != nil {
		return nil, fmt.Errorf("open registry: %w", err)
	}
	defer f.Close()

	list, err := codec.Parse(f)
	if err != nil {
		return nil, err
	}
	reg, dupes := alchemy.NewRegistry(list)
	lg := logging.L(logging.CategoryRegistry)
	lg.Debug("registry loaded", zap.Int("ingredients", reg.Len()), zap.Int("duplicates", dupes))
	if dupes > 0 {
		lg.Warn("duplicate ingredient names dropped", zap.Int("count", dupes))
	}
	return reg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		logging.Sync()
		os.Exit(1)
	}
}
