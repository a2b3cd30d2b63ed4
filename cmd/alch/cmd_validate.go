package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/radj307/caco-alch-potion-builder/internal/alchemy"
	"github.com/radj307/caco-alch-potion-builder/internal/codec"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that the registry file loads cleanly",
	Long: `Parses the configured registry file and reports what was found.
Exits non-zero when the file is missing or malformed; duplicate
ingredient names are reported but are not an error.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	f, err := os.Open(cfg.Registry)
	if err != nil {
		return fmt.Errorf("open registry: %w", err)
	}
	defer f.Close()

	list, err := codec.Parse(f)
	if err != nil {
		return fmt.Errorf("validate %s: %w", cfg.Registry, err)
	}
	reg, dupes := alchemy.NewRegistry(list)

	fmt.Fprintf(os.Stdout, "%s: OK\n", cfg.Registry)
	fmt.Fprintf(os.Stdout, "  ingredients: %d\n", reg.Len())
	fmt.Fprintf(os.Stdout, "  effects:     %d\n", len(reg.EffectNames()))
	if dupes > 0 {
		fmt.Fprintf(os.Stdout, "  duplicates:  %d (dropped, first occurrence kept)\n", dupes)
	}
	return nil
}
