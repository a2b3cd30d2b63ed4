package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var listEffects bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List every ingredient in the registry",
	Long: `Prints the full ingredient catalog in alphabetical order.

With --effects the distinct effect names known to the registry are
printed instead. Combine with --export to write the catalog back out in
registry file format.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().BoolVar(&listEffects, "effects", false, "list distinct effect names instead of ingredients")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}

	if listEffects {
		for _, name := range reg.EffectNames() {
			fmt.Fprintln(os.Stdout, name)
		}
		return nil
	}
	return formatter().List(os.Stdout, reg.List(), nil)
}
