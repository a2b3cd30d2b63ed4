package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/radj307/caco-alch-potion-builder/cmd/alch/ui"
	"github.com/radj307/caco-alch-potion-builder/internal/logging"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the catalog interactively",
	Long: `Opens a full-screen browser over the ingredient catalog: type to
filter by ingredient or effect name, move with the arrow keys, and read
the selected ingredient's effects in the detail pane.`,
	Args: cobra.NoArgs,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	reg, err := loadRegistry()
	if err != nil {
		return err
	}
	if reg.Empty() {
		return fmt.Errorf("registry %s is empty", cfg.Registry)
	}

	logging.L(logging.CategoryUI).Debug("starting browser")
	program := tea.NewProgram(ui.New(reg, formatter()), tea.WithAltScreen())
	_, err = program.Run()
	return err
}
