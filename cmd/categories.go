package cmd

import (
	"pedia-cli/lib"
	"pedia-cli/term"

	"github.com/spf13/cobra"
)

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List categories",
	Args:  cobra.NoArgs,
	Run:   categories,
}

func init() {
	RootCmd.AddCommand(categoriesCmd)
}

func categories(cmd *cobra.Command, args []string) {
	engine := newEngine()

	term.StartSpinner("")
	categories, _, apiErr := engine.LoadTaxonomy()
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error loading categories: %s", apiErr.Msg)
	}

	lib.ShowCategories(categories)
}
