package cmd

import (
	"pedia-cli/lib"
	"pedia-cli/term"

	"github.com/spf13/cobra"
)

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List tags",
	Args:  cobra.NoArgs,
	Run:   tags,
}

func init() {
	RootCmd.AddCommand(tagsCmd)
}

func tags(cmd *cobra.Command, args []string) {
	engine := newEngine()

	term.StartSpinner("")
	_, tags, apiErr := engine.LoadTaxonomy()
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error loading tags: %s", apiErr.Msg)
	}

	lib.ShowTags(tags)
}
