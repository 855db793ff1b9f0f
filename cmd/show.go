package cmd

import (
	"strconv"

	"pedia-cli/auth"
	"pedia-cli/lib"
	"pedia-cli/term"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [entry-id]",
	Short: "Show an entry with its comments and related entries",
	Args:  cobra.ExactArgs(1),
	Run:   show,
}

func init() {
	RootCmd.AddCommand(showCmd)
}

func show(cmd *cobra.Command, args []string) {
	entryId, err := strconv.Atoi(args[0])
	if err != nil {
		term.OutputErrorAndExit("Invalid entry id: %s", args[0])
	}

	if err := auth.Resolve(); err != nil {
		term.OutputErrorAndExit("Error resolving auth: %v", err)
	}

	engine := newEngine()

	term.StartSpinner("")
	entry, apiErr := engine.GetEntry(entryId)
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error loading entry: %s", apiErr.Msg)
	}

	lib.ShowEntryDetail(entry)
	lib.ShowComments(entry.Comments)

	term.StartSpinner("")
	related, apiErr := engine.RelatedEntries(entry, 5)
	term.StopSpinner()

	if apiErr != nil {
		// the entry itself rendered fine; related entries are best-effort
		term.HandleApiError(apiErr)
		return
	}

	lib.ShowRelatedEntries(related)
}
