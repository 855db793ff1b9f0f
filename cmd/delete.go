package cmd

import (
	"fmt"
	"strconv"

	"pedia-cli/auth"
	"pedia-cli/term"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [entry-id]",
	Aliases: []string{"rm"},
	Short:   "Delete an entry you authored",
	Args:    cobra.ExactArgs(1),
	Run:     deleteEntry,
}

func init() {
	RootCmd.AddCommand(deleteCmd)
}

func deleteEntry(cmd *cobra.Command, args []string) {
	entryId, err := strconv.Atoi(args[0])
	if err != nil {
		term.OutputErrorAndExit("Invalid entry id: %s", args[0])
	}

	if !term.IsInteractive() {
		term.OutputErrorAndExit("This command requires an interactive terminal")
	}

	auth.MustResolveAuth()

	confirmed, err := term.ConfirmYesNo("Delete entry %d? This can't be undone.", entryId)
	if err != nil {
		term.OutputErrorAndExit("Error confirming delete: %v", err)
	}
	if !confirmed {
		return
	}

	engine := newEngine()

	term.StartSpinner("")
	apiErr := engine.DeleteEntry(entryId)
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error deleting entry: %s", apiErr.Msg)
	}

	fmt.Printf("🗑️  Deleted entry %d\n", entryId)
}
