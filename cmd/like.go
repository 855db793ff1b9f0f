package cmd

import (
	"fmt"
	"strconv"

	"pedia-cli/auth"
	"pedia-cli/term"

	"github.com/spf13/cobra"
)

var likeCmd = &cobra.Command{
	Use:   "like [entry-id]",
	Short: "Like an entry",
	Args:  cobra.ExactArgs(1),
	Run:   like,
}

func init() {
	RootCmd.AddCommand(likeCmd)
}

func like(cmd *cobra.Command, args []string) {
	entryId, err := strconv.Atoi(args[0])
	if err != nil {
		term.OutputErrorAndExit("Invalid entry id: %s", args[0])
	}

	auth.MustResolveAuth()

	engine := newEngine()

	term.StartSpinner("")
	apiErr := engine.Like(entryId)
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error liking entry: %s", apiErr.Msg)
	}

	fmt.Printf("👍 Liked entry %d\n", entryId)
}
