package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"pedia-cli/auth"
	"pedia-cli/shared"
	"pedia-cli/term"

	"github.com/spf13/cobra"
)

var commentCmd = &cobra.Command{
	Use:   "comment [entry-id] [content...]",
	Short: "Comment on an entry",
	Args:  cobra.MinimumNArgs(1),
	Run:   comment,
}

func init() {
	RootCmd.AddCommand(commentCmd)
}

func comment(cmd *cobra.Command, args []string) {
	entryId, err := strconv.Atoi(args[0])
	if err != nil {
		term.OutputErrorAndExit("Invalid entry id: %s", args[0])
	}

	content := strings.Join(args[1:], " ")
	if content == "" {
		content, err = term.GetUserStringInput("Comment:")
		if err != nil {
			term.OutputErrorAndExit("Error prompting comment: %v", err)
		}
	}

	auth.MustResolveAuth()

	engine := newEngine()

	term.StartSpinner("")
	posted, apiErr := engine.AddComment(entryId, content)
	term.StopSpinner()

	if apiErr != nil {
		if apiErr.Type == shared.ApiErrorTypeValidation {
			term.OutputErrorAndExit("%s", apiErr.Msg)
		}
		term.OutputErrorAndExit("Error posting comment: %s", apiErr.Msg)
	}

	fmt.Printf("💬 Comment %d posted on entry %d\n", posted.Id, entryId)
}
