package cmd

import (
	"fmt"

	"pedia-cli/auth"
	"pedia-cli/term"

	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the currently signed-in user",
	Args:  cobra.NoArgs,
	Run:   whoami,
}

func init() {
	RootCmd.AddCommand(whoamiCmd)
}

func whoami(cmd *cobra.Command, args []string) {
	term.StartSpinner("")
	ok := auth.CheckAuth()
	term.StopSpinner()

	if !ok {
		fmt.Println("Not signed in")
		return
	}

	user := auth.Current.User
	fmt.Printf("%s (joined %s)\n", user.Username, user.JoinedAt.Format("2006-01-02"))
}
