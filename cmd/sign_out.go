package cmd

import (
	"fmt"

	"pedia-cli/auth"
	"pedia-cli/term"

	"github.com/spf13/cobra"
)

var signOutCmd = &cobra.Command{
	Use:     "sign-out",
	Aliases: []string{"logout"},
	Short:   "Sign out of the current Pedia account",
	Args:    cobra.NoArgs,
	Run:     signOut,
}

func init() {
	RootCmd.AddCommand(signOutCmd)
}

func signOut(cmd *cobra.Command, args []string) {
	term.StartSpinner("")
	auth.SignOut()
	term.StopSpinner()

	fmt.Println("✅ Signed out")
}
