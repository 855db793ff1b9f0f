package cmd

import (
	"fmt"

	"pedia-cli/auth"
	"pedia-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var signInCmd = &cobra.Command{
	Use:   "sign-in",
	Short: "Sign in to a Pedia account",
	Args:  cobra.NoArgs,
	Run:   signIn,
}

func init() {
	RootCmd.AddCommand(signInCmd)
}

func signIn(cmd *cobra.Command, args []string) {
	if !term.IsInteractive() {
		term.OutputErrorAndExit("This command requires an interactive terminal")
	}

	username, err := term.GetRequiredUserStringInput("Username:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting username: %v", err)
	}

	password, err := term.GetUserPasswordInput("Password:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting password: %v", err)
	}

	term.StartSpinner("")
	apiErr := auth.SignIn(username, password)
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("%s", apiErr.Msg)
	}

	fmt.Println()
	color.New(color.Bold, term.ColorHiGreen).Printf("✅ Signed in as %s\n", auth.Current.User.Username)
}
