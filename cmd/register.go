package cmd

import (
	"fmt"

	"pedia-cli/auth"
	"pedia-cli/shared"
	"pedia-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new Pedia account",
	Args:  cobra.NoArgs,
	Run:   register,
}

func init() {
	RootCmd.AddCommand(registerCmd)
}

func register(cmd *cobra.Command, args []string) {
	if !term.IsInteractive() {
		term.OutputErrorAndExit("This command requires an interactive terminal")
	}

	username, err := term.GetRequiredUserStringInput("Username:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting username: %v", err)
	}

	email, err := term.GetUserStringInput("Email:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting email: %v", err)
	}

	password, err := term.GetUserPasswordInput("Password:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting password: %v", err)
	}

	confirm, err := term.GetUserPasswordInput("Confirm password:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting password confirmation: %v", err)
	}

	term.StartSpinner("")
	apiErr := auth.Register(username, email, password, confirm)
	term.StopSpinner()

	if apiErr != nil {
		if apiErr.Type == shared.ApiErrorTypeValidation {
			term.OutputErrorAndExit("%s", apiErr.Msg)
		}
		term.OutputErrorAndExit("Error creating account: %s", apiErr.Msg)
	}

	fmt.Println()
	color.New(color.Bold, term.ColorHiGreen).Printf("✅ Account created, signed in as %s\n", username)
}
