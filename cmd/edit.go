package cmd

import (
	"fmt"
	"strconv"

	"pedia-cli/auth"
	"pedia-cli/shared"
	"pedia-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit [entry-id]",
	Short: "Edit an entry you authored",
	Args:  cobra.ExactArgs(1),
	Run:   edit,
}

func init() {
	RootCmd.AddCommand(editCmd)
}

func edit(cmd *cobra.Command, args []string) {
	entryId, err := strconv.Atoi(args[0])
	if err != nil {
		term.OutputErrorAndExit("Invalid entry id: %s", args[0])
	}

	if !term.IsInteractive() {
		term.OutputErrorAndExit("This command requires an interactive terminal")
	}

	auth.MustResolveAuth()

	engine := newEngine()

	term.StartSpinner("")
	entry, apiErr := engine.GetEntry(entryId)
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error loading entry: %s", apiErr.Msg)
	}

	title, err := term.GetUserStringInputWithDefault("Title:", entry.Title)
	if err != nil {
		term.OutputErrorAndExit("Error prompting title: %v", err)
	}

	summary, err := term.GetUserStringInputWithDefault("Summary:", entry.Summary)
	if err != nil {
		term.OutputErrorAndExit("Error prompting summary: %v", err)
	}

	content, err := term.GetUserStringInputWithDefault("Content:", entry.Content)
	if err != nil {
		term.OutputErrorAndExit("Error prompting content: %v", err)
	}

	categoryId := 0
	if entry.Category != nil {
		categoryId = entry.Category.Id
	}

	tagIds := make([]int, 0, len(entry.Tags))
	for _, tag := range entry.Tags {
		tagIds = append(tagIds, tag.Id)
	}

	req := shared.UpdateEntryRequest{
		Title:      title,
		Summary:    summary,
		Content:    content,
		CategoryId: categoryId,
		TagIds:     tagIds,
		Status:     entry.Status,
	}

	term.StartSpinner("")
	updated, apiErr := engine.UpdateEntry(entryId, req)
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error updating entry: %s", apiErr.Msg)
	}

	fmt.Println()
	color.New(color.Bold, term.ColorHiGreen).Printf("✅ Updated entry %d • %s\n", updated.Id, updated.Title)
}
