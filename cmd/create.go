package cmd

import (
	"fmt"

	"pedia-cli/auth"
	"pedia-cli/shared"
	"pedia-cli/term"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new entry",
	Args:  cobra.NoArgs,
	Run:   create,
}

func init() {
	RootCmd.AddCommand(createCmd)
}

const noCategoryOption = "(no category)"

func create(cmd *cobra.Command, args []string) {
	if !term.IsInteractive() {
		term.OutputErrorAndExit("This command requires an interactive terminal")
	}

	auth.MustResolveAuth()

	engine := newEngine()

	term.StartSpinner("")
	categories, tags, apiErr := engine.LoadTaxonomy()
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error loading categories and tags: %s", apiErr.Msg)
	}

	title, err := term.GetRequiredUserStringInput("Title:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting title: %v", err)
	}

	summary, err := term.GetUserStringInput("Summary (optional):")
	if err != nil {
		term.OutputErrorAndExit("Error prompting summary: %v", err)
	}

	content, err := term.GetRequiredUserStringInput("Content:")
	if err != nil {
		term.OutputErrorAndExit("Error prompting content: %v", err)
	}

	categoryId, err := selectCategory(categories)
	if err != nil {
		term.OutputErrorAndExit("Error selecting category: %v", err)
	}

	tagIds, err := selectTags(tags)
	if err != nil {
		term.OutputErrorAndExit("Error selecting tags: %v", err)
	}

	publish, err := term.ConfirmYesNo("Publish now?")
	if err != nil {
		term.OutputErrorAndExit("Error confirming publish: %v", err)
	}

	status := shared.EntryStatusDraft
	if publish {
		status = shared.EntryStatusPublished
	}

	req := shared.CreateEntryRequest{
		Title:      title,
		Summary:    summary,
		Content:    content,
		CategoryId: categoryId,
		TagIds:     tagIds,
		Status:     status,
	}

	term.StartSpinner("")
	entry, apiErr := engine.CreateEntry(req)
	term.StopSpinner()

	if apiErr != nil {
		term.OutputErrorAndExit("Error creating entry: %s", apiErr.Msg)
	}

	fmt.Println()
	color.New(color.Bold, term.ColorHiGreen).Printf("✅ Created entry %d • %s (%s)\n", entry.Id, entry.Title, entry.Status)
}

func selectCategory(categories []*shared.Category) (int, error) {
	if len(categories) == 0 {
		return 0, nil
	}

	options := make([]string, 0, len(categories))
	for _, category := range categories {
		options = append(options, category.Name)
	}

	selected, skipped, err := term.SelectFromListWithSkip("Category:", noCategoryOption, options)
	if err != nil || skipped {
		return 0, err
	}

	for _, category := range categories {
		if category.Name == selected {
			return category.Id, nil
		}
	}
	return 0, nil
}

func selectTags(tags []*shared.Tag) ([]int, error) {
	if len(tags) == 0 {
		return nil, nil
	}

	options := make([]string, 0, len(tags))
	for _, tag := range tags {
		options = append(options, tag.Name)
	}

	selected, err := term.MultiSelectFromList("Tags:", options)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]int, len(tags))
	for _, tag := range tags {
		byName[tag.Name] = tag.Id
	}

	tagIds := make([]int, 0, len(selected))
	for _, name := range selected {
		if id, ok := byName[name]; ok {
			tagIds = append(tagIds, id)
		}
	}
	return tagIds, nil
}
