package cmd

import (
	"pedia-cli/auth"
	"pedia-cli/lib"
	"pedia-cli/query"
	"pedia-cli/shared"
	"pedia-cli/term"
	"pedia-cli/types"

	"github.com/spf13/cobra"
)

var entriesMine bool
var entriesSearch string
var entriesCategoryId int
var entriesTagId int
var entriesPage int

var entriesCmd = &cobra.Command{
	Use:     "entries",
	Aliases: []string{"ls"},
	Short:   "List encyclopedia entries",
	Args:    cobra.NoArgs,
	Run:     entries,
}

func init() {
	RootCmd.AddCommand(entriesCmd)

	entriesCmd.Flags().BoolVar(&entriesMine, "mine", false, "Only entries you authored")
	entriesCmd.Flags().StringVarP(&entriesSearch, "search", "s", "", "Search titles and content")
	entriesCmd.Flags().IntVar(&entriesCategoryId, "category", 0, "Filter by category id")
	entriesCmd.Flags().IntVar(&entriesTagId, "tag", 0, "Filter by tag id")
	entriesCmd.Flags().IntVarP(&entriesPage, "page", "p", 1, "Page number")
}

func entries(cmd *cobra.Command, args []string) {
	if entriesMine {
		auth.MustResolveAuth()
	} else if err := auth.Resolve(); err != nil {
		term.OutputErrorAndExit("Error resolving auth: %v", err)
	}

	engine := newEngine()
	scope := types.Scope{Mine: entriesMine}

	term.StartSpinner("")
	apiErr := engine.LoadAll(scope)
	term.StopSpinner()

	loaded := engine.Entries()

	if apiErr != nil {
		if apiErr.IsAuthError() {
			term.OutputErrorAndExit("%s. Run 'pedia sign-in' first.", apiErr.Msg)
		}

		if apiErr.Type != shared.ApiErrorTypeTransport {
			term.OutputErrorAndExit("Error loading entries: %s", apiErr.Msg)
		}

		// transport failure: fall back to the last cached fetch, if any
		cached := engine.CachedEntries(scope)
		if cached == nil {
			term.OutputErrorAndExit("Error loading entries: %s", apiErr.Msg)
		}
		term.HandleApiError(apiErr)
		term.OutputSimpleError("Couldn't reach the server, showing cached entries")
		loaded = cached
	}

	state := types.FilterState{
		SearchText: entriesSearch,
		CategoryId: entriesCategoryId,
		TagId:      entriesTagId,
		Page:       entriesPage,
	}

	filtered := query.Filter(loaded, state)
	page := query.Paginate(filtered, state.Page, query.DefaultPageSize)

	lib.ShowEntriesPage(page, state.Page, len(filtered))
}
