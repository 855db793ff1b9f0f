package lib

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"pedia-cli/query"
	"pedia-cli/shared"

	"github.com/fatih/color"
	"github.com/muesli/reflow/wordwrap"
	"github.com/olekukonko/tablewriter"
)

const contentWrapWidth = 80

func ShowEntriesPage(page query.Page, currentPage, totalFiltered int) {
	if len(page.Items) == 0 {
		fmt.Println()
		color.New(color.FgHiYellow).Println("No entries found.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Title", "Category", "Tags", "Author", "Likes", "Views", "Created"})

	for _, entry := range page.Items {
		categoryName := ""
		if entry.Category != nil {
			categoryName = entry.Category.Name
		}

		var tagNames []string
		for _, tag := range entry.Tags {
			tagNames = append(tagNames, tag.Name)
		}

		author := ""
		if entry.Author != nil {
			author = entry.Author.Username
		}

		table.Append([]string{
			strconv.Itoa(entry.Id),
			shared.Truncate(entry.Title, 40),
			categoryName,
			strings.Join(tagNames, ", "),
			author,
			strconv.Itoa(entry.LikeCount),
			strconv.Itoa(entry.ViewCount),
			entry.CreatedAt.Format("2006-01-02"),
		})
	}

	fmt.Println()
	table.Render()

	ShowPageFooter(currentPage, page.TotalPages, totalFiltered)
}

func ShowPageFooter(currentPage, totalPages, totalFiltered int) {
	if totalPages <= 1 {
		fmt.Printf("%d entries\n", totalFiltered)
		return
	}

	var parts []string
	for _, p := range query.VisiblePages(currentPage, totalPages) {
		if p == currentPage {
			parts = append(parts, color.New(color.Bold, color.FgHiGreen).Sprintf("[%d]", p))
		} else {
			parts = append(parts, strconv.Itoa(p))
		}
	}

	fmt.Printf("%d entries • page %d of %d • %s\n", totalFiltered, currentPage, totalPages, strings.Join(parts, " "))
}

func ShowEntryDetail(entry *shared.Entry) {
	fmt.Println()
	color.New(color.Bold, color.FgHiCyan).Println(entry.Title)

	meta := []string{}
	if entry.Category != nil {
		meta = append(meta, entry.Category.Name)
	}
	if entry.Author != nil {
		meta = append(meta, "by "+entry.Author.Username)
	}
	meta = append(meta, entry.CreatedAt.Format("2006-01-02"))
	meta = append(meta, fmt.Sprintf("👍 %d", entry.LikeCount))
	meta = append(meta, fmt.Sprintf("👁 %d", entry.ViewCount))
	color.New(color.FgWhite).Println(strings.Join(meta, " • "))

	if len(entry.Tags) > 0 {
		var tagNames []string
		for _, tag := range entry.Tags {
			tagNames = append(tagNames, "#"+tag.Name)
		}
		color.New(color.FgHiGreen).Println(strings.Join(tagNames, " "))
	}

	if entry.Summary != "" {
		fmt.Println()
		color.New(color.Italic).Println(wordwrap.String(entry.Summary, contentWrapWidth))
	}

	fmt.Println()
	fmt.Println(wordwrap.String(entry.Content, contentWrapWidth))
}

func ShowComments(comments []*shared.Comment) {
	if len(comments) == 0 {
		return
	}

	fmt.Println()
	color.New(color.Bold).Printf("Comments (%d)\n", len(comments))

	for _, comment := range comments {
		author := ""
		if comment.Author != nil {
			author = comment.Author.Username
		}
		color.New(color.FgHiMagenta).Printf("%s • %s\n", author, comment.CreatedAt.Format("2006-01-02 15:04"))
		fmt.Println(wordwrap.String(comment.Content, contentWrapWidth))
		fmt.Println()
	}
}

func ShowRelatedEntries(related []*shared.Entry) {
	if len(related) == 0 {
		return
	}

	fmt.Println()
	color.New(color.Bold).Println("Related entries")
	for _, entry := range related {
		fmt.Printf("  %d • %s\n", entry.Id, entry.Title)
	}
}

func ShowCategories(categories []*shared.Category) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Name", "Description", "Entries"})

	for _, category := range categories {
		table.Append([]string{
			strconv.Itoa(category.Id),
			category.Name,
			shared.Truncate(category.Description, 50),
			strconv.Itoa(category.EntryCount),
		})
	}

	fmt.Println()
	table.Render()
}

func ShowTags(tags []*shared.Tag) {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"#", "Name", "Entries"})

	for _, tag := range tags {
		table.Append([]string{
			strconv.Itoa(tag.Id),
			tag.Name,
			strconv.Itoa(tag.EntryCount),
		})
	}

	fmt.Println()
	table.Render()
}
