package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/lostlink/internal/client/filter"
	"github.com/dmitrijs2005/lostlink/internal/client/models"
	"github.com/dmitrijs2005/lostlink/internal/client/pager"
)

// parseTab maps a command argument onto a status tab. "all" and "" select
// every status.
func parseTab(s string) (models.ItemStatus, error) {
	switch strings.ToLower(s) {
	case "", "all":
		return "", nil
	case "submitted":
		return models.ItemStatusSubmitted, nil
	case "listed":
		return models.ItemStatusListed, nil
	case "claimed":
		return models.ItemStatusClaimed, nil
	case "archived":
		return models.ItemStatusArchived, nil
	default:
		return "", fmt.Errorf("unknown tab %q (submitted|listed|claimed|archived|all)", s)
	}
}

// Items selects a status tab and renders the first page.
func (a *App) Items(ctx context.Context, args []string) error {
	if len(args) > 0 {
		tab, err := parseTab(args[0])
		if err != nil {
			printlnFn(err.Error())
			return err
		}
		a.tab = tab
	}
	return a.reloadItems(ctx)
}

// reloadItems refetches the current tab, re-runs the filter pipeline, and
// resets the pagination window. A reload that was superseded by a newer one
// while its fetch was in flight discards its result.
func (a *App) reloadItems(ctx context.Context) error {
	gen := a.pager.Generation()

	items, err := a.items.List(ctx, true, a.tab)
	if err != nil {
		a.printError(err)
		return err
	}
	if a.pager.Stale(gen) {
		return nil
	}

	a.fetched = items
	a.applyFilters()
	return nil
}

// applyFilters re-runs the pure pipeline over the already-fetched list and
// renders a fresh first page. The fetch is scoped by tab server-side, so
// the local state carries no status re-filter here.
func (a *App) applyFilters() {
	a.filtered = filter.Apply(a.fetched, a.filters)
	a.pager.Reset(len(a.filtered))
	a.renderItems()
}

func (a *App) renderItems() {
	window := pager.Window(a.pager, a.filtered)
	if len(window) == 0 {
		printlnFn("No items")
		return
	}
	for _, item := range window {
		printlnFn(formatItemLine(item))
	}
	if a.pager.HasMore() {
		printlnFn(fmt.Sprintf("-- %d of %d shown, type 'more' --", a.pager.Visible(), len(a.filtered)))
	}
}

func formatItemLine(item models.Item) string {
	return fmt.Sprintf("%6d  %-9s  %-10s  %-30s  %s",
		item.ID, item.Status, item.CreatedDate, item.Name, item.GivenLocation.Display())
}

// More grows the visible window by one page.
func (a *App) More(ctx context.Context) error {
	if !a.pager.Sentinel() {
		printlnFn("Nothing more to show")
		return nil
	}
	a.renderItems()
	return nil
}

// Search filters the current list by keyword. Without arguments the keyword
// is cleared.
func (a *App) Search(ctx context.Context, args []string) error {
	a.filters.Keyword = strings.Join(args, " ")
	a.applyFilters()
	return nil
}

func (a *App) SortOrder(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: sort newest|oldest")
		return nil
	}
	switch args[0] {
	case "newest":
		a.filters.Sort = filter.SortNewest
	case "oldest":
		a.filters.Sort = filter.SortOldest
	default:
		printlnFn("Usage: sort newest|oldest")
		return nil
	}
	a.applyFilters()
	return nil
}

// FilterOffices restricts the list to items handed in at the given offices,
// selected by stable office id. Without arguments the office filter is
// cleared.
func (a *App) FilterOffices(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.filters.Offices = nil
		a.applyFilters()
		return nil
	}

	ids, err := parseIDs(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	offices, err := a.offices.List(ctx)
	if err != nil {
		a.printError(err)
		return err
	}

	a.filters.Offices = filter.OfficeNames(offices, ids)
	a.applyFilters()
	return nil
}

// FilterDates sets an inclusive calendar-date range. Either side may be '-'
// to leave it open.
func (a *App) FilterDates(ctx context.Context, args []string) error {
	if len(args) != 2 {
		printlnFn("Usage: dates <from> <to> (YYYY-MM-DD, '-' for open side)")
		return nil
	}

	a.filters.DateFrom = nil
	a.filters.DateTo = nil
	if args[0] != "-" {
		from, err := models.ParseDate(args[0])
		if err != nil {
			printlnFn("Invalid date:", args[0])
			return err
		}
		a.filters.DateFrom = &from
	}
	if args[1] != "-" {
		to, err := models.ParseDate(args[1])
		if err != nil {
			printlnFn("Invalid date:", args[1])
			return err
		}
		a.filters.DateTo = &to
	}

	a.applyFilters()
	return nil
}

// ClearFilters drops keyword, office, date, and sort selections but keeps
// the current tab.
func (a *App) ClearFilters(ctx context.Context) error {
	a.filters = filter.State{}
	a.applyFilters()
	return nil
}

// ShowItem prints the full record of one item.
func (a *App) ShowItem(ctx context.Context, args []string) error {
	id, err := a.argOrPromptID(args, "Enter item id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	item, err := a.items.Get(ctx, id)
	if err != nil {
		a.printError(err)
		return err
	}

	printlnFn(fmt.Sprintf("Item #%d: %s [%s]", item.ID, item.Name, item.Status))
	printlnFn("  Description: " + item.Description)
	printlnFn("  Category:    " + item.Category)
	printlnFn("  Found at:    " + item.FoundLocation)
	printlnFn("  Kept at:     " + item.GivenLocation.Display())
	if office := item.GivenLocation.Office; office != nil {
		printlnFn("               " + office.Location + ", " + office.WorkHours)
	}
	printlnFn("  Created:     " + item.CreatedDate)
	if item.SubmitterEmail != "" {
		printlnFn("  Submitter:   " + item.SubmitterEmail)
	}
	if item.Image != "" {
		printlnFn("  Image:       " + item.Image)
	}
	return nil
}

// AddItem registers a found item from the admin side.
func (a *App) AddItem(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Item name", os.Stdout)
	if err != nil {
		return err
	}
	description, err := getMultiline(a.reader, "Description", os.Stdout)
	if err != nil {
		return err
	}
	foundLocation, err := getSimpleText(a.reader, "Where was it found", os.Stdout)
	if err != nil {
		return err
	}
	givenLocation, err := getSimpleText(a.reader, "Office it was handed in to", os.Stdout)
	if err != nil {
		return err
	}
	category, err := getSimpleText(a.reader, "Category", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Submitter email (optional)", os.Stdout)
	if err != nil {
		return err
	}

	item, err := a.items.Create(ctx, models.CreateItemRequest{
		Name:           name,
		Description:    description,
		FoundLocation:  foundLocation,
		GivenLocation:  givenLocation,
		Category:       category,
		SubmitterEmail: email,
	})
	if err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Created item #%d (%s)", item.ID, item.Status))
	return a.reloadItems(ctx)
}

// ChangeStatus moves one item to a new lifecycle status, prompting for an
// optional note.
func (a *App) ChangeStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: setstatus <id> <submitted|listed|claimed|archived>")
		return nil
	}
	id, err := a.argOrPromptID(args, "")
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	to, err := parseTab(args[1])
	if err != nil || to == "" {
		printlnFn("Invalid status:", args[1])
		return err
	}

	item, err := a.items.Get(ctx, id)
	if err != nil {
		a.printError(err)
		return err
	}
	note, err := getSimpleText(a.reader, "Note (optional)", os.Stdout)
	if err != nil {
		return err
	}

	updated, err := a.items.UpdateStatus(ctx, item, to, note)
	if err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Item #%d is now %s", updated.ID, updated.Status))
	return a.reloadItems(ctx)
}

func (a *App) DeleteItem(ctx context.Context, args []string) error {
	id, err := a.argOrPromptID(args, "Enter item id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	item, err := a.items.Get(ctx, id)
	if err != nil {
		a.printError(err)
		return err
	}
	if err := a.items.Delete(ctx, item); err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Deleted item #%d", id))
	return a.reloadItems(ctx)
}

// resolveItems turns ids into item records, preferring the already-fetched
// list over extra lookups.
func (a *App) resolveItems(ctx context.Context, ids []int64) ([]models.Item, error) {
	byID := make(map[int64]models.Item, len(a.fetched))
	for _, item := range a.fetched {
		byID[item.ID] = item
	}

	items := make([]models.Item, 0, len(ids))
	for _, id := range ids {
		item, ok := byID[id]
		if !ok {
			var err error
			item, err = a.items.Get(ctx, id)
			if err != nil {
				return nil, err
			}
		}
		items = append(items, item)
	}
	return items, nil
}

// BulkStatus moves several items at once: "bulkstatus 1 2 3 listed".
func (a *App) BulkStatus(ctx context.Context, args []string) error {
	if len(args) < 2 {
		printlnFn("Usage: bulkstatus <id>... <status>")
		return nil
	}
	to, err := parseTab(args[len(args)-1])
	if err != nil || to == "" {
		printlnFn("Invalid status:", args[len(args)-1])
		return err
	}
	ids, err := parseIDs(args[:len(args)-1])
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	items, err := a.resolveItems(ctx, ids)
	if err != nil {
		a.printError(err)
		return err
	}

	if err := a.items.BulkUpdateStatus(ctx, items, to, ""); err != nil {
		a.printError(err)
		_ = a.reloadItems(ctx)
		return err
	}
	printlnFn(fmt.Sprintf("Updated %d items", len(items)))
	return a.reloadItems(ctx)
}

// BulkDelete deletes several items at once: "bulkdel 1 2 3".
func (a *App) BulkDelete(ctx context.Context, args []string) error {
	if len(args) == 0 {
		printlnFn("Usage: bulkdel <id>...")
		return nil
	}
	ids, err := parseIDs(args)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	items, err := a.resolveItems(ctx, ids)
	if err != nil {
		a.printError(err)
		return err
	}

	if err := a.items.BulkDelete(ctx, items); err != nil {
		a.printError(err)
		_ = a.reloadItems(ctx)
		return err
	}
	printlnFn(fmt.Sprintf("Deleted %d items", len(items)))
	return a.reloadItems(ctx)
}

// Browse lists publicly visible (LISTED) items, optionally filtered by
// keyword. Available without authentication.
func (a *App) Browse(ctx context.Context, args []string) error {
	items, err := a.items.List(ctx, false, "")
	if err != nil {
		a.printError(err)
		return err
	}

	st := filter.State{Keyword: strings.Join(args, " "), Sort: filter.SortNewest, Status: models.ItemStatusListed}
	shown := filter.Apply(items, st)
	if len(shown) == 0 {
		printlnFn("No items found")
		return nil
	}
	for _, item := range shown {
		printlnFn(formatItemLine(item))
	}
	return nil
}
