package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate. The real
// App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool

	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	WhoAmI(ctx context.Context) error
	Profile(ctx context.Context) error
	ChangePassword(ctx context.Context) error

	Items(ctx context.Context, args []string) error
	More(ctx context.Context) error
	Search(ctx context.Context, args []string) error
	SortOrder(ctx context.Context, args []string) error
	FilterOffices(ctx context.Context, args []string) error
	FilterDates(ctx context.Context, args []string) error
	ClearFilters(ctx context.Context) error
	ShowItem(ctx context.Context, args []string) error
	AddItem(ctx context.Context) error
	ChangeStatus(ctx context.Context, args []string) error
	DeleteItem(ctx context.Context, args []string) error
	BulkStatus(ctx context.Context, args []string) error
	BulkDelete(ctx context.Context, args []string) error

	Offices(ctx context.Context) error
	AddOffice(ctx context.Context) error
	EditOffice(ctx context.Context, args []string) error
	DeleteOffice(ctx context.Context, args []string) error

	Locations(ctx context.Context) error
	AddLocation(ctx context.Context) error
	EditLocation(ctx context.Context, args []string) error
	DeleteLocation(ctx context.Context, args []string) error
	FormLink(ctx context.Context, args []string) error

	Categories(ctx context.Context) error
	AddCategory(ctx context.Context) error
	EditCategory(ctx context.Context, args []string) error
	DeleteCategory(ctx context.Context, args []string) error

	Users(ctx context.Context) error
	AddUser(ctx context.Context) error
	EditUser(ctx context.Context, args []string) error
	DisableUser(ctx context.Context, args []string) error

	Report(ctx context.Context, args []string) error
	PublicStats(ctx context.Context, args []string) error
	Browse(ctx context.Context, args []string) error
}

const helpPublic = `Available commands:
  browse [keyword]        list publicly visible found items
  stats [period]          found/claimed counts
  login                   authenticate as an administrator
  exit | quit             leave the console`

const helpAdmin = `Available commands:
  items [tab]             list items (tab: submitted|listed|claimed|archived|all)
  more                    show the next page
  search <keyword>        filter by item name
  sort newest|oldest      order by creation date
  offices-filter [ids]    filter by office (no ids clears)
  dates <from> <to>       filter by date range, YYYY-MM-DD, '-' for open side
  clear                   clear all filters
  item <id>               show one item
  additem                 register a found item
  setstatus <id> <status> move an item through its lifecycle
  delitem <id>            delete a SUBMITTED item
  bulkstatus <ids> <status>
  bulkdel <ids>
  offices | addoffice | editoffice <id> | deloffice <id>
  locations | addlocation | editlocation <id> | dellocation <id>
  formlink <slug>         public submission link for a location
  categories | addcategory | editcategory <id> | delcategory <id>
  users | adduser | edituser <id> | disableuser <id>
  report [scope] [period]
  stats [period]
  whoami | profile | passwd | logout
  exit | quit             leave the console`

// runREPL starts the read-dispatch loop. It reads a line from the provided
// scanner, parses the first token as the command, and dispatches to methods
// on 'a'. Unknown commands are reported back to the user. The loop exits on
// scanner EOF or when the user types "exit" or "quit".
//
// Errors returned by command handlers are ignored here; handlers print
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("lostlink %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		if !a.isLoggedIn() {
			switch cmd {
			case "help":
				printlnFn(helpPublic)
			case "browse":
				_ = a.Browse(ctx, args)
			case "stats":
				_ = a.PublicStats(ctx, args)
			case "login":
				_ = a.Login(ctx)
			case "exit", "quit":
				printlnFn("Bye!")
				return
			default:
				printlnFn("Unknown command:", cmd)
			}
			continue
		}

		switch cmd {
		case "help":
			printlnFn(helpAdmin)

		case "items":
			_ = a.Items(ctx, args)
		case "more":
			_ = a.More(ctx)
		case "search":
			_ = a.Search(ctx, args)
		case "sort":
			_ = a.SortOrder(ctx, args)
		case "offices-filter":
			_ = a.FilterOffices(ctx, args)
		case "dates":
			_ = a.FilterDates(ctx, args)
		case "clear":
			_ = a.ClearFilters(ctx)
		case "item":
			_ = a.ShowItem(ctx, args)
		case "additem":
			_ = a.AddItem(ctx)
		case "setstatus":
			_ = a.ChangeStatus(ctx, args)
		case "delitem":
			_ = a.DeleteItem(ctx, args)
		case "bulkstatus":
			_ = a.BulkStatus(ctx, args)
		case "bulkdel":
			_ = a.BulkDelete(ctx, args)

		case "offices":
			_ = a.Offices(ctx)
		case "addoffice":
			_ = a.AddOffice(ctx)
		case "editoffice":
			_ = a.EditOffice(ctx, args)
		case "deloffice":
			_ = a.DeleteOffice(ctx, args)

		case "locations":
			_ = a.Locations(ctx)
		case "addlocation":
			_ = a.AddLocation(ctx)
		case "editlocation":
			_ = a.EditLocation(ctx, args)
		case "dellocation":
			_ = a.DeleteLocation(ctx, args)
		case "formlink":
			_ = a.FormLink(ctx, args)

		case "categories":
			_ = a.Categories(ctx)
		case "addcategory":
			_ = a.AddCategory(ctx)
		case "editcategory":
			_ = a.EditCategory(ctx, args)
		case "delcategory":
			_ = a.DeleteCategory(ctx, args)

		case "users":
			_ = a.Users(ctx)
		case "adduser":
			_ = a.AddUser(ctx)
		case "edituser":
			_ = a.EditUser(ctx, args)
		case "disableuser":
			_ = a.DisableUser(ctx, args)

		case "report":
			_ = a.Report(ctx, args)
		case "stats":
			_ = a.PublicStats(ctx, args)
		case "browse":
			_ = a.Browse(ctx, args)

		case "whoami":
			_ = a.WhoAmI(ctx)
		case "profile":
			_ = a.Profile(ctx)
		case "passwd":
			_ = a.ChangePassword(ctx)
		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
