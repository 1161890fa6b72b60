package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
	args     map[string][]string
}

func newFakeExec(loggedIn bool) *fakeExec {
	return &fakeExec{loggedIn: loggedIn, args: make(map[string][]string)}
}

func (f *fakeExec) record(name string, args []string) error {
	f.calls = append(f.calls, name)
	if args != nil {
		f.args[name] = args
	}
	return nil
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) Login(ctx context.Context) error {
	f.loggedIn = true
	return f.record("login", nil)
}

func (f *fakeExec) Logout(ctx context.Context) error {
	f.loggedIn = false
	return f.record("logout", nil)
}

func (f *fakeExec) WhoAmI(ctx context.Context) error         { return f.record("whoami", nil) }
func (f *fakeExec) Profile(ctx context.Context) error        { return f.record("profile", nil) }
func (f *fakeExec) ChangePassword(ctx context.Context) error { return f.record("passwd", nil) }

func (f *fakeExec) Items(ctx context.Context, args []string) error { return f.record("items", args) }
func (f *fakeExec) More(ctx context.Context) error                 { return f.record("more", nil) }
func (f *fakeExec) Search(ctx context.Context, args []string) error {
	return f.record("search", args)
}
func (f *fakeExec) SortOrder(ctx context.Context, args []string) error {
	return f.record("sort", args)
}
func (f *fakeExec) FilterOffices(ctx context.Context, args []string) error {
	return f.record("offices-filter", args)
}
func (f *fakeExec) FilterDates(ctx context.Context, args []string) error {
	return f.record("dates", args)
}
func (f *fakeExec) ClearFilters(ctx context.Context) error { return f.record("clear", nil) }
func (f *fakeExec) ShowItem(ctx context.Context, args []string) error {
	return f.record("item", args)
}
func (f *fakeExec) AddItem(ctx context.Context) error { return f.record("additem", nil) }
func (f *fakeExec) ChangeStatus(ctx context.Context, args []string) error {
	return f.record("setstatus", args)
}
func (f *fakeExec) DeleteItem(ctx context.Context, args []string) error {
	return f.record("delitem", args)
}
func (f *fakeExec) BulkStatus(ctx context.Context, args []string) error {
	return f.record("bulkstatus", args)
}
func (f *fakeExec) BulkDelete(ctx context.Context, args []string) error {
	return f.record("bulkdel", args)
}

func (f *fakeExec) Offices(ctx context.Context) error   { return f.record("offices", nil) }
func (f *fakeExec) AddOffice(ctx context.Context) error { return f.record("addoffice", nil) }
func (f *fakeExec) EditOffice(ctx context.Context, args []string) error {
	return f.record("editoffice", args)
}
func (f *fakeExec) DeleteOffice(ctx context.Context, args []string) error {
	return f.record("deloffice", args)
}

func (f *fakeExec) Locations(ctx context.Context) error   { return f.record("locations", nil) }
func (f *fakeExec) AddLocation(ctx context.Context) error { return f.record("addlocation", nil) }
func (f *fakeExec) EditLocation(ctx context.Context, args []string) error {
	return f.record("editlocation", args)
}
func (f *fakeExec) DeleteLocation(ctx context.Context, args []string) error {
	return f.record("dellocation", args)
}
func (f *fakeExec) FormLink(ctx context.Context, args []string) error {
	return f.record("formlink", args)
}

func (f *fakeExec) Categories(ctx context.Context) error   { return f.record("categories", nil) }
func (f *fakeExec) AddCategory(ctx context.Context) error  { return f.record("addcategory", nil) }
func (f *fakeExec) EditCategory(ctx context.Context, args []string) error {
	return f.record("editcategory", args)
}
func (f *fakeExec) DeleteCategory(ctx context.Context, args []string) error {
	return f.record("delcategory", args)
}

func (f *fakeExec) Users(ctx context.Context) error   { return f.record("users", nil) }
func (f *fakeExec) AddUser(ctx context.Context) error { return f.record("adduser", nil) }
func (f *fakeExec) EditUser(ctx context.Context, args []string) error {
	return f.record("edituser", args)
}
func (f *fakeExec) DisableUser(ctx context.Context, args []string) error {
	return f.record("disableuser", args)
}

func (f *fakeExec) Report(ctx context.Context, args []string) error {
	return f.record("report", args)
}
func (f *fakeExec) PublicStats(ctx context.Context, args []string) error {
	return f.record("stats", args)
}
func (f *fakeExec) Browse(ctx context.Context, args []string) error {
	return f.record("browse", args)
}

func silencePrintln(t *testing.T) {
	t.Helper()
	orig := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = orig })
}

func runLines(exec *fakeExec, lines ...string) {
	sc := bufio.NewScanner(strings.NewReader(strings.Join(lines, "\n")))
	runREPL(context.Background(), exec, func() string { return "" }, sc)
}

func TestRunREPL_PublicMode(t *testing.T) {
	silencePrintln(t)

	exec := newFakeExec(false)
	runLines(exec, "browse phone", "stats week", "items", "exit")

	assert.Equal(t, []string{"browse", "stats"}, exec.calls,
		"admin commands must not dispatch before login")
	assert.Equal(t, []string{"phone"}, exec.args["browse"])
	assert.Equal(t, []string{"week"}, exec.args["stats"])
}

func TestRunREPL_LoginUnlocksAdminCommands(t *testing.T) {
	silencePrintln(t)

	exec := newFakeExec(false)
	runLines(exec, "login", "items listed", "more", "setstatus 4 claimed", "logout", "exit")

	assert.Equal(t, []string{"login", "items", "more", "setstatus", "logout"}, exec.calls)
	assert.Equal(t, []string{"listed"}, exec.args["items"])
	assert.Equal(t, []string{"4", "claimed"}, exec.args["setstatus"])
}

func TestRunREPL_AdminDispatch(t *testing.T) {
	silencePrintln(t)

	exec := newFakeExec(true)
	runLines(exec,
		"search red umbrella",
		"sort oldest",
		"offices-filter 1 2",
		"dates 2026-01-01 -",
		"clear",
		"bulkdel 1 2 3",
		"offices",
		"formlink main-lobby",
		"users",
		"report items week",
		"quit",
	)

	assert.Equal(t, []string{
		"search", "sort", "offices-filter", "dates", "clear",
		"bulkdel", "offices", "formlink", "users", "report",
	}, exec.calls)
	assert.Equal(t, []string{"red", "umbrella"}, exec.args["search"])
	assert.Equal(t, []string{"1", "2", "3"}, exec.args["bulkdel"])
	assert.Equal(t, []string{"main-lobby"}, exec.args["formlink"])
}

func TestRunREPL_UnknownAndEmptyLines(t *testing.T) {
	silencePrintln(t)

	exec := newFakeExec(true)
	runLines(exec, "", "   ", "frobnicate", "exit")

	assert.Empty(t, exec.calls)
}

func TestRunREPL_EOFStopsLoop(t *testing.T) {
	silencePrintln(t)

	exec := newFakeExec(true)
	runLines(exec, "items")

	assert.Equal(t, []string{"items"}, exec.calls)
}
