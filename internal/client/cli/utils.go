package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/lostlink/internal/client/api"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getMultiline = GetMultiline

// printError renders a failure for the user. Validation failures with
// field-level detail are listed per field; everything else prints as a
// single line.
func (a *App) printError(err error) {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && len(apiErr.Fields) > 0 {
		printlnFn("Validation failed:")
		for _, f := range apiErr.Fields {
			printlnFn("  " + f.Field + ": " + f.Message)
		}
		return
	}
	printlnFn("Error:", err.Error())
}

// argOrPromptID reads a record id from the first argument, or prompts for
// one when absent.
func (a *App) argOrPromptID(args []string, prompt string) (int64, error) {
	s := ""
	if len(args) > 0 {
		s = args[0]
	} else {
		var err error
		s, err = getSimpleText(a.reader, prompt, os.Stdout)
		if err != nil {
			return 0, err
		}
	}
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}

// parseIDs parses a list of numeric arguments.
func parseIDs(args []string) ([]int64, error) {
	ids := make([]int64, 0, len(args))
	for _, s := range args {
		id, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q", s)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

// promptOptional reads a value that may be left empty to keep the current
// one. Returns nil when the user just presses Enter.
func (a *App) promptOptional(prompt string) (*string, error) {
	s, err := getSimpleText(a.reader, prompt+" (empty to keep)", os.Stdout)
	if err != nil {
		return nil, err
	}
	if s == "" {
		return nil, nil
	}
	return &s, nil
}
