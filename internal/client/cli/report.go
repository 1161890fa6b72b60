package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
)

// Report fetches the general admin report: "report [scope] [period]".
func (a *App) Report(ctx context.Context, args []string) error {
	params := models.ReportParams{Scope: "items"}
	if len(args) > 0 {
		params.Scope = args[0]
	}
	if len(args) > 1 {
		params.Period = args[1]
	}

	report, err := a.reports.General(ctx, params)
	if err != nil {
		a.printError(err)
		return err
	}

	if report.Message != "" {
		printlnFn(report.Message)
	}
	printlnFn(string(report.Data))
	return nil
}

// PublicStats prints the public found/claimed counters: "stats [period]".
func (a *App) PublicStats(ctx context.Context, args []string) error {
	period := ""
	if len(args) > 0 {
		period = args[0]
	}

	report, err := a.reports.Public(ctx, period)
	if err != nil {
		a.printError(err)
		return err
	}
	printlnFn(fmt.Sprintf("Items found: %d, reunited with owners: %d", report.Data.Found, report.Data.Claimed))
	return nil
}
