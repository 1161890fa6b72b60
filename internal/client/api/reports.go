package api

import (
	"context"
	"net/url"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
)

// GeneralReport fetches the admin report. Unlike the other resources, the
// report endpoints return the ok/data/message/status envelope directly.
func (c *Client) GeneralReport(ctx context.Context, params models.ReportParams) (models.Report, error) {
	q := url.Values{}
	if params.Period != "" {
		q.Set("period", params.Period)
	}
	q.Set("scope", params.Scope)

	var resp models.Report
	if err := c.get(ctx, "/report", q, &resp); err != nil {
		return models.Report{}, err
	}
	return resp, nil
}

// PublicReport fetches the found/claimed aggregate shown on the public page.
// It requires no authentication.
func (c *Client) PublicReport(ctx context.Context, period string) (models.PublicReport, error) {
	var q url.Values
	if period != "" {
		q = url.Values{"period": {period}}
	}

	var resp models.PublicReport
	if err := c.get(ctx, "/report/public", q, &resp); err != nil {
		return models.PublicReport{}, err
	}
	return resp, nil
}
