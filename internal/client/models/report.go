package models

import "encoding/json"

// ReportParams select the slice of the general report. Scope is required by
// the backend; Period is optional ("week", "month", ...).
type ReportParams struct {
	Period string
	Scope  string
}

// Report is the general admin report. The payload shape varies by scope, so
// it is kept raw for the caller to interpret.
type Report struct {
	OK      bool            `json:"ok"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Status  int             `json:"status"`
}

// PublicReportData is the aggregate shown on the public page.
type PublicReportData struct {
	Found   int `json:"found"`
	Claimed int `json:"claimed"`
}

type PublicReport struct {
	OK      bool             `json:"ok"`
	Data    PublicReportData `json:"data"`
	Message string           `json:"message"`
	Status  int              `json:"status"`
}
