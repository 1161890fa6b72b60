package services

import (
	"context"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
	"github.com/dmitrijs2005/lostlink/internal/client/query"
)

type reportsAPI interface {
	GeneralReport(ctx context.Context, params models.ReportParams) (models.Report, error)
	PublicReport(ctx context.Context, period string) (models.PublicReport, error)
}

// ReportService serves read-only aggregates. Reports are cached per
// scope/period but never invalidated by mutations; they go stale only on
// logout, matching their informational role.
type ReportService struct {
	api   reportsAPI
	cache *query.Cache
}

func NewReportService(api reportsAPI, cache *query.Cache) *ReportService {
	return &ReportService{api: api, cache: cache}
}

func (s *ReportService) General(ctx context.Context, params models.ReportParams) (models.Report, error) {
	return query.Fetch(ctx, s.cache, reportKey(params), func(ctx context.Context) (models.Report, error) {
		return s.api.GeneralReport(ctx, params)
	})
}

func (s *ReportService) Public(ctx context.Context, period string) (models.PublicReport, error) {
	key := query.NewKey("report", "public", period)
	return query.Fetch(ctx, s.cache, key, func(ctx context.Context) (models.PublicReport, error) {
		return s.api.PublicReport(ctx, period)
	})
}
