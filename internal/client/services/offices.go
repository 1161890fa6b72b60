package services

import (
	"context"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
	"github.com/dmitrijs2005/lostlink/internal/client/query"
)

type officesAPI interface {
	ListOffices(ctx context.Context) ([]models.Office, error)
	GetOffice(ctx context.Context, id int64) (models.Office, error)
	CreateOffice(ctx context.Context, req models.CreateOfficeRequest) (models.Office, error)
	UpdateOffice(ctx context.Context, id int64, req models.UpdateOfficeRequest) (models.Office, error)
	DeleteOffice(ctx context.Context, id int64) error
}

type OfficeService struct {
	api   officesAPI
	cache *query.Cache
}

func NewOfficeService(api officesAPI, cache *query.Cache) *OfficeService {
	return &OfficeService{api: api, cache: cache}
}

func (s *OfficeService) List(ctx context.Context) ([]models.Office, error) {
	return query.Fetch(ctx, s.cache, officesKey(), func(ctx context.Context) ([]models.Office, error) {
		return s.api.ListOffices(ctx)
	})
}

func (s *OfficeService) Get(ctx context.Context, id int64) (models.Office, error) {
	return s.api.GetOffice(ctx, id)
}

func (s *OfficeService) Create(ctx context.Context, req models.CreateOfficeRequest) (models.Office, error) {
	return query.Mutate(ctx, s.cache, []query.Key{officesKey()}, func(ctx context.Context) (models.Office, error) {
		return s.api.CreateOffice(ctx, req)
	})
}

func (s *OfficeService) Update(ctx context.Context, id int64, req models.UpdateOfficeRequest) (models.Office, error) {
	return query.Mutate(ctx, s.cache, []query.Key{officesKey()}, func(ctx context.Context) (models.Office, error) {
		return s.api.UpdateOffice(ctx, id, req)
	})
}

func (s *OfficeService) Delete(ctx context.Context, id int64) error {
	_, err := query.Mutate(ctx, s.cache, []query.Key{officesKey()}, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.DeleteOffice(ctx, id)
	})
	return err
}
