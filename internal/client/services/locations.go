package services

import (
	"context"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
	"github.com/dmitrijs2005/lostlink/internal/client/query"
)

type locationsAPI interface {
	ListLocations(ctx context.Context) ([]models.Location, error)
	GetLocation(ctx context.Context, id int64) (models.Location, error)
	CreateLocation(ctx context.Context, req models.CreateLocationRequest) (models.Location, error)
	UpdateLocation(ctx context.Context, id int64, req models.UpdateLocationRequest) (models.Location, error)
	DeleteLocation(ctx context.Context, id int64) error
}

// LocationService exposes structured work hours to callers and packs them
// into the backend's description convention only at the request boundary.
type LocationService struct {
	api   locationsAPI
	cache *query.Cache
}

func NewLocationService(api locationsAPI, cache *query.Cache) *LocationService {
	return &LocationService{api: api, cache: cache}
}

func (s *LocationService) List(ctx context.Context) ([]models.Location, error) {
	return query.Fetch(ctx, s.cache, locationsKey(), func(ctx context.Context) ([]models.Location, error) {
		return s.api.ListLocations(ctx)
	})
}

func (s *LocationService) Get(ctx context.Context, id int64) (models.Location, error) {
	return s.api.GetLocation(ctx, id)
}

func (s *LocationService) Create(ctx context.Context, slug, name string, hours models.WorkHours) (models.Location, error) {
	req := models.CreateLocationRequest{Slug: slug, Name: name, Description: hours.Pack()}
	return query.Mutate(ctx, s.cache, []query.Key{locationsKey()}, func(ctx context.Context) (models.Location, error) {
		return s.api.CreateLocation(ctx, req)
	})
}

func (s *LocationService) Update(ctx context.Context, id int64, slug, name *string, hours *models.WorkHours) (models.Location, error) {
	req := models.UpdateLocationRequest{Slug: slug, Name: name}
	if hours != nil {
		packed := hours.Pack()
		req.Description = &packed
	}
	return query.Mutate(ctx, s.cache, []query.Key{locationsKey()}, func(ctx context.Context) (models.Location, error) {
		return s.api.UpdateLocation(ctx, id, req)
	})
}

func (s *LocationService) Delete(ctx context.Context, id int64) error {
	_, err := query.Mutate(ctx, s.cache, []query.Key{locationsKey()}, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.DeleteLocation(ctx, id)
	})
	return err
}
