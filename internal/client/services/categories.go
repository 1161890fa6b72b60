package services

import (
	"context"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
	"github.com/dmitrijs2005/lostlink/internal/client/query"
)

type categoriesAPI interface {
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (models.Category, error)
	UpdateCategory(ctx context.Context, id int64, req models.UpdateCategoryRequest) (models.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type CategoryService struct {
	api   categoriesAPI
	cache *query.Cache
}

func NewCategoryService(api categoriesAPI, cache *query.Cache) *CategoryService {
	return &CategoryService{api: api, cache: cache}
}

func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	return query.Fetch(ctx, s.cache, categoriesKey(), func(ctx context.Context) ([]models.Category, error) {
		return s.api.ListCategories(ctx)
	})
}

func (s *CategoryService) Create(ctx context.Context, name string) (models.Category, error) {
	return query.Mutate(ctx, s.cache, []query.Key{categoriesKey()}, func(ctx context.Context) (models.Category, error) {
		return s.api.CreateCategory(ctx, models.CreateCategoryRequest{Name: name})
	})
}

func (s *CategoryService) Update(ctx context.Context, id int64, name string) (models.Category, error) {
	return query.Mutate(ctx, s.cache, []query.Key{categoriesKey()}, func(ctx context.Context) (models.Category, error) {
		return s.api.UpdateCategory(ctx, id, models.UpdateCategoryRequest{Name: name})
	})
}

func (s *CategoryService) Delete(ctx context.Context, id int64) error {
	_, err := query.Mutate(ctx, s.cache, []query.Key{categoriesKey()}, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.DeleteCategory(ctx, id)
	})
	return err
}
