package services

import (
	"context"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
	"github.com/dmitrijs2005/lostlink/internal/client/query"
)

type usersAPI interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error)
	UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error)
	DeleteUser(ctx context.Context, id int64) error
}

type UserService struct {
	api   usersAPI
	cache *query.Cache
}

func NewUserService(api usersAPI, cache *query.Cache) *UserService {
	return &UserService{api: api, cache: cache}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return query.Fetch(ctx, s.cache, usersKey(), func(ctx context.Context) ([]models.User, error) {
		return s.api.ListUsers(ctx)
	})
}

func (s *UserService) Create(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	return query.Mutate(ctx, s.cache, []query.Key{usersKey()}, func(ctx context.Context) (models.User, error) {
		return s.api.CreateUser(ctx, req)
	})
}

func (s *UserService) Update(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	return query.Mutate(ctx, s.cache, []query.Key{usersKey()}, func(ctx context.Context) (models.User, error) {
		return s.api.UpdateUser(ctx, id, req)
	})
}

// Disable deactivates an account. The backend's delete endpoint flips the
// account to DISABLED rather than removing the row, and there is no way
// back to ACTIVE.
func (s *UserService) Disable(ctx context.Context, id int64) error {
	_, err := query.Mutate(ctx, s.cache, []query.Key{usersKey()}, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.DeleteUser(ctx, id)
	})
	return err
}
