package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
	"github.com/dmitrijs2005/lostlink/internal/client/query"
	"github.com/dmitrijs2005/lostlink/internal/client/session"
	"github.com/dmitrijs2005/lostlink/internal/common"
)

type authAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (string, error)
	Me(ctx context.Context) (models.Me, error)
	UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.Me, error)
	ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error
}

// AuthService owns the login/logout lifecycle around the session store.
type AuthService struct {
	api     authAPI
	session *session.Store
	cache   *query.Cache
}

func NewAuthService(api authAPI, sess *session.Store, cache *query.Cache) *AuthService {
	return &AuthService{api: api, session: sess, cache: cache}
}

// Login exchanges credentials for a token, persists it, and fetches the
// profile. A DISABLED account or a failed profile fetch tears the session
// back down so a half-logged-in state never survives.
func (s *AuthService) Login(ctx context.Context, username, password string) (models.Me, error) {
	token, err := s.api.Login(ctx, models.LoginRequest{Username: username, Password: password})
	if err != nil {
		return models.Me{}, fmt.Errorf("login: %w", err)
	}
	if err := s.session.SetToken(ctx, token); err != nil {
		return models.Me{}, fmt.Errorf("persisting token: %w", err)
	}

	me, err := s.api.Me(ctx)
	if err != nil {
		_ = s.session.Logout(ctx)
		return models.Me{}, fmt.Errorf("fetching profile: %w", err)
	}
	if me.Status != models.UserStatusActive {
		_ = s.session.Logout(ctx)
		return models.Me{}, common.ErrAccountDisabled
	}

	if err := s.session.SetUser(ctx, &me); err != nil {
		return models.Me{}, fmt.Errorf("caching profile: %w", err)
	}
	return me, nil
}

// Logout clears the session and drops every cached query, so no admin data
// survives into the logged-out state.
func (s *AuthService) Logout(ctx context.Context) error {
	s.cache.Clear()
	return s.session.Logout(ctx)
}

// Revalidate is the route guard's second check: the synchronous token test
// is cheap but optimistic, so the guard also asks the backend who we are.
// Any failure of that fetch counts as logged out.
func (s *AuthService) Revalidate(ctx context.Context) (models.Me, error) {
	if !s.session.IsAuthenticated() {
		return models.Me{}, common.ErrNotLoggedIn
	}
	me, err := s.api.Me(ctx)
	if err != nil {
		_ = s.Logout(ctx)
		return models.Me{}, fmt.Errorf("session revalidation: %w", err)
	}
	_ = s.session.SetUser(ctx, &me)
	return me, nil
}

// UpdateProfile patches the caller's profile and refreshes the cached copy.
func (s *AuthService) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.Me, error) {
	me, err := s.api.UpdateProfile(ctx, req)
	if err != nil {
		return models.Me{}, err
	}
	_ = s.session.SetUser(ctx, &me)
	return me, nil
}

// ResetPassword verifies the confirmation locally before asking the backend.
func (s *AuthService) ResetPassword(ctx context.Context, current, newPassword, confirm string) error {
	if newPassword != confirm {
		return common.ErrPasswordMismatch
	}
	return s.api.ResetPassword(ctx, models.ResetPasswordRequest{
		CurrentPassword:    current,
		NewPassword:        newPassword,
		ConfirmNewPassword: confirm,
	})
}
