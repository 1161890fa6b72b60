package api

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
)

// Login exchanges credentials for a bearer token.
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (string, error) {
	var resp dataEnvelope[string]
	if err := c.post(ctx, "/auth/login", req, &resp); err != nil {
		return "", err
	}
	return resp.Data, nil
}

// Me fetches the authenticated user's profile. Also used by the auth guard
// to revalidate a stored token.
func (c *Client) Me(ctx context.Context) (models.Me, error) {
	var resp dataEnvelope[models.Me]
	if err := c.get(ctx, "/auth/me", nil, &resp); err != nil {
		return models.Me{}, err
	}
	return resp.Data, nil
}

// UpdateProfile patches the caller's own profile.
func (c *Client) UpdateProfile(ctx context.Context, req models.UpdateProfileRequest) (models.Me, error) {
	var resp dataEnvelope[models.Me]
	if err := c.patch(ctx, "/auth/me", req, &resp); err != nil {
		return models.Me{}, err
	}
	return resp.Data, nil
}

// ResetPassword changes the caller's password.
func (c *Client) ResetPassword(ctx context.Context, req models.ResetPasswordRequest) error {
	var resp okEnvelope
	if err := c.post(ctx, "/auth/me/reset-password", req, &resp); err != nil {
		return err
	}
	if !resp.OK {
		return fmt.Errorf("reset password rejected: %s", resp.Message)
	}
	return nil
}
