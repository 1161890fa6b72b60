package api

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
)

func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var resp dataEnvelope[[]models.User]
	if err := c.get(ctx, "/users", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) CreateUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	var resp dataEnvelope[models.User]
	if err := c.post(ctx, "/users", req, &resp); err != nil {
		return models.User{}, err
	}
	return resp.Data, nil
}

func (c *Client) UpdateUser(ctx context.Context, id int64, req models.UpdateUserRequest) (models.User, error) {
	var resp dataEnvelope[models.User]
	if err := c.patch(ctx, fmt.Sprintf("/users/%d", id), req, &resp); err != nil {
		return models.User{}, err
	}
	return resp.Data, nil
}

// DeleteUser disables an account. There is no re-enable operation.
func (c *Client) DeleteUser(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/users/%d", id))
}
