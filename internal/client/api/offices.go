package api

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
)

func (c *Client) ListOffices(ctx context.Context) ([]models.Office, error) {
	var resp dataEnvelope[[]models.Office]
	if err := c.get(ctx, "/offices", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) GetOffice(ctx context.Context, id int64) (models.Office, error) {
	var resp dataEnvelope[models.Office]
	if err := c.get(ctx, fmt.Sprintf("/offices/%d", id), nil, &resp); err != nil {
		return models.Office{}, err
	}
	return resp.Data, nil
}

func (c *Client) CreateOffice(ctx context.Context, req models.CreateOfficeRequest) (models.Office, error) {
	var resp dataEnvelope[models.Office]
	if err := c.post(ctx, "/offices", req, &resp); err != nil {
		return models.Office{}, err
	}
	return resp.Data, nil
}

func (c *Client) UpdateOffice(ctx context.Context, id int64, req models.UpdateOfficeRequest) (models.Office, error) {
	var resp dataEnvelope[models.Office]
	if err := c.patch(ctx, fmt.Sprintf("/offices/%d", id), req, &resp); err != nil {
		return models.Office{}, err
	}
	return resp.Data, nil
}

func (c *Client) DeleteOffice(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/offices/%d", id))
}
