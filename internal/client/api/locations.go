package api

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
)

func (c *Client) ListLocations(ctx context.Context) ([]models.Location, error) {
	var resp dataEnvelope[[]models.Location]
	if err := c.get(ctx, "/locations", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) GetLocation(ctx context.Context, id int64) (models.Location, error) {
	var resp dataEnvelope[models.Location]
	if err := c.get(ctx, fmt.Sprintf("/locations/%d", id), nil, &resp); err != nil {
		return models.Location{}, err
	}
	return resp.Data, nil
}

func (c *Client) CreateLocation(ctx context.Context, req models.CreateLocationRequest) (models.Location, error) {
	var resp dataEnvelope[models.Location]
	if err := c.post(ctx, "/locations", req, &resp); err != nil {
		return models.Location{}, err
	}
	return resp.Data, nil
}

func (c *Client) UpdateLocation(ctx context.Context, id int64, req models.UpdateLocationRequest) (models.Location, error) {
	var resp dataEnvelope[models.Location]
	if err := c.patch(ctx, fmt.Sprintf("/locations/%d", id), req, &resp); err != nil {
		return models.Location{}, err
	}
	return resp.Data, nil
}

func (c *Client) DeleteLocation(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/locations/%d", id))
}
