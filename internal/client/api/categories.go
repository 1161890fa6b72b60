package api

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
)

func (c *Client) ListCategories(ctx context.Context) ([]models.Category, error) {
	var resp dataEnvelope[[]models.Category]
	if err := c.get(ctx, "/categories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

func (c *Client) CreateCategory(ctx context.Context, req models.CreateCategoryRequest) (models.Category, error) {
	var resp dataEnvelope[models.Category]
	if err := c.post(ctx, "/categories", req, &resp); err != nil {
		return models.Category{}, err
	}
	return resp.Data, nil
}

func (c *Client) UpdateCategory(ctx context.Context, id int64, req models.UpdateCategoryRequest) (models.Category, error) {
	var resp dataEnvelope[models.Category]
	if err := c.patch(ctx, fmt.Sprintf("/categories/%d", id), req, &resp); err != nil {
		return models.Category{}, err
	}
	return resp.Data, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/categories/%d", id))
}
