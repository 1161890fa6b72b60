package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
)

// ListItems fetches items. With full=false the backend returns the compact
// representation and, when status is non-empty, scopes the list server-side
// so status tabs do not need local re-filtering.
func (c *Client) ListItems(ctx context.Context, full bool, status models.ItemStatus) ([]models.Item, error) {
	q := url.Values{}
	q.Set("full", strconv.FormatBool(full))
	if status != "" {
		q.Set("status", string(status))
	}
	var resp dataEnvelope[[]models.Item]
	if err := c.get(ctx, "/items", q, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// GetItem fetches a single item by id.
func (c *Client) GetItem(ctx context.Context, id int64) (models.Item, error) {
	var resp dataEnvelope[models.Item]
	if err := c.get(ctx, fmt.Sprintf("/items/%d", id), nil, &resp); err != nil {
		return models.Item{}, err
	}
	return resp.Data, nil
}

// CreateItem registers a new found item.
func (c *Client) CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	var resp dataEnvelope[models.Item]
	if err := c.post(ctx, "/items", req, &resp); err != nil {
		return models.Item{}, err
	}
	return resp.Data, nil
}

// UpdateItemStatus moves an item to a new lifecycle status.
func (c *Client) UpdateItemStatus(ctx context.Context, id int64, req models.UpdateItemStatusRequest) (models.Item, error) {
	var resp dataEnvelope[models.Item]
	if err := c.patch(ctx, fmt.Sprintf("/items/%d", id), req, &resp); err != nil {
		return models.Item{}, err
	}
	return resp.Data, nil
}

// DeleteItem removes an item. The backend rejects the call unless the item
// is still SUBMITTED; the service layer also guards before calling.
func (c *Client) DeleteItem(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/items/%d", id))
}
