package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
	"github.com/dmitrijs2005/lostlink/internal/client/query"
	"github.com/dmitrijs2005/lostlink/internal/common"
)

// itemsAPI is the transport surface the item service needs. *api.Client
// satisfies it; tests provide fakes.
type itemsAPI interface {
	ListItems(ctx context.Context, full bool, status models.ItemStatus) ([]models.Item, error)
	GetItem(ctx context.Context, id int64) (models.Item, error)
	CreateItem(ctx context.Context, req models.CreateItemRequest) (models.Item, error)
	UpdateItemStatus(ctx context.Context, id int64, req models.UpdateItemStatusRequest) (models.Item, error)
	DeleteItem(ctx context.Context, id int64) error
}

type ItemService struct {
	api   itemsAPI
	cache *query.Cache
}

func NewItemService(api itemsAPI, cache *query.Cache) *ItemService {
	return &ItemService{api: api, cache: cache}
}

// itemInvalidation covers every item query: the list cache for all status
// tabs and the single-item cache. A status change moves an item between
// tabs, so both the old and the new tab's list must go stale at once.
func itemInvalidation() []query.Key {
	return []query.Key{query.NewKey("items"), query.NewKey("item")}
}

// List returns items, served from cache until an item mutation invalidates
// it. With a non-empty status the backend scopes the list server-side.
func (s *ItemService) List(ctx context.Context, full bool, status models.ItemStatus) ([]models.Item, error) {
	return query.Fetch(ctx, s.cache, itemsKey(full, status), func(ctx context.Context) ([]models.Item, error) {
		return s.api.ListItems(ctx, full, status)
	})
}

func (s *ItemService) Get(ctx context.Context, id int64) (models.Item, error) {
	return query.Fetch(ctx, s.cache, itemKey(id), func(ctx context.Context) (models.Item, error) {
		return s.api.GetItem(ctx, id)
	})
}

func (s *ItemService) Create(ctx context.Context, req models.CreateItemRequest) (models.Item, error) {
	return query.Mutate(ctx, s.cache, itemInvalidation(), func(ctx context.Context) (models.Item, error) {
		return s.api.CreateItem(ctx, req)
	})
}

// UpdateStatus moves item to a new lifecycle status. Transitions outside
// the table (SUBMITTED->LISTED, LISTED->CLAIMED, LISTED->ARCHIVED) are
// rejected before any network call.
func (s *ItemService) UpdateStatus(ctx context.Context, item models.Item, to models.ItemStatus, note string) (models.Item, error) {
	if !item.Status.CanTransitionTo(to) {
		return models.Item{}, fmt.Errorf("item %d: %s -> %s: %w", item.ID, item.Status, to, common.ErrInvalidTransition)
	}
	return query.Mutate(ctx, s.cache, itemInvalidation(), func(ctx context.Context) (models.Item, error) {
		return s.api.UpdateItemStatus(ctx, item.ID, models.UpdateItemStatusRequest{Status: to, Description: note})
	})
}

// Delete removes an item. Only SUBMITTED items are deletable; the guard
// runs before the request so the UI never assumes success on a forbidden
// delete.
func (s *ItemService) Delete(ctx context.Context, item models.Item) error {
	if !item.Status.Deletable() {
		return fmt.Errorf("item %d is %s: %w", item.ID, item.Status, common.ErrItemNotDeletable)
	}
	_, err := query.Mutate(ctx, s.cache, itemInvalidation(), func(ctx context.Context) (struct{}, error) {
		return struct{}{}, s.api.DeleteItem(ctx, item.ID)
	})
	return err
}

// BulkUpdateStatus fires one status update per item concurrently and
// invalidates once after the whole batch settles. Any failure, including a
// guard rejection, is reported as a single aggregate error; the succeeded
// subset stands and shows up on the next refetch.
func (s *ItemService) BulkUpdateStatus(ctx context.Context, items []models.Item, to models.ItemStatus, note string) error {
	fns := make([]func(ctx context.Context) error, 0, len(items))
	for _, item := range items {
		item := item
		fns = append(fns, func(ctx context.Context) error {
			if !item.Status.CanTransitionTo(to) {
				return fmt.Errorf("item %d: %s -> %s: %w", item.ID, item.Status, to, common.ErrInvalidTransition)
			}
			_, err := s.api.UpdateItemStatus(ctx, item.ID, models.UpdateItemStatusRequest{Status: to, Description: note})
			return err
		})
	}
	return query.MutateBulk(ctx, s.cache, itemInvalidation(), fns...)
}

// BulkDelete deletes the given items concurrently with the same aggregate
// semantics as BulkUpdateStatus.
func (s *ItemService) BulkDelete(ctx context.Context, items []models.Item) error {
	fns := make([]func(ctx context.Context) error, 0, len(items))
	for _, item := range items {
		item := item
		fns = append(fns, func(ctx context.Context) error {
			if !item.Status.Deletable() {
				return fmt.Errorf("item %d is %s: %w", item.ID, item.Status, common.ErrItemNotDeletable)
			}
			return s.api.DeleteItem(ctx, item.ID)
		})
	}
	return query.MutateBulk(ctx, s.cache, itemInvalidation(), fns...)
}
