package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
)

func TestListItems_QueryParams(t *testing.T) {
	tests := []struct {
		name       string
		full       bool
		status     models.ItemStatus
		wantFull   string
		wantStatus string
	}{
		{name: "full with status", full: true, status: models.ItemStatusListed, wantFull: "true", wantStatus: "LISTED"},
		{name: "compact no status", full: false, status: "", wantFull: "false", wantStatus: ""},
		{name: "submitted tab", full: false, status: models.ItemStatusSubmitted, wantFull: "false", wantStatus: "SUBMITTED"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotFull, gotStatus string
			hasStatus := false
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/items", r.URL.Path)
				gotFull = r.URL.Query().Get("full")
				gotStatus = r.URL.Query().Get("status")
				hasStatus = r.URL.Query().Has("status")
				_ = json.NewEncoder(w).Encode(map[string]any{"data": []models.Item{}})
			}))
			defer srv.Close()

			c := New(srv.URL)
			_, err := c.ListItems(context.Background(), tt.full, tt.status)
			require.NoError(t, err)

			assert.Equal(t, tt.wantFull, gotFull)
			assert.Equal(t, tt.wantStatus, gotStatus)
			if tt.wantStatus == "" {
				assert.False(t, hasStatus, "empty status must not be sent")
			}
		})
	}
}

func TestListItems_DecodesUnionGivenLocation(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[
			{"id":1,"itemName":"Black Wallet","givenLocation":"Main Office","itemStatus":"LISTED","createdDate":"2024-04-18"},
			{"id":2,"itemName":"Umbrella","givenLocation":{"name":"East Office","location":"B","workHours":"08:00 - 16:00"},"itemStatus":"LISTED","createdDate":"2024-04-20"}
		]}`))
	}))
	defer srv.Close()

	c := New(srv.URL)
	items, err := c.ListItems(context.Background(), true, models.ItemStatusListed)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Main Office", items[0].GivenLocation.Display())
	assert.Nil(t, items[0].GivenLocation.Office)
	assert.Equal(t, "East Office", items[1].GivenLocation.Display())
	require.NotNil(t, items[1].GivenLocation.Office)
	assert.Equal(t, "08:00 - 16:00", items[1].GivenLocation.Office.WorkHours)
}

func TestUpdateItemStatus_SendsPatch(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody models.UpdateItemStatusRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{"data": models.Item{ID: 7, Status: models.ItemStatusListed}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	item, err := c.UpdateItemStatus(context.Background(), 7, models.UpdateItemStatusRequest{Status: models.ItemStatusListed})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPatch, gotMethod)
	assert.Equal(t, "/items/7", gotPath)
	assert.Equal(t, models.ItemStatusListed, gotBody.Status)
	assert.Equal(t, int64(7), item.ID)
}

func TestDeleteItem_SendsDelete(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		_ = json.NewEncoder(w).Encode(map[string]any{"data": nil})
	}))
	defer srv.Close()

	c := New(srv.URL)
	require.NoError(t, c.DeleteItem(context.Background(), 9))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/items/9", gotPath)
}
