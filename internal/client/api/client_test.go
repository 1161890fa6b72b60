package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/lostlink/internal/client/models"
	"github.com/dmitrijs2005/lostlink/internal/common"
)

func staticToken(token string) TokenSource {
	return func() string { return token }
}

func TestClient_AttachesBearerAndRequestID(t *testing.T) {
	var gotAuth, gotReqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotReqID = r.Header.Get("X-Request-Id")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []models.Item{}})
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(staticToken("tok123")))
	_, err := c.ListItems(context.Background(), false, "")
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok123", gotAuth)
	assert.NotEmpty(t, gotReqID)
}

func TestClient_NoTokenNoHeader(t *testing.T) {
	var gotAuth string
	hasHeader := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, hasHeader = r.Header["Authorization"]
		_ = json.NewEncoder(w).Encode(map[string]any{"data": []models.Item{}})
	}))
	defer srv.Close()

	c := New(srv.URL, WithTokenSource(staticToken("")))
	_, err := c.ListItems(context.Background(), false, "")
	require.NoError(t, err)

	assert.Empty(t, gotAuth)
	assert.False(t, hasHeader)
}

func TestClient_AuthFailureHookFiresForEveryResource(t *testing.T) {
	tests := []struct {
		name string
		code int
		call func(c *Client) error
	}{
		{name: "items 401", code: http.StatusUnauthorized, call: func(c *Client) error {
			_, err := c.ListItems(context.Background(), false, "")
			return err
		}},
		{name: "offices 403", code: http.StatusForbidden, call: func(c *Client) error {
			_, err := c.ListOffices(context.Background())
			return err
		}},
		{name: "users 401", code: http.StatusUnauthorized, call: func(c *Client) error {
			_, err := c.ListUsers(context.Background())
			return err
		}},
		{name: "report 403", code: http.StatusForbidden, call: func(c *Client) error {
			_, err := c.GeneralReport(context.Background(), models.ReportParams{Scope: "items"})
			return err
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.code)
			}))
			defer srv.Close()

			fired := 0
			c := New(srv.URL, WithAuthFailureHandler(func() { fired++ }))

			err := tt.call(c)
			require.Error(t, err)
			assert.Equal(t, 1, fired, "auth failure hook must fire exactly once")

			if tt.code == http.StatusUnauthorized {
				assert.ErrorIs(t, err, common.ErrUnauthorized)
			} else {
				assert.ErrorIs(t, err, common.ErrForbidden)
			}
		})
	}
}

func TestClient_NetworkErrorDoesNotTriggerAuthHook(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // immediately, so the call fails at the transport level

	fired := false
	c := New(srv.URL, WithAuthFailureHandler(func() { fired = true }))

	_, err := c.ListItems(context.Background(), false, "")
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnavailable)
	assert.False(t, fired)
}

func TestClient_DecodesStructuredValidationError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": "validation failed",
			"errors": []map[string]string{
				{"field": "name", "message": "name is required"},
			},
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.CreateOffice(context.Background(), models.CreateOfficeRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrValidation)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "validation failed", apiErr.Message)
	assert.Equal(t, map[string]string{"name": "name is required"}, apiErr.FieldMessages())
}

func TestClient_ErrorStatusMapping(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusNotFound, common.ErrNotFound},
		{http.StatusConflict, common.ErrConflict},
		{http.StatusUnprocessableEntity, common.ErrValidation},
		{http.StatusInternalServerError, common.ErrInternal},
	}

	for _, tt := range tests {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.code)
		}))

		c := New(srv.URL)
		_, err := c.GetItem(context.Background(), 1)
		require.Error(t, err)
		assert.ErrorIs(t, err, tt.want, "status %d", tt.code)
		srv.Close()
	}
}

func TestClient_NonJSONErrorBodyKeptAsMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream unavailable\n"))
	}))
	defer srv.Close()

	c := New(srv.URL)
	_, err := c.ListItems(context.Background(), false, "")
	require.Error(t, err)

	var apiErr *Error
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "upstream unavailable", apiErr.Message)
}
