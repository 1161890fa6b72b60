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

func TestLogin_ReturnsToken(t *testing.T) {
	var gotBody models.LoginRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/login", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(map[string]any{"data": "jwt-token"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	token, err := c.Login(context.Background(), models.LoginRequest{Username: "admin", Password: "pw"})
	require.NoError(t, err)

	assert.Equal(t, "jwt-token", token)
	assert.Equal(t, "admin", gotBody.Username)
}

func TestMe_DecodesProfile(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/me", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"data": models.Me{
			ID: 3, Username: "admin", Name: "Ada", Status: models.UserStatusActive,
		}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	me, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), me.ID)
	assert.Equal(t, models.UserStatusActive, me.Status)
}

func TestResetPassword_RejectedByBackend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/me/reset-password", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]any{"ok": false, "message": "wrong current password"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	err := c.ResetPassword(context.Background(), models.ResetPasswordRequest{
		CurrentPassword: "bad", NewPassword: "new", ConfirmNewPassword: "new",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wrong current password")
}

func TestUpdateProfile_PatchesOnlyGivenFields(t *testing.T) {
	var raw map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPatch, r.Method)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		_ = json.NewEncoder(w).Encode(map[string]any{"data": models.Me{ID: 3, Name: "Ada"}})
	}))
	defer srv.Close()

	name := "Ada"
	c := New(srv.URL)
	_, err := c.UpdateProfile(context.Background(), models.UpdateProfileRequest{Name: &name})
	require.NoError(t, err)

	assert.Equal(t, map[string]any{"name": "Ada"}, raw)
}
