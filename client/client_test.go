package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/eco-conscious/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "bare host and port", in: "localhost:3000", want: "http://localhost:3000"},
		{name: "full url", in: "https://api.example.com/", want: "https://api.example.com"},
		{name: "surrounding whitespace", in: "  localhost:3000  ", want: "http://localhost:3000"},
		{name: "empty", in: "", wantErr: true},
		{name: "scheme only", in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNew_RejectsEmptyBaseURL(t *testing.T) {
	_, err := New(Config{})
	require.Error(t, err)
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "greenshopper", req.Username)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.LoginResponse{Token: "signed-jwt", Verified: true})
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL, Timeout: time.Second})
	require.NoError(t, err)

	resp, err := c.Login(context.Background(), models.LoginRequest{Username: "greenshopper", Password: "s3curepass"})
	require.NoError(t, err)
	assert.Equal(t, "signed-jwt", resp.Token)
	assert.Equal(t, "signed-jwt", c.Token())
}

func TestAuthedRequest_CarriesBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer signed-jwt", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.User{Username: "greenshopper"})
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	c.SetToken("signed-jwt")

	user, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "greenshopper", user.Username)
}

func TestErrorEnvelope_MapsToSentinels(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		message    string
		wantTarget error
	}{
		{name: "bad request", status: http.StatusBadRequest, message: "Username is already taken", wantTarget: ErrBadRequest},
		{name: "unauthorized", status: http.StatusUnauthorized, message: "invalid credentials", wantTarget: ErrUnauthorized},
		{name: "not found", status: http.StatusNotFound, message: "product not found", wantTarget: ErrNotFound},
		{name: "server error", status: http.StatusInternalServerError, message: "Internal Server Error", wantTarget: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_ = json.NewEncoder(w).Encode(models.ErrorResponse{
					Error:     http.StatusText(tt.status),
					Message:   tt.message,
					Timestamp: time.Now().UTC(),
				})
			}))
			defer srv.Close()

			c, err := New(Config{BaseURL: srv.URL})
			require.NoError(t, err)

			_, err = c.Product(context.Background(), "abc")
			require.ErrorIs(t, err, tt.wantTarget)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestAlternatives_EmptyList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/alternatives/soap/abc123", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)

	products, err := c.Alternatives(context.Background(), "soap", "abc123")
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestDeleteAccount_ClearsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.MessageResponse{Success: true, Message: "Account deleted"})
	}))
	defer srv.Close()

	c, err := New(Config{BaseURL: srv.URL})
	require.NoError(t, err)
	c.SetToken("signed-jwt")

	require.NoError(t, c.DeleteAccount(context.Background()))
	assert.Empty(t, c.Token())
}
