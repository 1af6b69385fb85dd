package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eco-conscious/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestProfile_HidesPasswordHash(t *testing.T) {
	userID := primitive.NewObjectID()

	services := authedServices(userID.Hex())
	services.ProfileService = &mockProfileService{
		getFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{
				ID:       userID,
				Username: "greenshopper",
				Email:    "green@example.com",
				Password: "$2a$10$secret-hash",
			}, nil
		},
	}
	h := newTestHandler(t, services)

	req := httptest.NewRequest(http.MethodGet, "/api/profile", nil)
	req.Header.Set("Authorization", "Bearer valid")
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "secret-hash")

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "greenshopper", user.Username)
}

func TestEditProfile_Success(t *testing.T) {
	userID := primitive.NewObjectID()

	services := authedServices(userID.Hex())
	services.ProfileService = &mockProfileService{
		updateFn: func(_ context.Context, gotUserID, fullname, address, phoneNumber string) (models.User, error) {
			assert.Equal(t, userID.Hex(), gotUserID)
			assert.Equal(t, "New Name", fullname)
			assert.Equal(t, "2 River Road", address)
			assert.Equal(t, "5559876543", phoneNumber)
			return models.User{ID: userID, Fullname: fullname, Address: address, PhoneNumber: phoneNumber}, nil
		},
	}
	h := newTestHandler(t, services)

	body := `{"fullname":"New Name","address":"2 River Road","phoneNumber":"5559876543"}`
	req := httptest.NewRequest(http.MethodPut, "/api/edit", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer valid")
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &user))
	assert.Equal(t, "New Name", user.Fullname)
}

func TestEditProfile_ValidationMessages(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			name:        "missing fullname",
			body:        `{"fullname":"","address":"2 River Road","phoneNumber":"555"}`,
			wantMessage: "Full name is required",
		},
		{
			name:        "letters in phone number",
			body:        `{"fullname":"New Name","address":"2 River Road","phoneNumber":"call-me"}`,
			wantMessage: "Phone number must contain digits only",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			services := authedServices(primitive.NewObjectID().Hex())
			services.ProfileService = &mockProfileService{}
			h := newTestHandler(t, services)

			req := httptest.NewRequest(http.MethodPut, "/api/edit", strings.NewReader(tt.body))
			req.Header.Set("Authorization", "Bearer valid")
			w := httptest.NewRecorder()
			h.Init().ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestDeleteAccount_Success(t *testing.T) {
	userID := primitive.NewObjectID().Hex()

	var deleted string
	services := authedServices(userID)
	services.ProfileService = &mockProfileService{
		deleteFn: func(_ context.Context, gotUserID string) error {
			deleted = gotUserID
			return nil
		},
	}
	h := newTestHandler(t, services)

	req := httptest.NewRequest(http.MethodDelete, "/api/delete", nil)
	req.Header.Set("Authorization", "Bearer valid")
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, userID, deleted)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Account deleted", resp.Message)
}
