package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eco-conscious/backend/internal/service"
	"github.com/eco-conscious/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const validSignupBody = `{
	"username": "greenshopper",
	"fullname": "Green Shopper",
	"email": "green@example.com",
	"password": "s3curepass",
	"address": "1 Forest Lane",
	"phoneNumber": "5551234567"
}`

func TestSignup_Success(t *testing.T) {
	createdID := primitive.NewObjectID()

	services := &service.Services{
		AuthService: &mockAuthService{
			signupFn: func(_ context.Context, user models.User) (models.User, error) {
				assert.Equal(t, "greenshopper", user.Username)
				user.ID = createdID
				return user, nil
			},
		},
	}
	h := newTestHandler(t, services)

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(validSignupBody))
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.SignupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.True(t, resp.RequiresVerification)
	assert.Equal(t, createdID.Hex(), resp.UserID)
	assert.Equal(t, "green@example.com", resp.Email)
}

func TestSignup_ValidationMessages(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantMessage string
	}{
		{
			name:        "missing email",
			body:        `{"username":"a","fullname":"b","password":"s3curepass","address":"c","phoneNumber":"123"}`,
			wantMessage: "Valid email is required",
		},
		{
			name:        "weak password",
			body:        `{"username":"a","fullname":"b","email":"a@b.com","password":"short","address":"c","phoneNumber":"123"}`,
			wantMessage: "Password must be at least 8 characters and contain a letter and a digit",
		},
		{
			name:        "missing username",
			body:        `{"fullname":"b","email":"a@b.com","password":"s3curepass1","address":"c","phoneNumber":"123"}`,
			wantMessage: "Username is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

			req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.Init().ServeHTTP(w, req)

			require.Equal(t, http.StatusBadRequest, w.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.wantMessage, resp.Message)
		})
	}
}

func TestSignup_UsernameTaken(t *testing.T) {
	services := &service.Services{
		AuthService: &mockAuthService{
			signupFn: func(_ context.Context, _ models.User) (models.User, error) {
				return models.User{}, service.ErrUsernameTaken
			},
		},
	}
	h := newTestHandler(t, services)

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader(validSignupBody))
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Username is already taken", resp.Message)
}

func TestSignup_InvalidJSON(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodPost, "/signup", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerify_Success(t *testing.T) {
	services := &service.Services{
		AuthService: &mockAuthService{
			verifyFn: func(_ context.Context, tokenString string) (models.User, error) {
				assert.Equal(t, "sometoken", tokenString)
				return models.User{ID: primitive.NewObjectID(), IsVerified: true}, nil
			},
		},
	}
	h := newTestHandler(t, services)

	req := httptest.NewRequest(http.MethodGet, "/verify?token=sometoken", nil)
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.VerifyResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Verified)
}

func TestVerify_MissingToken(t *testing.T) {
	h := newTestHandler(t, &service.Services{AuthService: &mockAuthService{}})

	req := httptest.NewRequest(http.MethodGet, "/verify", nil)
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerify_ExpiredLink(t *testing.T) {
	services := &service.Services{
		AuthService: &mockAuthService{
			verifyFn: func(_ context.Context, _ string) (models.User, error) {
				return models.User{}, service.ErrTokenIsExpired
			},
		},
	}
	h := newTestHandler(t, services)

	req := httptest.NewRequest(http.MethodGet, "/verify?token=old", nil)
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "verification link expired", resp.Message)
}

func TestVerify_MalformedToken(t *testing.T) {
	services := &service.Services{
		AuthService: &mockAuthService{
			verifyFn: func(_ context.Context, _ string) (models.User, error) {
				return models.User{}, service.ErrInvalidVerificationToken
			},
		},
	}
	h := newTestHandler(t, services)

	req := httptest.NewRequest(http.MethodGet, "/verify?token=garbage", nil)
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestResendVerification_GenericBody(t *testing.T) {
	var calledWith string
	services := &service.Services{
		AuthService: &mockAuthService{
			resendVerificationFn: func(_ context.Context, email string) error {
				calledWith = email
				return nil
			},
		},
	}
	h := newTestHandler(t, services)

	req := httptest.NewRequest(http.MethodPost, "/resend-verification", strings.NewReader(`{"email":"nobody@example.com"}`))
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nobody@example.com", calledWith)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Contains(t, resp.Message, "If an account exists")
}

func TestLogin_Success(t *testing.T) {
	userID := primitive.NewObjectID()

	services := &service.Services{
		AuthService: &mockAuthService{
			loginFn: func(_ context.Context, login, password string) (models.User, error) {
				assert.Equal(t, "greenshopper", login)
				assert.Equal(t, "s3curepass", password)
				return models.User{ID: userID, IsVerified: true}, nil
			},
			createSessionTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
				return models.Token{SignedString: "signed-jwt", UserID: user.ID.Hex()}, nil
			},
		},
	}
	h := newTestHandler(t, services)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"greenshopper","password":"s3curepass"}`))
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Bearer signed-jwt", w.Header().Get("Authorization"))

	var resp models.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "signed-jwt", resp.Token)
	assert.True(t, resp.Verified)
}

func TestLogin_EmailAsIdentifier(t *testing.T) {
	services := &service.Services{
		AuthService: &mockAuthService{
			loginFn: func(_ context.Context, login, _ string) (models.User, error) {
				assert.Equal(t, "green@example.com", login)
				return models.User{ID: primitive.NewObjectID()}, nil
			},
			createSessionTokenFn: func(_ context.Context, user models.User) (models.Token, error) {
				return models.Token{SignedString: "signed-jwt"}, nil
			},
		},
	}
	h := newTestHandler(t, services)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"green@example.com","password":"s3curepass"}`))
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	services := &service.Services{
		AuthService: &mockAuthService{
			loginFn: func(_ context.Context, _, _ string) (models.User, error) {
				return models.User{}, service.ErrInvalidCredentials
			},
		},
	}
	h := newTestHandler(t, services)

	req := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"username":"greenshopper","password":"wrong"}`))
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "invalid credentials", resp.Message)
}
