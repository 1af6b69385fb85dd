package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/eco-conscious/backend/internal/config"
	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/mock"
	"github.com/eco-conscious/backend/internal/store"
	"github.com/eco-conscious/backend/internal/utils"
	"github.com/eco-conscious/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

const testSignKey = "test-sign-key"

// newTestAuthService builds an authService over mocked collaborators.
func newTestAuthService(t *testing.T, ctrl *gomock.Controller) (*authService, *mock.MockUserRepository, *mock.MockMailer) {
	t.Helper()

	mockUsers := mock.NewMockUserRepository(ctrl)
	mockMailer := mock.NewMockMailer(ctrl)

	cfg := config.App{
		TokenSignKey:              testSignKey,
		TokenIssuer:               "eco-conscious",
		TokenDuration:             time.Hour,
		VerificationTokenDuration: 24 * time.Hour,
		BaseURL:                   "http://localhost:3000",
	}

	svc := NewAuthService(mockUsers, mockMailer, cfg, logger.Nop()).(*authService)

	return svc, mockUsers, mockMailer
}

func newSignupUser() models.User {
	return models.User{
		Username:    "greenshopper",
		Fullname:    "Green Shopper",
		Email:       "green@example.com",
		Password:    "s3curepass",
		Address:     "1 Forest Lane",
		PhoneNumber: "5551234567",
	}
}

func TestAuthService_Signup_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockMailer := newTestAuthService(t, ctrl)
	ctx := context.Background()
	user := newSignupUser()

	createdID := primitive.NewObjectID()

	gomock.InOrder(
		mockUsers.EXPECT().FindByUsernameOrEmail(ctx, user.Username, user.Email).
			Return(models.User{}, store.ErrUserNotFound),
		mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, u models.User) (models.User, error) {
				assert.NotEqual(t, "s3curepass", u.Password, "password must be hashed before storage")
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.Password), []byte("s3curepass")))
				assert.False(t, u.IsVerified)
				u.ID = createdID
				return u, nil
			},
		),
		mockMailer.EXPECT().SendVerificationEmail(ctx, user.Email, user.Fullname, gomock.Any()).DoAndReturn(
			func(_ context.Context, _, _, verifyURL string) error {
				assert.True(t, strings.HasPrefix(verifyURL, "http://localhost:3000/verify?token="))
				return nil
			},
		),
	)

	created, err := svc.Signup(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, createdID, created.ID)
}

func TestAuthService_Signup_UsernameTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()
	user := newSignupUser()

	mockUsers.EXPECT().FindByUsernameOrEmail(ctx, user.Username, user.Email).
		Return(models.User{Username: user.Username, Email: "someone-else@example.com"}, nil)

	_, err := svc.Signup(ctx, user)
	assert.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAuthService_Signup_EmailTaken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()
	user := newSignupUser()

	mockUsers.EXPECT().FindByUsernameOrEmail(ctx, user.Username, user.Email).
		Return(models.User{Username: "someoneelse", Email: user.Email}, nil)

	_, err := svc.Signup(ctx, user)
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestAuthService_Signup_DuplicateRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()
	user := newSignupUser()

	// The lookup sees nothing, a concurrent signup wins the insert.
	mockUsers.EXPECT().FindByUsernameOrEmail(ctx, user.Username, user.Email).
		Return(models.User{}, store.ErrUserNotFound)
	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).
		Return(models.User{}, store.ErrUserAlreadyExists)

	_, err := svc.Signup(ctx, user)
	assert.ErrorIs(t, err, ErrUserAlreadyExists)
}

func TestAuthService_Signup_MailFailureStillSucceeds(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, mockMailer := newTestAuthService(t, ctrl)
	ctx := context.Background()
	user := newSignupUser()

	mockUsers.EXPECT().FindByUsernameOrEmail(ctx, user.Username, user.Email).
		Return(models.User{}, store.ErrUserNotFound)
	mockUsers.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.User) (models.User, error) {
			u.ID = primitive.NewObjectID()
			return u, nil
		},
	)
	mockMailer.EXPECT().SendVerificationEmail(ctx, user.Email, user.Fullname, gomock.Any()).
		Return(errors.New("smtp relay unreachable"))

	created, err := svc.Signup(ctx, user)
	require.NoError(t, err, "mail delivery failure must not fail the signup")
	assert.False(t, created.ID.IsZero())
}

func TestAuthService_Signup_MissingFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthService(t, ctrl)

	_, err := svc.Signup(context.Background(), models.User{Username: "only-a-username"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestAuthService_Verify_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	token, err := utils.GenerateJWTToken("eco-conscious", userID.Hex(), "green@example.com", 24*time.Hour, testSignKey)
	require.NoError(t, err)

	gomock.InOrder(
		mockUsers.EXPECT().FindByID(ctx, userID.Hex()).
			Return(models.User{ID: userID, Email: "green@example.com"}, nil),
		mockUsers.EXPECT().MarkVerified(ctx, userID.Hex()).Return(nil),
	)

	verified, err := svc.Verify(ctx, token.SignedString)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
}

func TestAuthService_Verify_RejectsSessionToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	// A valid session token shares the sign key and issuer with
	// verification tokens but carries no email claim. Redeeming it must
	// fail before any repository call, so no expectations are set.
	token, err := svc.CreateSessionToken(ctx, models.User{ID: primitive.NewObjectID()})
	require.NoError(t, err)

	_, err = svc.Verify(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrInvalidVerificationToken)
}

func TestAuthService_Verify_EmailClaimMismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	token, err := utils.GenerateJWTToken("eco-conscious", userID.Hex(), "old@example.com", 24*time.Hour, testSignKey)
	require.NoError(t, err)

	mockUsers.EXPECT().FindByID(ctx, userID.Hex()).
		Return(models.User{ID: userID, Email: "green@example.com"}, nil)

	_, err = svc.Verify(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrInvalidVerificationToken)
}

func TestAuthService_Verify_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthService(t, ctrl)

	token, err := utils.GenerateJWTToken("eco-conscious", primitive.NewObjectID().Hex(), "", time.Nanosecond, testSignKey)
	require.NoError(t, err)
	time.Sleep(5 * time.Millisecond)

	_, err = svc.Verify(context.Background(), token.SignedString)
	assert.ErrorIs(t, err, ErrTokenIsExpired)
}

func TestAuthService_Verify_Garbage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthService(t, ctrl)

	_, err := svc.Verify(context.Background(), "not.a.token")
	assert.ErrorIs(t, err, ErrInvalidVerificationToken)
}

func TestAuthService_Verify_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	userID := primitive.NewObjectID()
	token, err := utils.GenerateJWTToken("eco-conscious", userID.Hex(), "green@example.com", 24*time.Hour, testSignKey)
	require.NoError(t, err)

	mockUsers.EXPECT().FindByID(ctx, userID.Hex()).Return(models.User{}, store.ErrUserNotFound)

	_, err = svc.Verify(ctx, token.SignedString)
	assert.ErrorIs(t, err, ErrInvalidVerificationToken)
}

func TestAuthService_ResendVerification(t *testing.T) {
	userID := primitive.NewObjectID()

	tests := []struct {
		name      string
		user      models.User
		lookupErr error
		wantMail  bool
	}{
		{
			name:      "unknown email is silently ignored",
			lookupErr: store.ErrUserNotFound,
		},
		{
			name: "verified account is silently ignored",
			user: models.User{ID: userID, Email: "green@example.com", IsVerified: true},
		},
		{
			name:     "unverified account gets a fresh mail",
			user:     models.User{ID: userID, Email: "green@example.com", Fullname: "Green Shopper"},
			wantMail: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockUsers, mockMailer := newTestAuthService(t, ctrl)
			ctx := context.Background()

			mockUsers.EXPECT().FindByEmail(ctx, "green@example.com").Return(tt.user, tt.lookupErr)
			if tt.wantMail {
				mockMailer.EXPECT().SendVerificationEmail(ctx, tt.user.Email, tt.user.Fullname, gomock.Any()).Return(nil)
			}

			err := svc.ResendVerification(ctx, "green@example.com")
			assert.NoError(t, err)
		})
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockUsers, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("s3curepass"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := models.User{ID: primitive.NewObjectID(), Username: "greenshopper", Password: string(hash)}
	mockUsers.EXPECT().FindByLogin(ctx, "greenshopper").Return(stored, nil)

	user, err := svc.Login(ctx, "greenshopper", "s3curepass")
	require.NoError(t, err)
	assert.Equal(t, stored.ID, user.ID)
}

func TestAuthService_Login_Failures(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3curepass"), bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name      string
		login     string
		password  string
		stored    models.User
		lookupErr error
		skipRepo  bool
	}{
		{
			name:     "empty credentials",
			skipRepo: true,
		},
		{
			name:      "unknown account",
			login:     "nobody",
			password:  "whatever",
			lookupErr: store.ErrUserNotFound,
		},
		{
			name:     "wrong password",
			login:    "greenshopper",
			password: "wrongpass",
			stored:   models.User{Username: "greenshopper", Password: string(hash)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, mockUsers, _ := newTestAuthService(t, ctrl)
			ctx := context.Background()

			if !tt.skipRepo {
				mockUsers.EXPECT().FindByLogin(ctx, tt.login).Return(tt.stored, tt.lookupErr)
			}

			_, err := svc.Login(ctx, tt.login, tt.password)
			assert.ErrorIs(t, err, ErrInvalidCredentials)
		})
	}
}

func TestAuthService_SessionTokenRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	user := models.User{ID: primitive.NewObjectID()}

	token, err := svc.CreateSessionToken(ctx, user)
	require.NoError(t, err)
	require.NotEmpty(t, token.SignedString)

	parsed, err := svc.ParseToken(ctx, token.SignedString)
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), parsed.UserID)
}

func TestAuthService_ParseToken_Tampered(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _ := newTestAuthService(t, ctrl)
	ctx := context.Background()

	token, err := svc.CreateSessionToken(ctx, models.User{ID: primitive.NewObjectID()})
	require.NoError(t, err)

	_, err = svc.ParseToken(ctx, token.SignedString+"x")
	assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
}
