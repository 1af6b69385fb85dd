// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/eco-conscious/backend/internal/config"
	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/store"
	"github.com/eco-conscious/backend/internal/utils"
	"github.com/eco-conscious/backend/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, email verification, credential checks, and
// the JWT token lifecycle using a UserRepository for persistence and bcrypt
// for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// mailer delivers the verification email. Delivery failures during
	// signup are logged, never surfaced: the account stays usable for the
	// resend flow.
	mailer Mailer

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a session JWT remains valid.
	tokenDuration time.Duration

	// verificationTokenDuration controls how long an emailed verification
	// link remains redeemable.
	verificationTokenDuration time.Duration

	// baseURL is the public base of the API, used when composing
	// verification links.
	baseURL string

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given UserRepository
// and mailer, populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, mailer Mailer, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:            userRepository,
		mailer:                    mailer,
		tokenSignKey:              cfg.TokenSignKey,
		tokenIssuer:               cfg.TokenIssuer,
		tokenDuration:             cfg.TokenDuration,
		verificationTokenDuration: cfg.VerificationTokenDuration,
		baseURL:                   cfg.BaseURL,
		logger:                    logger,
	}
}

// Signup creates a new unverified account.
//
// The pre-insert lookup exists only to name the colliding field in the
// error; the insert itself is the atomic uniqueness check, so a concurrent
// duplicate that slips past the lookup surfaces as ErrUserAlreadyExists.
//
// After the insert a 24h verification token is issued, embedded into a
// <baseURL>/verify?token=... link, and mailed. Mail failure is logged and
// the signup still succeeds: the resend flow covers recovery.
func (a *authService) Signup(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Username == "" || user.Email == "" || user.Password == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	existing, err := a.userRepository.FindByUsernameOrEmail(ctx, user.Username, user.Email)
	switch {
	case err == nil:
		if existing.Username == user.Username {
			return models.User{}, ErrUsernameTaken
		}
		return models.User{}, ErrEmailTaken
	case !errors.Is(err, store.ErrUserNotFound):
		log.Err(err).Str("username", user.Username).Msg("duplicate lookup failed")
		return models.User{}, fmt.Errorf("duplicate lookup failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}
	user.Password = string(hash)
	user.IsVerified = false

	created, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			return models.User{}, ErrUserAlreadyExists
		}
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	a.sendVerificationMail(ctx, created)

	return created, nil
}

// Verify redeems an emailed verification token.
//
// The subject claim identifies the account; redemption is idempotent, so a
// second click on the same link still reports success.
//
// Session tokens are signed with the same key and issuer but carry no email
// claim, so the claim is required here and must match the account it names.
// Without that check a logged-in user could redeem their own session token
// and verify an address they never received mail at.
func (a *authService) Verify(ctx context.Context, tokenString string) (models.User, error) {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if utils.IsTokenExpired(err) {
			return models.User{}, ErrTokenIsExpired
		}
		return models.User{}, ErrInvalidVerificationToken
	}

	if token.TokenClaims.Email == "" {
		log.Debug().Str("userID", token.UserID).Msg("token without email claim presented for verification")
		return models.User{}, ErrInvalidVerificationToken
	}

	user, err := a.userRepository.FindByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidVerificationToken
		}
		log.Err(err).Str("userID", token.UserID).Msg("user lookup for verification failed")
		return models.User{}, fmt.Errorf("user lookup for verification failed: %w", err)
	}

	if user.Email != token.TokenClaims.Email {
		log.Debug().Str("userID", token.UserID).Msg("verification token email claim does not match account")
		return models.User{}, ErrInvalidVerificationToken
	}

	if err := a.userRepository.MarkVerified(ctx, token.UserID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidVerificationToken
		}
		log.Err(err).Str("userID", token.UserID).Msg("marking user verified failed")
		return models.User{}, fmt.Errorf("marking user verified failed: %w", err)
	}

	user.IsVerified = true

	return user, nil
}

// ResendVerification re-sends the verification email.
//
// Unknown addresses and already-verified accounts are treated exactly like
// a successful resend so the endpoint cannot be used to probe for accounts.
// Mail delivery failures are likewise only logged.
func (a *authService) ResendVerification(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if email == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Debug().Msg("resend requested for unknown email")
			return nil
		}
		log.Err(err).Msg("user lookup by email failed")
		return fmt.Errorf("user lookup by email failed: %w", err)
	}

	if user.IsVerified {
		log.Debug().Str("userID", user.ID.Hex()).Msg("resend requested for verified account")
		return nil
	}

	a.sendVerificationMail(ctx, user)

	return nil
}

// Login authenticates by username or email plus password.
//
// Unknown accounts and wrong passwords both collapse into
// ErrInvalidCredentials so the response never reveals which part failed.
func (a *authService) Login(ctx context.Context, login, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		return models.User{}, ErrInvalidCredentials
	}

	user, err := a.userRepository.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Msg("user search by login failed")
		return models.User{}, fmt.Errorf("user search by login failed: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}

	return user, nil
}

// CreateSessionToken issues a signed session JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateSessionToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID.Hex(), "", a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw session JWT string.
//
// Expiry is the only failure mode callers distinguish (the auth gate
// reports it separately); everything else is normalised to
// ErrTokenIsExpiredOrInvalid so that callers do not need to inspect
// low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if utils.IsTokenExpired(err) {
			return models.Token{}, ErrTokenIsExpired
		}
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

// sendVerificationMail issues a fresh verification token for user and
// dispatches the email. Failures are logged only: verification mail is
// recoverable through the resend flow, the account itself must survive.
func (a *authService) sendVerificationMail(ctx context.Context, user models.User) {
	log := logger.FromContext(ctx)

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID.Hex(), user.Email, a.verificationTokenDuration, a.tokenSignKey)
	if err != nil {
		log.Err(err).Str("userID", user.ID.Hex()).Msg("verification token generation failed")
		return
	}

	verifyURL := fmt.Sprintf("%s/verify?token=%s", a.baseURL, url.QueryEscape(token.SignedString))
	if err := a.mailer.SendVerificationEmail(ctx, user.Email, user.Fullname, verifyURL); err != nil {
		log.Err(err).Str("userID", user.ID.Hex()).Msg("verification email delivery failed")
	}
}
