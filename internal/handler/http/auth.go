package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/service"
	"github.com/eco-conscious/backend/internal/utils"
	"github.com/eco-conscious/backend/models"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeErrorEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	user := models.User{
		Username:    req.Username,
		Fullname:    req.Fullname,
		Email:       req.Email,
		Password:    req.Password,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	}

	if err := h.validator.Validate(ctx, user); err != nil {
		log.Err(err).Msg("signup payload rejected")
		h.respondValidationError(w, err)
		return
	}

	created, err := h.services.AuthService.Signup(ctx, user)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Str("userID", created.ID.Hex()).Msg("user signed up")

	utils.WriteJSON(w, models.SignupResponse{
		Success:              true,
		Message:              "Signup successful. Please check your email to verify your account.",
		UserID:               created.ID.Hex(),
		Email:                created.Email,
		RequiresVerification: true,
	}, http.StatusCreated)
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	tokenString := r.URL.Query().Get("token")
	if tokenString == "" {
		h.writeErrorEnvelope(w, http.StatusBadRequest, "verification token is required")
		return
	}

	verified, err := h.services.AuthService.Verify(ctx, tokenString)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTokenIsExpired):
			log.Err(err).Msg("verification link expired")
			h.writeErrorEnvelope(w, http.StatusUnauthorized, "verification link expired")
			return
		default:
			h.respondError(w, r, err)
			return
		}
	}

	log.Debug().Str("userID", verified.ID.Hex()).Msg("email verified")

	utils.WriteJSON(w, models.VerifyResponse{
		Success:  true,
		Message:  "Email verified successfully",
		Verified: true,
	}, http.StatusOK)
}

func (h *Handler) resendVerification(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.ResendVerificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeErrorEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	if err := h.services.AuthService.ResendVerification(ctx, req.Email); err != nil {
		h.respondError(w, r, err)
		return
	}

	// The body stays the same whether or not the address has an account.
	utils.WriteJSON(w, models.MessageResponse{
		Success: true,
		Message: "If an account exists for this address, a verification email has been sent.",
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeErrorEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	login := req.Username
	if login == "" {
		login = req.Email
	}

	user, err := h.services.AuthService.Login(ctx, login, req.Password)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateSessionToken(ctx, user)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		h.writeErrorEnvelope(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	log.Debug().Str("userID", user.ID.Hex()).Msg("user successfully logged in")

	w.Header().Set("Authorization", fmt.Sprintf("Bearer %s", token.SignedString))
	utils.WriteJSON(w, models.LoginResponse{
		Token:    token.SignedString,
		Verified: user.IsVerified,
	}, http.StatusOK)
}
