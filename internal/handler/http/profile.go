package http

import (
	"encoding/json"
	"net/http"

	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/utils"
	"github.com/eco-conscious/backend/internal/validators"
	"github.com/eco-conscious/backend/models"
)

// userIDFromRequest extracts the authenticated user's ID injected by the
// auth middleware. A missing value means the handler was wired outside the
// protected group, so the request is rejected rather than trusted.
func (h *Handler) userIDFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		logger.FromRequest(r).Error().Msg("no user ID in request context")
		h.writeErrorEnvelope(w, http.StatusUnauthorized, "no token provided")
		return "", false
	}
	return userID, true
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	user, err := h.services.ProfileService.Get(ctx, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	// The password hash is excluded from serialisation at the model level.
	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) editProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.EditProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeErrorEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	patch := models.User{
		Fullname:    req.Fullname,
		Address:     req.Address,
		PhoneNumber: req.PhoneNumber,
	}
	if err := h.validator.Validate(ctx, patch,
		validators.FieldFullname, validators.FieldAddress, validators.FieldPhoneNumber); err != nil {
		log.Err(err).Msg("profile update payload rejected")
		h.respondValidationError(w, err)
		return
	}

	updated, err := h.services.ProfileService.Update(ctx, userID, req.Fullname, req.Address, req.PhoneNumber)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, updated, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.ProfileService.Delete(ctx, userID); err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Str("userID", userID).Msg("account deleted")

	utils.WriteJSON(w, models.MessageResponse{
		Success: true,
		Message: "Account deleted",
	}, http.StatusOK)
}
