package http

import (
	"encoding/json"
	"net/http"

	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/utils"
	"github.com/eco-conscious/backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// submitFeedback accepts feedback from anyone. The endpoint is public, but
// when the caller happens to present a valid session token the feedback is
// linked to the account; a bad token is simply ignored.
func (h *Handler) submitFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeErrorEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	feedback := models.Feedback{
		Email:   req.Email,
		Message: req.Message,
		Rating:  req.Rating,
	}

	if err := h.validator.Validate(ctx, feedback); err != nil {
		log.Err(err).Msg("feedback payload rejected")
		h.respondValidationError(w, err)
		return
	}

	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		if tokenString, err := getTokenFromAuthHeader(authHeader); err == nil {
			if token, err := h.services.AuthService.ParseToken(ctx, tokenString); err == nil {
				if oid, err := primitive.ObjectIDFromHex(token.UserID); err == nil {
					feedback.UserID = oid
				}
			}
		}
	}

	created, err := h.services.FeedbackService.Submit(ctx, feedback)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}
