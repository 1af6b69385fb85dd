package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/service"
	"github.com/eco-conscious/backend/internal/store"
	"github.com/eco-conscious/backend/internal/utils"
	"github.com/eco-conscious/backend/models"
)

// errorStatusMap maps domain sentinels to HTTP statuses. Conflict-style
// errors (taken username, duplicate wishlist entry) surface as 400 to match
// the API's public error contract.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:      http.StatusBadRequest,
	service.ErrUsernameTaken:            http.StatusBadRequest,
	service.ErrEmailTaken:               http.StatusBadRequest,
	service.ErrUserAlreadyExists:        http.StatusBadRequest,
	service.ErrEmptyCart:                http.StatusBadRequest,
	service.ErrInvalidVerificationToken: http.StatusBadRequest,

	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrTokenIsExpired:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrAlreadyInWishlist: http.StatusBadRequest,

	store.ErrUserNotFound:         http.StatusNotFound,
	store.ErrProductNotFound:      http.StatusNotFound,
	store.ErrWishlistItemNotFound: http.StatusNotFound,
	store.ErrCartItemNotFound:     http.StatusNotFound,
	store.ErrOrderNotFound:        http.StatusNotFound,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// respondError maps err to a status and writes the JSON error envelope.
// Unmapped errors come out as a generic 500: their details stay in the logs.
func (h *Handler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("unexpected error")
		message = http.StatusText(http.StatusInternalServerError)
	}

	h.writeErrorEnvelope(w, status, message)
}

// respondValidationError writes a 400 with the validator's field-level
// message.
func (h *Handler) respondValidationError(w http.ResponseWriter, err error) {
	h.writeErrorEnvelope(w, http.StatusBadRequest, err.Error())
}

func (h *Handler) writeErrorEnvelope(w http.ResponseWriter, status int, message string) {
	utils.WriteJSON(w, models.ErrorResponse{
		Error:     http.StatusText(status),
		Message:   message,
		Timestamp: time.Now().UTC(),
	}, status)
}
