package http

import (
	"net/http"
	"time"

	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/store"
	"github.com/eco-conscious/backend/internal/utils"
	"github.com/eco-conscious/backend/models"
)

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.WelcomeResponse{
		Message: "Welcome to the Eco-Conscious API",
		Version: h.version,
		Health:  "/health",
	}, http.StatusOK)
}

// health reports liveness plus the reachability of the document store. The
// endpoint always answers 200; the Database field carries the verdict.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	database := "Connected"
	if err := h.db.Ping(ctx); err != nil {
		log.Err(err).
			Stringer("classification", store.ClassifyMongoError(err)).
			Msg("health check: database unreachable")
		database = "Disconnected"
	}

	utils.WriteJSON(w, models.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC(),
		Database:  database,
	}, http.StatusOK)
}

// notFound is the JSON 404 envelope used for unmatched routes and for
// known routes hit with an unsupported method.
func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.writeErrorEnvelope(w, http.StatusNotFound, "Route not found")
}
