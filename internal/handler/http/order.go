package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/utils"
	"github.com/eco-conscious/backend/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	// The body is optional: an order without an explicit address ships to
	// the profile address chosen at checkout by the client.
	var req models.OrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeErrorEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	order, err := h.services.OrderService.Place(ctx, userID, req.Address)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	log.Debug().Str("orderNumber", order.OrderNumber).Msg("order placed")

	utils.WriteJSON(w, order, http.StatusCreated)
}

func (h *Handler) orderHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	orders, err := h.services.OrderService.History(ctx, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, orders, http.StatusOK)
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	order, err := h.services.OrderService.Get(ctx, userID, chi.URLParam(r, "orderID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, order, http.StatusOK)
}
