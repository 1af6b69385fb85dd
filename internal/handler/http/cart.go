package http

import (
	"encoding/json"
	"net/http"

	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/utils"
	"github.com/eco-conscious/backend/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	items, err := h.services.CartService.List(ctx, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) addToCart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CartAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeErrorEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}
	if req.ProductID == "" {
		h.writeErrorEnvelope(w, http.StatusBadRequest, "productId is required")
		return
	}

	item, err := h.services.CartService.Add(ctx, userID, req.ProductID, req.Quantity)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.CartUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeErrorEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}

	item, err := h.services.CartService.UpdateQuantity(ctx, userID, chi.URLParam(r, "itemID"), req.Quantity)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.CartService.Remove(ctx, userID, chi.URLParam(r, "itemID")); err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Success: true,
		Message: "Item removed from cart",
	}, http.StatusOK)
}
