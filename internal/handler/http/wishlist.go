package http

import (
	"encoding/json"
	"net/http"

	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/utils"
	"github.com/eco-conscious/backend/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listWishlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	items, err := h.services.WishlistService.List(ctx, userID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, items, http.StatusOK)
}

func (h *Handler) addToWishlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	var req models.WishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		h.writeErrorEnvelope(w, http.StatusBadRequest, "Invalid JSON was passed")
		return
	}
	if req.ProductID == "" {
		h.writeErrorEnvelope(w, http.StatusBadRequest, "productId is required")
		return
	}

	item, err := h.services.WishlistService.Add(ctx, userID, req.ProductID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) removeFromWishlist(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := h.userIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.services.WishlistService.Remove(ctx, userID, chi.URLParam(r, "productID")); err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Success: true,
		Message: "Product removed from wishlist",
	}, http.StatusOK)
}
