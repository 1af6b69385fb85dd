package http

import (
	"net/http"
	"strings"

	"github.com/eco-conscious/backend/internal/utils"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.services.CatalogService.List(ctx, r.URL.Query().Get("category"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	product, err := h.services.CatalogService.Get(ctx, chi.URLParam(r, "productID"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, product, http.StatusOK)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if query == "" {
		h.writeErrorEnvelope(w, http.StatusBadRequest, "Search query is required")
		return
	}

	products, err := h.services.CatalogService.Search(ctx, query)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

// alternatives lists greener same-category products. An empty list is a
// valid 200: the product already leads its category.
func (h *Handler) alternatives(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	category := chi.URLParam(r, "category")
	productID := chi.URLParam(r, "productID")

	products, err := h.services.CatalogService.Alternatives(ctx, category, productID)
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, products, http.StatusOK)
}

func (h *Handler) bestProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	best, err := h.services.CatalogService.BestProduct(ctx, chi.URLParam(r, "category"))
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	utils.WriteJSON(w, best, http.StatusOK)
}
