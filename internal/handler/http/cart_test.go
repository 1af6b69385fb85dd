package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/eco-conscious/backend/internal/store"
	"github.com/eco-conscious/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAddToCart_Success(t *testing.T) {
	userID := primitive.NewObjectID().Hex()
	productID := primitive.NewObjectID()

	services := authedServices(userID)
	services.CartService = &mockCartService{
		addFn: func(_ context.Context, gotUserID, gotProductID string, quantity int) (models.CartItem, error) {
			assert.Equal(t, userID, gotUserID)
			assert.Equal(t, productID.Hex(), gotProductID)
			assert.Equal(t, 2, quantity)
			return models.CartItem{ProductID: productID, Name: "Eco Sponge", Quantity: 2}, nil
		},
	}
	h := newTestHandler(t, services)

	body := `{"productId":"` + productID.Hex() + `","quantity":2}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(body))
	req.Header.Set("Authorization", "Bearer valid")
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var item models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 2, item.Quantity)
}

func TestAddToCart_MissingProductID(t *testing.T) {
	services := authedServices(primitive.NewObjectID().Hex())
	services.CartService = &mockCartService{}
	h := newTestHandler(t, services)

	req := httptest.NewRequest(http.MethodPost, "/api/cart", strings.NewReader(`{"quantity":1}`))
	req.Header.Set("Authorization", "Bearer valid")
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "productId is required", resp.Message)
}

func TestUpdateCartItem_Success(t *testing.T) {
	userID := primitive.NewObjectID().Hex()
	itemID := primitive.NewObjectID().Hex()

	services := authedServices(userID)
	services.CartService = &mockCartService{
		updateQuantityFn: func(_ context.Context, gotUserID, gotItemID string, quantity int) (models.CartItem, error) {
			assert.Equal(t, userID, gotUserID)
			assert.Equal(t, itemID, gotItemID)
			assert.Equal(t, 5, quantity)
			return models.CartItem{Quantity: 5}, nil
		},
	}
	h := newTestHandler(t, services)

	req := httptest.NewRequest(http.MethodPatch, "/api/cart/"+itemID, strings.NewReader(`{"quantity":5}`))
	req.Header.Set("Authorization", "Bearer valid")
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var item models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))
	assert.Equal(t, 5, item.Quantity)
}

func TestUpdateCartItem_NotFound(t *testing.T) {
	services := authedServices(primitive.NewObjectID().Hex())
	services.CartService = &mockCartService{
		updateQuantityFn: func(_ context.Context, _, _ string, _ int) (models.CartItem, error) {
			return models.CartItem{}, store.ErrCartItemNotFound
		},
	}
	h := newTestHandler(t, services)

	req := httptest.NewRequest(http.MethodPatch, "/api/cart/"+primitive.NewObjectID().Hex(), strings.NewReader(`{"quantity":3}`))
	req.Header.Set("Authorization", "Bearer valid")
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)

	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "cart item not found", resp.Message)
}

func TestRemoveCartItem_Success(t *testing.T) {
	userID := primitive.NewObjectID().Hex()
	itemID := primitive.NewObjectID().Hex()

	services := authedServices(userID)
	services.CartService = &mockCartService{
		removeFn: func(_ context.Context, gotUserID, gotItemID string) error {
			assert.Equal(t, userID, gotUserID)
			assert.Equal(t, itemID, gotItemID)
			return nil
		},
	}
	h := newTestHandler(t, services)

	req := httptest.NewRequest(http.MethodDelete, "/api/cart/"+itemID, nil)
	req.Header.Set("Authorization", "Bearer valid")
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Item removed from cart", resp.Message)
}

func TestListCart_Success(t *testing.T) {
	services := authedServices(primitive.NewObjectID().Hex())
	services.CartService = &mockCartService{
		listFn: func(_ context.Context, _ string) ([]models.CartItem, error) {
			return []models.CartItem{{Name: "Eco Sponge", Quantity: 3}}, nil
		},
	}
	h := newTestHandler(t, services)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.Header.Set("Authorization", "Bearer valid")
	w := httptest.NewRecorder()
	h.Init().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var items []models.CartItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}
