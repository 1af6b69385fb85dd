package service

import (
	"context"
	"testing"

	"github.com/eco-conscious/backend/internal/logger"
	"github.com/eco-conscious/backend/internal/mock"
	"github.com/eco-conscious/backend/internal/store"
	"github.com/eco-conscious/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/mock/gomock"
)

func newTestCatalogService(t *testing.T, ctrl *gomock.Controller) (*catalogService, *mock.MockProductRepository) {
	t.Helper()

	mockProducts := mock.NewMockProductRepository(ctrl)
	svc := NewCatalogService(mockProducts, logger.Nop()).(*catalogService)

	return svc, mockProducts
}

func TestCatalogService_Search_EmptyQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestCatalogService(t, ctrl)

	_, err := svc.Search(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCatalogService_Search_TrimsQuery(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProducts := newTestCatalogService(t, ctrl)
	ctx := context.Background()

	mockProducts.EXPECT().Search(ctx, "bamboo").Return([]models.Product{{Name: "Bamboo Toothbrush"}}, nil)

	products, err := svc.Search(ctx, "  bamboo  ")
	require.NoError(t, err)
	assert.Len(t, products, 1)
}

func TestCatalogService_Alternatives_EmptyResultIsValid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProducts := newTestCatalogService(t, ctrl)
	ctx := context.Background()
	productID := primitive.NewObjectID().Hex()

	mockProducts.EXPECT().FindAlternatives(ctx, "drinkware", productID).Return([]models.Product{}, nil)

	alternatives, err := svc.Alternatives(ctx, "drinkware", productID)
	require.NoError(t, err)
	assert.Empty(t, alternatives, "no greener option means the product leads its category")
}

func TestCatalogService_Alternatives_MissingCategory(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestCatalogService(t, ctrl)

	_, err := svc.Alternatives(context.Background(), "", primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestCatalogService_BestProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProducts := newTestCatalogService(t, ctrl)
	ctx := context.Background()

	best := models.Product{Name: "Bamboo Toothbrush", EcoScore: 97}
	mockProducts.EXPECT().BestInCategory(ctx, "hygiene").Return(best, nil)

	got, err := svc.BestProduct(ctx, "hygiene")
	require.NoError(t, err)
	assert.Equal(t, best, got)
}

func TestCatalogService_Get_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockProducts := newTestCatalogService(t, ctrl)
	ctx := context.Background()
	productID := primitive.NewObjectID().Hex()

	mockProducts.EXPECT().FindByID(ctx, productID).Return(models.Product{}, store.ErrProductNotFound)

	_, err := svc.Get(ctx, productID)
	assert.ErrorIs(t, err, store.ErrProductNotFound)
}
