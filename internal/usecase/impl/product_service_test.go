package impl

import (
	"context"
	"strings"
	"testing"

	"verdant/internal/domain/entity"
	domainerrors "verdant/internal/domain/errors"
	"verdant/internal/domain/repository"
	mockRepo "verdant/internal/mocks/repository"
	mockSvc "verdant/internal/mocks/service"
	"verdant/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// productServiceFixtures holds all test dependencies for product service tests.
type productServiceFixtures struct {
	service     usecase.ProductUsecase
	productRepo *mockRepo.MockProductRepository
	userRepo    *mockRepo.MockUserRepository
	imageStore  *mockSvc.MockImageStore
}

func createTestProductService(t *testing.T) productServiceFixtures {
	productRepo := mockRepo.NewMockProductRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	imageStore := mockSvc.NewMockImageStore(t)

	srv := NewProductService(ProductServiceParams{
		ProductRepo: productRepo,
		UserRepo:    userRepo,
		ImageStore:  imageStore,
		Config:      newTestConfig(),
		Logger:      newTestLogger(),
	})

	return productServiceFixtures{
		service:     srv,
		productRepo: productRepo,
		userRepo:    userRepo,
		imageStore:  imageStore,
	}
}

func TestProductService_CreateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	sellerID := uuid.New()

	fx.productRepo.EXPECT().
		CreateProduct(ctx, mock.AnythingOfType("*entity.Product")).
		Return(nil)

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		SellerID:    sellerID,
		Name:        "Monstera Deliciosa",
		Description: "Large fenestrated leaves.",
		Price:       750,
		Category:    "indoor",
		Subcategory: "aroid",
		ImageURLs:   []string{"https://img.test/monstera.jpg"},
	})
	require.NoError(t, err)
	assert.Equal(t, sellerID, product.SellerID)
	assert.Equal(t, "Monstera Deliciosa", product.Name)
	assert.Equal(t, 750.0, product.Price)
	assert.False(t, product.Sold)
}

func TestProductService_CreateProduct_NonPositivePrice(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	product, err := fx.service.CreateProduct(ctx, &usecase.CreateProductInput{
		SellerID: uuid.New(),
		Name:     "Free Cutting",
		Price:    0,
	})
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestProductService_GetProduct_WithSellerCard(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	sellerID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: sellerID, Name: "Calathea"}, nil)

	fx.userRepo.EXPECT().
		FindByID(ctx, sellerID).
		Return(&entity.User{
			ID:   sellerID,
			Name: "Asha",
			SellerProfile: &entity.SellerProfile{
				UserID:    sellerID,
				StoreName: "Asha's Nursery",
				Bio:       "Rare aroids.",
				AvatarURL: "https://img.test/avatar.jpg",
			},
		}, nil)

	detail, err := fx.service.GetProduct(ctx, productID)
	require.NoError(t, err)
	assert.Equal(t, "Calathea", detail.Product.Name)
	require.NotNil(t, detail.Seller)
	assert.Equal(t, sellerID, detail.Seller.ID)
	assert.Equal(t, "Asha's Nursery", detail.Seller.StoreName)
	assert.Equal(t, "https://img.test/avatar.jpg", detail.Seller.AvatarURL)
}

func TestProductService_GetProduct_OrphanListing(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	sellerID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: sellerID}, nil)

	// Deleted seller account: the listing is still served, without a card.
	fx.userRepo.EXPECT().
		FindByID(ctx, sellerID).
		Return(nil, repository.ErrUserNotFound)

	detail, err := fx.service.GetProduct(ctx, productID)
	require.NoError(t, err)
	assert.NotNil(t, detail.Product)
	assert.Nil(t, detail.Seller)
}

func TestProductService_GetProduct_NotFound(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(nil, repository.ErrProductNotFound)

	detail, err := fx.service.GetProduct(ctx, productID)
	assert.Nil(t, detail)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestProductService_ListProducts_DefaultsAndCaps(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	// Page and page size are normalized before hitting the repository.
	fx.productRepo.EXPECT().
		FindProducts(ctx, entity.ProductFilter{Category: "indoor", Page: 1, PageSize: 20}).
		Return([]*entity.Product{{ID: uuid.New()}}, 1, nil)

	page, err := fx.service.ListProducts(ctx, entity.ProductFilter{Category: "indoor"})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 20, page.PageSize)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Products, 1)
}

func TestProductService_ListProducts_PageSizeCapped(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()

	// newTestConfig caps the page size at 100.
	fx.productRepo.EXPECT().
		FindProducts(ctx, entity.ProductFilter{Page: 2, PageSize: 100}).
		Return([]*entity.Product{}, 0, nil)

	page, err := fx.service.ListProducts(ctx, entity.ProductFilter{Page: 2, PageSize: 500})
	require.NoError(t, err)
	assert.Equal(t, 100, page.PageSize)
}

func TestProductService_UpdateProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	sellerID := uuid.New()

	existing := &entity.Product{
		ID:        productID,
		SellerID:  sellerID,
		Name:      "Pothos",
		Price:     200,
		ImageURLs: []string{"https://img.test/pothos.jpg"},
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(existing, nil)

	fx.productRepo.EXPECT().
		UpdateProduct(ctx, existing).
		Return(nil)

	product, err := fx.service.UpdateProduct(ctx, &usecase.UpdateProductInput{
		ProductID:   productID,
		SellerID:    sellerID,
		Name:        "Golden Pothos",
		Description: "Fast grower.",
		Price:       250,
		Category:    "indoor",
	})
	require.NoError(t, err)
	assert.Equal(t, "Golden Pothos", product.Name)
	assert.Equal(t, 250.0, product.Price)
	// Nil ImageURLs in the input leaves the existing images untouched.
	assert.Equal(t, []string{"https://img.test/pothos.jpg"}, product.ImageURLs)
}

func TestProductService_UpdateProduct_NotOwner(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: uuid.New(), Price: 200}, nil)

	product, err := fx.service.UpdateProduct(ctx, &usecase.UpdateProductInput{
		ProductID: productID,
		SellerID:  uuid.New(),
		Price:     250,
	})
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductOwnershipViolation)
}

func TestProductService_UpdateProduct_SoldIsFrozen(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	sellerID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: sellerID, Price: 200, Sold: true}, nil)

	product, err := fx.service.UpdateProduct(ctx, &usecase.UpdateProductInput{
		ProductID: productID,
		SellerID:  sellerID,
		Price:     250,
	})
	assert.Nil(t, product)
	assert.ErrorIs(t, err, domainerrors.ErrProductAlreadySold)
}

func TestProductService_DeleteProduct_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	sellerID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: sellerID}, nil)

	fx.productRepo.EXPECT().
		DeleteProduct(ctx, productID).
		Return(nil)

	err := fx.service.DeleteProduct(ctx, productID, sellerID)
	assert.NoError(t, err)
}

func TestProductService_ListSellerProducts_Success(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	sellerID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductsBySeller(ctx, sellerID).
		Return([]*entity.Product{
			{ID: uuid.New(), SellerID: sellerID},
			{ID: uuid.New(), SellerID: sellerID, Sold: true},
		}, nil)

	products, err := fx.service.ListSellerProducts(ctx, sellerID)
	require.NoError(t, err)
	assert.Len(t, products, 2)
}

func TestProductService_UploadImage_AppendsURL(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	sellerID := uuid.New()

	product := &entity.Product{
		ID:        productID,
		SellerID:  sellerID,
		ImageURLs: []string{"https://img.test/one.jpg"},
	}

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(product, nil)

	fx.imageStore.EXPECT().
		Save(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "products/"+productID.String()+"/") &&
				strings.HasSuffix(key, ".jpg")
		}), "image/jpeg", mock.Anything).
		Return("https://img.test/two.jpg", nil)

	fx.productRepo.EXPECT().
		UpdateProduct(ctx, product).
		Return(nil)

	url, err := fx.service.UploadImage(ctx, &usecase.UploadImageInput{
		ProductID:   productID,
		SellerID:    sellerID,
		Filename:    "photo.jpg",
		ContentType: "image/jpeg",
		Body:        strings.NewReader("fake image bytes"),
	})
	require.NoError(t, err)
	assert.Equal(t, "https://img.test/two.jpg", url)
	assert.Equal(t, []string{"https://img.test/one.jpg", "https://img.test/two.jpg"}, product.ImageURLs)
}

func TestProductService_UploadImage_SoldProductRejected(t *testing.T) {
	fx := createTestProductService(t)

	ctx := context.Background()
	productID := uuid.New()
	sellerID := uuid.New()

	fx.productRepo.EXPECT().
		FindProductByID(ctx, productID).
		Return(&entity.Product{ID: productID, SellerID: sellerID, Sold: true}, nil)

	url, err := fx.service.UploadImage(ctx, &usecase.UploadImageInput{
		ProductID: productID,
		SellerID:  sellerID,
		Filename:  "photo.jpg",
		Body:      strings.NewReader("fake image bytes"),
	})
	assert.Empty(t, url)
	assert.ErrorIs(t, err, domainerrors.ErrProductAlreadySold)
}
