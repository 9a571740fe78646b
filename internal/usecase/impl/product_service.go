// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"path"

	"verdant/config"
	deliverycontext "verdant/internal/delivery/context"
	"verdant/internal/domain/entity"
	domainerrors "verdant/internal/domain/errors"
	"verdant/internal/domain/repository"
	"verdant/internal/domain/service"
	"verdant/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	fallbackDefaultPageSize = 20
	fallbackMaxPageSize     = 100
)

// productService implements the ProductUsecase interface.
type productService struct {
	productRepo     repository.ProductRepository
	userRepo        repository.UserRepository
	imageStore      service.ImageStore
	defaultPageSize int
	maxPageSize     int
	logger          *slog.Logger
}

// ProductServiceParams holds dependencies for ProductService, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	UserRepo    repository.UserRepository
	ImageStore  service.ImageStore
	Config      *config.Config
	Logger      *slog.Logger
}

// NewProductService is the constructor for productService.
func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	defaultPageSize := fallbackDefaultPageSize
	maxPageSize := fallbackMaxPageSize
	if params.Config != nil && params.Config.Market != nil {
		if params.Config.Market.DefaultPageSize > 0 {
			defaultPageSize = params.Config.Market.DefaultPageSize
		}
		if params.Config.Market.MaxPageSize > 0 {
			maxPageSize = params.Config.Market.MaxPageSize
		}
	}

	return &productService{
		productRepo:     params.ProductRepo,
		userRepo:        params.UserRepo,
		imageStore:      params.ImageStore,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
		logger:          params.Logger,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProduct publishes a new listing for a seller.
func (srv *productService) CreateProduct(ctx context.Context, input *usecase.CreateProductInput) (*entity.Product, error) {
	srv.log(ctx).Info("Creating product", slog.Any("sellerID", input.SellerID), slog.String("name", input.Name))

	if input.Price <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must be positive")
	}

	product := &entity.Product{
		SellerID:    input.SellerID,
		Name:        input.Name,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Subcategory: input.Subcategory,
		ImageURLs:   input.ImageURLs,
	}

	if err := srv.productRepo.CreateProduct(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to create product", slog.Any("sellerID", input.SellerID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create product")
	}

	return product, nil
}

// GetProduct returns a listing with its seller's public card. A missing
// seller yields a nil card so clients can render the orphan listing view.
func (srv *productService) GetProduct(ctx context.Context, id uuid.UUID) (*usecase.ProductDetail, error) {
	product, err := srv.productRepo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	detail := &usecase.ProductDetail{Product: product}

	seller, err := srv.userRepo.FindByID(ctx, product.SellerID)
	if err != nil {
		if !errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(err, "failed to load seller for product")
		}

		srv.log(ctx).Warn("Product has no seller record", slog.Any("productID", id), slog.Any("sellerID", product.SellerID))

		return detail, nil
	}

	detail.Seller = sellerCardOf(seller)

	return detail, nil
}

// ListProducts returns one page of filtered listings.
func (srv *productService) ListProducts(ctx context.Context, filter entity.ProductFilter) (*usecase.ProductPage, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = srv.defaultPageSize
	}
	if filter.PageSize > srv.maxPageSize {
		filter.PageSize = srv.maxPageSize
	}

	products, total, err := srv.productRepo.FindProducts(ctx, filter)
	if err != nil {
		srv.log(ctx).Error("Failed to list products", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list products")
	}

	return &usecase.ProductPage{
		Products: products,
		Total:    total,
		Page:     filter.Page,
		PageSize: filter.PageSize,
	}, nil
}

// ListSellerProducts returns a seller's full portfolio.
func (srv *productService) ListSellerProducts(ctx context.Context, sellerID uuid.UUID) ([]*entity.Product, error) {
	products, err := srv.productRepo.FindProductsBySeller(ctx, sellerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list seller products")
	}

	return products, nil
}

// UpdateProduct modifies an unsold listing owned by the caller.
func (srv *productService) UpdateProduct(ctx context.Context, input *usecase.UpdateProductInput) (*entity.Product, error) {
	product, err := srv.loadOwnedEditableProduct(ctx, input.ProductID, input.SellerID)
	if err != nil {
		return nil, err
	}

	if input.Price <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "price must be positive")
	}

	product.Name = input.Name
	product.Description = input.Description
	product.Price = input.Price
	product.Category = input.Category
	product.Subcategory = input.Subcategory
	if input.ImageURLs != nil {
		product.ImageURLs = input.ImageURLs
	}

	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		srv.log(ctx).Error("Failed to update product", slog.Any("productID", input.ProductID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update product")
	}

	return product, nil
}

// DeleteProduct removes an unsold listing owned by the caller.
func (srv *productService) DeleteProduct(ctx context.Context, productID, sellerID uuid.UUID) error {
	if _, err := srv.loadOwnedEditableProduct(ctx, productID, sellerID); err != nil {
		return err
	}

	if err := srv.productRepo.DeleteProduct(ctx, productID); err != nil {
		srv.log(ctx).Error("Failed to delete product", slog.Any("productID", productID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete product")
	}

	srv.log(ctx).Info("Deleted product", slog.Any("productID", productID), slog.Any("sellerID", sellerID))

	return nil
}

// UploadImage stores one image for a listing and appends its URL.
func (srv *productService) UploadImage(ctx context.Context, input *usecase.UploadImageInput) (string, error) {
	product, err := srv.loadOwnedEditableProduct(ctx, input.ProductID, input.SellerID)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("products/%s/%s%s", product.ID, uuid.New(), path.Ext(input.Filename))

	url, err := srv.imageStore.Save(ctx, key, input.ContentType, input.Body)
	if err != nil {
		srv.log(ctx).Error("Failed to store product image", slog.Any("productID", product.ID), slog.Any("error", err))

		return "", errors.Wrap(err, "failed to store product image")
	}

	product.ImageURLs = append(product.ImageURLs, url)
	if err := srv.productRepo.UpdateProduct(ctx, product); err != nil {
		return "", errors.Wrap(err, "failed to attach image to product")
	}

	return url, nil
}

func (srv *productService) loadOwnedEditableProduct(ctx context.Context, productID, sellerID uuid.UUID) (*entity.Product, error) {
	product, err := srv.productRepo.FindProductByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProductNotFound, "product lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	if !product.OwnedBy(sellerID) {
		return nil, errors.Wrap(domainerrors.ErrProductOwnershipViolation, "product not owned by caller")
	}

	if !product.Editable() {
		return nil, errors.Wrap(domainerrors.ErrProductAlreadySold, "sold products are frozen")
	}

	return product, nil
}

func sellerCardOf(user *entity.User) *entity.SellerCard {
	card := &entity.SellerCard{
		ID:   user.ID,
		Name: user.Name,
	}
	if user.SellerProfile != nil {
		card.StoreName = user.SellerProfile.StoreName
		card.Bio = user.SellerProfile.Bio
		card.AvatarURL = user.SellerProfile.AvatarURL
	}

	return card
}
