package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"verdant/internal/delivery/http/middleware"
	"verdant/internal/delivery/http/response"
	"verdant/internal/domain/entity"
	"verdant/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ProductHandler holds dependencies for product-related handlers.
type ProductHandler struct {
	uc     usecase.ProductUsecase
	logger *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(uc usecase.ProductUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		uc:     uc,
		logger: logger,
	}
}

type productRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Category    string   `json:"category" validate:"required"`
	Subcategory string   `json:"subcategory"`
	ImageURLs   []string `json:"image_urls"`
}

// CreateProduct handles a seller publishing a new listing.
func (h *ProductHandler) CreateProduct(c echo.Context) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.CreateProduct(c.Request().Context(), &usecase.CreateProductInput{
		SellerID:    sellerID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toProductView(product))
}

// GetProduct handles the public product detail page.
func (h *ProductHandler) GetProduct(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	detail, err := h.uc.GetProduct(c.Request().Context(), productID)
	if err != nil {
		return errors.WithStack(err)
	}

	body := map[string]any{
		"product": toProductView(detail.Product),
	}
	if detail.Seller != nil {
		body["seller"] = detail.Seller
	}

	return response.Success(c, http.StatusOK, body)
}

// ListProducts handles the public browse page with filters and pagination.
func (h *ProductHandler) ListProducts(c echo.Context) error {
	filter, err := parseProductFilter(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	page, err := h.uc.ListProducts(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products":  toProductViews(page.Products),
		"total":     page.Total,
		"page":      page.Page,
		"page_size": page.PageSize,
	})
}

// ListSellerProducts handles a seller's portfolio view, sold listings
// included. The portfolio is public; sellers use it for their own listings
// and buyers browse it from the seller card.
func (h *ProductHandler) ListSellerProducts(c echo.Context) error {
	sellerID, err := uuid.Parse(c.Param("sellerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller ID")
	}

	products, err := h.uc.ListSellerProducts(c.Request().Context(), sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"products": toProductViews(products),
	})
}

// UpdateProduct handles a seller editing an unsold listing.
func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid product input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	product, err := h.uc.UpdateProduct(c.Request().Context(), &usecase.UpdateProductInput{
		ProductID:   productID,
		SellerID:    sellerID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Subcategory: req.Subcategory,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toProductView(product))
}

// DeleteProduct handles a seller removing an unsold listing.
func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), productID, sellerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Product deleted"})
}

// UploadImage handles a multipart image upload for a listing.
func (h *ProductHandler) UploadImage(c echo.Context) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Missing 'image' form file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	url, err := h.uc.UploadImage(c.Request().Context(), &usecase.UploadImageInput{
		ProductID:   productID,
		SellerID:    sellerID,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"url": url})
}

// parseProductFilter reads browse filters from query parameters. Zero values
// mean "no constraint"; the usecase applies paging defaults and caps.
func parseProductFilter(c echo.Context) (entity.ProductFilter, error) {
	filter := entity.ProductFilter{
		Search:      c.QueryParam("search"),
		Category:    c.QueryParam("category"),
		Subcategory: c.QueryParam("subcategory"),
		SortBy:      c.QueryParam("sort_by"),
	}

	if raw := c.QueryParam("seller_id"); raw != "" {
		sellerID, err := uuid.Parse(raw)
		if err != nil {
			return filter, errors.New("invalid seller_id")
		}
		filter.SellerID = &sellerID
	}

	if raw := c.QueryParam("min_price"); raw != "" {
		minPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, errors.New("invalid min_price")
		}
		filter.MinPrice = &minPrice
	}

	if raw := c.QueryParam("max_price"); raw != "" {
		maxPrice, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return filter, errors.New("invalid max_price")
		}
		filter.MaxPrice = &maxPrice
	}

	if raw := c.QueryParam("available"); raw != "" {
		unsoldOnly, err := strconv.ParseBool(raw)
		if err != nil {
			return filter, errors.New("invalid available")
		}
		filter.UnsoldOnly = unsoldOnly
	}

	if raw := c.QueryParam("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return filter, errors.New("invalid page")
		}
		filter.Page = page
	}

	if raw := c.QueryParam("page_size"); raw != "" {
		pageSize, err := strconv.Atoi(raw)
		if err != nil || pageSize < 1 {
			return filter, errors.New("invalid page_size")
		}
		filter.PageSize = pageSize
	}

	return filter, nil
}
