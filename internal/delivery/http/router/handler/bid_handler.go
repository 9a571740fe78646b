package handler

import (
	"log/slog"
	"net/http"

	"verdant/internal/delivery/http/middleware"
	"verdant/internal/delivery/http/response"
	"verdant/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// BidHandler holds dependencies for bid-related handlers.
type BidHandler struct {
	uc     usecase.BidUsecase
	logger *slog.Logger
}

// NewBidHandler is the constructor for BidHandler, injected by Fx.
func NewBidHandler(uc usecase.BidUsecase, logger *slog.Logger) *BidHandler {
	return &BidHandler{
		uc:     uc,
		logger: logger,
	}
}

type placeBidRequest struct {
	ProductID string  `json:"product_id" validate:"required,uuid"`
	Amount    float64 `json:"amount" validate:"required,gt=0"`
	Message   string  `json:"message"`
}

// PlaceBid handles a buyer placing a bid on a product.
func (h *BidHandler) PlaceBid(c echo.Context) error {
	buyerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req placeBidRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid bid input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	bid, err := h.uc.PlaceBid(c.Request().Context(), &usecase.PlaceBidInput{
		ProductID: productID,
		BuyerID:   buyerID,
		Amount:    req.Amount,
		Message:   req.Message,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toBidView(bid))
}

// ListProductBids handles a seller listing the bids on one of their products.
func (h *BidHandler) ListProductBids(c echo.Context) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	productID, err := uuid.Parse(c.Param("productId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid product ID")
	}

	bids, err := h.uc.ListProductBids(c.Request().Context(), productID, sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"bids": toBidViews(bids),
	})
}

// ListSellerBids handles the seller's actionable bid inbox. The path seller
// must be the caller.
func (h *BidHandler) ListSellerBids(c echo.Context) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pathID, err := uuid.Parse(c.Param("sellerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid seller ID")
	}
	if pathID != sellerID {
		return response.Forbidden(c, "NOT_OWNER", "Cannot list another seller's bids")
	}

	bids, err := h.uc.ListSellerBids(c.Request().Context(), sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"bids": toBidViews(bids),
	})
}

// ListBuyerBids handles the buyer's bid history. The path buyer must be the
// caller.
func (h *BidHandler) ListBuyerBids(c echo.Context) error {
	buyerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pathID, err := uuid.Parse(c.Param("buyerId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid buyer ID")
	}
	if pathID != buyerID {
		return response.Forbidden(c, "NOT_OWNER", "Cannot list another buyer's bids")
	}

	bids, err := h.uc.ListBuyerBids(c.Request().Context(), buyerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"bids": toBidViews(bids),
	})
}

// AcceptBid handles a seller accepting a bid, which opens the chat thread.
func (h *BidHandler) AcceptBid(c echo.Context) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bidID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid bid ID")
	}

	output, err := h.uc.AcceptBid(c.Request().Context(), bidID, sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"bid":    toBidView(output.Bid),
		"thread": toThreadView(output.Thread),
	})
}

// SettleBid handles a seller accepting settlement, which creates the payment
// and posts the payment request into the chat.
func (h *BidHandler) SettleBid(c echo.Context) error {
	sellerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bidID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid bid ID")
	}

	output, err := h.uc.SettleBid(c.Request().Context(), bidID, sellerID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"bid":     toBidView(output.Bid),
		"payment": toPaymentView(output.Payment),
		"message": toMessageView(output.Message),
	})
}

// ArchiveBid handles a buyer hiding a bid from their history.
func (h *BidHandler) ArchiveBid(c echo.Context) error {
	buyerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bidID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid bid ID")
	}

	if err := h.uc.ArchiveBid(c.Request().Context(), bidID, buyerID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Bid archived"})
}
