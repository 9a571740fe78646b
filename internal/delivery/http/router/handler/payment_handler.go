package handler

import (
	"log/slog"
	"net/http"

	"verdant/internal/delivery/http/middleware"
	"verdant/internal/delivery/http/response"
	"verdant/internal/domain/entity"
	"verdant/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// PaymentHandler holds dependencies for payment-related handlers.
type PaymentHandler struct {
	uc     usecase.PaymentUsecase
	logger *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler, injected by Fx.
func NewPaymentHandler(uc usecase.PaymentUsecase, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		uc:     uc,
		logger: logger,
	}
}

type completePaymentRequest struct {
	BidID  string `json:"bid_id" validate:"required,uuid"`
	Method string `json:"method" validate:"required"`
}

// GetPayment handles the payment summary shown in the payment modal.
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bidID, err := uuid.Parse(c.Param("bidId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid bid ID")
	}

	summary, err := h.uc.GetPaymentByBid(c.Request().Context(), bidID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"payment":      toPaymentView(summary.Payment),
		"bid":          toBidView(summary.Bid),
		"product_name": summary.ProductName,
	})
}

// GetPaymentQR renders the UPI QR code for a pending payment as a PNG.
func (h *PaymentHandler) GetPaymentQR(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	bidID, err := uuid.Parse(c.Param("bidId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid bid ID")
	}

	png, err := h.uc.GeneratePaymentQR(c.Request().Context(), bidID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// CompletePayment handles the buyer confirming payment for a bid.
func (h *PaymentHandler) CompletePayment(c echo.Context) error {
	buyerID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req completePaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid payment input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	bidID, err := uuid.Parse(req.BidID)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid bid ID")
	}

	method := entity.PaymentMethod(req.Method)
	if !method.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown payment method")
	}

	output, err := h.uc.CompletePayment(c.Request().Context(), &usecase.CompletePaymentInput{
		BidID:   bidID,
		BuyerID: buyerID,
		Method:  method,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"payment": toPaymentView(output.Payment),
		"bid":     toBidView(output.Bid),
		"receipt": toMessageView(output.Receipt),
	})
}
