package handler

import (
	"log/slog"
	"net/http"

	"verdant/internal/delivery/http/middleware"
	"verdant/internal/delivery/http/response"
	"verdant/internal/domain/entity"
	"verdant/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SupportHandler holds dependencies for the scripted support chatbot.
type SupportHandler struct {
	uc     usecase.SupportUsecase
	logger *slog.Logger
}

// NewSupportHandler is the constructor for SupportHandler, injected by Fx.
func NewSupportHandler(uc usecase.SupportUsecase, logger *slog.Logger) *SupportHandler {
	return &SupportHandler{
		uc:     uc,
		logger: logger,
	}
}

type supportActionRequest struct {
	Action   string `json:"action" validate:"required"`
	Password string `json:"password"`
}

// GetFlow returns the full support decision tree for client-side navigation.
func (h *SupportHandler) GetFlow(c echo.Context) error {
	flow, err := h.uc.GetFlow(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, flow)
}

// GetStep returns a single step of the support decision tree.
func (h *SupportHandler) GetStep(c echo.Context) error {
	stepID := c.Param("step")
	if stepID == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Missing step ID")
	}

	step, err := h.uc.GetStep(c.Request().Context(), stepID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, step)
}

// ExecuteAction runs a backend action triggered from a support flow option.
func (h *SupportHandler) ExecuteAction(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req supportActionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid action input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	action := entity.SupportActionType(req.Action)
	if !action.IsValid() {
		return response.BadRequest(c, "INVALID_INPUT", "Unknown support action")
	}

	output, err := h.uc.ExecuteAction(c.Request().Context(), &usecase.SupportActionInput{
		UserID:   userID,
		Action:   action,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	body := map[string]any{
		"reply": output.Reply,
	}
	if output.User != nil {
		body["user"] = toUserView(output.User)
	}
	if output.ResetToken != "" {
		body["reset_token"] = output.ResetToken
	}

	return response.Success(c, http.StatusOK, body)
}
