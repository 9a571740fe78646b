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

// ChatHandler holds dependencies for chat-related handlers.
type ChatHandler struct {
	uc     usecase.ChatUsecase
	logger *slog.Logger
}

// NewChatHandler is the constructor for ChatHandler, injected by Fx.
func NewChatHandler(uc usecase.ChatUsecase, logger *slog.Logger) *ChatHandler {
	return &ChatHandler{
		uc:     uc,
		logger: logger,
	}
}

type sendMessageRequest struct {
	Body string `json:"body" validate:"required"`
}

// ListThreads handles the user's chat inbox, most recently active first. The
// path user must be the caller.
func (h *ChatHandler) ListThreads(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	pathID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid user ID")
	}
	if pathID != userID {
		return response.Forbidden(c, "NOT_OWNER", "Cannot list another user's threads")
	}

	previews, err := h.uc.ListThreads(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"threads": toThreadPreviewViews(previews),
	})
}

// GetThread handles opening a conversation with its full message history.
func (h *ChatHandler) GetThread(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid thread ID")
	}

	detail, err := h.uc.GetThread(c.Request().Context(), threadID, userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"thread":   toThreadView(detail.Thread),
		"messages": toMessageViews(detail.Messages),
	})
}

// SendMessage handles a participant posting a message into a thread.
func (h *ChatHandler) SendMessage(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid thread ID")
	}

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid message input")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	message, err := h.uc.SendMessage(c.Request().Context(), &usecase.SendMessageInput{
		ThreadID: threadID,
		SenderID: userID,
		Body:     req.Body,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toMessageView(message))
}

// ClearMessages handles a participant wiping a thread's history.
func (h *ChatHandler) ClearMessages(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid thread ID")
	}

	if err := h.uc.ClearMessages(c.Request().Context(), threadID, userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Messages cleared"})
}
