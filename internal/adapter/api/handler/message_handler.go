package handler

import (
	"github.com/labstack/echo/v4"

	"finderskeeper/internal/usecase"
	"finderskeeper/pkg/response"
)

type MessageHandler struct {
	messageUseCase *usecase.MessageUseCase
}

func NewMessageHandler(messageUseCase *usecase.MessageUseCase) *MessageHandler {
	return &MessageHandler{
		messageUseCase: messageUseCase,
	}
}

type sendContactRequest struct {
	ItemID  string `json:"itemId" validate:"required"`
	Message string `json:"message" validate:"required,max=1000"`
}

type sendReplyRequest struct {
	ItemID          string `json:"itemId" validate:"required"`
	RecipientUserID string `json:"recipientUserId" validate:"required"`
	Message         string `json:"message" validate:"required,max=1000"`
}

type markReadRequest struct {
	ItemID      string `json:"itemId" validate:"required"`
	OtherUserID string `json:"otherUserId" validate:"required"`
}

// GetThreads returns all of the caller's conversations grouped into threads,
// newest activity first.
func (h *MessageHandler) GetThreads(c echo.Context) error {
	identity := callerIdentity(c)

	result, err := h.messageUseCase.GetUserThreads(c.Request().Context(), identity.UserID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, result)
}

// SendContact starts a conversation with an item's owner.
func (h *MessageHandler) SendContact(c echo.Context) error {
	var req sendContactRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.messageUseCase.SendContact(c.Request().Context(), callerIdentity(c), usecase.SendContactInput{
		ItemID:  req.ItemID,
		Message: req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

// SendReply adds a message to an existing conversation.
func (h *MessageHandler) SendReply(c echo.Context) error {
	var req sendReplyRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.messageUseCase.SendReply(c.Request().Context(), callerIdentity(c), usecase.SendReplyInput{
		ItemID:          req.ItemID,
		RecipientUserID: req.RecipientUserID,
		Message:         req.Message,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, result)
}

// MarkThreadRead marks every message of one thread that is addressed to the
// caller as read.
func (h *MessageHandler) MarkThreadRead(c echo.Context) error {
	var req markReadRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	identity := callerIdentity(c)

	updated, err := h.messageUseCase.MarkThreadRead(c.Request().Context(), identity.UserID, req.ItemID, req.OtherUserID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"updated": updated,
	})
}
