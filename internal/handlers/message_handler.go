package handlers

import (
	"net/http"

	"github.com/anonto42/rreediitt/backend/internal/models"
	"github.com/anonto42/rreediitt/backend/internal/services"
	"github.com/labstack/echo/v4"
)

// MessageHandler handles HTTP requests related to direct messages
type MessageHandler struct {
	messageService *services.MessageService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{messageService: messageService}
}

// RegisterMessageRoutes registers message-related routes
func (h *MessageHandler) RegisterMessageRoutes(g *echo.Group) {
	g.GET("/conversations", h.GetConversations)
	g.GET("/conversation/:other_email", h.GetConversation)
	g.GET("/unread-count", h.GetUnreadCount)
	g.POST("", h.SendMessage)
	g.PUT("/:message_id/read", h.MarkAsRead)
}

// GetConversations lists the user's counterparts, most recent first
func (h *MessageHandler) GetConversations(c echo.Context) error {
	userEmail, err := requiredQuery(c, "user_email")
	if err != nil {
		return err
	}
	conversations, err := h.messageService.ListConversations(c.Request().Context(), userEmail)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, conversations)
}

// GetConversation returns the messages exchanged with :other_email
func (h *MessageHandler) GetConversation(c echo.Context) error {
	userEmail, err := requiredQuery(c, "user_email")
	if err != nil {
		return err
	}
	messages, err := h.messageService.GetConversation(c.Request().Context(), userEmail, c.Param("other_email"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, messages)
}

// SendMessage sends a message from the sender_email query parameter
func (h *MessageHandler) SendMessage(c echo.Context) error {
	senderEmail, err := requiredQuery(c, "sender_email")
	if err != nil {
		return err
	}
	var req models.CreateMessageRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	message, err := h.messageService.SendMessage(c.Request().Context(), senderEmail, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusCreated, message)
}

// MarkAsRead marks a message addressed to user_email as read
func (h *MessageHandler) MarkAsRead(c echo.Context) error {
	messageID, err := uuidParam(c, "message_id")
	if err != nil {
		return err
	}
	userEmail, err := requiredQuery(c, "user_email")
	if err != nil {
		return err
	}
	if err := h.messageService.MarkRead(c.Request().Context(), messageID, userEmail); err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Message marked as read"})
}

// GetUnreadCount returns how many unread messages the user has
func (h *MessageHandler) GetUnreadCount(c echo.Context) error {
	userEmail, err := requiredQuery(c, "user_email")
	if err != nil {
		return err
	}
	count, err := h.messageService.UnreadCount(c.Request().Context(), userEmail)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, map[string]int64{"unread_count": count})
}
