package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"alabraar/middleware"
	"alabraar/services/message"
	"alabraar/utils"
)

// MessageHandler exposes the direct-message endpoints.
type MessageHandler struct {
	Service message.MessageService
}

func NewMessageHandler(svc message.MessageService) *MessageHandler {
	return &MessageHandler{Service: svc}
}

// SendMessageHandler handles POST /api/messages.
func (h *MessageHandler) SendMessageHandler(c *gin.Context) {
	var input struct {
		ReceiverID string `json:"receiverId" binding:"required"`
		Content    string `json:"content" binding:"required"`
		BookingID  string `json:"bookingId"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	p, _ := middleware.GetPrincipal(c)
	msg, err := h.Service.Send(c.Request.Context(), p.ID, input.ReceiverID, input.Content, input.BookingID)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to send message", err.Error())
		return
	}
	c.JSON(http.StatusCreated, msg)
}

// GetConversationHandler handles GET /api/messages/:userID — the full
// two-way thread between the caller and the other user, oldest first.
func (h *MessageHandler) GetConversationHandler(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	msgs, err := h.Service.GetConversation(c.Request.Context(), p.ID, c.Param("userID"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to load conversation", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"messages": msgs})
}

// MarkReadHandler handles POST /api/messages/:userID/read. It marks every
// unread message from that sender to the caller as read.
func (h *MessageHandler) MarkReadHandler(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	if err := h.Service.MarkRead(c.Request.Context(), p.ID, c.Param("userID")); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to mark read", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// UnreadCountHandler handles GET /api/messages/unread-count.
func (h *MessageHandler) UnreadCountHandler(c *gin.Context) {
	p, _ := middleware.GetPrincipal(c)

	count, err := h.Service.UnreadCount(c.Request.Context(), p.ID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to count unread", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"unread": count})
}
