package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MessageHandler struct {
	messageUC domain.MessageUsecase
}

func NewMessageHandler(protected *gin.RouterGroup, messageUC domain.MessageUsecase) {
	handler := &MessageHandler{messageUC: messageUC}

	messages := protected.Group("/messages")
	{
		messages.POST("", handler.Send)
		messages.GET("/conversations", handler.ListConversations)
		messages.GET("/thread/:userId", handler.GetThread)
	}
}

type SendMessageRequest struct {
	ReceiverID string `json:"receiver_id" binding:"required"`
	JobID      *int64 `json:"job_id"`
	Body       string `json:"body" binding:"required"`
}

// Send godoc
// @Summary      Send a message
// @Description  Send a direct message to another user, optionally tied to a job
// @Tags         messages
// @Accept       json
// @Produce      json
// @Param        message  body      SendMessageRequest  true  "Message JSON"
// @Success      201  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /messages [post]
// @Security     BearerAuth
func (h *MessageHandler) Send(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	msg, err := h.messageUC.Send(c.Request.Context(), actorFrom(c), req.ReceiverID, req.JobID, req.Body)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Message sent", msg)
}

// ListConversations godoc
// @Summary      List conversations
// @Description  One entry per counterpart, most recent conversation first
// @Tags         messages
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /messages/conversations [get]
// @Security     BearerAuth
func (h *MessageHandler) ListConversations(c *gin.Context) {
	conversations, err := h.messageUC.ListConversations(c.Request.Context(), actorFrom(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Conversations", conversations)
}

// GetThread godoc
// @Summary      Get a message thread
// @Description  Full history with one counterpart, oldest first. Marks their messages read.
// @Tags         messages
// @Produce      json
// @Param        userId  path      string  true  "Counterpart user ID"
// @Success      200  {object}  response.Response
// @Router       /messages/thread/{userId} [get]
// @Security     BearerAuth
func (h *MessageHandler) GetThread(c *gin.Context) {
	otherID := c.Param("userId")
	if otherID == "" {
		c.Error(apperror.BadRequest("Missing user ID"))
		return
	}

	msgs, err := h.messageUC.GetThread(c.Request.Context(), actorFrom(c), otherID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Message thread", msgs)
}
