package v1

import (
	"net/http"

	"jobboard-backend/internal/delivery/http/response"
	"jobboard-backend/internal/domain"
	"jobboard-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationUC domain.NotificationUsecase
}

func NewNotificationHandler(protected *gin.RouterGroup, notificationUC domain.NotificationUsecase) {
	handler := &NotificationHandler{notificationUC: notificationUC}

	notifications := protected.Group("/notifications")
	{
		notifications.GET("", handler.List)
		notifications.PATCH("/:id/read", handler.MarkRead)
		notifications.PATCH("/read-all", handler.MarkAllRead)
		notifications.GET("/settings", handler.GetSettings)
		notifications.PUT("/settings", handler.UpdateSettings)
	}
	protected.POST("/seed/notifications", handler.Seed)
}

type UpdateNotificationSettingsRequest struct {
	EmailOnMessage     bool `json:"email_on_message"`
	EmailOnApplication bool `json:"email_on_application"`
	EmailOnInterview   bool `json:"email_on_interview"`
	EmailOnStatus      bool `json:"email_on_status"`
}

// List godoc
// @Summary      List notifications
// @Description  Newest first. Pass unread=true to filter to unread only.
// @Tags         notifications
// @Produce      json
// @Param        unread  query     bool  false  "Unread only"
// @Success      200  {object}  response.Response
// @Router       /notifications [get]
// @Security     BearerAuth
func (h *NotificationHandler) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.notificationUC.ListNotifications(c.Request.Context(), actorFrom(c), unreadOnly)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Notifications", notifications)
}

// MarkRead godoc
// @Summary      Mark a notification read
// @Tags         notifications
// @Produce      json
// @Param        id   path      int  true  "Notification ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /notifications/{id}/read [patch]
// @Security     BearerAuth
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Error(err)
		return
	}

	if err := h.notificationUC.MarkRead(c.Request.Context(), actorFrom(c), id); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Notification marked read", nil)
}

// MarkAllRead godoc
// @Summary      Mark all notifications read
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /notifications/read-all [patch]
// @Security     BearerAuth
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notificationUC.MarkAllRead(c.Request.Context(), actorFrom(c)); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "All notifications marked read", nil)
}

// GetSettings godoc
// @Summary      Get notification settings
// @Description  Email toggles for the caller. Defaults to all enabled.
// @Tags         notifications
// @Produce      json
// @Success      200  {object}  response.Response
// @Router       /notifications/settings [get]
// @Security     BearerAuth
func (h *NotificationHandler) GetSettings(c *gin.Context) {
	settings, err := h.notificationUC.GetSettings(c.Request.Context(), actorFrom(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Notification settings", settings)
}

// UpdateSettings godoc
// @Summary      Update notification settings
// @Tags         notifications
// @Accept       json
// @Produce      json
// @Param        settings  body      UpdateNotificationSettingsRequest  true  "Settings JSON"
// @Success      200  {object}  response.Response
// @Failure      400  {object}  response.Response
// @Router       /notifications/settings [put]
// @Security     BearerAuth
func (h *NotificationHandler) UpdateSettings(c *gin.Context) {
	var req UpdateNotificationSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	settings, err := h.notificationUC.UpdateSettings(c.Request.Context(), actorFrom(c), &domain.NotificationSettings{
		EmailOnMessage:     req.EmailOnMessage,
		EmailOnApplication: req.EmailOnApplication,
		EmailOnInterview:   req.EmailOnInterview,
		EmailOnStatus:      req.EmailOnStatus,
	})
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Notification settings updated", settings)
}

// Seed godoc
// @Summary      Seed sample notifications
// @Description  Insert a handful of sample notifications for the caller (demo/testing)
// @Tags         notifications
// @Produce      json
// @Success      201  {object}  response.Response
// @Router       /seed/notifications [post]
// @Security     BearerAuth
func (h *NotificationHandler) Seed(c *gin.Context) {
	notifications, err := h.notificationUC.SeedNotifications(c.Request.Context(), actorFrom(c))
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusCreated, "Sample notifications created", notifications)
}
