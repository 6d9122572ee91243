package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pricepulse/internal/services"
	"pricepulse/pkg/utils"
)

type NotificationController struct {
	notificationService services.NotificationServiceInterface
}

func NewNotificationController(notificationService services.NotificationServiceInterface) *NotificationController {
	return &NotificationController{
		notificationService: notificationService,
	}
}

func (n *NotificationController) List(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, utils.CodeBadRequest, "Invalid page size (must be 1-100)")
		return
	}
	unreadOnly := c.Query("unread") == "true"

	notifications, err := n.notificationService.List(c.Request.Context(), p.UserID, unreadOnly, page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, notifications)
}

func (n *NotificationController) UnreadCount(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	count, err := n.notificationService.UnreadCount(c.Request.Context(), p.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"unread": count})
}

func (n *NotificationController) MarkRead(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := n.notificationService.MarkRead(c.Request.Context(), id, p.UserID); err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"read": true})
}

func (n *NotificationController) MarkAllRead(c *gin.Context) {
	p, ok := mustPrincipal(c)
	if !ok {
		return
	}

	updated, err := n.notificationService.MarkAllRead(c.Request.Context(), p.UserID)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, gin.H{"updated": updated})
}
