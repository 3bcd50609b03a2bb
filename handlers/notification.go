package handlers

import (
	"net/http"

	"gramzo/middleware"
	"gramzo/models"
	"gramzo/services/notification"
	"gramzo/utils"

	"github.com/gin-gonic/gin"
)

// NotificationHandler exposes the pull-only notification feed.
type NotificationHandler struct {
	Svc notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Svc: svc}
}

// List resolves the caller identity from query parameters, the way polling
// clients send it on this endpoint.
func (h *NotificationHandler) List(c *gin.Context) {
	actor := models.AuthContext{
		Role:    models.NormalizeRole(c.Query("role")),
		UserID:  c.Query("userId"),
		AgentID: c.Query("agentId"),
		Phone:   c.Query("phone"),
	}

	notifications, err := h.Svc.List(c.Request.Context(), actor)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, notifications)
}

func (h *NotificationHandler) Create(c *gin.Context) {
	var in struct {
		notification.CreateNotificationInput
		Role string `json:"role"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, utils.InvalidArgument("invalid notification payload: "+err.Error()))
		return
	}

	role := middleware.GetAuthContext(c).Role
	if in.Role != "" {
		role = models.NormalizeRole(in.Role)
	}

	created, err := h.Svc.Create(c.Request.Context(), in.CreateNotificationInput, role)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, created)
}

func (h *NotificationHandler) Delete(c *gin.Context) {
	actor := middleware.GetAuthContext(c)
	var in struct {
		Role string `json:"role"`
	}
	// The role may also arrive in the body on this endpoint.
	if err := c.ShouldBindJSON(&in); err == nil && in.Role != "" {
		actor.Role = models.NormalizeRole(in.Role)
	}

	if err := h.Svc.Delete(c.Request.Context(), c.Param("id"), actor); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.Svc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, gin.H{"read": true})
}
