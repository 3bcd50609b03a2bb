package handlers

import (
	"net/http"

	"gramzo/middleware"
	"gramzo/services/agent"
	"gramzo/utils"

	"github.com/gin-gonic/gin"
)

// AgentHandler exposes agent onboarding and moderation.
type AgentHandler struct {
	Svc agent.AgentService
}

func NewAgentHandler(svc agent.AgentService) *AgentHandler {
	return &AgentHandler{Svc: svc}
}

// Signup is idempotent by phone: repeat signups return the existing record
// with 200, first signups return 201.
func (h *AgentHandler) Signup(c *gin.Context) {
	var in agent.SignupInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, utils.InvalidArgument("name and phone are required"))
		return
	}

	found, created, err := h.Svc.Signup(c.Request.Context(), in)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	utils.Respond(c, status, found)
}

func (h *AgentHandler) Get(c *gin.Context) {
	found, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, found)
}

func (h *AgentHandler) List(c *gin.Context) {
	agents, err := h.Svc.List(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, agents)
}

func (h *AgentHandler) Approve(c *gin.Context) {
	actor := middleware.GetAuthContext(c)
	updated, err := h.Svc.Approve(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, updated)
}

func (h *AgentHandler) ToggleBlock(c *gin.Context) {
	actor := middleware.GetAuthContext(c)
	updated, err := h.Svc.ToggleBlock(c.Request.Context(), c.Param("id"), actor)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, updated)
}
