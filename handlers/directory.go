package handlers

import (
	"net/http"

	"gramzo/middleware"
	"gramzo/services/directory"
	"gramzo/utils"

	"github.com/gin-gonic/gin"
)

// DirectoryHandler exposes category and notice CRUD.
type DirectoryHandler struct {
	Svc directory.DirectoryService
}

func NewDirectoryHandler(svc directory.DirectoryService) *DirectoryHandler {
	return &DirectoryHandler{Svc: svc}
}

func (h *DirectoryHandler) CreateCategory(c *gin.Context) {
	var in directory.CreateCategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, utils.InvalidArgument("name is required"))
		return
	}

	created, err := h.Svc.CreateCategory(c.Request.Context(), in)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, created)
}

func (h *DirectoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.Svc.ListCategories(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, categories)
}

func (h *DirectoryHandler) DeleteCategory(c *gin.Context) {
	actor := middleware.GetAuthContext(c)
	if err := h.Svc.DeleteCategory(c.Request.Context(), c.Param("id"), actor); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *DirectoryHandler) CreateNotice(c *gin.Context) {
	var in directory.CreateNoticeInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, utils.InvalidArgument("title is required"))
		return
	}

	actor := middleware.GetAuthContext(c)
	created, err := h.Svc.CreateNotice(c.Request.Context(), in, actor)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, created)
}

func (h *DirectoryHandler) ListNotices(c *gin.Context) {
	notices, err := h.Svc.ListNotices(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, notices)
}

func (h *DirectoryHandler) DeleteNotice(c *gin.Context) {
	actor := middleware.GetAuthContext(c)
	if err := h.Svc.DeleteNotice(c.Request.Context(), c.Param("id"), actor); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, gin.H{"deleted": true})
}
