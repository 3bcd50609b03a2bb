package handlers

import (
	"net/http"

	catalogRepo "gramzo/database/repository/catalog"
	"gramzo/middleware"
	"gramzo/services/catalog"
	"gramzo/utils"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes agent-owned service and product listings.
type CatalogHandler struct {
	Svc catalog.CatalogService
}

func NewCatalogHandler(svc catalog.CatalogService) *CatalogHandler {
	return &CatalogHandler{Svc: svc}
}

func listingFilter(c *gin.Context) catalogRepo.ListingFilter {
	return catalogRepo.ListingFilter{
		CategoryID: c.Query("categoryId"),
		AgentID:    c.Query("agentId"),
	}
}

func (h *CatalogHandler) CreateService(c *gin.Context) {
	var in catalog.CreateListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, utils.InvalidArgument("invalid service payload: "+err.Error()))
		return
	}

	created, err := h.Svc.CreateService(c.Request.Context(), in)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, created)
}

func (h *CatalogHandler) GetService(c *gin.Context) {
	found, err := h.Svc.GetService(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, found)
}

func (h *CatalogHandler) ListServices(c *gin.Context) {
	services, err := h.Svc.ListServices(c.Request.Context(), listingFilter(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, services)
}

func (h *CatalogHandler) DeleteService(c *gin.Context) {
	actor := middleware.GetAuthContext(c)
	if err := h.Svc.DeleteService(c.Request.Context(), c.Param("id"), actor); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, gin.H{"deleted": true})
}

func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	var in catalog.CreateListingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, utils.InvalidArgument("invalid product payload: "+err.Error()))
		return
	}

	created, err := h.Svc.CreateProduct(c.Request.Context(), in)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, created)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	found, err := h.Svc.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, found)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	products, err := h.Svc.ListProducts(c.Request.Context(), listingFilter(c))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, products)
}

func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	actor := middleware.GetAuthContext(c)
	if err := h.Svc.DeleteProduct(c.Request.Context(), c.Param("id"), actor); err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, gin.H{"deleted": true})
}
