package handlers

import (
	"net/http"

	"gramzo/services/market"
	"gramzo/utils"

	"github.com/gin-gonic/gin"
)

// MarketHandler exposes the community price ledger.
type MarketHandler struct {
	Svc market.MarketService
}

func NewMarketHandler(svc market.MarketService) *MarketHandler {
	return &MarketHandler{Svc: svc}
}

// AddOrUpdate returns 201 when a new item was created, 200 when an existing
// one was updated.
func (h *MarketHandler) AddOrUpdate(c *gin.Context) {
	var in market.AddOrUpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, utils.InvalidArgument("itemName, category and price are required"))
		return
	}

	item, created, err := h.Svc.AddOrUpdate(c.Request.Context(), in)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	utils.Respond(c, status, item)
}

func (h *MarketHandler) UpdateByID(c *gin.Context) {
	var in market.UpdateByIDInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, utils.InvalidArgument("itemId and newPrice are required"))
		return
	}

	item, err := h.Svc.UpdateByID(c.Request.Context(), in)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, item)
}

func (h *MarketHandler) List(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, items)
}

func (h *MarketHandler) ByCategory(c *gin.Context) {
	items, err := h.Svc.ByCategory(c.Request.Context(), c.Param("category"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, items)
}
