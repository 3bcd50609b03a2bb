package handlers

import (
	"net/http"

	"gramzo/middleware"
	"gramzo/services/booking"
	"gramzo/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle engine.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

func (h *BookingHandler) Create(c *gin.Context) {
	var in booking.CreateBookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, utils.InvalidArgument("invalid booking payload: "+err.Error()))
		return
	}

	created, err := h.Svc.Create(c.Request.Context(), in)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusCreated, created)
}

func (h *BookingHandler) Respond(c *gin.Context) {
	var in struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, utils.InvalidArgument("status is required"))
		return
	}

	actor := middleware.GetAuthContext(c)
	updated, err := h.Svc.Respond(c.Request.Context(), c.Param("id"), in.Status, actor)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, updated)
}

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var in struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Fail(c, utils.InvalidArgument("status is required"))
		return
	}

	actor := middleware.GetAuthContext(c)
	updated, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), in.Status, actor)
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, updated)
}

func (h *BookingHandler) Pay(c *gin.Context) {
	updated, err := h.Svc.Pay(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, updated)
}

func (h *BookingHandler) List(c *gin.Context) {
	bookings, err := h.Svc.List(c.Request.Context(), c.Query("phone"), c.Query("agentId"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, bookings)
}

func (h *BookingHandler) Get(c *gin.Context) {
	found, err := h.Svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.Fail(c, err)
		return
	}
	utils.Respond(c, http.StatusOK, found)
}
