package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	listDay *ucBooking.ListDay
	manual  *ucBooking.CreateManualBooking
	remove  *ucBooking.DeleteBooking
	log     logrus.FieldLogger
}

func NewAdminHandler(
	listDay *ucBooking.ListDay,
	manual *ucBooking.CreateManualBooking,
	remove *ucBooking.DeleteBooking,
	log logrus.FieldLogger,
) *AdminHandler {
	return &AdminHandler{
		listDay: listDay,
		manual:  manual,
		remove:  remove,
		log:     log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ManualBookingRequest struct {
	StaffID       uint   `json:"staff_id"`
	Service       string `json:"service" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Time          string `json:"time" binding:"required"`
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

// ======================================================
// DAY VIEW
// ======================================================

func (h *AdminHandler) ListDay(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obbligatoria.")
		return
	}

	days, err := h.listDay.Execute(c.Request.Context(), date)
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.List(c, days)
}

// ======================================================
// MANUAL ENTRY
// ======================================================

func (h *AdminHandler) CreateManual(c *gin.Context) {
	var req ManualBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	b, err := h.manual.Execute(c.Request.Context(), ucBooking.CreateManualBookingInput{
		StaffID:       req.StaffID,
		Date:          req.Date,
		Time:          req.Time,
		Service:       req.Service,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, b)
}

// ======================================================
// DELETE
// ======================================================

func (h *AdminHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "ID non valido.")
		return
	}

	deleted, err := h.remove.Execute(c.Request.Context(), uint(id))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, gin.H{"deleted": deleted})
}
