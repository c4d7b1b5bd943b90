package handlers

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type staffLister interface {
	ListStaff(ctx context.Context) ([]models.Staff, error)
}

type PublicHandler struct {
	shop         ucBooking.Shop
	staff        staffLister
	availability *ucBooking.GetAvailability
	create       *ucBooking.CreateBooking
	log          logrus.FieldLogger
}

func NewPublicHandler(
	shop ucBooking.Shop,
	staff staffLister,
	availability *ucBooking.GetAvailability,
	create *ucBooking.CreateBooking,
	log logrus.FieldLogger,
) *PublicHandler {
	return &PublicHandler{
		shop:         shop,
		staff:        staff,
		availability: availability,
		create:       create,
		log:          log,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	StaffID       uint   `json:"staff_id"`
	Service       string `json:"service" binding:"required"`
	Date          string `json:"date" binding:"required"` // YYYY-MM-DD
	Time          string `json:"time" binding:"required"` // HH:mm
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

type serviceResponse struct {
	Label       string `json:"label"`
	DurationMin int    `json:"duration_min"`
	Display     string `json:"display"`
}

type intervalResponse struct {
	Open  string `json:"open"`
	Close string `json:"close"`
}

type openingResponse struct {
	Intervals      []intervalResponse `json:"intervals"`
	CadenceMin     int                `json:"cadence_min"`
	ClosedWeekdays []string           `json:"closed_weekdays"`
	NextOpenDate   string             `json:"next_open_date,omitempty"`
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	out := make([]serviceResponse, 0, len(h.shop.Catalog))
	for _, s := range h.shop.Catalog {
		out = append(out, serviceResponse{
			Label:       s.Label,
			DurationMin: s.DurationMin,
			Display:     s.Display(),
		})
	}
	httpresp.List(c, out)
}

func (h *PublicHandler) ListStaff(c *gin.Context) {
	staff, err := h.staff.ListStaff(c.Request.Context())
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	httpresp.List(c, staff)
}

func (h *PublicHandler) Opening(c *gin.Context) {
	sched := h.shop.Schedule

	resp := openingResponse{
		Intervals:      make([]intervalResponse, 0, len(sched.Intervals)),
		CadenceMin:     int(sched.Cadence / time.Minute),
		ClosedWeekdays: make([]string, 0, len(sched.ClosedWeekdays)),
	}
	for _, iv := range sched.Intervals {
		resp.Intervals = append(resp.Intervals, intervalResponse{
			Open:  iv.Open.String(),
			Close: iv.Close.String(),
		})
	}
	for _, wd := range sched.ClosedWeekdays {
		resp.ClosedWeekdays = append(resp.ClosedWeekdays, strings.ToLower(wd.String()))
	}

	if next, ok := sched.NextOpenDay(h.shop.Today()); ok {
		resp.NextOpenDate = timezone.DayKey(next)
	}

	httpresp.OK(c, resp)
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	date := c.Query("date")
	service := c.Query("service")
	if date == "" || service == "" {
		httperr.BadRequest(c, "missing_params", "Data e servizio obbligatori.")
		return
	}

	staffID, ok := parseStaffID(c.Query("staff_id"))
	if !ok {
		httperr.BadRequest(c, "invalid_staff_id", "Barbiere non valido.")
		return
	}

	res, err := h.availability.Execute(c.Request.Context(), ucBooking.AvailabilityInput{
		Date:    date,
		Service: service,
		StaffID: staffID,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, res)
}

////////////////////////////////////////////////////////
// CREATE (STATELESS CONFIRM)
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	b, err := h.create.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
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

// parseStaffID accepts an empty value as "any staff member".
func parseStaffID(raw string) (uint, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}
