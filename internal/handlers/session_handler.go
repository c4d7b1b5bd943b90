package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-booking/internal/domain/session"
	"github.com/BruksfildServices01/barber-booking/internal/dto"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	ucBooking "github.com/BruksfildServices01/barber-booking/internal/usecase/booking"
)

// SessionHandler drives the step-by-step customer flow. Nothing is written
// to the booking store until confirm; an abandoned session just expires.
type SessionHandler struct {
	store        session.Store
	availability *ucBooking.GetAvailability
	create       *ucBooking.CreateBooking
	log          logrus.FieldLogger
}

func NewSessionHandler(
	store session.Store,
	availability *ucBooking.GetAvailability,
	create *ucBooking.CreateBooking,
	log logrus.FieldLogger,
) *SessionHandler {
	return &SessionHandler{
		store:        store,
		availability: availability,
		create:       create,
		log:          log,
	}
}

type StartSessionRequest struct {
	Service string `json:"service" binding:"required"`
	StaffID uint   `json:"staff_id"`
	Date    string `json:"date" binding:"required"`
}

type SelectSlotRequest struct {
	Time    string `json:"time" binding:"required"`
	StaffID uint   `json:"staff_id"`
}

type ConfirmSessionRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
}

type sessionResponse struct {
	Session *session.Session `json:"session"`
	Slots   []dto.SlotDTO    `json:"slots,omitempty"`
	Booking *models.Booking  `json:"booking,omitempty"`
}

func (h *SessionHandler) Start(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	avail, err := h.availability.Execute(c.Request.Context(), ucBooking.AvailabilityInput{
		Date:    req.Date,
		Service: req.Service,
		StaffID: req.StaffID,
	})
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	s := session.New(avail.Service, req.StaffID, avail.Date, time.Now())
	if err := h.store.Save(c.Request.Context(), s); err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.Created(c, sessionResponse{Session: s, Slots: avail.Slots})
}

func (h *SessionHandler) Get(c *gin.Context) {
	s, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	resp := sessionResponse{Session: s}
	if s.Step != session.StepConfirmed {
		slots, err := h.slots(c, s)
		if err != nil {
			writeError(c, h.log, err)
			return
		}
		resp.Slots = slots
	}

	httpresp.OK(c, resp)
}

func (h *SessionHandler) SelectSlot(c *gin.Context) {
	var req SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	s, err := h.store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	staffID := req.StaffID
	if staffID == session.AnyStaff {
		staffID = s.StaffID
	}

	if err := s.SelectSlot(req.Time, staffID, time.Now()); err != nil {
		writeError(c, h.log, err)
		return
	}

	// the slot has to be on offer right now; the commit checks again
	slots, err := h.slots(c, s)
	if err != nil {
		writeError(c, h.log, err)
		return
	}
	if !offered(slots, req.Time, staffID) {
		writeError(c, h.log, httperr.ErrBusiness("slot_unavailable"))
		return
	}

	if err := h.store.Save(c.Request.Context(), s); err != nil {
		writeError(c, h.log, err)
		return
	}

	httpresp.OK(c, sessionResponse{Session: s})
}

func (h *SessionHandler) Confirm(c *gin.Context) {
	var req ConfirmSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dati non validi.")
		return
	}

	ctx := c.Request.Context()

	s, err := h.store.Get(ctx, c.Param("id"))
	if err != nil {
		writeError(c, h.log, err)
		return
	}

	if err := s.SetCustomer(req.CustomerName, req.CustomerPhone, time.Now()); err != nil {
		writeError(c, h.log, err)
		return
	}

	b, err := h.create.Execute(ctx, ucBooking.CreateBookingInput{
		StaffID:       s.SlotStaffID,
		Date:          s.Date,
		Time:          s.SlotTime,
		Service:       s.Service,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
	})
	if err != nil {
		// keep what the customer typed; they can pick another slot
		if saveErr := h.store.Save(ctx, s); saveErr != nil {
			h.log.WithError(saveErr).WithField("session_id", s.ID).Warn("session save failed")
		}
		writeError(c, h.log, err)
		return
	}

	if err := s.Confirm(b.ID, time.Now()); err != nil {
		writeError(c, h.log, err)
		return
	}
	if err := h.store.Save(ctx, s); err != nil {
		// the booking is stored; a lost session only affects the page reload
		h.log.WithError(err).WithField("session_id", s.ID).Warn("session save failed")
	}

	httpresp.OK(c, sessionResponse{Session: s, Booking: b})
}

func (h *SessionHandler) slots(c *gin.Context, s *session.Session) ([]dto.SlotDTO, error) {
	avail, err := h.availability.Execute(c.Request.Context(), ucBooking.AvailabilityInput{
		Date:    s.Date,
		Service: s.Service,
		StaffID: s.StaffID,
	})
	if err != nil {
		return nil, err
	}
	return avail.Slots, nil
}

func offered(slots []dto.SlotDTO, hm string, staffID uint) bool {
	for _, s := range slots {
		if s.Time == hm && s.StaffID == staffID {
			return true
		}
	}
	return false
}
