package handlers

import (
	"context"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/barber-booking/internal/audit"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
	"github.com/BruksfildServices01/barber-booking/internal/httpresp"
	"github.com/BruksfildServices01/barber-booking/internal/models"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

// ======================================================
// HANDLER
// ======================================================

type auditLister interface {
	List(ctx context.Context, f audit.Filter) ([]models.AuditLog, int64, error)
}

type AuditLogsHandler struct {
	logs auditLister
	shop shopLocation
	log  logrus.FieldLogger
}

type shopLocation interface {
	Today() time.Time
}

func NewAuditLogsHandler(logs auditLister, shop shopLocation, log logrus.FieldLogger) *AuditLogsHandler {
	return &AuditLogsHandler{logs: logs, shop: shop, log: log}
}

func (h *AuditLogsHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	staffID, ok := parseStaffID(c.Query("staff_id"))
	if !ok {
		httperr.BadRequest(c, "invalid_staff_id", "Barbiere non valido.")
		return
	}

	f := audit.Filter{
		StaffID: staffID,
		Action:  c.Query("action"),
		Entity:  c.Query("entity"),
		Limit:   limit,
		Offset:  (page - 1) * limit,
	}

	// --------------------------------------------------
	// Date range, whole days in the shop location
	// --------------------------------------------------
	loc := h.shop.Today().Location()
	if from := c.Query("from"); from != "" {
		d, err := timezone.ParseDate(from, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data non valida.")
			return
		}
		f.From = d
	}
	if to := c.Query("to"); to != "" {
		d, err := timezone.ParseDate(to, loc)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data non valida.")
			return
		}
		f.To = d.AddDate(0, 0, 1)
	}

	logs, total, err := h.logs.List(c.Request.Context(), f)
	if err != nil {
		h.log.WithError(err).Error("audit list failed")
		httperr.Internal(c, "audit_list_failed", "Errore nel caricamento del registro.")
		return
	}
	if logs == nil {
		logs = []models.AuditLog{}
	}

	httpresp.OK(c, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
