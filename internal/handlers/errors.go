package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/domain/session"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

type errorInfo struct {
	status  int
	message string
}

// Customer facing messages follow the shop's language.
var businessErrors = map[string]errorInfo{
	"invalid_request":       {http.StatusBadRequest, "Dati non validi."},
	"invalid_date":          {http.StatusBadRequest, "Data non valida."},
	"invalid_date_or_time":  {http.StatusBadRequest, "Data o ora non valida."},
	"date_in_past":          {http.StatusBadRequest, "La data è già passata."},
	"slot_in_past":          {http.StatusBadRequest, "L'orario è già passato."},
	"closed_day":            {http.StatusBadRequest, "Il negozio è chiuso in questo giorno."},
	"date_mismatch":         {http.StatusBadRequest, "Errore di data. Controlla l'ora."},
	"missing_customer_data": {http.StatusBadRequest, "Nome e Telefono sono obbligatori."},
	"invalid_name":          {http.StatusBadRequest, "Nome non valido."},
	"invalid_phone":         {http.StatusBadRequest, "Telefono non valido."},
	"staff_required":        {http.StatusBadRequest, "Seleziona un barbiere."},
	"staff_mismatch":        {http.StatusBadRequest, "Barbiere diverso da quello scelto."},
	"invalid_step":          {http.StatusConflict, "Operazione non valida in questo passaggio."},
	"service_not_found":     {http.StatusNotFound, "Servizio non trovato."},
	"staff_not_found":       {http.StatusNotFound, "Barbiere non trovato."},
	"slot_unavailable":      {http.StatusConflict, "Orario non più disponibile."},
}

// writeError maps use case errors onto the HTTP error envelope.
func writeError(c *gin.Context, log logrus.FieldLogger, err error) {
	if code, ok := httperr.BusinessCode(err); ok {
		info, known := businessErrors[code]
		if !known {
			info = errorInfo{http.StatusBadRequest, code}
		}
		httperr.Write(c, info.status, code, info.message)
		return
	}

	switch {
	case errors.Is(err, session.ErrNotFound):
		httperr.NotFound(c, "session_not_found", "Sessione scaduta o inesistente.")

	case errors.Is(err, domain.ErrStoreUnavailable):
		log.WithError(err).WithField("path", c.FullPath()).Warn("store unavailable")
		httperr.Unavailable(c, "store_unavailable", "Servizio momentaneamente non disponibile, riprova.")

	default:
		log.WithError(err).WithField("path", c.FullPath()).Error("unexpected error")
		httperr.Internal(c, "internal_error", "Errore interno.")
	}
}
