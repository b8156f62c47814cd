package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// DefaultCancellationReason é gravado quando o cliente não informa motivo.
const DefaultCancellationReason = "no reason provided"

// ===============================
// Domain Actions
// ===============================

// Cancel é idempotente: cancelar um agendamento já cancelado
// apenas sobrescreve o motivo.
func Cancel(ap *models.Appointment, reason string, now time.Time) {
	if reason == "" {
		reason = DefaultCancellationReason
	}

	ap.Status = string(StatusCancelled)
	ap.CancellationReason = reason
	ap.UpdatedAt = now
}
