package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	"github.com/BruksfildServices01/clinic-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type UpdateAppointment struct {
	repo      domain.Repository
	conflicts *ConflictDetector
	clock     clock.Clock
	cache     *cache.Availability
	audit     *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	conflicts *ConflictDetector,
	clk clock.Clock,
	availability *cache.Availability,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:      repo,
		conflicts: conflicts,
		clock:     clk,
		cache:     availability,
		audit:     audit,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	appointmentID string,
	patch domain.Patch,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}

	// mover o slot de um agendamento ativo exige re-checar
	// conflito contra todos menos ele mesmo
	if patch.MovesSlot(ap) && domain.IsActive(domain.Status(ap.Status)) {
		doctorID, date, timeOfDay := patch.EffectiveSlot(ap)

		conflict, err := uc.conflicts.HasConflict(ctx, doctorID, date, timeOfDay, ap.ID)
		if err != nil {
			return nil, err
		}
		if conflict {
			return nil, httperr.Conflict("slot_already_booked", "This time slot is already booked.")
		}
	}

	prevDoctorID := ap.DoctorID
	prevDate := ap.AppointmentDate

	patch.Apply(ap, uc.clock.Now())

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// invalida a grade antiga e a nova
	uc.cache.Invalidate(ctx, prevDoctorID, prevDate)
	uc.cache.Invalidate(ctx, ap.DoctorID, ap.AppointmentDate)

	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_updated",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
