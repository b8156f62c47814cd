package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	"github.com/BruksfildServices01/clinic-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	PatientID       string
	DoctorID        string
	AppointmentDate string
	AppointmentTime string
	AppointmentType string
	Notes           string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	conflicts *ConflictDetector
	clock     clock.Clock
	cache     *cache.Availability
	audit     *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	conflicts *ConflictDetector,
	clk clock.Clock,
	availability *cache.Availability,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		conflicts: conflicts,
		clock:     clk,
		cache:     availability,
		audit:     audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	if in.PatientID == "" || in.DoctorID == "" ||
		in.AppointmentDate == "" || in.AppointmentTime == "" {
		return nil, httperr.Validation(
			"missing_required_fields",
			"patientId, doctorId, appointmentDate and appointmentTime are required.",
		)
	}

	// --------------------------------------------------
	// 2️⃣ Conflito de horário (checagem advisory)
	// --------------------------------------------------
	conflict, err := uc.conflicts.HasConflict(
		ctx,
		in.DoctorID,
		in.AppointmentDate,
		in.AppointmentTime,
		"",
	)
	if err != nil {
		return nil, err
	}
	if conflict {
		return nil, httperr.Conflict("slot_already_booked", "This time slot is already booked.")
	}

	// --------------------------------------------------
	// 3️⃣ Criação (escrita condicional fecha a corrida)
	// --------------------------------------------------
	now := uc.clock.Now()

	ap := &models.Appointment{
		ID:              uuid.NewString(),
		PatientID:       in.PatientID,
		DoctorID:        in.DoctorID,
		AppointmentDate: in.AppointmentDate,
		AppointmentTime: in.AppointmentTime,
		AppointmentType: in.AppointmentType,
		Notes:           in.Notes,
		Status:          string(domain.InitialStatus()),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.cache.Invalidate(ctx, ap.DoctorID, ap.AppointmentDate)

	// --------------------------------------------------
	// 4️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
