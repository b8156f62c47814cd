package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ListAppointmentsByDoctor struct {
	repo domain.Repository
}

func NewListAppointmentsByDoctor(
	repo domain.Repository,
) *ListAppointmentsByDoctor {
	return &ListAppointmentsByDoctor{
		repo: repo,
	}
}

// Execute aceita date e status vazios como "sem filtro".
// Médico sem agendamentos devolve slice vazio, nunca 404.
func (uc *ListAppointmentsByDoctor) Execute(
	ctx context.Context,
	doctorID string,
	date string,
	status string,
) ([]models.Appointment, error) {
	return uc.repo.ListByDoctor(ctx, doctorID, date, status)
}
