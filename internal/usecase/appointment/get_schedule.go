package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type GetSchedule struct {
	repo domain.Repository
}

func NewGetSchedule(repo domain.Repository) *GetSchedule {
	return &GetSchedule{repo: repo}
}

// Execute agrupa os agendamentos do período (inclusivo nas duas
// pontas, qualquer status) por data. Dentro de cada data a lista
// vem ordenada por horário — a query do repositório já devolve
// assim, e os testes assumem essa ordenação.
func (uc *GetSchedule) Execute(
	ctx context.Context,
	doctorID string,
	startDate string,
	endDate string,
) (*dto.ScheduleViewDTO, error) {

	if startDate == "" || endDate == "" {
		return nil, httperr.Validation("missing_date_range", "startDate and endDate are required.")
	}

	doctor, err := uc.repo.GetDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	apps, err := uc.repo.ListForRange(ctx, doctorID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	byDate := make(map[string][]models.Appointment)
	for _, ap := range apps {
		byDate[ap.AppointmentDate] = append(byDate[ap.AppointmentDate], ap)
	}

	return &dto.ScheduleViewDTO{
		WorkingHours: domain.WorkingHours{
			Start: doctor.WorkStart,
			End:   doctor.WorkEnd,
		},
		SlotDuration: doctor.SlotDurationMin,
		Appointments: byDate,
	}, nil
}
