package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Repository é a fronteira com o Appointment Store e com o
// cadastro de médicos. Leituras de coleção devolvem slice vazio
// quando não há resultados.
type Repository interface {
	// -------- Doctor --------
	GetDoctorByID(
		ctx context.Context,
		id string,
	) (*models.Doctor, error)

	// -------- Appointment (create / conflict) --------

	// CreateAppointment é uma escrita condicional: falha com
	// erro de conflito se outro agendamento ativo já ocupa
	// (doctor, date, time).
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// CountActiveAt conta agendamentos ativos no horário exato,
	// ignorando excludeID quando não vazio.
	CountActiveAt(
		ctx context.Context,
		doctorID string,
		date string,
		timeOfDay string,
		excludeID string,
	) (int64, error)

	// -------- Appointment (state change) --------
	GetAppointmentByID(
		ctx context.Context,
		id string,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read side) --------
	ListByDoctor(
		ctx context.Context,
		doctorID string,
		date string,
		status string,
	) ([]models.Appointment, error)

	ListForRange(
		ctx context.Context,
		doctorID string,
		startDate string,
		endDate string,
	) ([]models.Appointment, error)
}
