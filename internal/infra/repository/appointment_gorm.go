package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDoctorByID(
	ctx context.Context,
	id string,
) (*models.Doctor, error) {

	var doctor models.Doctor
	if err := r.db.WithContext(ctx).First(&doctor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("doctor_not_found", "Doctor not found.")
		}
		return nil, err
	}
	return &doctor, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

// CreateAppointment trava os agendamentos ativos do slot dentro da
// transação e só então insere; o índice único parcial do Postgres
// cobre o que a trava não cobre (ver internal/db).
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		var count int64
		if err := tx.
			Model(&models.Appointment{}).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(
				"doctor_id = ? AND appointment_date = ? AND appointment_time = ? AND status = ?",
				ap.DoctorID, ap.AppointmentDate, ap.AppointmentTime, string(domain.StatusScheduled),
			).
			Count(&count).Error; err != nil {
			return err
		}

		if count > 0 {
			return httperr.Conflict("slot_already_booked", "This time slot is already booked.")
		}

		return tx.Create(ap).Error
	})

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.Conflict("slot_already_booked", "This time slot is already booked.")
	}

	return err
}

func (r *AppointmentGormRepository) CountActiveAt(
	ctx context.Context,
	doctorID string,
	date string,
	timeOfDay string,
	excludeID string,
) (int64, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"doctor_id = ? AND appointment_date = ? AND appointment_time = ? AND status = ?",
			doctorID, date, timeOfDay, string(domain.StatusScheduled),
		)

	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return 0, err
	}

	return count, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id string,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.NotFound("appointment_not_found", "Appointment not found.")
		}
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	err := r.db.WithContext(ctx).Save(ap).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.Conflict("slot_already_booked", "This time slot is already booked.")
	}

	return err
}

// --------------------------------------------------
// Appointment (read side)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListByDoctor(
	ctx context.Context,
	doctorID string,
	date string,
	status string,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Where("doctor_id = ?", doctorID)

	if date != "" {
		q = q.Where("appointment_date = ?", date)
	}
	if status != "" {
		q = q.Where("status = ?", status)
	}

	apps := []models.Appointment{}
	if err := q.
		Order("appointment_date ASC, appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListForRange(
	ctx context.Context,
	doctorID string,
	startDate string,
	endDate string,
) ([]models.Appointment, error) {

	apps := []models.Appointment{}

	// range inclusivo nas duas pontas; datas "YYYY-MM-DD"
	// ordenam cronologicamente como texto
	err := r.db.WithContext(ctx).
		Where(
			"doctor_id = ? AND appointment_date >= ? AND appointment_date <= ?",
			doctorID, startDate, endDate,
		).
		Order("appointment_date ASC, appointment_time ASC").
		Find(&apps).Error

	if err != nil {
		return nil, err
	}

	return apps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
