package appointment

import (
	"context"
	"sort"
	"sync"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// memoryRepo reproduz o contrato do Appointment Store em memória,
// inclusive a escrita condicional de CreateAppointment.
type memoryRepo struct {
	mu           sync.Mutex
	doctors      map[string]models.Doctor
	appointments map[string]models.Appointment
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{
		doctors:      map[string]models.Doctor{},
		appointments: map[string]models.Appointment{},
	}
}

func (r *memoryRepo) addDoctor(d models.Doctor) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.doctors[d.ID] = d
}

func (r *memoryRepo) GetDoctorByID(_ context.Context, id string) (*models.Doctor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	d, ok := r.doctors[id]
	if !ok {
		return nil, httperr.NotFound("doctor_not_found", "Doctor not found.")
	}
	return &d, nil
}

func (r *memoryRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.appointments {
		if existing.Status == string(domain.StatusScheduled) &&
			existing.DoctorID == ap.DoctorID &&
			existing.AppointmentDate == ap.AppointmentDate &&
			existing.AppointmentTime == ap.AppointmentTime {
			return httperr.Conflict("slot_already_booked", "This time slot is already booked.")
		}
	}

	r.appointments[ap.ID] = *ap
	return nil
}

func (r *memoryRepo) CountActiveAt(
	_ context.Context,
	doctorID, date, timeOfDay, excludeID string,
) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var count int64
	for _, ap := range r.appointments {
		if ap.Status != string(domain.StatusScheduled) {
			continue
		}
		if excludeID != "" && ap.ID == excludeID {
			continue
		}
		if ap.DoctorID == doctorID && ap.AppointmentDate == date && ap.AppointmentTime == timeOfDay {
			count++
		}
	}
	return count, nil
}

func (r *memoryRepo) GetAppointmentByID(_ context.Context, id string) (*models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ap, ok := r.appointments[id]
	if !ok {
		return nil, httperr.NotFound("appointment_not_found", "Appointment not found.")
	}
	return &ap, nil
}

func (r *memoryRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.appointments[ap.ID]; !ok {
		return httperr.NotFound("appointment_not_found", "Appointment not found.")
	}
	r.appointments[ap.ID] = *ap
	return nil
}

func sortByDateTime(apps []models.Appointment) {
	sort.Slice(apps, func(i, j int) bool {
		if apps[i].AppointmentDate != apps[j].AppointmentDate {
			return apps[i].AppointmentDate < apps[j].AppointmentDate
		}
		return apps[i].AppointmentTime < apps[j].AppointmentTime
	})
}

func (r *memoryRepo) ListByDoctor(
	_ context.Context,
	doctorID, date, status string,
) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Appointment{}
	for _, ap := range r.appointments {
		if ap.DoctorID != doctorID {
			continue
		}
		if date != "" && ap.AppointmentDate != date {
			continue
		}
		if status != "" && ap.Status != status {
			continue
		}
		out = append(out, ap)
	}

	sortByDateTime(out)
	return out, nil
}

func (r *memoryRepo) ListForRange(
	_ context.Context,
	doctorID, startDate, endDate string,
) ([]models.Appointment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Appointment{}
	for _, ap := range r.appointments {
		if ap.DoctorID != doctorID {
			continue
		}
		if ap.AppointmentDate < startDate || ap.AppointmentDate > endDate {
			continue
		}
		out = append(out, ap)
	}

	sortByDateTime(out)
	return out, nil
}

var _ domain.Repository = (*memoryRepo)(nil)
