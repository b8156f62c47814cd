package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Patch é a atualização parcial tipada de um agendamento.
// ID, Status e CreatedAt nunca entram aqui: identificador e
// criação são imutáveis e o status só muda via Cancel.
type Patch struct {
	PatientID       *string
	DoctorID        *string
	AppointmentDate *string
	AppointmentTime *string
	AppointmentType *string
	Notes           *string
}

// EffectiveSlot resolve (doctor, date, time) já com o patch aplicado.
func (p Patch) EffectiveSlot(ap *models.Appointment) (doctorID, date, timeOfDay string) {
	doctorID = ap.DoctorID
	date = ap.AppointmentDate
	timeOfDay = ap.AppointmentTime

	if p.DoctorID != nil {
		doctorID = *p.DoctorID
	}
	if p.AppointmentDate != nil {
		date = *p.AppointmentDate
	}
	if p.AppointmentTime != nil {
		timeOfDay = *p.AppointmentTime
	}
	return doctorID, date, timeOfDay
}

// MovesSlot diz se o patch muda o horário efetivo do agendamento.
func (p Patch) MovesSlot(ap *models.Appointment) bool {
	doctorID, date, timeOfDay := p.EffectiveSlot(ap)
	return doctorID != ap.DoctorID ||
		date != ap.AppointmentDate ||
		timeOfDay != ap.AppointmentTime
}

// Apply sobrescreve os campos presentes e atualiza UpdatedAt.
func (p Patch) Apply(ap *models.Appointment, now time.Time) {
	if p.PatientID != nil {
		ap.PatientID = *p.PatientID
	}
	if p.DoctorID != nil {
		ap.DoctorID = *p.DoctorID
	}
	if p.AppointmentDate != nil {
		ap.AppointmentDate = *p.AppointmentDate
	}
	if p.AppointmentTime != nil {
		ap.AppointmentTime = *p.AppointmentTime
	}
	if p.AppointmentType != nil {
		ap.AppointmentType = *p.AppointmentType
	}
	if p.Notes != nil {
		ap.Notes = *p.Notes
	}

	ap.UpdatedAt = now
}
