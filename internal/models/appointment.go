package models

import "time"

type Appointment struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	PatientID string `gorm:"size:36;index" json:"patientId"`
	DoctorID  string `gorm:"size:36;index:idx_appointments_doctor_date" json:"doctorId"`

	AppointmentDate string `gorm:"size:10;index:idx_appointments_doctor_date" json:"appointmentDate"`
	AppointmentTime string `gorm:"size:5" json:"appointmentTime"`

	AppointmentType string `gorm:"size:50" json:"appointmentType"`
	Notes           string `gorm:"size:255" json:"notes"`

	Status             string `gorm:"size:20;default:'scheduled'" json:"status"`
	CancellationReason string `gorm:"size:255" json:"cancellationReason,omitempty"`

	// timestamps vêm do clock injetado, não do gorm
	CreatedAt time.Time `gorm:"autoCreateTime:false" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false" json:"updatedAt"`
}
