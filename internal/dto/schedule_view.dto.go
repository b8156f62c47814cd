package dto

import (
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AvailabilityViewDTO struct {
	Date           string   `json:"date"`
	SlotDuration   int      `json:"slotDuration"`
	AvailableSlots []string `json:"availableSlots"`
}

type ScheduleViewDTO struct {
	WorkingHours domain.WorkingHours             `json:"workingHours"`
	SlotDuration int                             `json:"slotDuration"`
	Appointments map[string][]models.Appointment `json:"appointments"`
}
