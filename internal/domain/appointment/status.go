package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCancelled Status = "cancelled"
)

// IsActive diz se o agendamento ainda ocupa o horário.
// Cancelados liberam o slot.
func IsActive(current Status) bool {
	return current == StatusScheduled
}

// InitialStatus: status inicial centralizado
func InitialStatus() Status {
	return StatusScheduled
}
