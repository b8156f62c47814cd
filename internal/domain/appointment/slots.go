package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// WorkingHours é a janela de expediente do médico ("HH:MM").
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

const hhmm = "15:04"

// ComputeAvailableSlots gera a grade de horários livres de um dia.
//
// Os candidatos começam em Start e avançam de slotDurationMin em
// slotDurationMin; um slot parcial no fim do expediente não é
// oferecido. A comparação com horários ocupados é por igualdade
// exata da string "HH:MM", em ordem crescente.
func ComputeAvailableSlots(
	wh WorkingHours,
	slotDurationMin int,
	booked map[string]struct{},
) ([]string, error) {

	if slotDurationMin <= 0 {
		return nil, httperr.Store("invalid_slot_duration", "Doctor has an invalid slot duration.")
	}

	dayStart, err := time.Parse(hhmm, wh.Start)
	if err != nil {
		return nil, httperr.Store("invalid_working_hours", "Doctor has invalid working hours.")
	}

	dayEnd, err := time.Parse(hhmm, wh.End)
	if err != nil {
		return nil, httperr.Store("invalid_working_hours", "Doctor has invalid working hours.")
	}

	slotDuration := time.Duration(slotDurationMin) * time.Minute

	slots := []string{}
	for cur := dayStart; cur.Add(slotDuration).Before(dayEnd) || cur.Add(slotDuration).Equal(dayEnd); cur = cur.Add(slotDuration) {

		slot := cur.Format(hhmm)
		if _, taken := booked[slot]; taken {
			continue
		}

		slots = append(slots, slot)
	}

	return slots, nil
}
