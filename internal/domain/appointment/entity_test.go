package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestCancel_DefaultReason(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	ap := &models.Appointment{Status: string(StatusScheduled)}

	Cancel(ap, "", now)

	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Equal(t, DefaultCancellationReason, ap.CancellationReason)
	assert.Equal(t, now, ap.UpdatedAt)
}

func TestCancel_Idempotent(t *testing.T) {
	first := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	second := first.Add(time.Hour)

	ap := &models.Appointment{Status: string(StatusScheduled)}

	Cancel(ap, "patient request", first)
	Cancel(ap, "clinic closed", second)

	// status não muda, motivo é sobrescrito
	assert.Equal(t, string(StatusCancelled), ap.Status)
	assert.Equal(t, "clinic closed", ap.CancellationReason)
	assert.Equal(t, second, ap.UpdatedAt)
}

func TestPatch_EffectiveSlotAndMoves(t *testing.T) {
	ap := &models.Appointment{
		DoctorID:        "doc-1",
		AppointmentDate: "2025-03-10",
		AppointmentTime: "10:00",
	}

	// patch vazio não move o slot
	assert.False(t, Patch{}.MovesSlot(ap))

	// reatribuir o mesmo horário também não move
	same := "10:00"
	assert.False(t, Patch{AppointmentTime: &same}.MovesSlot(ap))

	other := "11:00"
	p := Patch{AppointmentTime: &other}
	assert.True(t, p.MovesSlot(ap))

	doctorID, date, timeOfDay := p.EffectiveSlot(ap)
	assert.Equal(t, "doc-1", doctorID)
	assert.Equal(t, "2025-03-10", date)
	assert.Equal(t, "11:00", timeOfDay)

	newDoctor := "doc-2"
	assert.True(t, Patch{DoctorID: &newDoctor}.MovesSlot(ap))
}

func TestPatch_ApplyPreservesImmutableFields(t *testing.T) {
	created := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	now := created.Add(48 * time.Hour)

	ap := &models.Appointment{
		ID:              "ap-1",
		PatientID:       "pat-1",
		DoctorID:        "doc-1",
		AppointmentDate: "2025-03-10",
		AppointmentTime: "10:00",
		Status:          string(StatusScheduled),
		CreatedAt:       created,
		UpdatedAt:       created,
	}

	notes := "bring previous exams"
	date := "2025-03-11"
	Patch{AppointmentDate: &date, Notes: &notes}.Apply(ap, now)

	assert.Equal(t, "ap-1", ap.ID)
	assert.Equal(t, created, ap.CreatedAt)
	assert.Equal(t, string(StatusScheduled), ap.Status)
	assert.Equal(t, "2025-03-11", ap.AppointmentDate)
	assert.Equal(t, "10:00", ap.AppointmentTime)
	assert.Equal(t, "bring previous exams", ap.Notes)
	assert.Equal(t, now, ap.UpdatedAt)
}
