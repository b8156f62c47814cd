package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/clock"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

func newCancelUC(repo *memoryRepo, now time.Time) *CancelAppointment {
	return NewCancelAppointment(repo, clock.Fixed{T: now}, nil, nil)
}

func TestCancelAppointment_NotFound(t *testing.T) {
	repo := newMemoryRepo()
	uc := newCancelUC(repo, testNow)

	_, err := uc.Execute(context.Background(), "missing", "whatever")
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindNotFound))
}

func TestCancelAppointment_DefaultReason(t *testing.T) {
	repo := newMemoryRepo()
	seedScheduled(t, repo, "ap-1", "doc-1", "2025-03-10", "10:00")

	uc := newCancelUC(repo, testNow)

	ap, err := uc.Execute(context.Background(), "ap-1", "")
	require.NoError(t, err)

	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
	assert.Equal(t, domain.DefaultCancellationReason, ap.CancellationReason)
}

func TestCancelAppointment_Idempotent(t *testing.T) {
	repo := newMemoryRepo()
	seedScheduled(t, repo, "ap-1", "doc-1", "2025-03-10", "10:00")

	uc := newCancelUC(repo, testNow)

	_, err := uc.Execute(context.Background(), "ap-1", "patient request")
	require.NoError(t, err)

	// segundo cancelamento: aceito, status inalterado, motivo sobrescrito
	ap, err := uc.Execute(context.Background(), "ap-1", "doctor unavailable")
	require.NoError(t, err)
	assert.Equal(t, string(domain.StatusCancelled), ap.Status)
	assert.Equal(t, "doctor unavailable", ap.CancellationReason)
}

func TestCancelAppointment_FreesSlot(t *testing.T) {
	repo := newMemoryRepo()
	repo.addDoctor(newTestDoctor())

	createUC := newCreateUC(repo)
	cancelUC := newCancelUC(repo, testNow)
	availabilityUC := NewGetAvailability(repo, nil)

	created, err := createUC.Execute(context.Background(), validInput())
	require.NoError(t, err)

	before, err := availabilityUC.Execute(context.Background(), "doc-1", "2025-03-10")
	require.NoError(t, err)
	assert.NotContains(t, before.AvailableSlots, "10:00")

	_, err = cancelUC.Execute(context.Background(), created.ID, "")
	require.NoError(t, err)

	after, err := availabilityUC.Execute(context.Background(), "doc-1", "2025-03-10")
	require.NoError(t, err)
	assert.Contains(t, after.AvailableSlots, "10:00")

	// o horário liberado pode ser reservado de novo
	in := validInput()
	in.PatientID = "pat-2"
	_, err = createUC.Execute(context.Background(), in)
	require.NoError(t, err)
}
