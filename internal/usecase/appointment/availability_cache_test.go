package appointment

import (
	"context"
	"testing"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	"github.com/BruksfildServices01/clinic-scheduler/internal/clock"
)

// a grade cacheada nunca pode segurar um slot já ocupado:
// toda escrita de agendamento invalida a chave (médico, data)
func TestAvailability_CacheInvalidatedByLifecycle(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	availabilityCache := cache.NewAvailability(client)

	repo := newMemoryRepo()
	repo.addDoctor(newTestDoctor())

	detector := NewConflictDetector(repo)
	createUC := NewCreateAppointment(repo, detector, clock.Fixed{T: testNow}, availabilityCache, nil)
	cancelUC := NewCancelAppointment(repo, clock.Fixed{T: testNow}, availabilityCache, nil)
	availabilityUC := NewGetAvailability(repo, availabilityCache)

	ctx := context.Background()

	// primeira leitura aquece o cache
	before, err := availabilityUC.Execute(ctx, "doc-1", "2025-03-10")
	require.NoError(t, err)
	assert.Contains(t, before.AvailableSlots, "10:00")

	created, err := createUC.Execute(ctx, validInput())
	require.NoError(t, err)

	// o create invalidou a grade: a leitura seguinte já reflete a reserva
	after, err := availabilityUC.Execute(ctx, "doc-1", "2025-03-10")
	require.NoError(t, err)
	assert.NotContains(t, after.AvailableSlots, "10:00")

	_, err = cancelUC.Execute(ctx, created.ID, "")
	require.NoError(t, err)

	freed, err := availabilityUC.Execute(ctx, "doc-1", "2025-03-10")
	require.NoError(t, err)
	assert.Contains(t, freed.AvailableSlots, "10:00")
}
