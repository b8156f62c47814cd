package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestConflictDetector(t *testing.T) {
	repo := newMemoryRepo()
	seedScheduled(t, repo, "ap-1", "doc-1", "2025-03-10", "10:00")

	cancelled := &models.Appointment{
		ID:              "ap-2",
		DoctorID:        "doc-1",
		AppointmentDate: "2025-03-10",
		AppointmentTime: "11:00",
		Status:          string(domain.StatusCancelled),
	}
	require.NoError(t, repo.CreateAppointment(context.Background(), cancelled))

	detector := NewConflictDetector(repo)

	tests := []struct {
		name      string
		doctorID  string
		date      string
		timeOfDay string
		excludeID string
		want      bool
	}{
		{"occupied slot", "doc-1", "2025-03-10", "10:00", "", true},
		{"free slot", "doc-1", "2025-03-10", "10:30", "", false},
		{"cancelled slot is free", "doc-1", "2025-03-10", "11:00", "", false},
		{"other doctor", "doc-2", "2025-03-10", "10:00", "", false},
		{"other date", "doc-1", "2025-03-11", "10:00", "", false},
		{"excluding itself", "doc-1", "2025-03-10", "10:00", "ap-1", false},
		{"excluding someone else", "doc-1", "2025-03-10", "10:00", "ap-9", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := detector.HasConflict(
				context.Background(),
				tt.doctorID,
				tt.date,
				tt.timeOfDay,
				tt.excludeID,
			)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
