package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/cache"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

type GetAvailability struct {
	repo  domain.Repository
	cache *cache.Availability
}

func NewGetAvailability(repo domain.Repository, availability *cache.Availability) *GetAvailability {
	return &GetAvailability{repo: repo, cache: availability}
}

func (uc *GetAvailability) Execute(
	ctx context.Context,
	doctorID string,
	date string,
) (*dto.AvailabilityViewDTO, error) {

	if date == "" {
		return nil, httperr.Validation("missing_date", "date is required.")
	}

	doctor, err := uc.repo.GetDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	if slots, ok := uc.cache.Get(ctx, doctorID, date); ok {
		return &dto.AvailabilityViewDTO{
			Date:           date,
			SlotDuration:   doctor.SlotDurationMin,
			AvailableSlots: slots,
		}, nil
	}

	active, err := uc.repo.ListByDoctor(
		ctx,
		doctorID,
		date,
		string(domain.StatusScheduled),
	)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]struct{}, len(active))
	for _, ap := range active {
		booked[ap.AppointmentTime] = struct{}{}
	}

	slots, err := domain.ComputeAvailableSlots(
		domain.WorkingHours{Start: doctor.WorkStart, End: doctor.WorkEnd},
		doctor.SlotDurationMin,
		booked,
	)
	if err != nil {
		return nil, err
	}

	uc.cache.Set(ctx, doctorID, date, slots)

	return &dto.AvailabilityViewDTO{
		Date:           date,
		SlotDuration:   doctor.SlotDurationMin,
		AvailableSlots: slots,
	}, nil
}
