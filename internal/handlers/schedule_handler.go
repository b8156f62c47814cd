package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

type ScheduleHandler struct {
	availabilityUC *ucAppointment.GetAvailability
	scheduleUC     *ucAppointment.GetSchedule
}

func NewScheduleHandler(
	availabilityUC *ucAppointment.GetAvailability,
	scheduleUC *ucAppointment.GetSchedule,
) *ScheduleHandler {
	return &ScheduleHandler{
		availabilityUC: availabilityUC,
		scheduleUC:     scheduleUC,
	}
}

// ======================================================
// AVAILABILITY (?date=)
// ======================================================

func (h *ScheduleHandler) Availability(c *gin.Context) {
	date := c.Query("date")

	if date != "" && !validators.IsValidDate(date) {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
		return
	}

	view, err := h.availabilityUC.Execute(c.Request.Context(), c.Param("id"), date)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, view)
}

// ======================================================
// SCHEDULE (?startDate=&endDate=)
// ======================================================

func (h *ScheduleHandler) Schedule(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	if startDate != "" && !validators.IsValidDate(startDate) {
		httperr.BadRequest(c, "invalid_date", "startDate must be YYYY-MM-DD.")
		return
	}
	if endDate != "" && !validators.IsValidDate(endDate) {
		httperr.BadRequest(c, "invalid_date", "endDate must be YYYY-MM-DD.")
		return
	}

	view, err := h.scheduleUC.Execute(c.Request.Context(), c.Param("id"), startDate, endDate)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, view)
}
