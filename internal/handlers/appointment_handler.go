package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	createUC *ucAppointment.CreateAppointment
	updateUC *ucAppointment.UpdateAppointment
	cancelUC *ucAppointment.CancelAppointment
	getUC    *ucAppointment.GetAppointment
	listUC   *ucAppointment.ListAppointmentsByDoctor
}

func NewAppointmentHandler(
	createUC *ucAppointment.CreateAppointment,
	updateUC *ucAppointment.UpdateAppointment,
	cancelUC *ucAppointment.CancelAppointment,
	getUC *ucAppointment.GetAppointment,
	listUC *ucAppointment.ListAppointmentsByDoctor,
) *AppointmentHandler {
	return &AppointmentHandler{
		createUC: createUC,
		updateUC: updateUC,
		cancelUC: cancelUC,
		getUC:    getUC,
		listUC:   listUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PatientID       string `json:"patientId"`
	DoctorID        string `json:"doctorId"`
	AppointmentDate string `json:"appointmentDate"`
	AppointmentTime string `json:"appointmentTime"`
	AppointmentType string `json:"appointmentType"`
	Notes           string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	PatientID       *string `json:"patientId"`
	DoctorID        *string `json:"doctorId"`
	AppointmentDate *string `json:"appointmentDate"`
	AppointmentTime *string `json:"appointmentTime"`
	AppointmentType *string `json:"appointmentType"`
	Notes           *string `json:"notes"`
}

type CancelAppointmentRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.AppointmentDate != "" && !validators.IsValidDate(req.AppointmentDate) {
		httperr.BadRequest(c, "invalid_date", "appointmentDate must be YYYY-MM-DD.")
		return
	}
	if req.AppointmentTime != "" && !validators.IsValidTime(req.AppointmentTime) {
		httperr.BadRequest(c, "invalid_time", "appointmentTime must be HH:MM (24h).")
		return
	}

	ap, err := h.createUC.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		AppointmentType: req.AppointmentType,
		Notes:           req.Notes,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.Created(c, ap)
}

// ======================================================
// GET BY ID
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// UPDATE (PATCH)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	if req.AppointmentDate != nil && !validators.IsValidDate(*req.AppointmentDate) {
		httperr.BadRequest(c, "invalid_date", "appointmentDate must be YYYY-MM-DD.")
		return
	}
	if req.AppointmentTime != nil && !validators.IsValidTime(*req.AppointmentTime) {
		httperr.BadRequest(c, "invalid_time", "appointmentTime must be HH:MM (24h).")
		return
	}

	ap, err := h.updateUC.Execute(c.Request.Context(), c.Param("id"), domain.Patch{
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		AppointmentType: req.AppointmentType,
		Notes:           req.Notes,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// CANCEL
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	var req CancelAppointmentRequest
	// corpo é opcional
	_ = c.ShouldBindJSON(&req)

	ap, err := h.cancelUC.Execute(c.Request.Context(), c.Param("id"), req.CancellationReason)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.OK(c, ap)
}

// ======================================================
// LIST BY DOCTOR (?date=&status=)
// ======================================================

func (h *AppointmentHandler) ListByDoctor(c *gin.Context) {
	date := c.Query("date")
	status := c.Query("status")

	if date != "" && !validators.IsValidDate(date) {
		httperr.BadRequest(c, "invalid_date", "date must be YYYY-MM-DD.")
		return
	}

	apps, err := h.listUC.Execute(c.Request.Context(), c.Param("id"), date, status)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, apps)
}
