package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

type DoctorHandler struct {
	db *gorm.DB
}

func NewDoctorHandler(db *gorm.DB) *DoctorHandler {
	return &DoctorHandler{db: db}
}

// --------- Requests ---------

type CreateDoctorRequest struct {
	Name            string `json:"name" binding:"required"`
	Specialty       string `json:"specialty"`
	Phone           string `json:"phone"`
	Email           string `json:"email"`
	WorkStart       string `json:"workStart" binding:"required"`
	WorkEnd         string `json:"workEnd" binding:"required"`
	SlotDurationMin int    `json:"slotDuration" binding:"required,min=1"`
}

type UpdateDoctorRequest struct {
	Name            *string `json:"name,omitempty"`
	Specialty       *string `json:"specialty,omitempty"`
	Phone           *string `json:"phone,omitempty"`
	Email           *string `json:"email,omitempty"`
	WorkStart       *string `json:"workStart,omitempty"`
	WorkEnd         *string `json:"workEnd,omitempty"`
	SlotDurationMin *int    `json:"slotDuration,omitempty"`
	Active          *bool   `json:"active,omitempty"`
}

// expediente precisa ser "HH:MM" com início antes do fim
func validWorkingWindow(start, end string) bool {
	if !validators.IsValidTime(start) || !validators.IsValidTime(end) {
		return false
	}
	return start < end
}

// --------- Handlers ---------

func (h *DoctorHandler) List(c *gin.Context) {
	specialty := strings.ToLower(strings.TrimSpace(c.Query("specialty")))
	activeStr := strings.TrimSpace(c.Query("active")) // "true", "false" ou vazio

	q := h.db.Session(&gorm.Session{})

	if specialty != "" {
		q = q.Where("LOWER(specialty) = ?", specialty)
	}

	if activeStr != "" {
		if activeStr == "true" {
			q = q.Where("active = ?", true)
		} else if activeStr == "false" {
			q = q.Where("active = ?", false)
		}
	}

	var doctors []models.Doctor
	if err := q.
		Order("name ASC").
		Find(&doctors).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_doctors"})
		return
	}

	c.JSON(http.StatusOK, doctors)
}

func (h *DoctorHandler) Get(c *gin.Context) {
	var doctor models.Doctor
	if err := h.db.First(&doctor, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "doctor_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_doctor"})
		return
	}

	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) Create(c *gin.Context) {
	var req CreateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if !validWorkingWindow(req.WorkStart, req.WorkEnd) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_working_hours"})
		return
	}

	doctor := models.Doctor{
		ID:              uuid.NewString(),
		Name:            req.Name,
		Specialty:       req.Specialty,
		Phone:           req.Phone,
		Email:           req.Email,
		WorkStart:       req.WorkStart,
		WorkEnd:         req.WorkEnd,
		SlotDurationMin: req.SlotDurationMin,
		Active:          true,
	}

	if err := h.db.Create(&doctor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_doctor"})
		return
	}

	c.JSON(http.StatusCreated, doctor)
}

func (h *DoctorHandler) Update(c *gin.Context) {
	var doctor models.Doctor
	if err := h.db.First(&doctor, "id = ?", c.Param("id")).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "doctor_not_found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_doctor"})
		return
	}

	var req UpdateDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if req.Name != nil {
		doctor.Name = *req.Name
	}
	if req.Specialty != nil {
		doctor.Specialty = *req.Specialty
	}
	if req.Phone != nil {
		doctor.Phone = *req.Phone
	}
	if req.Email != nil {
		doctor.Email = *req.Email
	}
	if req.WorkStart != nil {
		doctor.WorkStart = *req.WorkStart
	}
	if req.WorkEnd != nil {
		doctor.WorkEnd = *req.WorkEnd
	}
	if req.SlotDurationMin != nil {
		doctor.SlotDurationMin = *req.SlotDurationMin
	}
	if req.Active != nil {
		doctor.Active = *req.Active
	}

	if !validWorkingWindow(doctor.WorkStart, doctor.WorkEnd) || doctor.SlotDurationMin <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_working_hours"})
		return
	}

	if err := h.db.Save(&doctor).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_doctor"})
		return
	}

	c.JSON(http.StatusOK, doctor)
}
