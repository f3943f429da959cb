package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharpfade/barber-booking/internal/middleware"
	"github.com/sharpfade/barber-booking/internal/models"
	"github.com/sharpfade/barber-booking/internal/schedule"
)

type AvailabilityHandler struct {
	db *gorm.DB
}

func NewAvailabilityHandler(db *gorm.DB) *AvailabilityHandler {
	return &AvailabilityHandler{db: db}
}

// durações oferecidas pelo painel
var allowedSlotDurations = map[int]bool{
	15: true,
	30: true,
	45: true,
	60: true,
	90: true,
}

type AvailabilityDayConfig struct {
	Weekday      int    `json:"day_of_week" binding:"min=0,max=6"`
	Active       bool   `json:"is_active"`
	StartTime    string `json:"start_time"`
	EndTime      string `json:"end_time"`
	SlotDuration int    `json:"slot_duration"`
	BufferTime   int    `json:"buffer_time"`
}

type AvailabilityUpdateRequest struct {
	Days []AvailabilityDayConfig `json:"days" binding:"required"`
}

func (h *AvailabilityHandler) Get(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	var week []models.Availability
	if err := h.db.
		Where("barber_id = ?", barberID).
		Order("weekday ASC").
		Find(&week).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_availability"})
		return
	}

	c.JSON(http.StatusOK, week)
}

func (h *AvailabilityHandler) Update(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	var req AvailabilityUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var toCreate []models.Availability
	for _, d := range req.Days {
		if code := validateDayConfig(d); code != "" {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   code,
				"weekday": d.Weekday,
			})
			return
		}

		toCreate = append(toCreate, models.Availability{
			BarberID:     barberID,
			Weekday:      d.Weekday,
			Active:       d.Active,
			StartTime:    d.StartTime,
			EndTime:      d.EndTime,
			SlotDuration: d.SlotDuration,
			BufferTime:   d.BufferTime,
		})
	}

	if err := h.db.Where("barber_id = ?", barberID).Delete(&models.Availability{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_existing_availability"})
		return
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_availability"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func validateDayConfig(d AvailabilityDayConfig) string {
	// dia desativado pode ficar com campos vazios
	if !d.Active {
		return ""
	}

	start, err := schedule.ParseClock(d.StartTime)
	if err != nil {
		return "invalid_start_time"
	}
	end, err := schedule.ParseClock(d.EndTime)
	if err != nil {
		return "invalid_end_time"
	}
	if start >= end {
		return "start_must_be_before_end"
	}

	if !allowedSlotDurations[d.SlotDuration] {
		return "invalid_slot_duration"
	}
	if d.BufferTime < 0 {
		return "invalid_buffer_time"
	}

	return ""
}
