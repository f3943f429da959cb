package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharpfade/barber-booking/internal/middleware"
	"github.com/sharpfade/barber-booking/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe valida a sessão e devolve usuário + perfil do barbeiro
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "user_not_found"})
		return
	}

	var barber models.BarberProfile
	if err := h.db.First(&barber, barberID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "barber_profile_not_found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
		"barber": barber,
	})
}

type UpdateProfileRequest struct {
	Name            string `json:"name" binding:"required"`
	Bio             string `json:"bio"`
	ExperienceYears int    `json:"experience_years"`
}

// UpdateProfile é o "barber setup" do painel
func (h *MeHandler) UpdateProfile(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	var barber models.BarberProfile
	if err := h.db.First(&barber, barberID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "barber_profile_not_found"})
		return
	}

	barber.Name = req.Name
	barber.Bio = req.Bio
	barber.ExperienceYears = req.ExperienceYears

	if err := h.db.Save(&barber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_update_profile"})
		return
	}

	c.JSON(http.StatusOK, barber)
}
