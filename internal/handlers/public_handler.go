package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/sharpfade/barber-booking/internal/cache"
	"github.com/sharpfade/barber-booking/internal/clock"
	"github.com/sharpfade/barber-booking/internal/httperr"
	"github.com/sharpfade/barber-booking/internal/httpresp"
	"github.com/sharpfade/barber-booking/internal/models"
	ucBooking "github.com/sharpfade/barber-booking/internal/usecase/booking"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serve o fluxo de agendamento do cliente: serviços,
// horários do dia e criação do agendamento (convidado permitido).
type PublicHandler struct {
	db        *gorm.DB
	getSlots  *ucBooking.GetDaySlots
	createUC  *ucBooking.CreateBooking
	slotCache *cache.SlotCache
	timezone  string
}

func NewPublicHandler(
	db *gorm.DB,
	getSlots *ucBooking.GetDaySlots,
	createUC *ucBooking.CreateBooking,
	slotCache *cache.SlotCache,
	timezone string,
) *PublicHandler {
	return &PublicHandler{
		db:        db,
		getSlots:  getSlots,
		createUC:  createUC,
		slotCache: slotCache,
		timezone:  timezone,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`
	Date        string `json:"date" binding:"required"` // YYYY-MM-DD
	Time        string `json:"time" binding:"required"` // HH:mm
	Notes       string `json:"notes"`
}

////////////////////////////////////////////////////////
// HELPERS
////////////////////////////////////////////////////////

// resolveBarber aceita ?barber=<id>; sem o parâmetro, cai no primeiro
// perfil cadastrado (barbearia de um barbeiro só)
func (h *PublicHandler) resolveBarber(c *gin.Context) (*models.BarberProfile, bool) {
	var barber models.BarberProfile

	if idStr := c.Query("barber"); idStr != "" {
		id, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			httperr.BadRequest(c, "invalid_barber_id", "Invalid barber.")
			return nil, false
		}
		if err := h.db.First(&barber, uint(id)).Error; err != nil {
			httperr.NotFound(c, "barber_not_found", "Barber profile not found.")
			return nil, false
		}
		return &barber, true
	}

	if err := h.db.Order("id ASC").First(&barber).Error; err != nil {
		httperr.NotFound(c, "barber_not_found", "Barber profile not found. Please set up your barber profile first.")
		return nil, false
	}
	return &barber, true
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	var services []models.Service
	if err := h.db.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	httpresp.List(c, services)
}

////////////////////////////////////////////////////////
// BARBERS
////////////////////////////////////////////////////////

func (h *PublicHandler) ListBarbers(c *gin.Context) {
	var barbers []models.BarberProfile
	if err := h.db.Order("id ASC").Find(&barbers).Error; err != nil {
		httperr.Internal(c, "failed_to_list_barbers", "Failed to list barbers.")
		return
	}

	httpresp.List(c, barbers)
}

////////////////////////////////////////////////////////
// DAY SLOTS
////////////////////////////////////////////////////////

func (h *PublicHandler) DaySlots(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	barber, ok := h.resolveBarber(c)
	if !ok {
		return
	}

	date, err := clock.ParseDate(dateStr, h.timezone)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	ctx := c.Request.Context()

	if slots, hit := h.slotCache.Get(ctx, barber.ID, dateStr); hit {
		c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots})
		return
	}

	slots, err := h.getSlots.Execute(ctx, barber.ID, date)
	if err != nil {
		if httperr.IsBusiness(err, "no_availability") {
			// distinto de "tudo ocupado": a UI mostra "sem expediente"
			httperr.NotFound(c, "no_availability", "No availability set for this day. Please contact the barber.")
			return
		}
		httperr.Internal(c, "availability_failed", "Failed to load availability. Please try again.")
		return
	}

	h.slotCache.Set(ctx, barber.ID, dateStr, slots)

	c.JSON(http.StatusOK, gin.H{"date": dateStr, "slots": slots})
}

////////////////////////////////////////////////////////
// CREATE BOOKING
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateBooking(c *gin.Context) {
	var req PublicCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	barber, ok := h.resolveBarber(c)
	if !ok {
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			BarberID:    barber.ID,
			ClientName:  req.ClientName,
			ClientEmail: req.ClientEmail,
			ClientPhone: req.ClientPhone,
			Date:        req.Date,
			Time:        req.Time,
			Notes:       req.Notes,
		},
	)

	if err != nil {
		mapCreateErrors(c, err)
		return
	}

	h.slotCache.Invalidate(c.Request.Context(), barber.ID, b.Date)

	c.JSON(http.StatusCreated, gin.H{
		"id":         b.ID,
		"reference":  b.Reference,
		"date":       b.Date,
		"start_time": req.Time,
		"status":     b.Status,
	})
}

func mapCreateErrors(c *gin.Context, err error) {
	code, isBusiness := httperr.BusinessCode(err)
	if !isBusiness {
		httperr.Internal(c, "booking_failed", "Failed to create booking. Please try again.")
		return
	}

	switch code {
	case "slot_taken":
		httperr.Conflict(c, "slot_taken",
			"This time slot has just been booked by someone else. Please select another time.")
	case "no_availability":
		httperr.BadRequest(c, "no_availability",
			"No availability set for this day. Please contact the barber.")
	case "outside_working_hours":
		httperr.BadRequest(c, "outside_working_hours", "The requested time is outside working hours.")
	case "in_the_past":
		httperr.BadRequest(c, "in_the_past", "The requested time is in the past.")
	case "invalid_date_or_time":
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
	default:
		httperr.BadRequest(c, code, "Booking rejected.")
	}
}
