package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/sharpfade/barber-booking/internal/cache"
	"github.com/sharpfade/barber-booking/internal/clock"
	"github.com/sharpfade/barber-booking/internal/httperr"
	"github.com/sharpfade/barber-booking/internal/httpresp"
	"github.com/sharpfade/barber-booking/internal/middleware"
	ucBooking "github.com/sharpfade/barber-booking/internal/usecase/booking"
)

// ======================================================
// HANDLER (painel do barbeiro)
// ======================================================

type BookingHandler struct {
	createUC   *ucBooking.CreateBooking
	cancelUC   *ucBooking.CancelBooking
	completeUC *ucBooking.CompleteBooking
	listUC     *ucBooking.ListBookings
	slotCache  *cache.SlotCache
	timezone   string
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	cancelUC *ucBooking.CancelBooking,
	completeUC *ucBooking.CompleteBooking,
	listUC *ucBooking.ListBookings,
	slotCache *cache.SlotCache,
	timezone string,
) *BookingHandler {
	return &BookingHandler{
		createUC:   createUC,
		cancelUC:   cancelUC,
		completeUC: completeUC,
		listUC:     listUC,
		slotCache:  slotCache,
		timezone:   timezone,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AdminCreateBookingRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	Notes       string `json:"notes"`
}

// ======================================================
// CREATE (barbeiro encaixa cliente por telefone/balcão)
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)

	var req AdminCreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking data.")
		return
	}

	b, err := h.createUC.Execute(
		c.Request.Context(),
		ucBooking.CreateBookingInput{
			BarberID:    barberID,
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

	h.slotCache.Invalidate(c.Request.Context(), barberID, b.Date)

	c.JSON(http.StatusCreated, b)
}

// ======================================================
// LIST (visões do painel: data exata, hoje, próximos, todos)
// ======================================================

func (h *BookingHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)
	ctx := c.Request.Context()

	if dateStr := c.Query("date"); dateStr != "" {
		if _, err := clock.ParseDate(dateStr, h.timezone); err != nil {
			httperr.BadRequest(c, "invalid_date", "Invalid date.")
			return
		}

		bookings, err := h.listUC.ByDate(ctx, barberID, dateStr)
		if err != nil {
			httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
			return
		}
		httpresp.List(c, bookings)
		return
	}

	switch c.DefaultQuery("view", "upcoming") {
	case "today":
		bookings, err := h.listUC.ByDate(ctx, barberID, clock.TodayIn(h.timezone))
		if err != nil {
			httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
			return
		}
		httpresp.List(c, bookings)

	case "all":
		bookings, err := h.listUC.All(ctx, barberID)
		if err != nil {
			httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
			return
		}
		httpresp.List(c, bookings)

	default:
		bookings, err := h.listUC.Upcoming(ctx, barberID)
		if err != nil {
			httperr.Internal(c, "failed_to_list_bookings", "Failed to list bookings.")
			return
		}
		httpresp.List(c, bookings)
	}
}

// ======================================================
// STATUS TRANSITIONS
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.cancelUC.Execute(c.Request.Context(), barberID, userID, uint(bookingID))
	if err != nil {
		mapTransitionErrors(c, err)
		return
	}

	// cancelamento libera o slot na hora
	h.slotCache.Invalidate(c.Request.Context(), barberID, b.Date)

	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) Complete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextBarberID).(uint)
	userID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	b, err := h.completeUC.Execute(c.Request.Context(), barberID, userID, uint(bookingID))
	if err != nil {
		mapTransitionErrors(c, err)
		return
	}

	h.slotCache.Invalidate(c.Request.Context(), barberID, b.Date)

	c.JSON(http.StatusOK, b)
}

func mapTransitionErrors(c *gin.Context, err error) {
	switch {
	case httperr.IsBusiness(err, "booking_not_found"):
		httperr.NotFound(c, "booking_not_found", "Booking not found.")
	case httperr.IsBusiness(err, "invalid_state"):
		httperr.BadRequest(c, "invalid_state", "Booking is already completed or cancelled.")
	default:
		httperr.Internal(c, "booking_update_failed", "Failed to update booking.")
	}
}
