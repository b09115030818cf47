package handler

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pitchside/turf-booking/internal/middleware"
	"github.com/pitchside/turf-booking/internal/model"
	"github.com/pitchside/turf-booking/internal/queue"
	"github.com/pitchside/turf-booking/internal/repository"
)

// BookingHandler implements booking creation, listing, cancellation and
// the per-user stats feed.  All endpoints assume JWT authentication has
// already run; the user id comes from the verified token, never from the
// request body.
type BookingHandler struct {
	Bookings *repository.BookingRepo
	Turfs    *repository.TurfRepo
	// Publish delivers the confirmation event.  A field rather than a
	// direct call so tests can capture events without a broker.
	Publish func(ctx context.Context, event queue.BookingConfirmedEvent) error
}

func NewBookingHandler(bookings *repository.BookingRepo, turfs *repository.TurfRepo) *BookingHandler {
	if bookings == nil || turfs == nil {
		panic("nil repository passed to NewBookingHandler")
	}
	return &BookingHandler{Bookings: bookings, Turfs: turfs, Publish: queue.PublishBookingConfirmed}
}

type createBookingReq struct {
	TurfID    uint64 `json:"turfId"`
	PlayDate  string `json:"date"`  // YYYY-MM-DD
	StartTime string `json:"time"`  // HH:MM
	Sport     string `json:"sport"` // must be offered by the turf
}

type bookingResp struct {
	ID            uint64 `json:"id"`
	TurfID        uint64 `json:"turfId"`
	TurfName      string `json:"turfName"`
	Location      string `json:"location"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Sport         string `json:"sport"`
	Price         uint32 `json:"price"`
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
}

func toBookingResp(b *model.Booking) bookingResp {
	return bookingResp{
		ID:            b.ID,
		TurfID:        b.TurfID,
		TurfName:      b.TurfName,
		Location:      b.Location,
		Date:          b.PlayDate,
		Time:          b.StartTime,
		Sport:         b.Sport,
		Price:         b.Price,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
	}
}

// Create handles POST /api/bookings.  The slot must lie in the future and
// the sport must be one the turf offers.  The price is snapshotted from
// the turf.  On success a BookingConfirmedEvent is published; a broker
// failure is logged but does not fail the booking.
func (h *BookingHandler) Create(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.TurfID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "turfId required"})
	}
	// Slots are wall-clock times at the turf, interpreted in the server's
	// timezone so the future check lines up with time.Now.
	slot, err := time.ParseInLocation("2006-01-02 15:04", req.PlayDate+" "+req.StartTime, time.Local)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD and time HH:MM"})
	}
	if !slot.After(time.Now()) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slot must be in the future"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	turf, err := h.Turfs.GetByID(ctx, req.TurfID)
	if err != nil {
		if errors.Is(err, repository.ErrTurfNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "turf not found"})
		}
		log.Printf("booking: turf lookup failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	offered := false
	for _, s := range turf.SportsList() {
		if s == req.Sport {
			offered = true
			break
		}
	}
	if !offered {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "sport not offered at this turf"})
	}

	b := &model.Booking{
		UserID:        userID,
		TurfID:        turf.ID,
		TurfName:      turf.Name,
		Location:      turf.Location,
		PlayDate:      req.PlayDate,
		StartTime:     req.StartTime,
		Sport:         req.Sport,
		Price:         turf.PricePerHour,
		Status:        model.BookingUpcoming,
		PaymentStatus: model.PaymentPaid,
	}
	if err := h.Bookings.Create(ctx, b); err != nil {
		log.Printf("booking: create failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create booking failed"})
	}

	// Best effort: the confirmation event feeds logging/notifications only.
	_ = h.Publish(ctx, queue.BookingConfirmedEvent{
		BookingID:   b.ID,
		UserID:      userID,
		TurfID:      turf.ID,
		TurfName:    turf.Name,
		Location:    turf.Location,
		Sport:       b.Sport,
		PlayDate:    b.PlayDate,
		StartTime:   b.StartTime,
		PricePaise:  b.Price,
		ConfirmedAt: time.Now().UTC().Format(time.RFC3339),
	})

	return c.JSON(http.StatusCreated, toBookingResp(b))
}

// List handles GET /api/bookings and returns the caller's bookings,
// newest first.
func (h *BookingHandler) List(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	bookings, err := h.Bookings.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("booking: list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	out := make([]bookingResp, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, toBookingResp(b))
	}
	return c.JSON(http.StatusOK, out)
}

// Cancel handles POST /api/bookings/:id/cancel.  Only the owner's own
// upcoming bookings can be cancelled; the payment flips to refunded.
func (h *BookingHandler) Cancel(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid booking id"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	if err := h.Bookings.Cancel(ctx, id, userID); err != nil {
		if errors.Is(err, repository.ErrBookingNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "booking not found"})
		}
		log.Printf("booking: cancel failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel booking failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// Stats handles GET /api/bookings/stats.
func (h *BookingHandler) Stats(c echo.Context) error {
	userID, ok := middleware.UserID(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := reqContext(c)
	defer cancel()

	stats, err := h.Bookings.StatsByUser(ctx, userID)
	if err != nil {
		log.Printf("booking: stats failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	return c.JSON(http.StatusOK, stats)
}

// AdminList handles GET /api/admin/bookings (admin only) and includes the
// booking owner's email alongside the turf details.
func (h *BookingHandler) AdminList(c echo.Context) error {
	ctx, cancel := reqContext(c)
	defer cancel()

	bookings, err := h.Bookings.ListAll(ctx)
	if err != nil {
		log.Printf("booking: admin list failed: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "database error"})
	}
	type adminBookingResp struct {
		bookingResp
		UserID    uint64 `json:"userId"`
		UserEmail string `json:"userEmail"`
	}
	out := make([]adminBookingResp, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, adminBookingResp{bookingResp: toBookingResp(b), UserID: b.UserID, UserEmail: b.UserEmail})
	}
	return c.JSON(http.StatusOK, out)
}
