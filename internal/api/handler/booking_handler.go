package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sparkling-solutions/turnover-api/internal/api/metrics"
	"github.com/sparkling-solutions/turnover-api/internal/core/domain"
	"github.com/sparkling-solutions/turnover-api/internal/core/ports"
)

// BookingHandler handles HTTP requests for turnover bookings.
type BookingHandler struct {
	bookings   ports.BookingService
	properties ports.PropertyService
}

func NewBookingHandler(bookings ports.BookingService, properties ports.PropertyService) *BookingHandler {
	return &BookingHandler{bookings: bookings, properties: properties}
}

type createBookingRequest struct {
	PropertyID string `json:"property_id" validate:"required"`
	CheckIn    string `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut   string `json:"check_out" validate:"required,datetime=2006-01-02"`
	Notes      string `json:"notes"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type listBookingsResponse struct {
	Bookings []domain.Booking `json:"bookings"`
	Total    int              `json:"total"`
}

// Create schedules a turnover booking against a property. The property's
// current host and cleaner assignment is captured on the booking and never
// resynced afterwards.
//
// @Summary      Create a booking
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createBookingRequest  true  "Booking details"
// @Success      201   {object}  domain.Booking
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /v1/bookings [post]
func (h *BookingHandler) Create(c echo.Context) error {
	var req createBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	prop, err := h.properties.Get(c.Request().Context(), req.PropertyID)
	if err != nil {
		return err
	}

	booking, err := h.bookings.Create(c.Request().Context(), ports.CreateBookingInput{
		PropertyID: req.PropertyID,
		HostID:     prop.HostID,
		CleanerID:  prop.CleanerID,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}
	metrics.BookingsCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, booking)
}

// List returns the bookings visible to the caller, optionally narrowed by
// property, status and check-in/check-out date range.
//
// @Summary      List bookings
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        property_id  query     string  false  "Filter by property id"
// @Param        status       query     string  false  "Filter by status"
// @Param        start_date   query     string  false  "Earliest check-in (YYYY-MM-DD)"
// @Param        end_date     query     string  false  "Latest check-out (YYYY-MM-DD)"
// @Success      200          {object}  listBookingsResponse
// @Router       /v1/bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	bookings, err := h.bookings.List(c.Request().Context(), ports.BookingFilter{
		UserID:     userID,
		PropertyID: c.QueryParam("property_id"),
		Status:     c.QueryParam("status"),
		StartDate:  c.QueryParam("start_date"),
		EndDate:    c.QueryParam("end_date"),
	})
	if err != nil {
		return err
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}

	return c.JSON(http.StatusOK, listBookingsResponse{Bookings: bookings, Total: len(bookings)})
}

// Confirm records the caller's side of the dual confirmation. Once both the
// host and the cleaner have confirmed, the booking flips to confirmed.
//
// @Summary      Confirm a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/bookings/{id}/confirm [post]
func (h *BookingHandler) Confirm(c echo.Context) error {
	userID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	bookingID := c.Param("id")

	if err := h.bookings.Confirm(c.Request().Context(), bookingID, userID); err != nil {
		return err
	}
	metrics.BookingConfirmationsTotal.WithLabelValues(role).Inc()

	return c.JSON(http.StatusOK, map[string]string{
		"message":    "confirmation recorded",
		"booking_id": bookingID,
	})
}

// UpdateStatus moves a booking to a new lifecycle status. Confirmation flags
// are left untouched.
//
// @Summary      Update booking status
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string               true  "Booking id"
// @Param        body  body      updateStatusRequest  true  "New status"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/bookings/{id}/status [patch]
func (h *BookingHandler) UpdateStatus(c echo.Context) error {
	var req updateStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	bookingID := c.Param("id")
	if err := h.bookings.UpdateStatus(c.Request().Context(), bookingID, domain.BookingStatus(req.Status)); err != nil {
		return err
	}
	metrics.BookingStatusUpdatesTotal.WithLabelValues(req.Status).Inc()

	return c.JSON(http.StatusOK, map[string]string{
		"message":    "status updated",
		"booking_id": bookingID,
		"status":     req.Status,
	})
}

// Cancel marks a booking cancelled. The record is kept for history rather
// than removed.
//
// @Summary      Cancel a booking
// @Tags         bookings
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Booking id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /v1/bookings/{id} [delete]
func (h *BookingHandler) Cancel(c echo.Context) error {
	bookingID := c.Param("id")
	if err := h.bookings.Cancel(c.Request().Context(), bookingID); err != nil {
		return err
	}
	metrics.BookingStatusUpdatesTotal.WithLabelValues(string(domain.StatusCancelled)).Inc()

	return c.JSON(http.StatusOK, map[string]string{
		"message":    "booking cancelled",
		"booking_id": bookingID,
	})
}
