package ports

import (
	"context"

	"github.com/sparkling-solutions/turnover-api/internal/core/domain"
)

// CreateBookingInput carries the data needed to create a booking.
// HostID and CleanerID are denormalized snapshots of the property's
// assignment, captured by the caller at creation time.
type CreateBookingInput struct {
	PropertyID string
	HostID     string
	CleanerID  string
	CheckIn    string // ISO date
	CheckOut   string // ISO date
	Notes      string
}

// BookingFilter carries the conjunctive filters for listing bookings.
// All fields are optional; empty means "no filter on this clause".
type BookingFilter struct {
	UserID     string // role-scoped: host matches host_id, cleaner matches cleaner_id
	PropertyID string
	Status     string
	StartDate  string // check_in >= StartDate (lexicographic ISO compare)
	EndDate    string // check_out <= EndDate (lexicographic ISO compare)
}

// BookingService owns the booking lifecycle and confirmation state machine.
type BookingService interface {
	Create(ctx context.Context, input CreateBookingInput) (*domain.Booking, error)
	// Confirm records userID's confirmation. Hosts set host_confirmed,
	// cleaners set cleaner_confirmed; any other role is accepted as a no-op.
	// When both flags are true after the call, status is forced to confirmed.
	Confirm(ctx context.Context, bookingID, userID string) error
	// UpdateStatus overwrites the status without touching confirmation flags.
	UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error
	Cancel(ctx context.Context, bookingID string) error
	// List returns matching bookings sorted ascending by check_in.
	List(ctx context.Context, filter BookingFilter) ([]domain.Booking, error)
}
