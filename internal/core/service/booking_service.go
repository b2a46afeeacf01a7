package service

import (
	"context"
	"sort"
	"time"

	"github.com/rs/zerolog"

	"github.com/sparkling-solutions/turnover-api/internal/core/domain"
	"github.com/sparkling-solutions/turnover-api/internal/core/ports"
	"github.com/sparkling-solutions/turnover-api/internal/core/state"
)

// BookingService implements the booking lifecycle and confirmation state
// machine over the shared store.
type BookingService struct {
	store *state.Store
	log   zerolog.Logger
	now   func() time.Time

	// confirmOverridesCancel preserves the historical behaviour where a
	// cancelled booking flips back to confirmed once both parties confirm.
	confirmOverridesCancel bool
}

func NewBookingService(store *state.Store, log zerolog.Logger, confirmOverridesCancel bool) *BookingService {
	return &BookingService{
		store:                  store,
		log:                    log,
		now:                    time.Now,
		confirmOverridesCancel: confirmOverridesCancel,
	}
}

// Create opens a booking in pending state with both confirmation flags
// cleared. HostID and CleanerID are stored as given: they are snapshots of
// the property assignment at creation time and never resync.
func (s *BookingService) Create(ctx context.Context, input ports.CreateBookingInput) (*domain.Booking, error) {
	now := domain.Timestamp(s.now())
	booking := &domain.Booking{
		ID:         domain.NewID("book"),
		PropertyID: input.PropertyID,
		HostID:     input.HostID,
		CleanerID:  input.CleanerID,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		Status:     domain.StatusPending,
		Notes:      input.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err := s.store.Update(ctx, func(d *state.Data) error {
		if _, ok := d.Properties[input.PropertyID]; !ok {
			return domain.ErrReferenceNotFound
		}
		d.Bookings[booking.ID] = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("booking_id", booking.ID).
		Str("property_id", booking.PropertyID).
		Str("check_in", booking.CheckIn).
		Str("check_out", booking.CheckOut).
		Msg("booking created")
	clone := *booking
	return &clone, nil
}

// Confirm records userID's confirmation on the booking. Hosts set the host
// flag, cleaners the cleaner flag; any other role is accepted without
// touching either flag. Once both flags are true the status is forced to
// confirmed, regardless of its current value (unless the cancel override is
// disabled and the booking is cancelled). Flags are monotonic: nothing in
// this service ever resets one.
func (s *BookingService) Confirm(ctx context.Context, bookingID, userID string) error {
	var confirmedRole string
	err := s.store.Update(ctx, func(d *state.Data) error {
		booking, ok := d.Bookings[bookingID]
		if !ok {
			return domain.ErrBookingNotFound
		}
		user, ok := d.Users[userID]
		if !ok {
			return domain.ErrUserNotFound
		}

		switch user.Role {
		case domain.RoleHost:
			booking.HostConfirmed = true
		case domain.RoleCleaner:
			booking.CleanerConfirmed = true
		}
		confirmedRole = user.Role

		if booking.FullyConfirmed() {
			if booking.Status != domain.StatusCancelled || s.confirmOverridesCancel {
				booking.Status = domain.StatusConfirmed
			}
		}
		booking.UpdatedAt = domain.Timestamp(s.now())
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("booking_id", bookingID).Str("role", confirmedRole).Msg("booking confirmed")
	return nil
}

// UpdateStatus forces the booking into the given status. Confirmation flags
// are left untouched, so a booking can complete with both flags false or
// cancel with both true. Unknown status values are rejected.
func (s *BookingService) UpdateStatus(ctx context.Context, bookingID string, status domain.BookingStatus) error {
	if !status.KnownStatus() {
		return domain.ErrInvalidStatus
	}

	err := s.store.Update(ctx, func(d *state.Data) error {
		booking, ok := d.Bookings[bookingID]
		if !ok {
			return domain.ErrBookingNotFound
		}
		booking.Status = status
		booking.UpdatedAt = domain.Timestamp(s.now())
		return nil
	})
	if err != nil {
		return err
	}

	s.log.Info().Str("booking_id", bookingID).Str("status", string(status)).Msg("booking status updated")
	return nil
}

func (s *BookingService) Cancel(ctx context.Context, bookingID string) error {
	return s.UpdateStatus(ctx, bookingID, domain.StatusCancelled)
}

// List applies the filter clauses conjunctively and returns bookings sorted
// ascending by check_in, ties broken by id for determinism.
func (s *BookingService) List(ctx context.Context, filter ports.BookingFilter) ([]domain.Booking, error) {
	var results []domain.Booking
	s.store.View(func(d *state.Data) {
		var role string
		if u, ok := d.Users[filter.UserID]; ok {
			role = u.Role
		}
		for _, b := range d.Bookings {
			if filter.UserID != "" {
				if role == domain.RoleHost && b.HostID != filter.UserID {
					continue
				}
				if role == domain.RoleCleaner && b.CleanerID != filter.UserID {
					continue
				}
			}
			if filter.PropertyID != "" && b.PropertyID != filter.PropertyID {
				continue
			}
			if filter.Status != "" && string(b.Status) != filter.Status {
				continue
			}
			if filter.StartDate != "" && b.CheckIn < filter.StartDate {
				continue
			}
			if filter.EndDate != "" && b.CheckOut > filter.EndDate {
				continue
			}
			results = append(results, *b)
		}
	})

	sort.Slice(results, func(i, j int) bool {
		if results[i].CheckIn != results[j].CheckIn {
			return results[i].CheckIn < results[j].CheckIn
		}
		return results[i].ID < results[j].ID
	})
	return results, nil
}
