package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/sparkling-solutions/turnover-api/internal/core/domain"
	"github.com/sparkling-solutions/turnover-api/internal/core/ports"
)

// QueryService derives dashboard statistics and calendar views from the
// booking ledger and property directory. It never touches the store
// directly; everything is a reduction over the two list operations.
type QueryService struct {
	bookings   ports.BookingService
	properties ports.PropertyService
	log        zerolog.Logger
	now        func() time.Time
}

func NewQueryService(bookings ports.BookingService, properties ports.PropertyService, log zerolog.Logger) *QueryService {
	return &QueryService{
		bookings:   bookings,
		properties: properties,
		log:        log,
		now:        time.Now,
	}
}

// DashboardStats reduces the caller's scoped bookings and properties into
// summary counts. Upcoming counts bookings with check_in on or after today
// (date-only comparison) in pending or confirmed status;
// PendingConfirmations counts bookings missing at least one flag.
func (s *QueryService) DashboardStats(ctx context.Context, userID string) (*ports.DashboardStats, error) {
	bookings, err := s.bookings.List(ctx, ports.BookingFilter{UserID: userID})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	properties, err := s.properties.ListFor(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}

	today := domain.DateOnly(s.now())
	stats := &ports.DashboardStats{
		TotalBookings:   len(bookings),
		TotalProperties: len(properties),
	}
	for _, b := range bookings {
		switch b.Status {
		case domain.StatusPending:
			stats.Pending++
		case domain.StatusConfirmed:
			stats.Confirmed++
		case domain.StatusCompleted:
			stats.Completed++
		}
		if b.CheckIn >= today && (b.Status == domain.StatusPending || b.Status == domain.StatusConfirmed) {
			stats.Upcoming++
		}
		if !b.HostConfirmed || !b.CleanerConfirmed {
			stats.PendingConfirmations++
		}
	}
	return stats, nil
}

// CalendarData groups the month's bookings by check-in date. The month is
// bounded by the literal strings "YYYY-MM-01" and "YYYY-MM-31"; since the
// ledger compares ISO dates lexicographically, "31" is a safe inclusive
// upper bound for every month length. This must stay a string bound, not a
// calendar-aware range, to keep edge behaviour identical across month sizes.
func (s *QueryService) CalendarData(ctx context.Context, input ports.CalendarInput) (*ports.CalendarData, error) {
	month, year := input.Month, input.Year
	if month == 0 {
		month = int(s.now().UTC().Month())
	}
	if year == 0 {
		year = s.now().UTC().Year()
	}

	startDate := fmt.Sprintf("%04d-%02d-01", year, month)
	endDate := fmt.Sprintf("%04d-%02d-31", year, month)

	bookings, err := s.bookings.List(ctx, ports.BookingFilter{
		UserID:    input.UserID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}
	properties, err := s.properties.ListFor(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("list properties: %w", err)
	}
	stats, err := s.DashboardStats(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	days := make(map[string][]ports.CalendarEntry)
	for _, b := range bookings {
		days[b.CheckIn] = append(days[b.CheckIn], ports.CalendarEntry{
			ID:         b.ID,
			PropertyID: b.PropertyID,
			Status:     string(b.Status),
			CheckOut:   b.CheckOut,
			Confirmed:  b.HostConfirmed && b.CleanerConfirmed,
		})
	}

	propsByID := make(map[string]ports.PropertySummary, len(properties))
	for _, p := range properties {
		propsByID[p.ID] = ports.PropertySummary{Name: p.Name, Address: p.Address}
	}

	return &ports.CalendarData{
		Month:      month,
		Year:       year,
		Days:       days,
		Properties: propsByID,
		Stats:      stats,
	}, nil
}
