package ports

import "context"

// DashboardStats summarises a user's bookings and properties.
type DashboardStats struct {
	TotalBookings int
	Pending       int
	Confirmed     int
	Completed     int
	// Upcoming counts bookings with check_in on/after today whose status is
	// pending or confirmed.
	Upcoming        int
	TotalProperties int
	// PendingConfirmations counts bookings still missing at least one
	// confirmation flag.
	PendingConfirmations int
}

// CalendarEntry is the per-booking view shown on a calendar day.
type CalendarEntry struct {
	ID         string
	PropertyID string
	Status     string
	CheckOut   string
	Confirmed  bool // host_confirmed AND cleaner_confirmed
}

// PropertySummary is the lightweight property view attached to calendar data.
type PropertySummary struct {
	Name    string
	Address string
}

// CalendarInput selects the scope and month for calendar data. Month and Year
// default to the current date when zero.
type CalendarInput struct {
	UserID string
	Month  int
	Year   int
}

// CalendarData groups a month's bookings by check-in date.
type CalendarData struct {
	Month      int
	Year       int
	Days       map[string][]CalendarEntry
	Properties map[string]PropertySummary
	Stats      *DashboardStats
}

// QueryService derives dashboards and calendar views from the booking ledger
// and property directory.
type QueryService interface {
	DashboardStats(ctx context.Context, userID string) (*DashboardStats, error)
	CalendarData(ctx context.Context, input CalendarInput) (*CalendarData, error)
}
