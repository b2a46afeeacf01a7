package domain

// BookingStatus represents the lifecycle state of a booking.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
)

// KnownStatus reports whether s is one of the five recognised statuses.
// Status updates reject anything else.
func (s BookingStatus) KnownStatus() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Booking is a check-in/check-out window on a property that needs coordinated
// confirmation from both the host and the assigned cleaner.
//
// HostID and CleanerID are snapshots of the property's assignment at creation
// time. Reassigning the property later does not touch existing bookings.
//
// CheckIn and CheckOut are ISO calendar dates ("2006-01-02"); all range
// filtering compares them lexicographically.
type Booking struct {
	ID         string        `json:"id"`
	PropertyID string        `json:"property_id"`
	HostID     string        `json:"host_id"`
	CleanerID  string        `json:"cleaner_id"`
	CheckIn    string        `json:"check_in"`
	CheckOut   string        `json:"check_out"`
	Status     BookingStatus `json:"status"`
	Notes      string        `json:"notes,omitempty"`
	CreatedAt  string        `json:"created_at"`
	UpdatedAt  string        `json:"updated_at"`
	// Confirmation flags flip to true exactly once and are never reset,
	// not even by direct status updates or cancellation.
	HostConfirmed    bool `json:"host_confirmed"`
	CleanerConfirmed bool `json:"cleaner_confirmed"`
}

// FullyConfirmed reports whether both parties have confirmed.
func (b *Booking) FullyConfirmed() bool {
	return b.HostConfirmed && b.CleanerConfirmed
}
