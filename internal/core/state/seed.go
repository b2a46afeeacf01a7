package state

import (
	"crypto/sha256"
	"fmt"

	"github.com/sparkling-solutions/turnover-api/internal/core/domain"
)

// seedLocked creates the first-run demo data set: one host, one cleaner, one
// property assigned to both, and one confirmed booking for tomorrow's
// turnover. Caller holds the store lock.
func (s *Store) seedLocked() {
	now := domain.Timestamp(s.Now())
	tomorrow := domain.DateOnly(s.Now().AddDate(0, 0, 1))
	dayAfter := domain.DateOnly(s.Now().AddDate(0, 0, 2))

	host := &domain.User{
		ID:           "host_001",
		Email:        "host@sparklingsolutions.biz",
		Name:         "Property Host",
		Role:         domain.RoleHost,
		PasswordHash: seedHash("host123"),
		CreatedAt:    now,
		LastLogin:    now,
		Token:        domain.NewToken(),
	}
	cleaner := &domain.User{
		ID:           "cleaner_001",
		Email:        "cleaner@sparklingsolutions.biz",
		Name:         "Cleaner Team",
		Role:         domain.RoleCleaner,
		PasswordHash: seedHash("cleaner123"),
		CreatedAt:    now,
		LastLogin:    now,
		Token:        domain.NewToken(),
	}
	prop := &domain.Property{
		ID:         "prop_001",
		HostID:     host.ID,
		Name:       "Sunset Beach Villa",
		Address:    "123 Ocean View Drive, Miami Beach, FL",
		CleanerID:  cleaner.ID,
		AccessCode: "1234",
		Notes:      "Key under mat. Gate code: *1234",
	}
	booking := &domain.Booking{
		ID:               "book_001",
		PropertyID:       prop.ID,
		HostID:           host.ID,
		CleanerID:        cleaner.ID,
		CheckIn:          tomorrow,
		CheckOut:         dayAfter,
		Status:           domain.StatusConfirmed,
		Notes:            "Standard turnover cleaning",
		CreatedAt:        now,
		UpdatedAt:        now,
		HostConfirmed:    true,
		CleanerConfirmed: true,
	}

	s.data.Users[host.ID] = host
	s.data.Users[cleaner.ID] = cleaner
	s.data.Properties[prop.ID] = prop
	s.data.Bookings[booking.ID] = booking
}

// seedHash matches the default sha256 password scheme so the demo
// credentials work regardless of the configured hasher.
func seedHash(password string) string {
	sum := sha256.Sum256([]byte(password))
	return fmt.Sprintf("%x", sum)
}
