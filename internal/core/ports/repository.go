package ports

import (
	"context"
	"errors"

	"github.com/sparkling-solutions/turnover-api/internal/core/domain"
)

// ErrNoSnapshot is returned by Load when no backing storage exists yet.
// The store reacts by creating first-run seed data, not by failing.
var ErrNoSnapshot = errors.New("no snapshot found")

// Snapshot is the complete data set exchanged with durable storage.
// Repositories always read and write the whole thing; there are no partial
// updates.
type Snapshot struct {
	Users      []domain.User
	Properties []domain.Property
	Bookings   []domain.Booking
}

// SnapshotRepository is the durable-storage port. Load is called once at
// startup; Save after every mutating operation. A Save failure propagates to
// the caller of the operation that triggered it.
type SnapshotRepository interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}
