package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/sparkling-solutions/turnover-api/internal/core/domain"
	"github.com/sparkling-solutions/turnover-api/internal/core/ports"
	"github.com/sparkling-solutions/turnover-api/internal/core/state"
)

var discardLogger = zerolog.Nop()

// fixedNow keeps date-dependent logic (upcoming counts, calendar defaults)
// deterministic across test runs.
var fixedNow = time.Date(2025, 5, 20, 12, 0, 0, 0, time.UTC)

// ---------------------------------------------------------------------------
// In-memory stub snapshot repository
// ---------------------------------------------------------------------------

type stubSnapshotRepo struct {
	saves   int
	last    *ports.Snapshot
	snap    *ports.Snapshot // returned by Load when set
	saveErr error           // if set, Save returns this error
}

func (r *stubSnapshotRepo) Load(_ context.Context) (*ports.Snapshot, error) {
	if r.snap == nil {
		return nil, ports.ErrNoSnapshot
	}
	return r.snap, nil
}

func (r *stubSnapshotRepo) Save(_ context.Context, snap *ports.Snapshot) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.last = snap
	return nil
}

// ---------------------------------------------------------------------------
// Stub token cache
// ---------------------------------------------------------------------------

type stubTokenCache struct {
	entries map[string]string
	getErr  error
}

func newStubTokenCache() *stubTokenCache {
	return &stubTokenCache{entries: make(map[string]string)}
}

func (c *stubTokenCache) Get(_ context.Context, token string) (string, error) {
	if c.getErr != nil {
		return "", c.getErr
	}
	return c.entries[token], nil
}

func (c *stubTokenCache) Put(_ context.Context, token, userID string) error {
	c.entries[token] = userID
	return nil
}

// ---------------------------------------------------------------------------
// Fixture helpers
// ---------------------------------------------------------------------------

func newTestStore() (*state.Store, *stubSnapshotRepo) {
	repo := &stubSnapshotRepo{}
	store := state.New(repo, discardLogger)
	store.Now = func() time.Time { return fixedNow }
	return store, repo
}

type fixture struct {
	store    *state.Store
	repo     *stubSnapshotRepo
	identity *IdentityService
	props    *PropertyService
	bookings *BookingService
	query    *QueryService
}

func newFixture() *fixture {
	store, repo := newTestStore()
	identity := NewIdentityService(store, nil, SHA256Hasher{}, discardLogger)
	identity.now = func() time.Time { return fixedNow }
	props := NewPropertyService(store, discardLogger)
	bookings := NewBookingService(store, discardLogger, true)
	bookings.now = func() time.Time { return fixedNow }
	query := NewQueryService(bookings, props, discardLogger)
	query.now = func() time.Time { return fixedNow }
	return &fixture{
		store:    store,
		repo:     repo,
		identity: identity,
		props:    props,
		bookings: bookings,
		query:    query,
	}
}

func (f *fixture) mustCreateUser(role string) *domain.User {
	user, err := f.identity.CreateUser(context.Background(), ports.CreateUserInput{
		Email:    role + "@example.com",
		Password: "secret",
		Name:     "Test " + role,
		Role:     role,
	})
	if err != nil {
		panic(err)
	}
	return user
}

func (f *fixture) mustCreateProperty(hostID, cleanerID string) *domain.Property {
	prop, err := f.props.Create(context.Background(), ports.CreatePropertyInput{
		HostID:    hostID,
		Name:      "Test Villa",
		Address:   "1 Test Street",
		CleanerID: cleanerID,
	})
	if err != nil {
		panic(err)
	}
	return prop
}

func (f *fixture) mustCreateBooking(propID, hostID, cleanerID, checkIn, checkOut string) *domain.Booking {
	booking, err := f.bookings.Create(context.Background(), ports.CreateBookingInput{
		PropertyID: propID,
		HostID:     hostID,
		CleanerID:  cleanerID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
	})
	if err != nil {
		panic(err)
	}
	return booking
}

func (f *fixture) getBooking(id string) *domain.Booking {
	var booking *domain.Booking
	f.store.View(func(d *state.Data) {
		if b, ok := d.Bookings[id]; ok {
			clone := *b
			booking = &clone
		}
	})
	return booking
}
