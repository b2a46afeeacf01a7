// Package state owns the in-memory entity maps shared by all core services.
//
// A single mutex guards users, properties, and bookings together; the system
// assumes one logical writer per process, and the store makes that safe even
// when the transport layer handles requests concurrently. Every mutation runs
// through Update, which persists a full snapshot before releasing the lock.
package state

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sparkling-solutions/turnover-api/internal/core/domain"
	"github.com/sparkling-solutions/turnover-api/internal/core/ports"
)

// Data holds the three entity maps. Callbacks passed to View and Update
// receive it while the store's lock is held and must not retain references
// past the callback.
type Data struct {
	Users      map[string]*domain.User
	Properties map[string]*domain.Property
	Bookings   map[string]*domain.Booking
}

// Store is the single owner of all entity state.
type Store struct {
	mu   sync.Mutex
	data Data
	repo ports.SnapshotRepository
	log  zerolog.Logger

	// Now is the clock used for seed data timestamps. Overridable in tests.
	Now func() time.Time
}

func New(repo ports.SnapshotRepository, log zerolog.Logger) *Store {
	return &Store{
		data: Data{
			Users:      make(map[string]*domain.User),
			Properties: make(map[string]*domain.Property),
			Bookings:   make(map[string]*domain.Booking),
		},
		repo: repo,
		log:  log,
		Now:  time.Now,
	}
}

// Load populates the store from durable storage. When no snapshot exists yet
// it creates and persists first-run seed data instead.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, ports.ErrNoSnapshot) {
			s.seedLocked()
			if err := s.persistLocked(ctx); err != nil {
				return fmt.Errorf("persist seed data: %w", err)
			}
			s.log.Info().Msg("no snapshot found, created seed data")
			return nil
		}
		return fmt.Errorf("load snapshot: %w", err)
	}

	for i := range snap.Users {
		u := snap.Users[i]
		s.data.Users[u.ID] = &u
	}
	for i := range snap.Properties {
		p := snap.Properties[i]
		s.data.Properties[p.ID] = &p
	}
	for i := range snap.Bookings {
		b := snap.Bookings[i]
		s.data.Bookings[b.ID] = &b
	}

	s.log.Info().
		Int("users", len(s.data.Users)).
		Int("properties", len(s.data.Properties)).
		Int("bookings", len(s.data.Bookings)).
		Msg("snapshot loaded")
	return nil
}

// View runs fn with read access to the data under the store lock.
func (s *Store) View(fn func(*Data)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.data)
}

// Update runs fn with write access under the store lock and, when fn
// succeeds, persists the full snapshot before unlocking. A persistence
// failure is returned to the caller; the in-memory mutation is kept so the
// caller sees consistent state on retry.
func (s *Store) Update(ctx context.Context, fn func(*Data) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := fn(&s.data); err != nil {
		return err
	}
	if err := s.persistLocked(ctx); err != nil {
		return fmt.Errorf("persist snapshot: %w", err)
	}
	return nil
}

func (s *Store) persistLocked(ctx context.Context) error {
	snap := &ports.Snapshot{
		Users:      make([]domain.User, 0, len(s.data.Users)),
		Properties: make([]domain.Property, 0, len(s.data.Properties)),
		Bookings:   make([]domain.Booking, 0, len(s.data.Bookings)),
	}
	for _, u := range s.data.Users {
		snap.Users = append(snap.Users, *u)
	}
	for _, p := range s.data.Properties {
		snap.Properties = append(snap.Properties, *p)
	}
	for _, b := range s.data.Bookings {
		snap.Bookings = append(snap.Bookings, *b)
	}
	return s.repo.Save(ctx, snap)
}
