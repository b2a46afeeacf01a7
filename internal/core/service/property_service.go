package service

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/sparkling-solutions/turnover-api/internal/core/domain"
	"github.com/sparkling-solutions/turnover-api/internal/core/ports"
	"github.com/sparkling-solutions/turnover-api/internal/core/state"
)

// PropertyService implements ports.PropertyService over the shared store.
type PropertyService struct {
	store *state.Store
	log   zerolog.Logger
}

func NewPropertyService(store *state.Store, log zerolog.Logger) *PropertyService {
	return &PropertyService{store: store, log: log}
}

// Create registers a property. The host reference must resolve to an existing
// user with the host role; the cleaner reference, when given, to a cleaner.
func (s *PropertyService) Create(ctx context.Context, input ports.CreatePropertyInput) (*domain.Property, error) {
	prop := &domain.Property{
		ID:         domain.NewID("prop"),
		HostID:     input.HostID,
		Name:       input.Name,
		Address:    input.Address,
		CleanerID:  input.CleanerID,
		AccessCode: input.AccessCode,
		Notes:      input.Notes,
	}

	err := s.store.Update(ctx, func(d *state.Data) error {
		host, ok := d.Users[input.HostID]
		if !ok || host.Role != domain.RoleHost {
			return domain.ErrReferenceNotFound
		}
		if input.CleanerID != "" {
			cleaner, ok := d.Users[input.CleanerID]
			if !ok || cleaner.Role != domain.RoleCleaner {
				return domain.ErrReferenceNotFound
			}
		}
		d.Properties[prop.ID] = prop
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("property_id", prop.ID).Str("host_id", prop.HostID).Msg("property created")
	clone := *prop
	return &clone, nil
}

// ListFor returns properties visible to userID. Hosts see properties they
// own, cleaners see their assignments; any other caller (admin, unknown id,
// or empty id) falls through to the unfiltered list.
func (s *PropertyService) ListFor(ctx context.Context, userID string) ([]domain.Property, error) {
	var results []domain.Property
	s.store.View(func(d *state.Data) {
		var role string
		if u, ok := d.Users[userID]; ok {
			role = u.Role
		}
		for _, p := range d.Properties {
			if userID != "" {
				if role == domain.RoleHost && p.HostID != userID {
					continue
				}
				if role == domain.RoleCleaner && p.CleanerID != userID {
					continue
				}
			}
			results = append(results, *p)
		}
	})

	sort.Slice(results, func(i, j int) bool { return results[i].ID < results[j].ID })
	return results, nil
}

func (s *PropertyService) Get(ctx context.Context, id string) (*domain.Property, error) {
	var prop *domain.Property
	s.store.View(func(d *state.Data) {
		if p, ok := d.Properties[id]; ok {
			clone := *p
			prop = &clone
		}
	})
	if prop == nil {
		return nil, domain.ErrPropertyNotFound
	}
	return prop, nil
}
