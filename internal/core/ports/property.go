package ports

import (
	"context"

	"github.com/sparkling-solutions/turnover-api/internal/core/domain"
)

// CreatePropertyInput carries the data needed to register a property.
type CreatePropertyInput struct {
	HostID     string
	Name       string
	Address    string
	CleanerID  string // optional; empty = unassigned
	AccessCode string
	Notes      string
}

// PropertyService manages the property directory.
type PropertyService interface {
	Create(ctx context.Context, input CreatePropertyInput) (*domain.Property, error)
	// ListFor returns properties scoped to userID: hosts see their own,
	// cleaners see their assignments, everyone else (including admins and an
	// empty userID) sees all.
	ListFor(ctx context.Context, userID string) ([]domain.Property, error)
	Get(ctx context.Context, id string) (*domain.Property, error)
}
