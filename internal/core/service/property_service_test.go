package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sparkling-solutions/turnover-api/internal/core/domain"
	"github.com/sparkling-solutions/turnover-api/internal/core/ports"
)

func TestPropertyService_Create_Success(t *testing.T) {
	f := newFixture()
	host := f.mustCreateUser(domain.RoleHost)
	cleaner := f.mustCreateUser(domain.RoleCleaner)

	prop, err := f.props.Create(context.Background(), ports.CreatePropertyInput{
		HostID:     host.ID,
		Name:       "Sunset Villa",
		Address:    "1 Beach Rd",
		CleanerID:  cleaner.ID,
		AccessCode: "4321",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(prop.ID, "prop_") {
		t.Errorf("id format wrong: %q", prop.ID)
	}
	if prop.HostID != host.ID || prop.CleanerID != cleaner.ID {
		t.Errorf("references not stored: %+v", prop)
	}
}

func TestPropertyService_Create_UnknownHost(t *testing.T) {
	f := newFixture()

	_, err := f.props.Create(context.Background(), ports.CreatePropertyInput{
		HostID: "host_missing", Name: "X", Address: "Y",
	})
	if !errors.Is(err, domain.ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}
}

func TestPropertyService_Create_HostMustHaveHostRole(t *testing.T) {
	f := newFixture()
	cleaner := f.mustCreateUser(domain.RoleCleaner)

	_, err := f.props.Create(context.Background(), ports.CreatePropertyInput{
		HostID: cleaner.ID, Name: "X", Address: "Y",
	})
	if !errors.Is(err, domain.ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound for non-host owner, got %v", err)
	}
}

func TestPropertyService_Create_UnknownCleaner(t *testing.T) {
	f := newFixture()
	host := f.mustCreateUser(domain.RoleHost)

	_, err := f.props.Create(context.Background(), ports.CreatePropertyInput{
		HostID: host.ID, Name: "X", Address: "Y", CleanerID: "cleaner_missing",
	})
	if !errors.Is(err, domain.ErrReferenceNotFound) {
		t.Fatalf("expected ErrReferenceNotFound, got %v", err)
	}
}

func TestPropertyService_ListFor_Scoping(t *testing.T) {
	f := newFixture()
	hostA := f.mustCreateUser(domain.RoleHost)
	hostB := f.mustCreateUser(domain.RoleHost)
	cleaner := f.mustCreateUser(domain.RoleCleaner)
	admin := f.mustCreateUser(domain.RoleAdmin)

	propA := f.mustCreateProperty(hostA.ID, cleaner.ID)
	propB := f.mustCreateProperty(hostB.ID, "")

	cases := []struct {
		name   string
		userID string
		want   []string
	}{
		{"host sees own", hostA.ID, []string{propA.ID}},
		{"other host sees own", hostB.ID, []string{propB.ID}},
		{"cleaner sees assignments", cleaner.ID, []string{propA.ID}},
		{"admin falls through to all", admin.ID, []string{propA.ID, propB.ID}},
		{"empty id lists all", "", []string{propA.ID, propB.ID}},
		{"unknown id lists all", "ghost", []string{propA.ID, propB.ID}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := f.props.ListFor(context.Background(), tc.userID)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			ids := make(map[string]bool, len(got))
			for _, p := range got {
				ids[p.ID] = true
			}
			if len(got) != len(tc.want) {
				t.Fatalf("expected %d properties, got %d", len(tc.want), len(got))
			}
			for _, id := range tc.want {
				if !ids[id] {
					t.Errorf("missing property %q in %v", id, ids)
				}
			}
		})
	}
}

func TestPropertyService_Get(t *testing.T) {
	f := newFixture()
	host := f.mustCreateUser(domain.RoleHost)
	prop := f.mustCreateProperty(host.ID, "")

	got, err := f.props.Get(context.Background(), prop.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != prop.Name || got.Address != prop.Address {
		t.Errorf("wrong property returned: %+v", got)
	}

	if _, err := f.props.Get(context.Background(), "prop_missing"); !errors.Is(err, domain.ErrPropertyNotFound) {
		t.Fatalf("expected ErrPropertyNotFound, got %v", err)
	}
}
