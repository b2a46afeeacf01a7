package snapshot

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sparkling-solutions/turnover-api/internal/core/domain"
	"github.com/sparkling-solutions/turnover-api/internal/core/ports"
)

func sampleSnapshot() *ports.Snapshot {
	return &ports.Snapshot{
		Users: []domain.User{{
			ID:           "host_001",
			Email:        "host@sparklingsolutions.biz",
			Name:         "Property Host",
			Role:         domain.RoleHost,
			PasswordHash: "deadbeef",
			CreatedAt:    "2025-05-20T12:00:00Z",
			LastLogin:    "",
			Token:        "aaaabbbbccccddddeeeeffff00001111",
		}},
		Properties: []domain.Property{{
			ID:         "prop_001",
			HostID:     "host_001",
			Name:       "Sunset Beach Villa",
			Address:    "123 Ocean View Drive",
			CleanerID:  "cleaner_001",
			AccessCode: "1234",
			Notes:      "Key under mat",
		}},
		Bookings: []domain.Booking{{
			ID:               "book_001",
			PropertyID:       "prop_001",
			HostID:           "host_001",
			CleanerID:        "cleaner_001",
			CheckIn:          "2025-06-01",
			CheckOut:         "2025-06-03",
			Status:           domain.StatusConfirmed,
			Notes:            "Standard turnover",
			CreatedAt:        "2025-05-20T12:00:00Z",
			UpdatedAt:        "2025-05-20T12:30:00Z",
			HostConfirmed:    true,
			CleanerConfirmed: true,
		}},
	}
}

func TestFileRepository_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar_data.json")
	repo := NewFileRepository(path)
	ctx := context.Background()

	want := sampleSnapshot()
	if err := repo.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(got.Users) != 1 || got.Users[0] != want.Users[0] {
		t.Errorf("user round-trip mismatch:\n got %+v\nwant %+v", got.Users[0], want.Users[0])
	}
	if len(got.Properties) != 1 || got.Properties[0] != want.Properties[0] {
		t.Errorf("property round-trip mismatch:\n got %+v\nwant %+v", got.Properties[0], want.Properties[0])
	}
	if len(got.Bookings) != 1 || got.Bookings[0] != want.Bookings[0] {
		t.Errorf("booking round-trip mismatch:\n got %+v\nwant %+v", got.Bookings[0], want.Bookings[0])
	}
}

func TestFileRepository_Load_MissingFile(t *testing.T) {
	repo := NewFileRepository(filepath.Join(t.TempDir(), "nope.json"))

	_, err := repo.Load(context.Background())
	if !errors.Is(err, ports.ErrNoSnapshot) {
		t.Fatalf("expected ErrNoSnapshot, got %v", err)
	}
}

func TestFileRepository_Save_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileRepository(filepath.Join(dir, "calendar_data.json"))

	if err := repo.Save(context.Background(), sampleSnapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 || entries[0].Name() != "calendar_data.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Errorf("expected only the snapshot file, found %v", names)
	}
}

func TestFileRepository_Save_OverwritesAtomically(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar_data.json")
	repo := NewFileRepository(path)
	ctx := context.Background()

	if err := repo.Save(ctx, sampleSnapshot()); err != nil {
		t.Fatalf("first save: %v", err)
	}

	second := sampleSnapshot()
	second.Bookings[0].Status = domain.StatusCompleted
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("second save: %v", err)
	}

	got, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got.Bookings[0].Status != domain.StatusCompleted {
		t.Errorf("expected overwritten status, got %q", got.Bookings[0].Status)
	}
}

// The persisted document must carry the legacy field names, notably api_key
// for the bearer token.
func TestFileRepository_FieldNames(t *testing.T) {
	path := filepath.Join(t.TempDir(), "calendar_data.json")
	repo := NewFileRepository(path)

	if err := repo.Save(context.Background(), sampleSnapshot()); err != nil {
		t.Fatalf("save: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	for _, field := range []string{`"api_key"`, `"password_hash"`, `"host_confirmed"`, `"cleaner_confirmed"`, `"check_in"`} {
		if !strings.Contains(string(raw), field) {
			t.Errorf("snapshot document missing field %s", field)
		}
	}
}
