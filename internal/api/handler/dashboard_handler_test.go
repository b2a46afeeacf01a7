package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/sparkling-solutions/turnover-api/internal/core/ports"
)

type stubQueryService struct {
	statsFn    func(ctx context.Context, userID string) (*ports.DashboardStats, error)
	calendarFn func(ctx context.Context, input ports.CalendarInput) (*ports.CalendarData, error)
}

func (s *stubQueryService) DashboardStats(ctx context.Context, userID string) (*ports.DashboardStats, error) {
	return s.statsFn(ctx, userID)
}

func (s *stubQueryService) CalendarData(ctx context.Context, input ports.CalendarInput) (*ports.CalendarData, error) {
	return s.calendarFn(ctx, input)
}

func TestDashboardHandler_Stats_FieldNames(t *testing.T) {
	e := newTestEcho()
	queries := &stubQueryService{
		statsFn: func(ctx context.Context, userID string) (*ports.DashboardStats, error) {
			if userID != "host_001" {
				t.Fatalf("unexpected user id: %s", userID)
			}
			return &ports.DashboardStats{
				TotalBookings:        4,
				Pending:              1,
				Confirmed:            2,
				Completed:            1,
				Upcoming:             3,
				TotalProperties:      2,
				PendingConfirmations: 1,
			}, nil
		},
	}
	h := NewDashboardHandler(queries)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/stats", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "host_001")

	if err := h.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	// Clients depend on these exact field names.
	for key, want := range map[string]float64{
		"total_bookings":        4,
		"pending":               1,
		"confirmed":             2,
		"completed":             1,
		"upcoming":              3,
		"total_properties":      2,
		"pending_confirmations": 1,
	} {
		if resp[key] != want {
			t.Fatalf("field %s: want %v, got %v", key, want, resp[key])
		}
	}
}

func TestDashboardHandler_Calendar(t *testing.T) {
	e := newTestEcho()
	queries := &stubQueryService{
		calendarFn: func(ctx context.Context, input ports.CalendarInput) (*ports.CalendarData, error) {
			if input.UserID != "cleaner_001" || input.Month != 2 || input.Year != 2024 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &ports.CalendarData{
				Month: 2,
				Year:  2024,
				Days: map[string][]ports.CalendarEntry{
					"2024-02-14": {{
						ID:         "book_11223344",
						PropertyID: "prop_001",
						Status:     "confirmed",
						CheckOut:   "2024-02-16",
						Confirmed:  true,
					}},
				},
				Properties: map[string]ports.PropertySummary{
					"prop_001": {Name: "Sunset Beach Villa", Address: "123 Ocean Drive"},
				},
				Stats: &ports.DashboardStats{TotalBookings: 1, Confirmed: 1},
			}, nil
		},
	}
	h := NewDashboardHandler(queries)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/calendar?month=2&year=2024", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "cleaner_001")

	if err := h.Calendar(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	var resp struct {
		Month    int `json:"month"`
		Year     int `json:"year"`
		Calendar map[string][]struct {
			ID        string `json:"id"`
			Confirmed bool   `json:"confirmed"`
		} `json:"calendar"`
		Properties map[string]struct {
			Name string `json:"name"`
		} `json:"properties"`
		Stats struct {
			TotalBookings int `json:"total_bookings"`
		} `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Month != 2 || resp.Year != 2024 {
		t.Fatalf("unexpected month/year: %d/%d", resp.Month, resp.Year)
	}
	entries := resp.Calendar["2024-02-14"]
	if len(entries) != 1 || entries[0].ID != "book_11223344" || !entries[0].Confirmed {
		t.Fatalf("unexpected calendar entries: %+v", resp.Calendar)
	}
	if resp.Properties["prop_001"].Name != "Sunset Beach Villa" {
		t.Fatalf("unexpected properties: %+v", resp.Properties)
	}
	if resp.Stats.TotalBookings != 1 {
		t.Fatalf("unexpected stats: %+v", resp.Stats)
	}
}

func TestDashboardHandler_Calendar_DefaultsToCurrentMonth(t *testing.T) {
	e := newTestEcho()
	queries := &stubQueryService{
		calendarFn: func(ctx context.Context, input ports.CalendarInput) (*ports.CalendarData, error) {
			// Absent query params arrive as zero; the query service fills in
			// the current month and year.
			if input.Month != 0 || input.Year != 0 {
				t.Fatalf("expected zero month/year, got %+v", input)
			}
			return &ports.CalendarData{
				Month: 5, Year: 2025,
				Days:       map[string][]ports.CalendarEntry{},
				Properties: map[string]ports.PropertySummary{},
				Stats:      &ports.DashboardStats{},
			}, nil
		},
	}
	h := NewDashboardHandler(queries)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/calendar", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "host_001")

	if err := h.Calendar(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestDashboardHandler_Calendar_BadMonth(t *testing.T) {
	e := newTestEcho()
	queries := &stubQueryService{
		calendarFn: func(ctx context.Context, input ports.CalendarInput) (*ports.CalendarData, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewDashboardHandler(queries)

	req := httptest.NewRequest(http.MethodGet, "/v1/dashboard/calendar?month=february", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "host_001")

	err := h.Calendar(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}
