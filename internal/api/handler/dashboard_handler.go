package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sparkling-solutions/turnover-api/internal/core/ports"
)

// DashboardHandler serves the derived dashboard and calendar views.
type DashboardHandler struct {
	queries ports.QueryService
}

func NewDashboardHandler(queries ports.QueryService) *DashboardHandler {
	return &DashboardHandler{queries: queries}
}

// statsResponse keeps the field names clients already depend on.
type statsResponse struct {
	TotalBookings        int `json:"total_bookings"`
	Pending              int `json:"pending"`
	Confirmed            int `json:"confirmed"`
	Completed            int `json:"completed"`
	Upcoming             int `json:"upcoming"`
	TotalProperties      int `json:"total_properties"`
	PendingConfirmations int `json:"pending_confirmations"`
}

type calendarEntryResponse struct {
	ID         string `json:"id"`
	PropertyID string `json:"property_id"`
	Status     string `json:"status"`
	CheckOut   string `json:"check_out"`
	Confirmed  bool   `json:"confirmed"`
}

type propertySummaryResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type calendarResponse struct {
	Month      int                                `json:"month"`
	Year       int                                `json:"year"`
	Calendar   map[string][]calendarEntryResponse `json:"calendar"`
	Properties map[string]propertySummaryResponse `json:"properties"`
	Stats      statsResponse                      `json:"stats"`
}

func newStatsResponse(stats *ports.DashboardStats) statsResponse {
	return statsResponse{
		TotalBookings:        stats.TotalBookings,
		Pending:              stats.Pending,
		Confirmed:            stats.Confirmed,
		Completed:            stats.Completed,
		Upcoming:             stats.Upcoming,
		TotalProperties:      stats.TotalProperties,
		PendingConfirmations: stats.PendingConfirmations,
	}
}

// Stats returns booking and property counters scoped to the caller.
//
// @Summary      Dashboard statistics
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  statsResponse
// @Router       /v1/dashboard/stats [get]
func (h *DashboardHandler) Stats(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	stats, err := h.queries.DashboardStats(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, newStatsResponse(stats))
}

// Calendar returns the caller's bookings for a month grouped by check-in
// date. Month and year default to the current date when absent.
//
// @Summary      Monthly booking calendar
// @Tags         dashboard
// @Produce      json
// @Security     BearerAuth
// @Param        month  query     int  false  "Month (1-12)"
// @Param        year   query     int  false  "Year"
// @Success      200    {object}  calendarResponse
// @Failure      400    {object}  map[string]string
// @Router       /v1/dashboard/calendar [get]
func (h *DashboardHandler) Calendar(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	month, err := intQueryParam(c, "month")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "month must be an integer")
	}
	year, err := intQueryParam(c, "year")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "year must be an integer")
	}

	data, err := h.queries.CalendarData(c.Request().Context(), ports.CalendarInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	})
	if err != nil {
		return err
	}

	resp := calendarResponse{
		Month:      data.Month,
		Year:       data.Year,
		Calendar:   make(map[string][]calendarEntryResponse, len(data.Days)),
		Properties: make(map[string]propertySummaryResponse, len(data.Properties)),
		Stats:      newStatsResponse(data.Stats),
	}
	for day, entries := range data.Days {
		out := make([]calendarEntryResponse, 0, len(entries))
		for _, e := range entries {
			out = append(out, calendarEntryResponse{
				ID:         e.ID,
				PropertyID: e.PropertyID,
				Status:     e.Status,
				CheckOut:   e.CheckOut,
				Confirmed:  e.Confirmed,
			})
		}
		resp.Calendar[day] = out
	}
	for id, p := range data.Properties {
		resp.Properties[id] = propertySummaryResponse{Name: p.Name, Address: p.Address}
	}

	return c.JSON(http.StatusOK, resp)
}

func intQueryParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
