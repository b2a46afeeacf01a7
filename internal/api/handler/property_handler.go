package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sparkling-solutions/turnover-api/internal/api/metrics"
	"github.com/sparkling-solutions/turnover-api/internal/core/domain"
	"github.com/sparkling-solutions/turnover-api/internal/core/ports"
)

// PropertyHandler handles HTTP requests for the property directory.
type PropertyHandler struct {
	properties ports.PropertyService
}

func NewPropertyHandler(properties ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{properties: properties}
}

type createPropertyRequest struct {
	Name       string `json:"name" validate:"required"`
	Address    string `json:"address" validate:"required"`
	CleanerID  string `json:"cleaner_id"`
	AccessCode string `json:"access_code"`
	Notes      string `json:"notes"`
}

type listPropertiesResponse struct {
	Properties []domain.Property `json:"properties"`
	Total      int               `json:"total"`
}

// Create registers a property owned by the authenticated host. Admins may
// create on behalf of a host by passing host_id explicitly.
//
// @Summary      Create a property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPropertyRequest  true  "Property details"
// @Success      201   {object}  domain.Property
// @Failure      400   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /v1/properties [post]
func (h *PropertyHandler) Create(c echo.Context) error {
	var req struct {
		createPropertyRequest
		HostID string `json:"host_id"`
	}
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req.createPropertyRequest); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hostID, role, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	if role == domain.RoleAdmin && req.HostID != "" {
		hostID = req.HostID
	}

	prop, err := h.properties.Create(c.Request().Context(), ports.CreatePropertyInput{
		HostID:     hostID,
		Name:       req.Name,
		Address:    req.Address,
		CleanerID:  req.CleanerID,
		AccessCode: req.AccessCode,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}
	metrics.PropertiesCreatedTotal.Inc()

	return c.JSON(http.StatusCreated, prop)
}

// List returns the properties visible to the caller: hosts their own,
// cleaners their assignments, admins everything.
//
// @Summary      List properties
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  listPropertiesResponse
// @Router       /v1/properties [get]
func (h *PropertyHandler) List(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	props, err := h.properties.ListFor(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	if props == nil {
		props = []domain.Property{}
	}

	return c.JSON(http.StatusOK, listPropertiesResponse{Properties: props, Total: len(props)})
}

// Get returns a single property by id.
//
// @Summary      Get a property
// @Tags         properties
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Property id (e.g. prop_7a8b9c2d)"
// @Success      200  {object}  domain.Property
// @Failure      404  {object}  map[string]string
// @Router       /v1/properties/{id} [get]
func (h *PropertyHandler) Get(c echo.Context) error {
	prop, err := h.properties.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, prop)
}
