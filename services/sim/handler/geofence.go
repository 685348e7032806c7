package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quadgate/tollpass/internal/pkg/models"
	"github.com/quadgate/tollpass/internal/utils"
	"github.com/quadgate/tollpass/services/sim"
)

// ListGeofences handles GET /geofence/show. The response is a bare array.
func (h *SimHandler) ListGeofences(c echo.Context) error {
	zones, err := h.simUC.ListGeofences(c.Request().Context())
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to list geofences")
	}
	if zones == nil {
		zones = []models.Geofence{}
	}
	return c.JSON(http.StatusOK, zones)
}

// CreateGeofence handles POST /geofence/add.
func (h *SimHandler) CreateGeofence(c echo.Context) error {
	var req models.GeofenceWriteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	zone, err := h.simUC.CreateGeofence(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, sim.ErrInvalidInput) {
			return utils.BadRequestResponse(c, err.Error())
		}
		return utils.InternalServerErrorResponse(c, "Failed to create geofence")
	}

	return c.JSON(http.StatusCreated, zone)
}

// UpdateGeofence handles PUT /geofence/update/:id.
func (h *SimHandler) UpdateGeofence(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Geofence id is required")
	}

	var req models.GeofenceWriteRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	zone, err := h.simUC.UpdateGeofence(c.Request().Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, sim.ErrNotFound):
			return utils.NotFoundResponse(c, "Geofence not found")
		case errors.Is(err, sim.ErrInvalidInput):
			return utils.BadRequestResponse(c, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Failed to update geofence")
		}
	}

	return c.JSON(http.StatusOK, zone)
}

// DeleteGeofence handles DELETE /geofence/delete/:id.
func (h *SimHandler) DeleteGeofence(c echo.Context) error {
	id := c.Param("id")
	if id == "" {
		return utils.BadRequestResponse(c, "Geofence id is required")
	}

	if err := h.simUC.DeleteGeofence(c.Request().Context(), id); err != nil {
		if errors.Is(err, sim.ErrNotFound) {
			return utils.NotFoundResponse(c, "Geofence not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to delete geofence")
	}

	return utils.MessageResponse(c, http.StatusOK, "Geofence deleted successfully")
}
