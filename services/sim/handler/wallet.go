package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quadgate/tollpass/internal/pkg/models"
	"github.com/quadgate/tollpass/internal/utils"
	"github.com/quadgate/tollpass/services/sim"
)

// GetUserInfo handles GET /user/info?email=&vehicleNumber=.
func (h *SimHandler) GetUserInfo(c echo.Context) error {
	email := c.QueryParam("email")
	vehicleNumber := c.QueryParam("vehicleNumber")
	if email == "" || vehicleNumber == "" {
		return utils.BadRequestResponse(c, "email and vehicleNumber are required")
	}

	profile, err := h.simUC.GetUserInfo(c.Request().Context(), email, vehicleNumber)
	if err != nil {
		if errors.Is(err, sim.ErrNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to fetch user")
	}

	return c.JSON(http.StatusOK, profile)
}

// GetVehicleHistory handles GET /vehicle/:vehicleNumber/history.
func (h *SimHandler) GetVehicleHistory(c echo.Context) error {
	vehicleNumber := c.Param("vehicleNumber")
	if vehicleNumber == "" {
		return utils.BadRequestResponse(c, "vehicleNumber is required")
	}

	entries, err := h.simUC.GetVehicleHistory(c.Request().Context(), vehicleNumber)
	if err != nil {
		return utils.InternalServerErrorResponse(c, "Failed to fetch history")
	}
	if entries == nil {
		entries = []models.TollEntry{}
	}

	return c.JSON(http.StatusOK, models.TravelHistoryResponse{Data: entries})
}

// AddFunds handles POST /user/add-funds.
func (h *SimHandler) AddFunds(c echo.Context) error {
	var req models.AddFundsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	newBalance, err := h.simUC.AddFunds(c.Request().Context(), req.Email, req.Amount)
	if err != nil {
		switch {
		case errors.Is(err, sim.ErrNotFound):
			return utils.NotFoundResponse(c, "User not found")
		case errors.Is(err, sim.ErrInvalidInput):
			return utils.BadRequestResponse(c, "Amount must be positive")
		default:
			return utils.InternalServerErrorResponse(c, "Failed to add funds")
		}
	}

	return c.JSON(http.StatusOK, models.AddFundsResponse{NewBalance: newBalance})
}
