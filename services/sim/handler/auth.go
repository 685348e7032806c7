package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quadgate/tollpass/internal/pkg/models"
	"github.com/quadgate/tollpass/internal/utils"
	"github.com/quadgate/tollpass/services/sim"
)

// AdminLogin handles POST /admin/login.
func (h *SimHandler) AdminLogin(c echo.Context) error {
	var creds models.Credentials
	if err := c.Bind(&creds); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.simUC.AdminLogin(c.Request().Context(), creds); err != nil {
		if errors.Is(err, sim.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		return utils.InternalServerErrorResponse(c, "Login failed")
	}

	return utils.MessageResponse(c, http.StatusOK, "Login successful")
}

// UserLogin handles POST /user/login.
func (h *SimHandler) UserLogin(c echo.Context) error {
	var creds models.Credentials
	if err := c.Bind(&creds); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	result, err := h.simUC.UserLogin(c.Request().Context(), creds)
	if err != nil {
		if errors.Is(err, sim.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		return utils.InternalServerErrorResponse(c, "Login failed")
	}

	return c.JSON(http.StatusOK, result)
}

// Register handles POST /user/register.
func (h *SimHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	if err := h.simUC.RegisterUser(c.Request().Context(), req); err != nil {
		switch {
		case errors.Is(err, sim.ErrDuplicate):
			return utils.MessageResponse(c, http.StatusConflict, "Email or vehicle already registered")
		case errors.Is(err, sim.ErrInvalidInput):
			return utils.BadRequestResponse(c, err.Error())
		default:
			return utils.InternalServerErrorResponse(c, "Registration failed")
		}
	}

	return utils.MessageResponse(c, http.StatusCreated, "Registration successful")
}

// GetAdmin handles GET /admin/:email.
func (h *SimHandler) GetAdmin(c echo.Context) error {
	email := c.Param("email")
	if email == "" {
		return utils.BadRequestResponse(c, "Email is required")
	}

	admin, err := h.simUC.GetAdmin(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, sim.ErrNotFound) {
			return utils.NotFoundResponse(c, "Admin not found")
		}
		return utils.InternalServerErrorResponse(c, "Failed to fetch admin")
	}

	return c.JSON(http.StatusOK, models.AdminResponse{Admin: admin})
}
