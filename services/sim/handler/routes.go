package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/quadgate/tollpass/services/sim"
)

// SimHandler exposes the billing service contract over HTTP.
type SimHandler struct {
	simUC sim.SimUC
}

// NewSimHandler creates a new simulator handler
func NewSimHandler(simUC sim.SimUC) *SimHandler {
	return &SimHandler{simUC: simUC}
}

// RegisterRoutes registers every endpoint of the wire contract.
func (h *SimHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/admin/login", h.AdminLogin)
	e.GET("/admin/:email", h.GetAdmin)

	e.POST("/user/login", h.UserLogin)
	e.POST("/user/register", h.Register)
	e.GET("/user/info", h.GetUserInfo)
	e.POST("/user/add-funds", h.AddFunds)

	e.GET("/geofence/show", h.ListGeofences)
	e.POST("/geofence/add", h.CreateGeofence)
	e.PUT("/geofence/update/:id", h.UpdateGeofence)
	e.DELETE("/geofence/delete/:id", h.DeleteGeofence)

	e.GET("/vehicle/:vehicleNumber/history", h.GetVehicleHistory)
}
