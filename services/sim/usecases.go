package sim

import (
	"context"

	"github.com/quadgate/tollpass/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/quadgate/tollpass/services/sim SimUC

// SimUC is the business surface behind the simulator's HTTP handlers.
type SimUC interface {
	AdminLogin(ctx context.Context, creds models.Credentials) error
	UserLogin(ctx context.Context, creds models.Credentials) (models.LoginResult, error)
	RegisterUser(ctx context.Context, req models.RegisterRequest) error
	GetAdmin(ctx context.Context, email string) (models.Admin, error)

	ListGeofences(ctx context.Context) ([]models.Geofence, error)
	CreateGeofence(ctx context.Context, req models.GeofenceWriteRequest) (models.Geofence, error)
	UpdateGeofence(ctx context.Context, id string, req models.GeofenceWriteRequest) (models.Geofence, error)
	DeleteGeofence(ctx context.Context, id string) error

	GetUserInfo(ctx context.Context, email, vehicleNumber string) (models.UserProfile, error)
	GetVehicleHistory(ctx context.Context, vehicleNumber string) ([]models.TollEntry, error)
	AddFunds(ctx context.Context, email string, amount float64) (models.Amount, error)
}
