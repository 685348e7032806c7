package sim

import (
	"context"

	"github.com/quadgate/tollpass/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/quadgate/tollpass/services/sim SimRepo

// SimRepo is the persistence surface of the simulator.
type SimRepo interface {
	GetAdminByEmail(ctx context.Context, email string) (AdminAccount, error)

	GetUserByEmail(ctx context.Context, email string) (UserAccount, error)
	CreateUser(ctx context.Context, account UserAccount) error
	GetUserProfile(ctx context.Context, email, vehicleNumber string) (models.UserProfile, error)
	UpdateWallet(ctx context.Context, email string, balance, due float64) error

	ListGeofences(ctx context.Context) ([]models.Geofence, error)
	CreateGeofence(ctx context.Context, zone *models.Geofence) error
	UpdateGeofence(ctx context.Context, zone models.Geofence) error
	DeleteGeofence(ctx context.Context, id string) error

	ListTollEvents(ctx context.Context, vehicleNumber string) ([]models.TollEntry, error)
	InsertTollEvent(ctx context.Context, vehicleNumber string, entry models.TollEntry) error
}
