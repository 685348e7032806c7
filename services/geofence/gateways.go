package geofence

import (
	"context"

	"github.com/quadgate/tollpass/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/quadgate/tollpass/services/geofence GeofenceGW

// GeofenceGW is the repository client surface against the billing service.
// Create and Update use full-record replacement; there is no partial patch.
type GeofenceGW interface {
	// List returns all geofences in server order.
	List(ctx context.Context) ([]models.Geofence, error)

	// GetAdmin resolves an administrator by email. Write flows call this
	// just-in-time so the admin id is never cached across the session.
	GetAdmin(ctx context.Context, email string) (models.Admin, error)

	// Create submits a new geofence; the server assigns the id.
	Create(ctx context.Context, adminID string, form models.GeofenceForm) (models.Geofence, error)

	// Update replaces the record with the given id wholesale.
	Update(ctx context.Context, id, adminID string, form models.GeofenceForm) (models.Geofence, error)

	// Delete removes a geofence by id. Deleting an id the server does not
	// have surfaces the server's error, never a silent success.
	Delete(ctx context.Context, id string) error
}
