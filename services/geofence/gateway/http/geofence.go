package gateway_http

import (
	"context"
	"fmt"
	"net/url"
	"time"

	httpclient "github.com/quadgate/tollpass/internal/pkg/http"
	"github.com/quadgate/tollpass/internal/pkg/models"
)

// GeofenceClient is an HTTP client for the billing service's geofence
// endpoints.
type GeofenceClient struct {
	client *httpclient.Client
}

// NewGeofenceClient creates a new geofence HTTP client
func NewGeofenceClient(billingServiceURL string, timeout time.Duration) *GeofenceClient {
	return &GeofenceClient{
		client: httpclient.NewClient(billingServiceURL, timeout),
	}
}

// geofenceWire mirrors models.Geofence with optional numeric fields so a
// record missing coordinates or charges is detected instead of silently
// zero-filled. A geofence always has all eight coordinates and a charge;
// anything else is a malformed payload.
type geofenceWire struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Lat1           *float64 `json:"lat1"`
	Lon1           *float64 `json:"lon1"`
	Lat2           *float64 `json:"lat2"`
	Lon2           *float64 `json:"lon2"`
	Lat3           *float64 `json:"lat3"`
	Lon3           *float64 `json:"lon3"`
	Lat4           *float64 `json:"lat4"`
	Lon4           *float64 `json:"lon4"`
	Charges        *float64 `json:"charges"`
	AdminFirstName string   `json:"admin_first_name"`
	AdminLastName  string   `json:"admin_last_name"`
	CreatedAt      string   `json:"created_at"`
}

func (w geofenceWire) toGeofence() (models.Geofence, error) {
	coords := []*float64{w.Lat1, w.Lon1, w.Lat2, w.Lon2, w.Lat3, w.Lon3, w.Lat4, w.Lon4}
	for _, c := range coords {
		if c == nil {
			return models.Geofence{}, &httpclient.TransportError{
				Err: fmt.Errorf("geofence %s is missing coordinate fields", w.ID),
			}
		}
	}
	if w.Charges == nil {
		return models.Geofence{}, &httpclient.TransportError{
			Err: fmt.Errorf("geofence %s is missing charges", w.ID),
		}
	}

	return models.Geofence{
		ID:             w.ID,
		Name:           w.Name,
		Lat1:           *w.Lat1,
		Lon1:           *w.Lon1,
		Lat2:           *w.Lat2,
		Lon2:           *w.Lon2,
		Lat3:           *w.Lat3,
		Lon3:           *w.Lon3,
		Lat4:           *w.Lat4,
		Lon4:           *w.Lon4,
		Charges:        *w.Charges,
		AdminFirstName: w.AdminFirstName,
		AdminLastName:  w.AdminLastName,
		CreatedAt:      w.CreatedAt,
	}, nil
}

// List fetches all geofences in server order.
func (g *GeofenceClient) List(ctx context.Context) ([]models.Geofence, error) {
	var wire []geofenceWire
	if err := g.client.GetJSON(ctx, "/geofence/show", &wire); err != nil {
		return nil, fmt.Errorf("failed to list geofences: %w", err)
	}

	geofences := make([]models.Geofence, 0, len(wire))
	for _, w := range wire {
		gf, err := w.toGeofence()
		if err != nil {
			return nil, err
		}
		geofences = append(geofences, gf)
	}
	return geofences, nil
}

// GetAdmin resolves an administrator record by email.
func (g *GeofenceClient) GetAdmin(ctx context.Context, email string) (models.Admin, error) {
	var resp models.AdminResponse
	path := "/admin/" + url.PathEscape(email)
	if err := g.client.GetJSON(ctx, path, &resp); err != nil {
		return models.Admin{}, fmt.Errorf("failed to fetch admin %s: %w", email, err)
	}
	return resp.Admin, nil
}

// Create submits a new geofence and returns the server's record, id
// included.
func (g *GeofenceClient) Create(ctx context.Context, adminID string, form models.GeofenceForm) (models.Geofence, error) {
	req := models.GeofenceWriteRequest{GeofenceForm: form, AdminID: adminID}

	var wire geofenceWire
	if err := g.client.PostJSON(ctx, "/geofence/add", req, &wire); err != nil {
		return models.Geofence{}, fmt.Errorf("failed to create geofence: %w", err)
	}
	return wire.toGeofence()
}

// Update replaces the geofence with the given id.
func (g *GeofenceClient) Update(ctx context.Context, id, adminID string, form models.GeofenceForm) (models.Geofence, error) {
	req := models.GeofenceWriteRequest{GeofenceForm: form, AdminID: adminID}

	var wire geofenceWire
	path := "/geofence/update/" + url.PathEscape(id)
	if err := g.client.PutJSON(ctx, path, req, &wire); err != nil {
		return models.Geofence{}, fmt.Errorf("failed to update geofence %s: %w", id, err)
	}
	return wire.toGeofence()
}

// Delete removes a geofence by id.
func (g *GeofenceClient) Delete(ctx context.Context, id string) error {
	var resp models.MessageResponse
	path := "/geofence/delete/" + url.PathEscape(id)
	if err := g.client.DeleteJSON(ctx, path, &resp); err != nil {
		return fmt.Errorf("failed to delete geofence %s: %w", id, err)
	}
	return nil
}
