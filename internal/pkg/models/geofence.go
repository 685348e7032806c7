package models

// Geofence represents an admin-defined quadrilateral toll zone. The four
// corner points are ordered; ordering defines the boundary and is preserved
// as received. Geometric validity (convexity, winding) is the enforcement
// engine's concern, never the client's.
type Geofence struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Lat1           float64 `json:"lat1"`
	Lon1           float64 `json:"lon1"`
	Lat2           float64 `json:"lat2"`
	Lon2           float64 `json:"lon2"`
	Lat3           float64 `json:"lat3"`
	Lon3           float64 `json:"lon3"`
	Lat4           float64 `json:"lat4"`
	Lon4           float64 `json:"lon4"`
	Charges        float64 `json:"charges"`
	AdminID        string  `json:"adminId,omitempty"`
	AdminFirstName string  `json:"admin_first_name,omitempty"`
	AdminLastName  string  `json:"admin_last_name,omitempty"`
	CreatedAt      string  `json:"created_at,omitempty"`
}

// GeofenceForm is the staging shape submitted on create and update. It
// mirrors Geofence minus id, admin reference and timestamp; those are
// assigned server-side.
type GeofenceForm struct {
	Name    string  `json:"name"`
	Lat1    float64 `json:"lat1"`
	Lon1    float64 `json:"lon1"`
	Lat2    float64 `json:"lat2"`
	Lon2    float64 `json:"lon2"`
	Lat3    float64 `json:"lat3"`
	Lon3    float64 `json:"lon3"`
	Lat4    float64 `json:"lat4"`
	Lon4    float64 `json:"lon4"`
	Charges float64 `json:"charges"`
}

// GeofenceWriteRequest is the body for geofence add and update calls.
type GeofenceWriteRequest struct {
	GeofenceForm
	AdminID string `json:"adminId"`
}

// Admin represents the owning administrator of one or more geofences.
type Admin struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// AdminResponse wraps the admin lookup payload.
type AdminResponse struct {
	Admin Admin `json:"admin"`
}
