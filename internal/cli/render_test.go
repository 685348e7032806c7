package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quadgate/tollpass/internal/pkg/models"
)

func TestRenderGeofences(t *testing.T) {
	var buf bytes.Buffer
	RenderGeofences(&buf, []models.Geofence{
		{
			ID:   "gf-1",
			Name: "Zone A",
			Lat1: 18.5, Lon1: 73.8,
			Lat2: 18.6, Lon2: 73.8,
			Lat3: 18.6, Lon3: 73.9,
			Lat4: 18.5, Lon4: 73.9,
			Charges:        50,
			AdminFirstName: "Asha",
			AdminLastName:  "Kulkarni",
		},
	})

	out := buf.String()
	assert.Contains(t, out, "Zone A")
	assert.Contains(t, out, "₹50.00")
	assert.Contains(t, out, "Asha Kulkarni")
}

func TestRenderGeofencesEmpty(t *testing.T) {
	var buf bytes.Buffer
	RenderGeofences(&buf, nil)
	assert.Contains(t, buf.String(), "No geofences defined.")
}

func TestRenderProfile(t *testing.T) {
	var buf bytes.Buffer
	RenderProfile(&buf, models.UserProfile{
		FirstName:     "Ravi",
		LastName:      "Sharma",
		Email:         "ravi@example.com",
		VehicleNumber: "MH12AB1234",
		WalletBalance: models.Amount(120),
		DueAmount:     models.Amount(30),
	})

	out := buf.String()
	assert.Contains(t, out, "₹120.00")
	assert.Contains(t, out, "₹30.00")
	assert.Contains(t, out, "MH12AB1234")
}

func TestRenderLedgerTotalsAndSpeedBands(t *testing.T) {
	var buf bytes.Buffer
	RenderLedger(&buf, []models.TollEntry{
		{Date: "14-03-2025", Time: "09:15:00", Latitude: 18.52, Longitude: 73.85, Speed: 105, ChargesApplied: models.Amount(45.50)},
		{Date: "15-03-2025", Time: "18:40:00", Latitude: 18.56, Longitude: 73.91, Speed: 85, ChargesApplied: models.Amount(12.00)},
		{Date: "16-03-2025", Time: "08:05:00", Latitude: 18.56, Longitude: 73.91, Speed: 60, ChargesApplied: models.Amount(0)},
	}, 57.50)

	out := buf.String()
	assert.Contains(t, out, "Total charges: ₹57.50")
	assert.Contains(t, out, colorRed+"105 km/h"+colorReset)
	assert.Contains(t, out, colorYellow+"85 km/h"+colorReset)
	assert.Contains(t, out, "Friday, March 14, 2025")
}

func TestSpeedCellBoundaries(t *testing.T) {
	// 80 is unhighlighted; the yellow band starts strictly above it.
	assert.Equal(t, "80 km/h", speedCell(80))
	assert.False(t, strings.Contains(speedCell(80), colorYellow))
	assert.Contains(t, speedCell(81), colorYellow)
	assert.Contains(t, speedCell(100), colorRed)
}
