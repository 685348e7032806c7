package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/quadgate/tollpass/internal/pkg/models"
	"github.com/quadgate/tollpass/internal/utils"
)

const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m"
	colorYellow = "\033[33m"
)

// speedCell colors the speed column: red at or above 100 km/h, yellow
// above 80.
func speedCell(speed float64) string {
	text := fmt.Sprintf("%.0f km/h", speed)
	switch {
	case speed >= 100:
		return colorRed + text + colorReset
	case speed > 80:
		return colorYellow + text + colorReset
	default:
		return text
	}
}

// RenderGeofences writes the zone table. Zone codes are geohash cells of
// the first corner, a compact handle for naming zones in conversation.
func RenderGeofences(w io.Writer, zones []models.Geofence) {
	if len(zones) == 0 {
		fmt.Fprintln(w, "No geofences defined.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tZONE\tCHARGES\tCORNERS\tCREATED BY")
	for _, z := range zones {
		owner := ""
		if z.AdminFirstName != "" {
			owner = z.AdminFirstName + " " + z.AdminLastName
		}
		corners := fmt.Sprintf("(%.4f,%.4f) (%.4f,%.4f) (%.4f,%.4f) (%.4f,%.4f)",
			z.Lat1, z.Lon1, z.Lat2, z.Lon2, z.Lat3, z.Lon3, z.Lat4, z.Lon4)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			z.ID, z.Name, utils.ZoneCode(z.Lat1, z.Lon1),
			utils.FormatINR(z.Charges), corners, owner)
	}
	tw.Flush()
}

// RenderProfile writes the account summary with wallet figures.
func RenderProfile(w io.Writer, profile models.UserProfile) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Name\t%s %s\n", profile.FirstName, profile.LastName)
	fmt.Fprintf(tw, "Email\t%s\n", profile.Email)
	fmt.Fprintf(tw, "Vehicle\t%s\n", profile.VehicleNumber)
	fmt.Fprintf(tw, "Wallet balance\t%s\n", utils.FormatINR(profile.WalletBalance.Float64()))
	fmt.Fprintf(tw, "Due amount\t%s\n", utils.FormatINR(profile.DueAmount.Float64()))
	tw.Flush()
}

// RenderLedger writes the toll history table plus the derived total.
func RenderLedger(w io.Writer, entries []models.TollEntry, total float64) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No toll charges recorded.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "WHEN\tLOCATION\tSPEED\tCHARGE")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			utils.FormatEntryTimestamp(e.Date, e.Time),
			utils.ZoneCode(e.Latitude, e.Longitude),
			speedCell(e.Speed),
			utils.FormatINR(e.ChargesApplied.Float64()))
	}
	tw.Flush()
	fmt.Fprintf(w, "Total charges: %s\n", utils.FormatINR(total))
}

// RenderAdmin writes the administrator record.
func RenderAdmin(w io.Writer, admin models.Admin) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "ID\t%s\n", admin.ID)
	fmt.Fprintf(tw, "Name\t%s %s\n", admin.FirstName, admin.LastName)
	fmt.Fprintf(tw, "Email\t%s\n", admin.Email)
	tw.Flush()
}
