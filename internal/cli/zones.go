package cli

import (
	"context"
	"fmt"
)

func (a *App) listZones(ctx context.Context) error {
	if err := a.geofences.Refresh(ctx); err != nil {
		// The last-known list stays on screen with a warning banner.
		fmt.Fprintln(a.out, "Warning: could not refresh zones:", err)
	}
	RenderGeofences(a.out, a.geofences.Geofences())
	return nil
}

// promptForm walks the staged zone form field by field. Entering nothing
// keeps the staged value, so editing only charges does not require
// retyping eight coordinates.
func (a *App) promptForm() error {
	form := a.geofences.Form()
	fields := []struct {
		label string
		dest  *string
	}{
		{"Name", &form.Name},
		{"Corner 1 latitude", &form.Lat1},
		{"Corner 1 longitude", &form.Lon1},
		{"Corner 2 latitude", &form.Lat2},
		{"Corner 2 longitude", &form.Lon2},
		{"Corner 3 latitude", &form.Lat3},
		{"Corner 3 longitude", &form.Lon3},
		{"Corner 4 latitude", &form.Lat4},
		{"Corner 4 longitude", &form.Lon4},
		{"Charges (INR)", &form.Charges},
	}
	for _, f := range fields {
		label := f.label
		if *f.dest != "" {
			label = fmt.Sprintf("%s [%s]", f.label, *f.dest)
		}
		value, err := ReadLine(a.reader, label, a.out)
		if err != nil {
			return err
		}
		if value != "" {
			*f.dest = value
		}
	}
	a.geofences.SetForm(form)
	return nil
}

func (a *App) addZone(ctx context.Context) error {
	a.geofences.BeginCreate()
	if err := a.promptForm(); err != nil {
		a.geofences.Cancel()
		return err
	}

	zone, err := a.geofences.Submit(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Create failed:", err)
		a.geofences.Cancel()
		return nil
	}

	fmt.Fprintf(a.out, "Geofence %s created.\n", zone.ID)
	RenderGeofences(a.out, a.geofences.Geofences())
	return nil
}

func (a *App) editZone(ctx context.Context, id string) error {
	if id == "" {
		fmt.Fprintln(a.out, "Usage: edit <zone-id>")
		return nil
	}

	found := false
	for _, z := range a.geofences.Geofences() {
		if z.ID == id {
			a.geofences.BeginEdit(z)
			found = true
			break
		}
	}
	if !found {
		fmt.Fprintln(a.out, "No zone with id", id, "in the current list. Run 'zones' first.")
		return nil
	}

	if err := a.promptForm(); err != nil {
		a.geofences.Cancel()
		return err
	}

	if _, err := a.geofences.Submit(ctx); err != nil {
		fmt.Fprintln(a.out, "Update failed:", err)
		a.geofences.Cancel()
		return nil
	}

	fmt.Fprintln(a.out, "Geofence updated.")
	RenderGeofences(a.out, a.geofences.Geofences())
	return nil
}

func (a *App) deleteZone(ctx context.Context, id string) error {
	if id == "" {
		fmt.Fprintln(a.out, "Usage: delete <zone-id>")
		return nil
	}

	if err := a.geofences.Delete(ctx, id); err != nil {
		fmt.Fprintln(a.out, "Delete failed:", err)
		return nil
	}

	fmt.Fprintln(a.out, "Geofence deleted.")
	RenderGeofences(a.out, a.geofences.Geofences())
	return nil
}

func (a *App) whoami(ctx context.Context) error {
	sess, ok := a.sessions.Current(ctx)
	if !ok {
		fmt.Fprintln(a.out, "Not logged in.")
		return nil
	}

	admin, err := a.geofences.Admin(ctx, sess.Email)
	if err != nil {
		fmt.Fprintln(a.out, "Could not fetch admin profile:", err)
		return nil
	}
	RenderAdmin(a.out, admin)
	return nil
}
