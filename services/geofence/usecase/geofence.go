package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/quadgate/tollpass/internal/pkg/logger"
	"github.com/quadgate/tollpass/internal/pkg/models"
	"github.com/quadgate/tollpass/internal/session"
	"github.com/quadgate/tollpass/services/geofence"
)

// SessionReader provides the current authenticated identity.
type SessionReader interface {
	Current(ctx context.Context) (session.Session, bool)
}

// FormMode says what a submission will do. The two active modes are
// mutually exclusive and tagged explicitly, so create and edit can never
// bleed into each other through a half-reset shared record.
type FormMode int

const (
	// ModeIdle means no form is staged.
	ModeIdle FormMode = iota
	// ModeCreate stages a brand new geofence; submission produces a new record.
	ModeCreate
	// ModeEdit stages changes to an existing record; submission replaces it by id.
	ModeEdit
)

func (m FormMode) String() string {
	switch m {
	case ModeCreate:
		return "create"
	case ModeEdit:
		return "edit"
	default:
		return "idle"
	}
}

// FormState is the transient staging area for geofence input. Values stay
// as entered; nothing is validated here beyond presence and numeric parse
// at submission time. The server is the authority on geometric validity.
type FormState struct {
	Name    string
	Lat1    string
	Lon1    string
	Lat2    string
	Lon2    string
	Lat3    string
	Lon3    string
	Lat4    string
	Lon4    string
	Charges string
}

// Controller owns the geofence list and the dual-mode form over it.
//
// The list is replaced wholesale on each successful refresh. A failed
// refresh keeps the last-known list on screen and records the error, so
// "failed to load" is never rendered as "confirmed empty".
type Controller struct {
	gw       geofence.GeofenceGW
	sessions SessionReader

	mu         sync.Mutex
	mode       FormMode
	editingID  string
	form       FormState
	geofences  []models.Geofence
	loaded     bool
	refreshErr error
	submitting bool
}

// NewController creates a new geofence controller
func NewController(gw geofence.GeofenceGW, sessions SessionReader) *Controller {
	return &Controller{
		gw:       gw,
		sessions: sessions,
	}
}

// Refresh fetches the list from the server. On success the displayed list
// is replaced; on failure it is retained and the error is both recorded
// and returned.
func (c *Controller) Refresh(ctx context.Context) error {
	list, err := c.gw.List(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.refreshErr = err
		return err
	}

	c.geofences = list
	c.loaded = true
	c.refreshErr = nil
	return nil
}

// Geofences returns a copy of the currently displayed list.
func (c *Controller) Geofences() []models.Geofence {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Geofence, len(c.geofences))
	copy(out, c.geofences)
	return out
}

// RefreshError reports the error from the most recent failed refresh, or
// nil when the displayed list matches server state.
func (c *Controller) RefreshError() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.refreshErr
}

// Mode returns the current form mode.
func (c *Controller) Mode() FormMode {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mode
}

// EditingID returns the id of the record being edited, if any.
func (c *Controller) EditingID() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.editingID
}

// Form returns the staged form values.
func (c *Controller) Form() FormState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// BeginCreate opens an empty form for a new geofence.
func (c *Controller) BeginCreate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeCreate
	c.editingID = ""
	c.form = FormState{}
}

// BeginEdit populates the form from an existing record, copying only the
// scalar fields. The id, admin reference and timestamp never enter the
// form.
func (c *Controller) BeginEdit(g models.Geofence) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = ModeEdit
	c.editingID = g.ID
	c.form = FormState{
		Name:    g.Name,
		Lat1:    formatCoord(g.Lat1),
		Lon1:    formatCoord(g.Lon1),
		Lat2:    formatCoord(g.Lat2),
		Lon2:    formatCoord(g.Lon2),
		Lat3:    formatCoord(g.Lat3),
		Lon3:    formatCoord(g.Lon3),
		Lat4:    formatCoord(g.Lat4),
		Lon4:    formatCoord(g.Lon4),
		Charges: strconv.FormatFloat(g.Charges, 'f', -1, 64),
	}
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// SetForm replaces the staged form values.
func (c *Controller) SetForm(form FormState) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = form
}

// Cancel discards the staged form and returns to idle.
func (c *Controller) Cancel() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.reset()
}

func (c *Controller) reset() {
	c.mode = ModeIdle
	c.editingID = ""
	c.form = FormState{}
}

// Submit sends the staged form to the server. The admin identity is
// resolved just-in-time from the session email, so a stale cached admin id
// can never be attached to a write. On success the form resets and the
// list is refetched in full; there is no optimistic local insert.
func (c *Controller) Submit(ctx context.Context) (models.Geofence, error) {
	c.mu.Lock()
	if c.submitting {
		c.mu.Unlock()
		return models.Geofence{}, fmt.Errorf("a submission is already in progress")
	}
	if c.mode == ModeIdle {
		c.mu.Unlock()
		return models.Geofence{}, fmt.Errorf("no form is staged")
	}
	mode := c.mode
	editingID := c.editingID
	form := c.form
	c.submitting = true
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.submitting = false
		c.mu.Unlock()
	}()

	parsed, err := parseForm(form)
	if err != nil {
		return models.Geofence{}, err
	}

	sess, ok := c.sessions.Current(ctx)
	if !ok {
		return models.Geofence{}, fmt.Errorf("not logged in")
	}

	admin, err := c.gw.GetAdmin(ctx, sess.Email)
	if err != nil {
		return models.Geofence{}, fmt.Errorf("failed to resolve admin identity: %w", err)
	}

	var saved models.Geofence
	switch mode {
	case ModeCreate:
		saved, err = c.gw.Create(ctx, admin.ID, parsed)
	case ModeEdit:
		saved, err = c.gw.Update(ctx, editingID, admin.ID, parsed)
	}
	if err != nil {
		return models.Geofence{}, err
	}

	c.mu.Lock()
	c.reset()
	c.mu.Unlock()

	if err := c.Refresh(ctx); err != nil {
		logger.Warn("geofence list refresh after submit failed", logger.Fields{
			"error": err.Error(),
		})
	}

	return saved, nil
}

// Delete removes a geofence by id and refetches the list on success.
// Deleting an id the server no longer has surfaces the server's message.
func (c *Controller) Delete(ctx context.Context, id string) error {
	if err := c.gw.Delete(ctx, id); err != nil {
		return err
	}

	if err := c.Refresh(ctx); err != nil {
		logger.Warn("geofence list refresh after delete failed", logger.Fields{
			"error": err.Error(),
		})
	}
	return nil
}

// Admin resolves the administrator record for an email. The same lookup
// runs just-in-time inside Submit; this accessor serves profile display.
func (c *Controller) Admin(ctx context.Context, email string) (models.Admin, error) {
	return c.gw.GetAdmin(ctx, email)
}

// parseForm enforces the required-field contract: all eight coordinates,
// name and charges must be present and numeric before a submission is
// attempted.
func parseForm(form FormState) (models.GeofenceForm, error) {
	if form.Name == "" {
		return models.GeofenceForm{}, fmt.Errorf("name is required")
	}

	coords := []struct {
		label string
		value string
	}{
		{"lat1", form.Lat1}, {"lon1", form.Lon1},
		{"lat2", form.Lat2}, {"lon2", form.Lon2},
		{"lat3", form.Lat3}, {"lon3", form.Lon3},
		{"lat4", form.Lat4}, {"lon4", form.Lon4},
	}

	values := make([]float64, len(coords))
	for i, c := range coords {
		if c.value == "" {
			return models.GeofenceForm{}, fmt.Errorf("%s is required", c.label)
		}
		v, err := strconv.ParseFloat(c.value, 64)
		if err != nil {
			return models.GeofenceForm{}, fmt.Errorf("%s must be numeric: %w", c.label, err)
		}
		values[i] = v
	}

	if form.Charges == "" {
		return models.GeofenceForm{}, fmt.Errorf("charges is required")
	}
	charges, err := strconv.ParseFloat(form.Charges, 64)
	if err != nil {
		return models.GeofenceForm{}, fmt.Errorf("charges must be numeric: %w", err)
	}

	return models.GeofenceForm{
		Name:    form.Name,
		Lat1:    values[0],
		Lon1:    values[1],
		Lat2:    values[2],
		Lon2:    values[3],
		Lat3:    values[4],
		Lon3:    values[5],
		Lat4:    values[6],
		Lon4:    values[7],
		Charges: charges,
	}, nil
}
