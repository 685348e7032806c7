package usecase

import (
	"context"
	"fmt"
	"sync"

	"github.com/quadgate/tollpass/internal/pkg/logger"
	"github.com/quadgate/tollpass/internal/pkg/models"
	"github.com/quadgate/tollpass/internal/session"
	"github.com/quadgate/tollpass/services/wallet"
)

// SessionReader provides the current authenticated identity.
type SessionReader interface {
	Current(ctx context.Context) (session.Session, bool)
}

// Dashboard assembles the vehicle owner's financial and travel view from
// two independent fetches keyed by (email, vehicle number). Either fetch
// can fail without blocking the other; the view renders whatever loaded
// with absent-value defaults for the rest.
//
// Responses carry a monotonic stamp taken when the request is issued; a
// response is applied only if its stamp is newer than the one currently
// displayed. That stops a slow, stale profile response from overwriting
// the balance a later top-up already confirmed.
type Dashboard struct {
	gw       wallet.WalletGW
	sessions SessionReader

	mu         sync.Mutex
	identity   string // email|vehicle the current data belongs to
	profile    *models.UserProfile
	entries    []models.TollEntry
	seq        uint64
	profileSeq uint64
	historySeq uint64
	profileErr error
	historyErr error
	loading    bool
}

// NewDashboard creates a new dashboard view model
func NewDashboard(gw wallet.WalletGW, sessions SessionReader) *Dashboard {
	return &Dashboard{
		gw:       gw,
		sessions: sessions,
	}
}

// Load fetches profile and history for the current identity. It is the
// only fetch trigger: it runs on identity change and on an explicit
// refresh after a mutation, never on unrelated view-local state changes.
// A partial result (one of the two failed) is not an error here; each
// failure is recorded and available through ProfileError/HistoryError.
func (d *Dashboard) Load(ctx context.Context) error {
	sess, ok := d.sessions.Current(ctx)
	if !ok {
		return fmt.Errorf("not logged in")
	}

	identity := sess.Email + "|" + sess.VehicleNumber

	d.mu.Lock()
	if d.identity != identity {
		// New identity: drop data belonging to the previous one.
		d.identity = identity
		d.profile = nil
		d.entries = nil
		d.profileSeq = 0
		d.historySeq = 0
	}
	d.loading = true
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.loading = false
		d.mu.Unlock()
	}()

	profileStamp := d.nextStamp()
	profile, profileErr := d.gw.GetProfile(ctx, sess.Email, sess.VehicleNumber)

	historyStamp := d.nextStamp()
	entries, historyErr := d.gw.GetHistory(ctx, sess.VehicleNumber)

	d.mu.Lock()
	defer d.mu.Unlock()

	if profileErr != nil {
		logger.Warn("failed to load user profile", logger.Fields{"error": profileErr.Error()})
		d.profileErr = profileErr
	} else {
		d.profileErr = nil
		d.applyProfileLocked(profileStamp, profile)
	}

	if historyErr != nil {
		logger.Warn("failed to load vehicle history", logger.Fields{"error": historyErr.Error()})
		d.historyErr = historyErr
	} else {
		d.historyErr = nil
		if historyStamp > d.historySeq {
			d.historySeq = historyStamp
			d.entries = entries
		}
	}

	return nil
}

// nextStamp issues a monotonic stamp for a fetch about to go out.
func (d *Dashboard) nextStamp() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	return d.seq
}

func (d *Dashboard) applyProfileLocked(stamp uint64, profile models.UserProfile) {
	if stamp <= d.profileSeq {
		return
	}
	d.profileSeq = stamp
	d.profile = &profile
}

// applyBalance overwrites the displayed wallet balance with a
// server-confirmed figure, subject to the same stamp rule as a profile
// fetch.
func (d *Dashboard) applyBalance(stamp uint64, balance models.Amount) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if stamp <= d.profileSeq {
		return
	}
	d.profileSeq = stamp
	if d.profile != nil {
		d.profile.WalletBalance = balance
	} else {
		d.profile = &models.UserProfile{WalletBalance: balance}
	}
}

// Profile returns the loaded profile, or ok=false when it has not loaded.
func (d *Dashboard) Profile() (models.UserProfile, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.profile == nil {
		return models.UserProfile{}, false
	}
	return *d.profile, true
}

// Entries returns a copy of the currently loaded toll ledger.
func (d *Dashboard) Entries() []models.TollEntry {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]models.TollEntry, len(d.entries))
	copy(out, d.entries)
	return out
}

// TotalCharges derives the sum of charges_applied over exactly the entries
// currently held. It is recomputed on every call and never cached, so
// re-deriving from the same entry set always yields the same figure.
func (d *Dashboard) TotalCharges() float64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	var total float64
	for _, e := range d.entries {
		total += e.ChargesApplied.Float64()
	}
	return total
}

// ProfileError reports the most recent profile fetch failure, if any.
func (d *Dashboard) ProfileError() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.profileErr
}

// HistoryError reports the most recent history fetch failure, if any.
func (d *Dashboard) HistoryError() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.historyErr
}
