package usecase

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/quadgate/tollpass/internal/pkg/logger"
	"github.com/quadgate/tollpass/services/wallet"
)

// TopUpState enumerates the states of the add-funds dialog.
type TopUpState int

const (
	TopUpClosed TopUpState = iota
	TopUpOpen
	TopUpSubmitting
	TopUpSuccess
)

func (s TopUpState) String() string {
	switch s {
	case TopUpClosed:
		return "closed"
	case TopUpOpen:
		return "open"
	case TopUpSubmitting:
		return "submitting"
	case TopUpSuccess:
		return "success"
	default:
		return "unknown"
	}
}

// TopUpFlow drives the add-funds dialog. The amount field holds the raw
// string the user typed; it is validated only when Submit runs. After a
// successful submission the dialog shows the confirmed balance for a
// short dwell, then closes itself and clears the amount so the next open
// starts blank.
type TopUpFlow struct {
	gw        wallet.WalletGW
	dash      *Dashboard
	dwell     time.Duration
	mu        sync.Mutex
	state     TopUpState
	amount    string
	lastErr   error
	dwellStop *time.Timer
}

// NewTopUpFlow creates the add-funds flow bound to a dashboard. The
// dwell controls how long the success confirmation stays visible before
// the dialog closes itself.
func NewTopUpFlow(gw wallet.WalletGW, dash *Dashboard, dwell time.Duration) *TopUpFlow {
	if dwell <= 0 {
		dwell = 2 * time.Second
	}
	return &TopUpFlow{
		gw:    gw,
		dash:  dash,
		dwell: dwell,
	}
}

// Open shows the dialog. Opening while already open is a no-op.
func (t *TopUpFlow) Open() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != TopUpClosed {
		return
	}
	t.state = TopUpOpen
	t.lastErr = nil
}

// Cancel closes the dialog from any state without touching the wallet.
// Closing always clears the typed amount; the next open starts blank.
func (t *TopUpFlow) Cancel() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.dwellStop != nil {
		t.dwellStop.Stop()
		t.dwellStop = nil
	}
	t.amount = ""
	t.state = TopUpClosed
}

// SetAmount stages the raw amount text. No validation happens here.
func (t *TopUpFlow) SetAmount(raw string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == TopUpOpen {
		t.amount = raw
	}
}

// Amount returns the staged amount text.
func (t *TopUpFlow) Amount() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.amount
}

// State returns the current dialog state.
func (t *TopUpFlow) State() TopUpState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// LastError returns the failure from the most recent submit attempt.
func (t *TopUpFlow) LastError() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.lastErr
}

// CanSubmit reports whether the staged amount parses to a positive number.
func (t *TopUpFlow) CanSubmit() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	amount, err := strconv.ParseFloat(t.amount, 64)
	return err == nil && amount > 0
}

// Submit sends the staged amount to the billing service. On success the
// dashboard balance is set to the figure the server returned, never to a
// locally computed sum, and the dialog enters its success dwell. On
// failure the dialog stays open with the amount intact so the user can
// correct and retry.
func (t *TopUpFlow) Submit(ctx context.Context) error {
	sess, ok := t.dash.sessions.Current(ctx)
	if !ok {
		return fmt.Errorf("not logged in")
	}

	t.mu.Lock()
	if t.state != TopUpOpen {
		t.mu.Unlock()
		return fmt.Errorf("no top-up in progress")
	}
	amount, err := strconv.ParseFloat(t.amount, 64)
	if err != nil || amount <= 0 {
		t.mu.Unlock()
		return fmt.Errorf("amount must be a positive number")
	}
	t.state = TopUpSubmitting
	t.lastErr = nil
	t.mu.Unlock()

	// Stamp is taken before the request goes out, so a profile refresh
	// issued after this point outranks this response.
	stamp := t.dash.nextStamp()

	newBalance, err := t.gw.AddFunds(ctx, sess.Email, amount)
	if err != nil {
		logger.Warn("top-up failed", logger.Fields{"error": err.Error()})
		t.mu.Lock()
		t.state = TopUpOpen
		t.lastErr = err
		t.mu.Unlock()
		return err
	}

	t.dash.applyBalance(stamp, newBalance)

	t.mu.Lock()
	t.state = TopUpSuccess
	t.dwellStop = time.AfterFunc(t.dwell, t.finishDwell)
	t.mu.Unlock()
	return nil
}

func (t *TopUpFlow) finishDwell() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != TopUpSuccess {
		return
	}
	t.state = TopUpClosed
	t.amount = ""
	t.dwellStop = nil
}
