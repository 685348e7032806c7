package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/quadgate/tollpass/internal/pkg/models"
	"github.com/quadgate/tollpass/internal/session"
	authhttp "github.com/quadgate/tollpass/services/auth/gateway/http"
	authuc "github.com/quadgate/tollpass/services/auth/usecase"
	geofencehttp "github.com/quadgate/tollpass/services/geofence/gateway/http"
	geofenceuc "github.com/quadgate/tollpass/services/geofence/usecase"
	wallethttp "github.com/quadgate/tollpass/services/wallet/gateway/http"
	walletuc "github.com/quadgate/tollpass/services/wallet/usecase"
)

// App wires the gateways and view models behind the terminal surface.
type App struct {
	cfg       *models.Config
	sessions  *session.Store
	auth      *authuc.Service
	geofences *geofenceuc.Controller
	dashboard *walletuc.Dashboard
	topup     *walletuc.TopUpFlow
	reader    *bufio.Reader
	out       io.Writer
}

// NewApp builds the full client from configuration.
func NewApp(cfg *models.Config) (*App, error) {
	sessions, err := session.Open(cfg.Session.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	timeout := time.Duration(cfg.Client.TimeoutSeconds) * time.Second
	baseURL := cfg.Client.BillingServiceURL

	authGW := authhttp.NewAuthClient(baseURL, timeout)
	geofenceGW := geofencehttp.NewGeofenceClient(baseURL, timeout)
	walletGW := wallethttp.NewWalletClient(baseURL, timeout)

	dashboard := walletuc.NewDashboard(walletGW, sessions)
	dwell := time.Duration(cfg.TopUp.SuccessDwellMillis) * time.Millisecond

	return &App{
		cfg:       cfg,
		sessions:  sessions,
		auth:      authuc.NewService(authGW, sessions),
		geofences: geofenceuc.NewController(geofenceGW, sessions),
		dashboard: dashboard,
		topup:     walletuc.NewTopUpFlow(walletGW, dashboard, dwell),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

// Run starts the interactive loop and blocks until exit.
func (a *App) Run(ctx context.Context) {
	defer a.sessions.Close()
	a.repl(ctx)
}

func (a *App) status(ctx context.Context) string {
	sess, ok := a.sessions.Current(ctx)
	if !ok {
		return "guest"
	}
	if sess.Role == session.RoleAdmin {
		return "admin " + sess.Email
	}
	return sess.Email
}
