package gateway_http

import (
	"context"
	"fmt"
	"net/url"
	"time"

	httpclient "github.com/quadgate/tollpass/internal/pkg/http"
	"github.com/quadgate/tollpass/internal/pkg/models"
)

// WalletClient is an HTTP client for the billing service's user account
// and vehicle history endpoints.
type WalletClient struct {
	client *httpclient.Client
}

// NewWalletClient creates a new wallet HTTP client
func NewWalletClient(billingServiceURL string, timeout time.Duration) *WalletClient {
	return &WalletClient{
		client: httpclient.NewClient(billingServiceURL, timeout),
	}
}

// GetProfile fetches the account profile keyed by email and vehicle number.
func (w *WalletClient) GetProfile(ctx context.Context, email, vehicleNumber string) (models.UserProfile, error) {
	params := url.Values{}
	params.Set("email", email)
	params.Set("vehicleNumber", vehicleNumber)

	var profile models.UserProfile
	if err := w.client.GetJSON(ctx, "/user/info?"+params.Encode(), &profile); err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to fetch user profile: %w", err)
	}
	return profile, nil
}

// GetHistory fetches the toll ledger for a vehicle.
func (w *WalletClient) GetHistory(ctx context.Context, vehicleNumber string) ([]models.TollEntry, error) {
	var resp models.TravelHistoryResponse
	path := "/vehicle/" + url.PathEscape(vehicleNumber) + "/history"
	if err := w.client.GetJSON(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch vehicle history: %w", err)
	}
	return resp.Data, nil
}

// AddFunds submits a wallet top-up and returns the authoritative new
// balance.
func (w *WalletClient) AddFunds(ctx context.Context, email string, amount float64) (models.Amount, error) {
	req := models.AddFundsRequest{Email: email, Amount: amount}

	var resp models.AddFundsResponse
	if err := w.client.PostJSON(ctx, "/user/add-funds", req, &resp); err != nil {
		return 0, fmt.Errorf("failed to add funds: %w", err)
	}
	return resp.NewBalance, nil
}
