package gateway_http

import (
	"context"
	"fmt"
	"time"

	httpclient "github.com/quadgate/tollpass/internal/pkg/http"
	"github.com/quadgate/tollpass/internal/pkg/models"
)

// AuthClient is an HTTP client for the billing service's login and
// registration endpoints.
type AuthClient struct {
	client *httpclient.Client
}

// NewAuthClient creates a new auth HTTP client
func NewAuthClient(billingServiceURL string, timeout time.Duration) *AuthClient {
	return &AuthClient{
		client: httpclient.NewClient(billingServiceURL, timeout),
	}
}

// AdminLogin authenticates an administrator and returns the confirmation
// message.
func (a *AuthClient) AdminLogin(ctx context.Context, creds models.Credentials) (string, error) {
	var resp models.MessageResponse
	if err := a.client.PostJSON(ctx, "/admin/login", creds, &resp); err != nil {
		return "", fmt.Errorf("admin login failed: %w", err)
	}
	return resp.Message, nil
}

// UserLogin authenticates a vehicle owner.
func (a *AuthClient) UserLogin(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	var resp models.LoginResult
	if err := a.client.PostJSON(ctx, "/user/login", creds, &resp); err != nil {
		return models.LoginResult{}, fmt.Errorf("user login failed: %w", err)
	}
	return resp, nil
}

// Register creates a vehicle owner account and returns the server's
// confirmation message.
func (a *AuthClient) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	var resp models.MessageResponse
	if err := a.client.PostJSON(ctx, "/user/register", req, &resp); err != nil {
		return "", fmt.Errorf("registration failed: %w", err)
	}
	return resp.Message, nil
}
