package auth

import (
	"context"

	"github.com/quadgate/tollpass/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/quadgate/tollpass/services/auth AuthGW

// AuthGW is the client surface for login and registration against the
// billing service. Tokens in results are opaque; the client stores them
// and never inspects their contents.
type AuthGW interface {
	// AdminLogin authenticates an administrator. The service returns only
	// a confirmation message; the admin identity is the email itself.
	AdminLogin(ctx context.Context, creds models.Credentials) (string, error)

	// UserLogin authenticates a vehicle owner and returns the session
	// token plus the identity block.
	UserLogin(ctx context.Context, creds models.Credentials) (models.LoginResult, error)

	// Register creates a vehicle owner account.
	Register(ctx context.Context, req models.RegisterRequest) (string, error)
}
