package wallet

import (
	"context"

	"github.com/quadgate/tollpass/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/quadgate/tollpass/services/wallet WalletGW

// WalletGW is the client surface for the vehicle owner's financial and
// travel data. Profile and history are independent calls; either can fail
// without taking the other down.
type WalletGW interface {
	// GetProfile fetches the account keyed by email and vehicle number.
	// Wallet balance and due amount in the result are authoritative.
	GetProfile(ctx context.Context, email, vehicleNumber string) (models.UserProfile, error)

	// GetHistory fetches the vehicle's toll ledger in server order.
	GetHistory(ctx context.Context, vehicleNumber string) ([]models.TollEntry, error)

	// AddFunds submits a top-up and returns the server's new balance,
	// which supersedes any locally held figure.
	AddFunds(ctx context.Context, email string, amount float64) (models.Amount, error)
}
