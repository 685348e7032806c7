package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/quadgate/tollpass/internal/pkg/jwt"
	"github.com/quadgate/tollpass/internal/pkg/logger"
	"github.com/quadgate/tollpass/internal/pkg/models"
	"github.com/quadgate/tollpass/internal/utils"
	"github.com/quadgate/tollpass/services/sim"
)

// SimUC implements the simulator's business logic on top of the sqlite
// repository.
type SimUC struct {
	cfg  *models.Config
	repo sim.SimRepo
}

// NewSimUC creates a new simulator usecase
func NewSimUC(cfg *models.Config, repo sim.SimRepo) *SimUC {
	return &SimUC{
		cfg:  cfg,
		repo: repo,
	}
}

// AdminLogin verifies administrator credentials. A missing account and a
// wrong password are indistinguishable to the caller.
func (uc *SimUC) AdminLogin(ctx context.Context, creds models.Credentials) error {
	account, err := uc.repo.GetAdminByEmail(ctx, creds.Email)
	if errors.Is(err, sim.ErrNotFound) {
		return sim.ErrInvalidCredentials
	}
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(creds.Password)) != nil {
		return sim.ErrInvalidCredentials
	}
	return nil
}

// UserLogin verifies vehicle owner credentials and issues a session token.
func (uc *SimUC) UserLogin(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	account, err := uc.repo.GetUserByEmail(ctx, creds.Email)
	if errors.Is(err, sim.ErrNotFound) {
		return models.LoginResult{}, sim.ErrInvalidCredentials
	}
	if err != nil {
		return models.LoginResult{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(creds.Password)) != nil {
		return models.LoginResult{}, sim.ErrInvalidCredentials
	}

	token, _, err := jwt.GenerateToken(account.ID, account.Profile.Email, "user", uc.cfg.JWT)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("failed to issue token: %w", err)
	}

	return models.LoginResult{
		Token: token,
		User: models.LoginUser{
			Email:         account.Profile.Email,
			VehicleNumber: account.Profile.VehicleNumber,
		},
	}, nil
}

// RegisterUser creates a vehicle owner account with a zero wallet.
func (uc *SimUC) RegisterUser(ctx context.Context, req models.RegisterRequest) error {
	req.VehicleNumber = utils.NormalizePlate(req.VehicleNumber)
	if !utils.IsValidEmail(req.Email) {
		return fmt.Errorf("%w: invalid email", sim.ErrInvalidInput)
	}
	if !utils.IsValidPlate(req.VehicleNumber) {
		return fmt.Errorf("%w: invalid vehicle number", sim.ErrInvalidInput)
	}
	if !utils.IsValidPassword(req.Password) {
		return fmt.Errorf("%w: password too weak", sim.ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	account := sim.UserAccount{
		PasswordHash: string(hash),
		Profile: models.UserProfile{
			FirstName:     req.FirstName,
			LastName:      req.LastName,
			Email:         req.Email,
			PhoneNumber:   req.PhoneNumber,
			VehicleNumber: req.VehicleNumber,
			AddressLine1:  req.AddressLine1,
			City:          req.City,
			State:         req.State,
			Country:       req.Country,
			Pin:           req.Pin,
		},
	}
	if err := uc.repo.CreateUser(ctx, account); err != nil {
		return err
	}

	logger.Info("registered user", logger.Fields{
		"email":          req.Email,
		"vehicle_number": req.VehicleNumber,
	})
	return nil
}

// GetAdmin returns the public admin record for an email.
func (uc *SimUC) GetAdmin(ctx context.Context, email string) (models.Admin, error) {
	account, err := uc.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		return models.Admin{}, err
	}
	return account.Admin(), nil
}

// ListGeofences returns every zone.
func (uc *SimUC) ListGeofences(ctx context.Context) ([]models.Geofence, error) {
	return uc.repo.ListGeofences(ctx)
}

// CreateGeofence validates and stores a new zone.
func (uc *SimUC) CreateGeofence(ctx context.Context, req models.GeofenceWriteRequest) (models.Geofence, error) {
	if err := uc.validateZone(ctx, req); err != nil {
		return models.Geofence{}, err
	}

	zone := zoneFromRequest(req)
	if err := uc.repo.CreateGeofence(ctx, &zone); err != nil {
		return models.Geofence{}, err
	}

	logger.Info("created geofence", logger.Fields{"id": zone.ID, "name": zone.Name})
	return zone, nil
}

// UpdateGeofence validates and replaces an existing zone's fields.
func (uc *SimUC) UpdateGeofence(ctx context.Context, id string, req models.GeofenceWriteRequest) (models.Geofence, error) {
	if err := uc.validateZone(ctx, req); err != nil {
		return models.Geofence{}, err
	}

	zone := zoneFromRequest(req)
	zone.ID = id
	if err := uc.repo.UpdateGeofence(ctx, zone); err != nil {
		return models.Geofence{}, err
	}

	zones, err := uc.repo.ListGeofences(ctx)
	if err != nil {
		return models.Geofence{}, err
	}
	for _, z := range zones {
		if z.ID == id {
			return z, nil
		}
	}
	return models.Geofence{}, sim.ErrNotFound
}

// DeleteGeofence removes a zone by id.
func (uc *SimUC) DeleteGeofence(ctx context.Context, id string) error {
	if err := uc.repo.DeleteGeofence(ctx, id); err != nil {
		return err
	}
	logger.Info("deleted geofence", logger.Fields{"id": id})
	return nil
}

// GetUserInfo returns the profile matching both identity keys.
func (uc *SimUC) GetUserInfo(ctx context.Context, email, vehicleNumber string) (models.UserProfile, error) {
	return uc.repo.GetUserProfile(ctx, email, vehicleNumber)
}

// GetVehicleHistory returns the toll ledger for a vehicle.
func (uc *SimUC) GetVehicleHistory(ctx context.Context, vehicleNumber string) ([]models.TollEntry, error) {
	return uc.repo.ListTollEvents(ctx, vehicleNumber)
}

// AddFunds credits the wallet and returns the authoritative new balance.
// The due amount is left for the enforcement engine to settle.
func (uc *SimUC) AddFunds(ctx context.Context, email string, amount float64) (models.Amount, error) {
	if amount <= 0 {
		return 0, fmt.Errorf("%w: amount must be positive", sim.ErrInvalidInput)
	}

	account, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		return 0, err
	}

	newBalance := account.Profile.WalletBalance.Float64() + amount
	if err := uc.repo.UpdateWallet(ctx, email, newBalance, account.Profile.DueAmount.Float64()); err != nil {
		return 0, err
	}

	logger.Info("wallet credited", logger.Fields{
		"email":       email,
		"amount":      amount,
		"new_balance": newBalance,
	})
	return models.Amount(newBalance), nil
}

func (uc *SimUC) validateZone(ctx context.Context, req models.GeofenceWriteRequest) error {
	if req.Name == "" {
		return fmt.Errorf("%w: name is required", sim.ErrInvalidInput)
	}
	if req.Charges < 0 {
		return fmt.Errorf("%w: charges must be non-negative", sim.ErrInvalidInput)
	}
	if req.AdminID == "" {
		return fmt.Errorf("%w: adminId is required", sim.ErrInvalidInput)
	}
	return nil
}

func zoneFromRequest(req models.GeofenceWriteRequest) models.Geofence {
	return models.Geofence{
		Name: req.Name,
		Lat1: req.Lat1, Lon1: req.Lon1,
		Lat2: req.Lat2, Lon2: req.Lon2,
		Lat3: req.Lat3, Lon3: req.Lon3,
		Lat4: req.Lat4, Lon4: req.Lon4,
		Charges: req.Charges,
		AdminID: req.AdminID,
	}
}
