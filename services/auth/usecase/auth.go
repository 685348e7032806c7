package usecase

import (
	"context"
	"fmt"

	"github.com/quadgate/tollpass/internal/pkg/logger"
	"github.com/quadgate/tollpass/internal/pkg/models"
	"github.com/quadgate/tollpass/internal/session"
	"github.com/quadgate/tollpass/internal/utils"
	"github.com/quadgate/tollpass/services/auth"
)

// SessionStore persists the authenticated identity across runs.
type SessionStore interface {
	Save(ctx context.Context, sess session.Session) error
	Current(ctx context.Context) (session.Session, bool)
	Clear(ctx context.Context) error
}

// Service drives login and registration. Field-shape checks run client
// side before any request goes out; credential verification itself is the
// billing service's job.
type Service struct {
	gw       auth.AuthGW
	sessions SessionStore
}

// NewService creates a new auth service
func NewService(gw auth.AuthGW, sessions SessionStore) *Service {
	return &Service{
		gw:       gw,
		sessions: sessions,
	}
}

// LoginAdmin authenticates an administrator and persists the admin
// session. Admin logins carry no token; the stored email is the identity
// used to resolve the admin record before zone writes.
func (s *Service) LoginAdmin(ctx context.Context, email, password string) error {
	if !utils.IsValidEmail(email) {
		return fmt.Errorf("please enter a valid email address")
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}

	if _, err := s.gw.AdminLogin(ctx, models.Credentials{Email: email, Password: password}); err != nil {
		return err
	}

	sess := session.Session{Email: email, Role: session.RoleAdmin}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	logger.Info("admin logged in", logger.Fields{"email": email})
	return nil
}

// LoginUser authenticates a vehicle owner and persists the session token
// together with the identity the service reported, not the one typed.
func (s *Service) LoginUser(ctx context.Context, email, password string) error {
	if !utils.IsValidEmail(email) {
		return fmt.Errorf("please enter a valid email address")
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}

	result, err := s.gw.UserLogin(ctx, models.Credentials{Email: email, Password: password})
	if err != nil {
		return err
	}

	sess := session.Session{
		Email:         result.User.Email,
		VehicleNumber: result.User.VehicleNumber,
		Token:         result.Token,
		Role:          session.RoleUser,
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	logger.Info("user logged in", logger.Fields{
		"email":          sess.Email,
		"vehicle_number": sess.VehicleNumber,
	})
	return nil
}

// Register creates a vehicle owner account and, on success, persists the
// new identity so the owner lands on their dashboard without a separate
// login. Registration yields no token.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (string, error) {
	req.VehicleNumber = utils.NormalizePlate(req.VehicleNumber)
	if err := validateRegistration(req); err != nil {
		return "", err
	}

	message, err := s.gw.Register(ctx, req)
	if err != nil {
		return "", err
	}

	sess := session.Session{
		Email:         req.Email,
		VehicleNumber: req.VehicleNumber,
		Role:          session.RoleUser,
	}
	if err := s.sessions.Save(ctx, sess); err != nil {
		return "", fmt.Errorf("failed to persist session: %w", err)
	}

	logger.Info("user registered", logger.Fields{
		"email":          req.Email,
		"vehicle_number": req.VehicleNumber,
	})
	return message, nil
}

// Logout discards the persisted session.
func (s *Service) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

func validateRegistration(req models.RegisterRequest) error {
	required := []struct {
		label string
		value string
	}{
		{"first name", req.FirstName},
		{"last name", req.LastName},
		{"address line", req.AddressLine1},
		{"city", req.City},
		{"state", req.State},
		{"country", req.Country},
		{"pin", req.Pin},
		{"email", req.Email},
		{"password", req.Password},
		{"phone number", req.PhoneNumber},
		{"vehicle number", req.VehicleNumber},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("%s is required", f.label)
		}
	}

	if !utils.IsValidEmail(req.Email) {
		return fmt.Errorf("please enter a valid email address")
	}
	if !utils.IsValidPassword(req.Password) {
		return fmt.Errorf("password must be at least 8 characters with uppercase, lowercase, number and special character")
	}
	if !utils.IsValidPhone(req.PhoneNumber) {
		return fmt.Errorf("phone number must be 10 digits")
	}
	if !utils.IsValidPlate(req.VehicleNumber) {
		return fmt.Errorf("vehicle number format should be like MH11CA5305")
	}
	if !utils.IsValidPIN(req.Pin) {
		return fmt.Errorf("pin must be 6 digits")
	}
	return nil
}
