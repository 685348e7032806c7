package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/quadgate/tollpass/internal/pkg/logger"
	"github.com/quadgate/tollpass/internal/pkg/models"
	"github.com/quadgate/tollpass/services/sim"
)

// Seed populates an empty database with one admin, one vehicle owner and a
// small toll history, enough to click through every screen of the client.
// Seeding is skipped when an admin already exists.
func (r *SimRepository) Seed(ctx context.Context) error {
	var count int
	if err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM admins`); err != nil {
		return fmt.Errorf("failed to check seed state: %w", err)
	}
	if count > 0 {
		return nil
	}

	adminHash, err := bcrypt.GenerateFromPassword([]byte("Admin@123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	userHash, err := bcrypt.GenerateFromPassword([]byte("Secret@123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash user password: %w", err)
	}

	adminID := uuid.New().String()
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO admins (id, first_name, last_name, email, password_hash)
		VALUES (?, ?, ?, ?, ?)`,
		adminID, "Asha", "Kulkarni", "asha@tollpass.in", string(adminHash)); err != nil {
		return fmt.Errorf("failed to seed admin: %w", err)
	}

	if err := r.CreateUser(ctx, sim.UserAccount{
		PasswordHash: string(userHash),
		Profile: models.UserProfile{
			FirstName:     "Ravi",
			LastName:      "Sharma",
			Email:         "ravi@example.com",
			PhoneNumber:   "9876543210",
			VehicleNumber: "MH12AB1234",
			AddressLine1:  "12 MG Road",
			City:          "Pune",
			State:         "Maharashtra",
			Country:       "India",
			Pin:           "411001",
			WalletBalance: models.Amount(120),
			DueAmount:     models.Amount(30),
		},
	}); err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	zone := models.Geofence{
		Name: "Mumbai-Pune Expressway Gate 3",
		Lat1: 18.7581, Lon1: 73.4029,
		Lat2: 18.7612, Lon2: 73.4041,
		Lat3: 18.7609, Lon3: 73.4112,
		Lat4: 18.7577, Lon4: 73.4098,
		Charges: 50,
		AdminID: adminID,
	}
	if err := r.CreateGeofence(ctx, &zone); err != nil {
		return fmt.Errorf("failed to seed geofence: %w", err)
	}

	events := []models.TollEntry{
		{Date: "14-03-2025", Time: "09:15:00", Latitude: 18.7590, Longitude: 73.4050, Speed: 82, ChargesApplied: models.Amount(45.50)},
		{Date: "15-03-2025", Time: "18:40:00", Latitude: 18.7601, Longitude: 73.4080, Speed: 64, ChargesApplied: models.Amount(12.00)},
	}
	for _, entry := range events {
		if err := r.InsertTollEvent(ctx, "MH12AB1234", entry); err != nil {
			return fmt.Errorf("failed to seed toll event: %w", err)
		}
	}

	logger.Info("seeded simulator database", logger.Fields{
		"admin_email": "asha@tollpass.in",
		"user_email":  "ravi@example.com",
	})
	return nil
}
