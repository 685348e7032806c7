package usecase

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadgate/tollpass/internal/pkg/database"
	"github.com/quadgate/tollpass/internal/pkg/models"
	"github.com/quadgate/tollpass/services/sim"
	"github.com/quadgate/tollpass/services/sim/repository"
)

func newTestUC(t *testing.T) *SimUC {
	t.Helper()

	db, err := database.Open(filepath.Join(t.TempDir(), "tollsim.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := repository.NewSimRepository(db)
	require.NoError(t, err)
	require.NoError(t, repo.Seed(context.Background()))

	cfg := &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "tollsim",
		},
	}
	return NewSimUC(cfg, repo)
}

func TestSimUC_AdminLogin(t *testing.T) {
	uc := newTestUC(t)
	ctx := context.Background()

	require.NoError(t, uc.AdminLogin(ctx, models.Credentials{
		Email:    "asha@tollpass.in",
		Password: "Admin@123",
	}))

	err := uc.AdminLogin(ctx, models.Credentials{Email: "asha@tollpass.in", Password: "wrong"})
	assert.ErrorIs(t, err, sim.ErrInvalidCredentials)

	err = uc.AdminLogin(ctx, models.Credentials{Email: "nobody@tollpass.in", Password: "Admin@123"})
	assert.ErrorIs(t, err, sim.ErrInvalidCredentials)
}

func TestSimUC_UserLoginIssuesToken(t *testing.T) {
	uc := newTestUC(t)

	result, err := uc.UserLogin(context.Background(), models.Credentials{
		Email:    "ravi@example.com",
		Password: "Secret@123",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, result.Token)
	assert.Equal(t, "ravi@example.com", result.User.Email)
	assert.Equal(t, "MH12AB1234", result.User.VehicleNumber)
}

func TestSimUC_RegisterThenLogin(t *testing.T) {
	uc := newTestUC(t)
	ctx := context.Background()

	req := models.RegisterRequest{
		FirstName:     "Meera",
		LastName:      "Iyer",
		Email:         "meera@example.com",
		Password:      "Passw0rd!",
		PhoneNumber:   "9123456780",
		VehicleNumber: "ka05cd9876",
		AddressLine1:  "4 Brigade Road",
		City:          "Bengaluru",
		State:         "Karnataka",
		Country:       "India",
		Pin:           "560001",
	}
	require.NoError(t, uc.RegisterUser(ctx, req))

	// Plate was normalized on the way in.
	result, err := uc.UserLogin(ctx, models.Credentials{Email: "meera@example.com", Password: "Passw0rd!"})
	require.NoError(t, err)
	assert.Equal(t, "KA05CD9876", result.User.VehicleNumber)

	// Same email again is a duplicate.
	err = uc.RegisterUser(ctx, req)
	assert.ErrorIs(t, err, sim.ErrDuplicate)
}

func TestSimUC_GeofenceLifecycle(t *testing.T) {
	uc := newTestUC(t)
	ctx := context.Background()

	admin, err := uc.GetAdmin(ctx, "asha@tollpass.in")
	require.NoError(t, err)

	initial, err := uc.ListGeofences(ctx)
	require.NoError(t, err)
	seedCount := len(initial)

	created, err := uc.CreateGeofence(ctx, models.GeofenceWriteRequest{
		GeofenceForm: models.GeofenceForm{
			Name: "Zone A",
			Lat1: 18.5, Lon1: 73.8,
			Lat2: 18.6, Lon2: 73.8,
			Lat3: 18.6, Lon3: 73.9,
			Lat4: 18.5, Lon4: 73.9,
			Charges: 50,
		},
		AdminID: admin.ID,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Asha", created.AdminFirstName)

	zones, err := uc.ListGeofences(ctx)
	require.NoError(t, err)
	require.Len(t, zones, seedCount+1)
	for _, z := range initial {
		assert.NotEqual(t, created.ID, z.ID)
	}

	updated, err := uc.UpdateGeofence(ctx, created.ID, models.GeofenceWriteRequest{
		GeofenceForm: models.GeofenceForm{
			Name: "Zone A East",
			Lat1: 18.5, Lon1: 73.8,
			Lat2: 18.6, Lon2: 73.8,
			Lat3: 18.6, Lon3: 73.9,
			Lat4: 18.5, Lon4: 73.9,
			Charges: 75,
		},
		AdminID: admin.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 75.0, updated.Charges)

	zones, err = uc.ListGeofences(ctx)
	require.NoError(t, err)
	assert.Len(t, zones, seedCount+1)

	require.NoError(t, uc.DeleteGeofence(ctx, created.ID))
	zones, err = uc.ListGeofences(ctx)
	require.NoError(t, err)
	assert.Len(t, zones, seedCount)

	err = uc.DeleteGeofence(ctx, created.ID)
	assert.ErrorIs(t, err, sim.ErrNotFound)
}

func TestSimUC_CreateGeofenceValidation(t *testing.T) {
	uc := newTestUC(t)

	_, err := uc.CreateGeofence(context.Background(), models.GeofenceWriteRequest{
		GeofenceForm: models.GeofenceForm{Name: "", Charges: 50},
		AdminID:      "adm-1",
	})
	assert.ErrorIs(t, err, sim.ErrInvalidInput)

	_, err = uc.CreateGeofence(context.Background(), models.GeofenceWriteRequest{
		GeofenceForm: models.GeofenceForm{Name: "Zone", Charges: -1},
		AdminID:      "adm-1",
	})
	assert.ErrorIs(t, err, sim.ErrInvalidInput)
}

func TestSimUC_WalletAndHistory(t *testing.T) {
	uc := newTestUC(t)
	ctx := context.Background()

	profile, err := uc.GetUserInfo(ctx, "ravi@example.com", "MH12AB1234")
	require.NoError(t, err)
	assert.Equal(t, 120.0, profile.WalletBalance.Float64())
	assert.Equal(t, 30.0, profile.DueAmount.Float64())

	entries, err := uc.GetVehicleHistory(ctx, "MH12AB1234")
	require.NoError(t, err)
	require.Len(t, entries, 2)

	var total float64
	for _, e := range entries {
		total += e.ChargesApplied.Float64()
	}
	assert.Equal(t, 57.50, total)

	newBalance, err := uc.AddFunds(ctx, "ravi@example.com", 200)
	require.NoError(t, err)
	assert.Equal(t, 320.0, newBalance.Float64())

	profile, err = uc.GetUserInfo(ctx, "ravi@example.com", "MH12AB1234")
	require.NoError(t, err)
	assert.Equal(t, 320.0, profile.WalletBalance.Float64())

	_, err = uc.AddFunds(ctx, "ravi@example.com", -10)
	assert.ErrorIs(t, err, sim.ErrInvalidInput)

	_, err = uc.AddFunds(ctx, "ghost@example.com", 50)
	assert.ErrorIs(t, err, sim.ErrNotFound)
}

func TestSimUC_UserInfoRequiresMatchingKeys(t *testing.T) {
	uc := newTestUC(t)

	_, err := uc.GetUserInfo(context.Background(), "ravi@example.com", "KA05CD9876")
	assert.ErrorIs(t, err, sim.ErrNotFound)
}
