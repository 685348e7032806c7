package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/quadgate/tollpass/internal/pkg/models"
	"github.com/quadgate/tollpass/internal/utils"
	"github.com/quadgate/tollpass/services/sim"
)

const schema = `
CREATE TABLE IF NOT EXISTS admins (
	id            TEXT PRIMARY KEY,
	first_name    TEXT NOT NULL,
	last_name     TEXT NOT NULL,
	email         TEXT NOT NULL UNIQUE,
	password_hash TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS users (
	id             TEXT PRIMARY KEY,
	first_name     TEXT NOT NULL,
	last_name      TEXT NOT NULL,
	email          TEXT NOT NULL UNIQUE,
	password_hash  TEXT NOT NULL,
	phone_number   TEXT NOT NULL,
	vehicle_number TEXT NOT NULL UNIQUE,
	address_line1  TEXT NOT NULL,
	city           TEXT NOT NULL,
	state          TEXT NOT NULL,
	country        TEXT NOT NULL,
	pin            TEXT NOT NULL,
	wallet_balance REAL NOT NULL DEFAULT 0,
	due_amount     REAL NOT NULL DEFAULT 0,
	created_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS geofences (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	lat1 REAL NOT NULL, lon1 REAL NOT NULL,
	lat2 REAL NOT NULL, lon2 REAL NOT NULL,
	lat3 REAL NOT NULL, lon3 REAL NOT NULL,
	lat4 REAL NOT NULL, lon4 REAL NOT NULL,
	charges    REAL NOT NULL,
	admin_id   TEXT NOT NULL REFERENCES admins(id),
	created_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS toll_events (
	id              TEXT PRIMARY KEY,
	vehicle_number  TEXT NOT NULL,
	event_date      TEXT NOT NULL,
	event_time      TEXT NOT NULL,
	occurred_at     TEXT NOT NULL DEFAULT '',
	latitude        REAL NOT NULL,
	longitude       REAL NOT NULL,
	speed           REAL NOT NULL,
	charges_applied REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_toll_events_vehicle ON toll_events(vehicle_number, occurred_at);
`

// SimRepository backs the simulator with a local sqlite file.
type SimRepository struct {
	db *sqlx.DB
}

// NewSimRepository initializes the schema on the given database.
func NewSimRepository(db *sqlx.DB) (*SimRepository, error) {
	if _, err := db.Exec(schema); err != nil {
		return nil, fmt.Errorf("failed to initialize simulator schema: %w", err)
	}
	return &SimRepository{db: db}, nil
}

// GetAdminByEmail returns the admin account for an email.
func (r *SimRepository) GetAdminByEmail(ctx context.Context, email string) (sim.AdminAccount, error) {
	var account sim.AdminAccount
	err := r.db.GetContext(ctx, &account,
		`SELECT id, first_name, last_name, email, password_hash FROM admins WHERE email = ?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return sim.AdminAccount{}, sim.ErrNotFound
	}
	if err != nil {
		return sim.AdminAccount{}, fmt.Errorf("failed to query admin: %w", err)
	}
	return account, nil
}

type userRow struct {
	ID            string  `db:"id"`
	FirstName     string  `db:"first_name"`
	LastName      string  `db:"last_name"`
	Email         string  `db:"email"`
	PasswordHash  string  `db:"password_hash"`
	PhoneNumber   string  `db:"phone_number"`
	VehicleNumber string  `db:"vehicle_number"`
	AddressLine1  string  `db:"address_line1"`
	City          string  `db:"city"`
	State         string  `db:"state"`
	Country       string  `db:"country"`
	Pin           string  `db:"pin"`
	WalletBalance float64 `db:"wallet_balance"`
	DueAmount     float64 `db:"due_amount"`
	CreatedAt     string  `db:"created_at"`
}

func (row userRow) account() sim.UserAccount {
	return sim.UserAccount{
		ID:           row.ID,
		PasswordHash: row.PasswordHash,
		Profile: models.UserProfile{
			FirstName:     row.FirstName,
			LastName:      row.LastName,
			Email:         row.Email,
			PhoneNumber:   row.PhoneNumber,
			VehicleNumber: row.VehicleNumber,
			AddressLine1:  row.AddressLine1,
			City:          row.City,
			State:         row.State,
			Country:       row.Country,
			Pin:           row.Pin,
			WalletBalance: models.Amount(row.WalletBalance),
			DueAmount:     models.Amount(row.DueAmount),
			CreatedAt:     row.CreatedAt,
		},
	}
}

// GetUserByEmail returns the user account for an email.
func (r *SimRepository) GetUserByEmail(ctx context.Context, email string) (sim.UserAccount, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, `SELECT * FROM users WHERE email = ?`, email)
	if errors.Is(err, sql.ErrNoRows) {
		return sim.UserAccount{}, sim.ErrNotFound
	}
	if err != nil {
		return sim.UserAccount{}, fmt.Errorf("failed to query user: %w", err)
	}
	return row.account(), nil
}

// CreateUser inserts a new vehicle owner.
func (r *SimRepository) CreateUser(ctx context.Context, account sim.UserAccount) error {
	if account.ID == "" {
		account.ID = uuid.New().String()
	}
	p := account.Profile
	if p.CreatedAt == "" {
		p.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	var existing int
	if err := r.db.GetContext(ctx, &existing,
		`SELECT COUNT(*) FROM users WHERE email = ? OR vehicle_number = ?`,
		p.Email, p.VehicleNumber); err != nil {
		return fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing > 0 {
		return sim.ErrDuplicate
	}

	row := userRow{
		ID:            account.ID,
		FirstName:     p.FirstName,
		LastName:      p.LastName,
		Email:         p.Email,
		PasswordHash:  account.PasswordHash,
		PhoneNumber:   p.PhoneNumber,
		VehicleNumber: p.VehicleNumber,
		AddressLine1:  p.AddressLine1,
		City:          p.City,
		State:         p.State,
		Country:       p.Country,
		Pin:           p.Pin,
		WalletBalance: p.WalletBalance.Float64(),
		DueAmount:     p.DueAmount.Float64(),
		CreatedAt:     p.CreatedAt,
	}

	query := `
		INSERT INTO users (
			id, first_name, last_name, email, password_hash, phone_number,
			vehicle_number, address_line1, city, state, country, pin,
			wallet_balance, due_amount, created_at
		) VALUES (:id, :first_name, :last_name, :email, :password_hash, :phone_number,
			:vehicle_number, :address_line1, :city, :state, :country, :pin,
			:wallet_balance, :due_amount, :created_at)
	`
	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetUserProfile returns the profile matching both identity keys.
func (r *SimRepository) GetUserProfile(ctx context.Context, email, vehicleNumber string) (models.UserProfile, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row,
		`SELECT * FROM users WHERE email = ? AND vehicle_number = ?`, email, vehicleNumber)
	if errors.Is(err, sql.ErrNoRows) {
		return models.UserProfile{}, sim.ErrNotFound
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to query user profile: %w", err)
	}
	return row.account().Profile, nil
}

// UpdateWallet sets the balance and due amount for a user.
func (r *SimRepository) UpdateWallet(ctx context.Context, email string, balance, due float64) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE users SET wallet_balance = ?, due_amount = ? WHERE email = ?`,
		balance, due, email)
	if err != nil {
		return fmt.Errorf("failed to update wallet: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return sim.ErrNotFound
	}
	return nil
}

type geofenceRow struct {
	ID             string  `db:"id"`
	Name           string  `db:"name"`
	Lat1           float64 `db:"lat1"`
	Lon1           float64 `db:"lon1"`
	Lat2           float64 `db:"lat2"`
	Lon2           float64 `db:"lon2"`
	Lat3           float64 `db:"lat3"`
	Lon3           float64 `db:"lon3"`
	Lat4           float64 `db:"lat4"`
	Lon4           float64 `db:"lon4"`
	Charges        float64 `db:"charges"`
	AdminID        string  `db:"admin_id"`
	CreatedAt      string  `db:"created_at"`
	AdminFirstName string  `db:"admin_first_name"`
	AdminLastName  string  `db:"admin_last_name"`
}

func (row geofenceRow) geofence() models.Geofence {
	return models.Geofence{
		ID:   row.ID,
		Name: row.Name,
		Lat1: row.Lat1, Lon1: row.Lon1,
		Lat2: row.Lat2, Lon2: row.Lon2,
		Lat3: row.Lat3, Lon3: row.Lon3,
		Lat4: row.Lat4, Lon4: row.Lon4,
		Charges:        row.Charges,
		AdminID:        row.AdminID,
		AdminFirstName: row.AdminFirstName,
		AdminLastName:  row.AdminLastName,
		CreatedAt:      row.CreatedAt,
	}
}

const geofenceSelect = `
	SELECT g.id, g.name,
	       g.lat1, g.lon1, g.lat2, g.lon2, g.lat3, g.lon3, g.lat4, g.lon4,
	       g.charges, g.admin_id, g.created_at,
	       a.first_name AS admin_first_name, a.last_name AS admin_last_name
	FROM geofences g
	JOIN admins a ON a.id = g.admin_id
`

// ListGeofences returns every zone in creation order.
func (r *SimRepository) ListGeofences(ctx context.Context) ([]models.Geofence, error) {
	var rows []geofenceRow
	if err := r.db.SelectContext(ctx, &rows, geofenceSelect+` ORDER BY g.created_at, g.id`); err != nil {
		return nil, fmt.Errorf("failed to list geofences: %w", err)
	}
	zones := make([]models.Geofence, 0, len(rows))
	for _, row := range rows {
		zones = append(zones, row.geofence())
	}
	return zones, nil
}

// CreateGeofence inserts a zone, assigning its id and timestamp.
func (r *SimRepository) CreateGeofence(ctx context.Context, zone *models.Geofence) error {
	zone.ID = uuid.New().String()
	zone.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	query := `
		INSERT INTO geofences (
			id, name, lat1, lon1, lat2, lon2, lat3, lon3, lat4, lon4,
			charges, admin_id, created_at
		) VALUES (:id, :name, :lat1, :lon1, :lat2, :lon2, :lat3, :lon3, :lat4, :lon4,
			:charges, :admin_id, :created_at)
	`
	args := map[string]interface{}{
		"id": zone.ID, "name": zone.Name,
		"lat1": zone.Lat1, "lon1": zone.Lon1,
		"lat2": zone.Lat2, "lon2": zone.Lon2,
		"lat3": zone.Lat3, "lon3": zone.Lon3,
		"lat4": zone.Lat4, "lon4": zone.Lon4,
		"charges": zone.Charges, "admin_id": zone.AdminID, "created_at": zone.CreatedAt,
	}
	if _, err := r.db.NamedExecContext(ctx, query, args); err != nil {
		return fmt.Errorf("failed to insert geofence: %w", err)
	}

	var row geofenceRow
	if err := r.db.GetContext(ctx, &row, geofenceSelect+` WHERE g.id = ?`, zone.ID); err != nil {
		return fmt.Errorf("failed to read back geofence: %w", err)
	}
	*zone = row.geofence()
	return nil
}

// UpdateGeofence replaces the mutable fields of a zone, keeping its id.
func (r *SimRepository) UpdateGeofence(ctx context.Context, zone models.Geofence) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE geofences SET
			name = ?, lat1 = ?, lon1 = ?, lat2 = ?, lon2 = ?,
			lat3 = ?, lon3 = ?, lat4 = ?, lon4 = ?, charges = ?, admin_id = ?
		WHERE id = ?`,
		zone.Name, zone.Lat1, zone.Lon1, zone.Lat2, zone.Lon2,
		zone.Lat3, zone.Lon3, zone.Lat4, zone.Lon4, zone.Charges, zone.AdminID,
		zone.ID)
	if err != nil {
		return fmt.Errorf("failed to update geofence: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return sim.ErrNotFound
	}
	return nil
}

// DeleteGeofence removes a zone by id.
func (r *SimRepository) DeleteGeofence(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM geofences WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete geofence: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read delete result: %w", err)
	}
	if affected == 0 {
		return sim.ErrNotFound
	}
	return nil
}

type tollEventRow struct {
	ID             string  `db:"id"`
	VehicleNumber  string  `db:"vehicle_number"`
	EventDate      string  `db:"event_date"`
	EventTime      string  `db:"event_time"`
	OccurredAt     string  `db:"occurred_at"`
	Latitude       float64 `db:"latitude"`
	Longitude      float64 `db:"longitude"`
	Speed          float64 `db:"speed"`
	ChargesApplied float64 `db:"charges_applied"`
}

// ListTollEvents returns the toll ledger for a vehicle, oldest first.
// Ordering is by occurred_at, the sortable ISO form of the entry's
// DD-MM-YYYY date and time; clients render the list as delivered.
func (r *SimRepository) ListTollEvents(ctx context.Context, vehicleNumber string) ([]models.TollEntry, error) {
	var rows []tollEventRow
	err := r.db.SelectContext(ctx, &rows, `
		SELECT * FROM toll_events
		WHERE vehicle_number = ?
		ORDER BY occurred_at, id`, vehicleNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to list toll events: %w", err)
	}

	entries := make([]models.TollEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, models.TollEntry{
			ID:             row.ID,
			Date:           row.EventDate,
			Time:           row.EventTime,
			Latitude:       row.Latitude,
			Longitude:      row.Longitude,
			Speed:          row.Speed,
			ChargesApplied: models.Amount(row.ChargesApplied),
		})
	}
	return entries, nil
}

// InsertTollEvent appends a ledger entry for a vehicle. The DD-MM-YYYY
// wire date stays as stored text; a sortable ISO timestamp is derived
// alongside it so listing order follows occurrence, not string order.
func (r *SimRepository) InsertTollEvent(ctx context.Context, vehicleNumber string, entry models.TollEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}

	occurredAt := ""
	if ts, err := utils.ParseEntryTimestamp(entry.Date, entry.Time); err == nil {
		occurredAt = ts.Format("2006-01-02T15:04:05")
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO toll_events (
			id, vehicle_number, event_date, event_time, occurred_at,
			latitude, longitude, speed, charges_applied
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID, vehicleNumber, entry.Date, entry.Time, occurredAt,
		entry.Latitude, entry.Longitude, entry.Speed, entry.ChargesApplied.Float64())
	if err != nil {
		return fmt.Errorf("failed to insert toll event: %w", err)
	}
	return nil
}
