package session

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/quadgate/tollpass/internal/pkg/database"
	"github.com/quadgate/tollpass/internal/pkg/logger"
	"github.com/quadgate/tollpass/internal/pkg/retry"
)

// Session is the authenticated identity: who is logged in, which vehicle
// they registered and the opaque token the billing service issued. It is
// written only by the login and registration flows and read by everything
// else, so readers must tolerate it being absent.
type Session struct {
	Email         string
	VehicleNumber string
	Token         string
	Role          string
}

// Session roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const schema = `
CREATE TABLE IF NOT EXISTS session (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);`

// Store persists the session in a small per-user sqlite file, the terminal
// counterpart of a browser's per-origin key/value storage.
type Store struct {
	db      *sqlx.DB
	retrier *retry.Retrier
}

// Open opens (creating if needed) the session database at path. A second
// tollpass process holding the file shows up as SQLITE_BUSY; writes go
// through a short backoff retrier to ride that out.
func Open(path string) (*Store, error) {
	db, err := database.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open session store: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize session schema: %w", err)
	}

	retrier := retry.New(retry.Config{
		MaxRetries:    5,
		BaseDelay:     50 * time.Millisecond,
		MaxDelay:      time.Second,
		Multiplier:    2.0,
		Jitter:        true,
		RetryableFunc: isBusy,
	})

	return &Store{db: db, retrier: retrier}, nil
}

func isBusy(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}

// Save persists the identity. All keys are replaced atomically.
func (s *Store) Save(ctx context.Context, sess Session) error {
	return s.retrier.Execute(ctx, func(ctx context.Context) error {
		tx, err := s.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("failed to begin session write: %w", err)
		}
		defer tx.Rollback()

		for key, value := range map[string]string{
			"email":          sess.Email,
			"vehicle_number": sess.VehicleNumber,
			"token":          sess.Token,
			"role":           sess.Role,
		} {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO session (key, value) VALUES (?, ?)
				 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
				key, value); err != nil {
				return fmt.Errorf("failed to write session key %s: %w", key, err)
			}
		}

		return tx.Commit()
	})
}

// Current returns the stored identity, or ok=false when nobody is logged
// in or the store is unreadable.
func (s *Store) Current(ctx context.Context) (Session, bool) {
	sess, err := s.load(ctx)
	if err != nil {
		logger.Warn("failed to read session store", logger.Fields{"error": err.Error()})
		return Session{}, false
	}
	if sess.Email == "" {
		return Session{}, false
	}
	return sess, true
}

func (s *Store) load(ctx context.Context) (Session, error) {
	rows := []struct {
		Key   string `db:"key"`
		Value string `db:"value"`
	}{}
	if err := s.db.SelectContext(ctx, &rows, `SELECT key, value FROM session`); err != nil {
		return Session{}, fmt.Errorf("failed to read session: %w", err)
	}

	var sess Session
	for _, row := range rows {
		switch row.Key {
		case "email":
			sess.Email = row.Value
		case "vehicle_number":
			sess.VehicleNumber = row.Value
		case "token":
			sess.Token = row.Value
		case "role":
			sess.Role = row.Value
		}
	}
	return sess, nil
}

// Clear removes the stored identity.
func (s *Store) Clear(ctx context.Context) error {
	return s.retrier.Execute(ctx, func(ctx context.Context) error {
		if _, err := s.db.ExecContext(ctx, `DELETE FROM session`); err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return nil
	})
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
