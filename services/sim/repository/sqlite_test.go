package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadgate/tollpass/internal/pkg/database"
	"github.com/quadgate/tollpass/internal/pkg/models"
)

func newTestRepo(t *testing.T) *SimRepository {
	t.Helper()
	db, err := database.Open(filepath.Join(t.TempDir(), "sim.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo, err := NewSimRepository(db)
	require.NoError(t, err)
	return repo
}

func TestListTollEventsOrderedByOccurrence(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	// Day-first date strings sort 01-04 before 14-03; listing must follow
	// the actual occurrence order across the month boundary regardless.
	events := []models.TollEntry{
		{Date: "14-03-2025", Time: "09:15:00", Speed: 82, ChargesApplied: models.Amount(45.50)},
		{Date: "01-04-2025", Time: "08:00:00", Speed: 70, ChargesApplied: models.Amount(20.00)},
		{Date: "14-03-2025", Time: "18:40:00", Speed: 64, ChargesApplied: models.Amount(12.00)},
	}
	for _, entry := range events {
		require.NoError(t, repo.InsertTollEvent(ctx, "MH12AB1234", entry))
	}

	entries, err := repo.ListTollEvents(ctx, "MH12AB1234")
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "14-03-2025", entries[0].Date)
	assert.Equal(t, "09:15:00", entries[0].Time)
	assert.Equal(t, "14-03-2025", entries[1].Date)
	assert.Equal(t, "18:40:00", entries[1].Time)
	assert.Equal(t, "01-04-2025", entries[2].Date)
}

func TestListTollEventsCrossYear(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.InsertTollEvent(ctx, "KA05CD9876",
		models.TollEntry{Date: "31-12-2024", Time: "23:50:00", ChargesApplied: models.Amount(10)}))
	require.NoError(t, repo.InsertTollEvent(ctx, "KA05CD9876",
		models.TollEntry{Date: "01-01-2025", Time: "00:10:00", ChargesApplied: models.Amount(15)}))

	entries, err := repo.ListTollEvents(ctx, "KA05CD9876")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "31-12-2024", entries[0].Date)
	assert.Equal(t, "01-01-2025", entries[1].Date)
}

func TestListTollEventsScopedToVehicle(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.InsertTollEvent(ctx, "MH12AB1234",
		models.TollEntry{Date: "14-03-2025", Time: "09:15:00", ChargesApplied: models.Amount(45.50)}))
	require.NoError(t, repo.InsertTollEvent(ctx, "KA05CD9876",
		models.TollEntry{Date: "14-03-2025", Time: "10:00:00", ChargesApplied: models.Amount(5)}))

	entries, err := repo.ListTollEvents(ctx, "MH12AB1234")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 45.50, entries[0].ChargesApplied.Float64())
}
