package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Adam-Aviv/calorie-tracker-api/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWeightService_TrendNoEntries(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "weight-none@example.com")
	svc := services.NewWeightService(db)

	entries, stats, err := svc.Trend(context.Background(), user.ID, 30)
	require.NoError(t, err)

	assert.Empty(t, entries)
	assert.Equal(t, 0, stats.Count)
	assert.Zero(t, stats.Average)
	assert.Zero(t, stats.Change)
	assert.Equal(t, "0", stats.ChangePercentage)
}

func TestWeightService_TrendSingleEntry(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "weight-one@example.com")
	svc := services.NewWeightService(db)

	_, err := svc.Create(user.ID, services.WeightInput{Weight: 80, Date: time.Now().AddDate(0, 0, -1)})
	require.NoError(t, err)

	_, stats, err := svc.Trend(context.Background(), user.ID, 30)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, 80.0, stats.Average)
	assert.Zero(t, stats.Change)
	assert.Equal(t, "0", stats.ChangePercentage)
}

func TestWeightService_TrendStats(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "weight-trend@example.com")
	svc := services.NewWeightService(db)

	now := time.Now()
	for i, w := range []float64{80, 79, 78} {
		_, err := svc.Create(user.ID, services.WeightInput{
			Weight: w,
			Date:   now.AddDate(0, 0, -20+i*7),
		})
		require.NoError(t, err)
	}

	entries, stats, err := svc.Trend(context.Background(), user.ID, 30)
	require.NoError(t, err)

	require.Len(t, entries, 3)
	// Ascending by date: oldest first.
	assert.Equal(t, 80.0, entries[0].Weight)
	assert.Equal(t, 78.0, entries[2].Weight)

	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 79.0, stats.Average)
	assert.Equal(t, -2.0, stats.Change)
	assert.Equal(t, "-2.50", stats.ChangePercentage)
}

func TestWeightService_TrendWindowExcludesOldEntries(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "weight-window@example.com")
	svc := services.NewWeightService(db)

	now := time.Now()
	_, err := svc.Create(user.ID, services.WeightInput{Weight: 90, Date: now.AddDate(0, 0, -60)})
	require.NoError(t, err)
	_, err = svc.Create(user.ID, services.WeightInput{Weight: 85, Date: now.AddDate(0, 0, -5)})
	require.NoError(t, err)

	entries, stats, err := svc.Trend(context.Background(), user.ID, 30)
	require.NoError(t, err)

	assert.Len(t, entries, 1)
	assert.Equal(t, 1, stats.Count)
	assert.Equal(t, 85.0, stats.Average)
}

func TestWeightService_TrendZeroOldestWeight(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "weight-zero@example.com")
	svc := services.NewWeightService(db)

	now := time.Now()
	// An oldest weight of 0 must not divide; percentage stays "0".
	require.NoError(t, db.Exec(
		"INSERT INTO weight_entries (user_id, weight, date, created_at, updated_at) VALUES (?, 0, ?, ?, ?)",
		user.ID, now.AddDate(0, 0, -10), now, now,
	).Error)
	_, err := svc.Create(user.ID, services.WeightInput{Weight: 70, Date: now.AddDate(0, 0, -1)})
	require.NoError(t, err)

	_, stats, err := svc.Trend(context.Background(), user.ID, 30)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Count)
	assert.Equal(t, 70.0, stats.Change)
	assert.Equal(t, "0", stats.ChangePercentage)
}

func TestWeightService_LatestAndList(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "weight-latest@example.com")
	svc := services.NewWeightService(db)

	now := time.Now()
	for i, w := range []float64{82, 81, 80.5} {
		_, err := svc.Create(user.ID, services.WeightInput{Weight: w, Date: now.AddDate(0, 0, -10+i)})
		require.NoError(t, err)
	}

	latest, err := svc.Latest(user.ID)
	require.NoError(t, err)
	assert.Equal(t, 80.5, latest.Weight)

	entries, err := svc.List(user.ID, nil, nil, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	// Newest first.
	assert.Equal(t, 80.5, entries[0].Weight)
}

func TestWeightService_LatestEmpty(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "weight-latest-empty@example.com")
	svc := services.NewWeightService(db)

	_, err := svc.Latest(user.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestWeightService_Ownership(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "weight-owner@example.com")
	other := createTestUser(t, db, "weight-other@example.com")
	svc := services.NewWeightService(db)

	entry, err := svc.Create(owner.ID, services.WeightInput{Weight: 75, Date: time.Now()})
	require.NoError(t, err)

	w := 70.0
	_, err = svc.Update(other.ID, entry.ID, services.WeightUpdateInput{Weight: &w})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.Delete(other.ID, entry.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// The owner still can.
	updated, err := svc.Update(owner.ID, entry.ID, services.WeightUpdateInput{Weight: &w})
	require.NoError(t, err)
	assert.Equal(t, 70.0, updated.Weight)
}
