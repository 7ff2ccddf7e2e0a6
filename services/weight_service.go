package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Adam-Aviv/calorie-tracker-api/models"

	"gorm.io/gorm"
)

type WeightService struct{ db *gorm.DB }

func NewWeightService(db *gorm.DB) *WeightService { return &WeightService{db: db} }

type WeightInput struct {
	Weight float64
	Date   time.Time
	Notes  string
}

type WeightUpdateInput struct {
	Weight *float64
	Date   *time.Time
	Notes  *string
}

// TrendStats describes a weight series over a lookback window. Change and
// ChangePercentage are only defined from two entries; ChangePercentage is a
// two-decimal string to keep display formatting out of clients.
type TrendStats struct {
	Count            int     `json:"count"`
	Average          float64 `json:"average"`
	Change           float64 `json:"change"`
	ChangePercentage string  `json:"changePercentage"`
}

func (s *WeightService) Create(userID uint, in WeightInput) (*models.WeightEntry, error) {
	entry := &models.WeightEntry{
		UserID: userID,
		Weight: in.Weight,
		Date:   in.Date,
		Notes:  in.Notes,
	}
	if err := s.db.Create(entry).Error; err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *WeightService) Update(userID, entryID uint, in WeightUpdateInput) (*models.WeightEntry, error) {
	var entry models.WeightEntry
	if err := s.db.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return nil, err
	}

	if in.Weight != nil {
		entry.Weight = *in.Weight
	}
	if in.Date != nil {
		entry.Date = *in.Date
	}
	if in.Notes != nil {
		entry.Notes = *in.Notes
	}

	if err := s.db.Save(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *WeightService) Delete(userID, entryID uint) error {
	var entry models.WeightEntry
	if err := s.db.
		Where("id = ? AND user_id = ?", entryID, userID).
		First(&entry).Error; err != nil {
		return err
	}
	return s.db.Delete(&entry).Error
}

func (s *WeightService) List(userID uint, start, end *time.Time, limit int) ([]models.WeightEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	q := s.db.Where("user_id = ?", userID)
	if start != nil {
		q = q.Where("date >= ?", *start)
	}
	if end != nil {
		q = q.Where("date <= ?", *end)
	}

	var entries []models.WeightEntry
	err := q.Order("date DESC").Limit(limit).Find(&entries).Error
	return entries, err
}

func (s *WeightService) Latest(userID uint) (*models.WeightEntry, error) {
	var entry models.WeightEntry
	err := s.db.
		Where("user_id = ?", userID).
		Order("date DESC").
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Trend returns entries from the last `days` days ascending by date, plus
// statistics over them.
func (s *WeightService) Trend(ctx context.Context, userID uint, days int) ([]models.WeightEntry, *TrendStats, error) {
	if days < 1 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	var entries []models.WeightEntry
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date >= ?", userID, since).
		Order("date ASC").
		Find(&entries).Error; err != nil {
		return nil, nil, err
	}

	return entries, computeTrendStats(entries), nil
}

func computeTrendStats(entries []models.WeightEntry) *TrendStats {
	stats := &TrendStats{
		Count:            len(entries),
		ChangePercentage: "0",
	}

	if len(entries) > 0 {
		var sum float64
		for _, e := range entries {
			sum += e.Weight
		}
		stats.Average = sum / float64(len(entries))
	}

	if len(entries) > 1 {
		oldest := entries[0].Weight
		newest := entries[len(entries)-1].Weight
		stats.Change = newest - oldest
		if oldest != 0 {
			stats.ChangePercentage = fmt.Sprintf("%.2f", stats.Change/oldest*100)
		}
	}

	return stats
}
