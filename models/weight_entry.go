package models

import (
	"time"

	"gorm.io/gorm"
)

// WeightEntry is a dated weight observation. Multiple entries per day are
// allowed; trend queries order by date.
type WeightEntry struct {
	gorm.Model
	UserID uint      `gorm:"index:idx_weights_user_date;not null" json:"userId"`
	Weight float64   `gorm:"not null" json:"weight"` // kg, > 0
	Date   time.Time `gorm:"index:idx_weights_user_date;not null" json:"date"`
	Notes  string    `gorm:"size:500" json:"notes,omitempty"`
}
