package models

import (
	"time"

	"gorm.io/gorm"
)

// MealTypes in canonical order; every daily breakdown carries all four keys.
var MealTypes = []string{"breakfast", "lunch", "dinner", "snack"}

// FoodLog snapshots a Food's nutrients scaled by servings at write time.
// The nutrient columns and FoodName are denormalized on purpose: editing or
// deleting the source Food must not retroactively change logged history.
type FoodLog struct {
	gorm.Model
	UserID uint      `gorm:"index:idx_logs_user_date;not null" json:"userId"`
	FoodID uint      `gorm:"not null" json:"foodId"`
	Date   time.Time `gorm:"index:idx_logs_user_date;not null" json:"date"`

	MealType string  `gorm:"not null" json:"mealType"` // breakfast|lunch|dinner|snack
	Servings float64 `gorm:"not null" json:"servings"` // >= 0.1

	// Food per-serving values x Servings as of the last write.
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`

	FoodName string `gorm:"not null" json:"foodName"`
	Notes    string `gorm:"size:500" json:"notes,omitempty"`
}
