package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Name     string `gorm:"not null" json:"name"`

	// Body metrics; zero means not set.
	CurrentWeight float64 `json:"currentWeight"` // kg
	GoalWeight    float64 `json:"goalWeight"`    // kg
	Height        float64 `json:"height"`        // cm
	Age           int     `json:"age"`

	Gender        string `gorm:"default:other" json:"gender"` // male|female|other
	ActivityLevel string `json:"activityLevel"`               // sedentary|light|moderate|active|very_active

	DailyCalorieGoal float64 `gorm:"default:2000" json:"dailyCalorieGoal"`
	ProteinGoal      float64 `gorm:"default:150" json:"proteinGoal"`
	CarbsGoal        float64 `gorm:"default:250" json:"carbsGoal"`
	FatsGoal         float64 `gorm:"default:65" json:"fatsGoal"`

	ResetToken    string    `json:"-"`
	ResetTokenExp time.Time `json:"-"`
}
