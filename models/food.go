package models

import "gorm.io/gorm"

// FoodCategories is the closed set of catalog categories.
var FoodCategories = []string{
	"protein", "carbs", "fats", "vegetables", "fruits",
	"dairy", "snacks", "drinks", "other",
}

// Food is a per-serving nutrition definition owned by one user.
type Food struct {
	gorm.Model
	UserID uint   `gorm:"index;not null" json:"userId"`
	Name   string `gorm:"not null" json:"name"`

	// Per one serving, all non-negative.
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`

	ServingSize float64 `gorm:"default:100" json:"servingSize"`
	ServingUnit string  `gorm:"default:g" json:"servingUnit"`

	Barcode  string `json:"barcode,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`

	Category string `gorm:"index;default:other" json:"category"`

	// Reserved; no cross-user visibility path reads it yet.
	IsPublic bool `gorm:"default:false" json:"isPublic"`
}
