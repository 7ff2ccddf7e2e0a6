package utils

import (
	"errors"
	"math"

	"github.com/Adam-Aviv/calorie-tracker-api/models"
)

// activityMultipliers maps activity level strings to their TDEE multiplier.
// Also the source of truth for valid activity levels on profile updates.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// ValidActivityLevel reports whether level has a multiplier entry.
func ValidActivityLevel(level string) bool {
	_, ok := activityMultipliers[level]
	return ok
}

var ErrIncompleteProfile = errors.New("weight, height, age and activity level are required")

// TDEEResult carries the estimate plus calorie-target recommendations.
// Recommendations are plain offsets and may go negative; not clamped.
type TDEEResult struct {
	TDEE           int                `json:"tdee"`
	BMR            int                `json:"bmr"`
	Recommendation TDEERecommendation `json:"recommendation"`
}

type TDEERecommendation struct {
	Maintain          int `json:"maintain"`
	MildWeightLoss    int `json:"mildWeightLoss"`
	WeightLoss        int `json:"weightLoss"`
	ExtremeWeightLoss int `json:"extremeWeightLoss"`
}

// CalculateTDEE estimates BMR (Mifflin-St Jeor) and TDEE from a profile.
// Weight in kilograms, height in centimeters. A zero weight, height or age
// counts as unset, same convention as the rest of the profile, and an
// unrecognized activity level is treated the same way so a caller never sees
// NaN.
func CalculateTDEE(user *models.User) (*TDEEResult, error) {
	if user.CurrentWeight <= 0 || user.Height <= 0 || user.Age <= 0 {
		return nil, ErrIncompleteProfile
	}

	mult, ok := activityMultipliers[user.ActivityLevel]
	if !ok {
		return nil, ErrIncompleteProfile
	}

	bmr := 10*user.CurrentWeight + 6.25*user.Height - 5*float64(user.Age)
	if user.Gender == "male" {
		bmr += 5
	} else {
		bmr -= 161
	}

	tdee := int(math.Round(bmr * mult))

	return &TDEEResult{
		TDEE: tdee,
		BMR:  int(math.Round(bmr)),
		Recommendation: TDEERecommendation{
			Maintain:          tdee,
			MildWeightLoss:    tdee - 250,
			WeightLoss:        tdee - 500,
			ExtremeWeightLoss: tdee - 1000,
		},
	}, nil
}
