package utils_test

import (
	"testing"

	"github.com/Adam-Aviv/calorie-tracker-api/models"
	"github.com/Adam-Aviv/calorie-tracker-api/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func completeProfile() *models.User {
	return &models.User{
		CurrentWeight: 80,
		Height:        180,
		Age:           30,
		Gender:        "male",
		ActivityLevel: "moderate",
	}
}

func TestCalculateTDEE_Male(t *testing.T) {
	user := completeProfile()

	result, err := utils.CalculateTDEE(user)
	require.NoError(t, err)

	// BMR = 10*80 + 6.25*180 - 5*30 + 5 = 1780
	assert.Equal(t, 1780, result.BMR)
	// TDEE = round(1780 * 1.55) = 2759
	assert.Equal(t, 2759, result.TDEE)

	assert.Equal(t, 2759, result.Recommendation.Maintain)
	assert.Equal(t, 2509, result.Recommendation.MildWeightLoss)
	assert.Equal(t, 2259, result.Recommendation.WeightLoss)
	assert.Equal(t, 1759, result.Recommendation.ExtremeWeightLoss)
}

func TestCalculateTDEE_NonMale(t *testing.T) {
	user := completeProfile()
	user.Gender = "female"

	result, err := utils.CalculateTDEE(user)
	require.NoError(t, err)

	// BMR = 10*80 + 6.25*180 - 5*30 - 161 = 1614
	assert.Equal(t, 1614, result.BMR)
	assert.Equal(t, 2502, result.TDEE) // round(1614 * 1.55) = 2501.7

	// "other" uses the same formula as female.
	user.Gender = "other"
	other, err := utils.CalculateTDEE(user)
	require.NoError(t, err)
	assert.Equal(t, result.TDEE, other.TDEE)
}

func TestCalculateTDEE_MissingInputs(t *testing.T) {
	cases := map[string]func(*models.User){
		"no weight":   func(u *models.User) { u.CurrentWeight = 0 },
		"no height":   func(u *models.User) { u.Height = 0 },
		"no age":      func(u *models.User) { u.Age = 0 },
		"no activity": func(u *models.User) { u.ActivityLevel = "" },
		"unknown activity": func(u *models.User) {
			u.ActivityLevel = "olympic"
		},
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			user := completeProfile()
			mutate(user)
			_, err := utils.CalculateTDEE(user)
			assert.ErrorIs(t, err, utils.ErrIncompleteProfile)
		})
	}
}

func TestCalculateTDEE_AllActivityLevels(t *testing.T) {
	expected := map[string]int{
		"sedentary":   2136, // round(1780 * 1.2)
		"light":       2448, // round(1780 * 1.375) = 2447.5
		"moderate":    2759,
		"active":      3071, // round(1780 * 1.725) = 3070.5
		"very_active": 3382,
	}

	for level, want := range expected {
		user := completeProfile()
		user.ActivityLevel = level
		result, err := utils.CalculateTDEE(user)
		require.NoError(t, err, level)
		assert.Equal(t, want, result.TDEE, level)
		assert.Positive(t, result.TDEE, level)
	}
}

func TestValidActivityLevel(t *testing.T) {
	for _, level := range []string{"sedentary", "light", "moderate", "active", "very_active"} {
		assert.True(t, utils.ValidActivityLevel(level), level)
	}
	assert.False(t, utils.ValidActivityLevel(""))
	assert.False(t, utils.ValidActivityLevel("extreme"))
}
