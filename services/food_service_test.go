package services_test

import (
	"fmt"
	"testing"

	"github.com/Adam-Aviv/calorie-tracker-api/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestFoodService_CreateDefaults(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "food-create@example.com")
	svc := services.NewFoodService(db)

	food, err := svc.Create(user.ID, services.FoodInput{
		Name:     "Oats",
		Calories: 389,
		Protein:  16.9,
		Carbs:    66.3,
		Fats:     6.9,
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, food.ServingSize)
	assert.Equal(t, "g", food.ServingUnit)
	assert.Equal(t, "other", food.Category)
	assert.False(t, food.IsPublic)
	assert.Equal(t, user.ID, food.UserID)
}

func TestFoodService_PartialUpdate(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "food-update@example.com")
	svc := services.NewFoodService(db)

	food, err := svc.Create(user.ID, services.FoodInput{
		Name: "Rice", Calories: 130, Protein: 2.7, Carbs: 28, Fats: 0.3, Category: "carbs",
	})
	require.NoError(t, err)

	calories := 140.0
	updated, err := svc.Update(user.ID, food.ID, services.FoodUpdateInput{Calories: &calories})
	require.NoError(t, err)

	assert.Equal(t, 140.0, updated.Calories)
	// Untouched fields survive.
	assert.Equal(t, "Rice", updated.Name)
	assert.Equal(t, "carbs", updated.Category)
	assert.Equal(t, 28.0, updated.Carbs)
}

func TestFoodService_ListSearchAndCategory(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "food-search@example.com")
	svc := services.NewFoodService(db)

	seed := []services.FoodInput{
		{Name: "Chicken Breast", Calories: 165, Category: "protein"},
		{Name: "Chicken Thigh", Calories: 209, Category: "protein"},
		{Name: "Brown Rice", Calories: 112, Category: "carbs"},
	}
	for _, in := range seed {
		_, err := svc.Create(user.ID, in)
		require.NoError(t, err)
	}

	foods, pagination, err := svc.List(user.ID, services.FoodListQuery{Search: "chicken"})
	require.NoError(t, err)
	assert.Len(t, foods, 2)
	assert.Equal(t, int64(2), pagination.TotalItems)

	foods, _, err = svc.List(user.ID, services.FoodListQuery{Category: "carbs"})
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Brown Rice", foods[0].Name)
}

func TestFoodService_ListPagination(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "food-page@example.com")
	svc := services.NewFoodService(db)

	for i := 0; i < 7; i++ {
		_, err := svc.Create(user.ID, services.FoodInput{
			Name: fmt.Sprintf("Food %d", i), Calories: float64(i),
		})
		require.NoError(t, err)
	}

	foods, pagination, err := svc.List(user.ID, services.FoodListQuery{Page: 2, Limit: 3})
	require.NoError(t, err)

	assert.Len(t, foods, 3)
	assert.Equal(t, 2, pagination.CurrentPage)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, int64(7), pagination.TotalItems)
}

func TestFoodService_Ownership(t *testing.T) {
	db := setupTestDB(t)
	owner := createTestUser(t, db, "food-owner@example.com")
	other := createTestUser(t, db, "food-other@example.com")
	svc := services.NewFoodService(db)

	food, err := svc.Create(owner.ID, services.FoodInput{Name: "Eggs", Calories: 155})
	require.NoError(t, err)

	_, err = svc.Get(other.ID, food.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	name := "Stolen"
	_, err = svc.Update(other.ID, food.ID, services.FoodUpdateInput{Name: &name})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	err = svc.Delete(other.ID, food.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Another user's list never includes it.
	foods, _, err := svc.List(other.ID, services.FoodListQuery{})
	require.NoError(t, err)
	assert.Empty(t, foods)
}

func TestFoodService_Delete(t *testing.T) {
	db := setupTestDB(t)
	user := createTestUser(t, db, "food-delete@example.com")
	svc := services.NewFoodService(db)

	food, err := svc.Create(user.ID, services.FoodInput{Name: "Butter", Calories: 717})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(user.ID, food.ID))

	_, err = svc.Get(user.ID, food.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
