package services

import (
	"math"

	"github.com/Adam-Aviv/calorie-tracker-api/models"

	"gorm.io/gorm"
)

type FoodService struct{ db *gorm.DB }

func NewFoodService(db *gorm.DB) *FoodService { return &FoodService{db: db} }

type FoodInput struct {
	Name        string
	Calories    float64
	Protein     float64
	Carbs       float64
	Fats        float64
	ServingSize float64
	ServingUnit string
	Barcode     string
	ImageURL    string
	Category    string
	IsPublic    bool
}

type FoodUpdateInput struct {
	Name        *string
	Calories    *float64
	Protein     *float64
	Carbs       *float64
	Fats        *float64
	ServingSize *float64
	ServingUnit *string
	Barcode     *string
	ImageURL    *string
	Category    *string
	IsPublic    *bool
}

type FoodListQuery struct {
	Search   string
	Category string
	Page     int
	Limit    int
}

type Pagination struct {
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
	TotalItems  int64 `json:"totalItems"`
}

// List returns the caller's catalog newest first, with optional name search
// and category filter, paginated.
func (s *FoodService) List(userID uint, q FoodListQuery) ([]models.Food, *Pagination, error) {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.Limit < 1 {
		q.Limit = 50
	}

	base := s.db.Model(&models.Food{}).Where("user_id = ?", userID)
	if q.Search != "" {
		// LOWER+LIKE instead of ILIKE so the query also runs on sqlite in tests.
		base = base.Where("LOWER(name) LIKE LOWER(?)", "%"+q.Search+"%")
	}
	if q.Category != "" {
		base = base.Where("category = ?", q.Category)
	}

	var count int64
	if err := base.Count(&count).Error; err != nil {
		return nil, nil, err
	}

	var foods []models.Food
	if err := base.
		Order("created_at DESC").
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Find(&foods).Error; err != nil {
		return nil, nil, err
	}

	return foods, &Pagination{
		CurrentPage: q.Page,
		TotalPages:  int(math.Ceil(float64(count) / float64(q.Limit))),
		TotalItems:  count,
	}, nil
}

func (s *FoodService) Get(userID, foodID uint) (*models.Food, error) {
	var food models.Food
	err := s.db.
		Where("id = ? AND user_id = ?", foodID, userID).
		First(&food).Error
	if err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) Create(userID uint, in FoodInput) (*models.Food, error) {
	if in.ServingSize == 0 {
		in.ServingSize = 100
	}
	if in.ServingUnit == "" {
		in.ServingUnit = "g"
	}
	if in.Category == "" {
		in.Category = "other"
	}

	food := &models.Food{
		UserID:      userID,
		Name:        in.Name,
		Calories:    in.Calories,
		Protein:     in.Protein,
		Carbs:       in.Carbs,
		Fats:        in.Fats,
		ServingSize: in.ServingSize,
		ServingUnit: in.ServingUnit,
		Barcode:     in.Barcode,
		ImageURL:    in.ImageURL,
		Category:    in.Category,
		IsPublic:    in.IsPublic,
	}
	if err := s.db.Create(food).Error; err != nil {
		return nil, err
	}
	return food, nil
}

func (s *FoodService) Update(userID, foodID uint, in FoodUpdateInput) (*models.Food, error) {
	var food models.Food
	if err := s.db.
		Where("id = ? AND user_id = ?", foodID, userID).
		First(&food).Error; err != nil {
		return nil, err
	}

	if in.Name != nil {
		food.Name = *in.Name
	}
	if in.Calories != nil {
		food.Calories = *in.Calories
	}
	if in.Protein != nil {
		food.Protein = *in.Protein
	}
	if in.Carbs != nil {
		food.Carbs = *in.Carbs
	}
	if in.Fats != nil {
		food.Fats = *in.Fats
	}
	if in.ServingSize != nil {
		food.ServingSize = *in.ServingSize
	}
	if in.ServingUnit != nil {
		food.ServingUnit = *in.ServingUnit
	}
	if in.Barcode != nil {
		food.Barcode = *in.Barcode
	}
	if in.ImageURL != nil {
		food.ImageURL = *in.ImageURL
	}
	if in.Category != nil {
		food.Category = *in.Category
	}
	if in.IsPublic != nil {
		food.IsPublic = *in.IsPublic
	}

	if err := s.db.Save(&food).Error; err != nil {
		return nil, err
	}
	return &food, nil
}

func (s *FoodService) Delete(userID, foodID uint) error {
	var food models.Food
	if err := s.db.
		Where("id = ? AND user_id = ?", foodID, userID).
		First(&food).Error; err != nil {
		return err
	}
	return s.db.Delete(&food).Error
}
