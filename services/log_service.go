package services

import (
	"context"
	"time"

	"github.com/Adam-Aviv/calorie-tracker-api/models"

	"gorm.io/gorm"
)

// LogService owns the food-log lifecycle and the nutrient aggregation over
// it. Summaries always sum the denormalized per-log values, never the
// referenced Food, so history stays stable when foods are edited or deleted.
type LogService struct{ db *gorm.DB }

func NewLogService(db *gorm.DB) *LogService { return &LogService{db: db} }

type LogInput struct {
	FoodID   uint
	Date     time.Time
	MealType string
	Servings float64
	Notes    string
}

type LogUpdateInput struct {
	Date     *time.Time
	MealType *string
	Servings *float64
	Notes    *string
}

type MealTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
	Count    int     `json:"count"`
}

type DailySummary struct {
	TotalCalories float64                `json:"totalCalories"`
	TotalProtein  float64                `json:"totalProtein"`
	TotalCarbs    float64                `json:"totalCarbs"`
	TotalFats     float64                `json:"totalFats"`
	MealBreakdown map[string]*MealTotals `json:"mealBreakdown"`
}

type RangeSummary struct {
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalCarbs    float64 `json:"totalCarbs"`
	TotalFats     float64 `json:"totalFats"`
	Count         int64   `json:"count"`
}

// scaleNutrients multiplies a food's per-serving values by the serving
// multiplier. No rounding; logs keep full float precision.
func scaleNutrients(food *models.Food, servings float64) (calories, protein, carbs, fats float64) {
	return food.Calories * servings,
		food.Protein * servings,
		food.Carbs * servings,
		food.Fats * servings
}

// Create snapshots the referenced food scaled by servings. The food must
// belong to the same user; a miss is reported as not found.
func (s *LogService) Create(ctx context.Context, userID uint, in LogInput) (*models.FoodLog, error) {
	var food models.Food
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", in.FoodID, userID).
		First(&food).Error; err != nil {
		return nil, err
	}

	servings := in.Servings
	if servings == 0 {
		servings = 1
	}
	calories, protein, carbs, fats := scaleNutrients(&food, servings)

	log := &models.FoodLog{
		UserID:   userID,
		FoodID:   food.ID,
		Date:     in.Date,
		MealType: in.MealType,
		Servings: servings,
		Calories: calories,
		Protein:  protein,
		Carbs:    carbs,
		Fats:     fats,
		FoodName: food.Name,
		Notes:    in.Notes,
	}
	if err := s.db.WithContext(ctx).Create(log).Error; err != nil {
		return nil, err
	}
	return log, nil
}

// Update applies a partial change. A servings change re-reads the referenced
// food's current per-serving values and recomputes all four nutrient fields;
// if that food can no longer be loaded the update is rejected so the scaled
// values never go stale.
func (s *LogService) Update(ctx context.Context, userID, logID uint, in LogUpdateInput) (*models.FoodLog, error) {
	var log models.FoodLog
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		First(&log).Error; err != nil {
		return nil, err
	}

	if in.Servings != nil && *in.Servings != log.Servings {
		var food models.Food
		if err := s.db.WithContext(ctx).First(&food, log.FoodID).Error; err != nil {
			return nil, err
		}
		log.Servings = *in.Servings
		log.Calories, log.Protein, log.Carbs, log.Fats = scaleNutrients(&food, log.Servings)
		log.FoodName = food.Name
	}

	if in.Date != nil {
		log.Date = *in.Date
	}
	if in.MealType != nil {
		log.MealType = *in.MealType
	}
	if in.Notes != nil {
		log.Notes = *in.Notes
	}

	if err := s.db.WithContext(ctx).Save(&log).Error; err != nil {
		return nil, err
	}
	return &log, nil
}

func (s *LogService) Delete(ctx context.Context, userID, logID uint) error {
	var log models.FoodLog
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", logID, userID).
		First(&log).Error; err != nil {
		return err
	}
	return s.db.WithContext(ctx).Delete(&log).Error
}

// List returns logs newest first, optionally bounded by dates and meal type.
func (s *LogService) List(ctx context.Context, userID uint, start, end *time.Time, mealType string) ([]models.FoodLog, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if start != nil {
		q = q.Where("date >= ?", *start)
	}
	if end != nil {
		q = q.Where("date <= ?", *end)
	}
	if mealType != "" {
		q = q.Where("meal_type = ?", mealType)
	}

	var logs []models.FoodLog
	err := q.Order("date DESC, created_at DESC").Find(&logs).Error
	return logs, err
}

// ListForDay returns a day's logs ordered for display alongside the summary.
func (s *LogService) ListForDay(ctx context.Context, userID uint, date time.Time) ([]models.FoodLog, error) {
	var logs []models.FoodLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(date), dayEnd(date)).
		Order("meal_type ASC, created_at ASC").
		Find(&logs).Error
	return logs, err
}

// DailySummary sums one calendar day, local midnight through 23:59:59.999.
// Every meal type key is present even when the day is empty.
func (s *LogService) DailySummary(ctx context.Context, userID uint, date time.Time) (*DailySummary, error) {
	var logs []models.FoodLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(date), dayEnd(date)).
		Find(&logs).Error; err != nil {
		return nil, err
	}

	summary := &DailySummary{MealBreakdown: map[string]*MealTotals{}}
	for _, mt := range models.MealTypes {
		summary.MealBreakdown[mt] = &MealTotals{}
	}

	for _, log := range logs {
		summary.TotalCalories += log.Calories
		summary.TotalProtein += log.Protein
		summary.TotalCarbs += log.Carbs
		summary.TotalFats += log.Fats

		meal, ok := summary.MealBreakdown[log.MealType]
		if !ok {
			continue
		}
		meal.Calories += log.Calories
		meal.Protein += log.Protein
		meal.Carbs += log.Carbs
		meal.Fats += log.Fats
		meal.Count++
	}

	return summary, nil
}

// RangeSummary sums an inclusive day range. The summation runs in the
// database so large ranges never load individual logs into memory.
func (s *LogService) RangeSummary(ctx context.Context, userID uint, startDate, endDate time.Time) (*RangeSummary, error) {
	var out RangeSummary
	err := s.db.WithContext(ctx).
		Model(&models.FoodLog{}).
		Select("COALESCE(SUM(calories), 0) AS total_calories, "+
			"COALESCE(SUM(protein), 0) AS total_protein, "+
			"COALESCE(SUM(carbs), 0) AS total_carbs, "+
			"COALESCE(SUM(fats), 0) AS total_fats, "+
			"COUNT(*) AS count").
		Where("user_id = ? AND date BETWEEN ? AND ?", userID, dayStart(startDate), dayEnd(endDate)).
		Scan(&out).Error
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func dayEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
