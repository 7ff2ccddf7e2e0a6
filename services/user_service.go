package services

import (
	"github.com/Adam-Aviv/calorie-tracker-api/models"
	"github.com/Adam-Aviv/calorie-tracker-api/utils"

	"gorm.io/gorm"
)

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

// ProfileUpdateInput is the whitelist of caller-editable profile fields.
// Pointers distinguish "not sent" from an explicit zero.
type ProfileUpdateInput struct {
	Name             *string
	CurrentWeight    *float64
	GoalWeight       *float64
	Height           *float64
	Age              *int
	Gender           *string
	ActivityLevel    *string
	DailyCalorieGoal *float64
	ProteinGoal      *float64
	CarbsGoal        *float64
	FatsGoal         *float64
}

func (s *UserService) Get(userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) UpdateProfile(userID uint, in ProfileUpdateInput) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, userID).Error; err != nil {
		return nil, err
	}

	if in.Name != nil {
		user.Name = *in.Name
	}
	if in.CurrentWeight != nil {
		user.CurrentWeight = *in.CurrentWeight
	}
	if in.GoalWeight != nil {
		user.GoalWeight = *in.GoalWeight
	}
	if in.Height != nil {
		user.Height = *in.Height
	}
	if in.Age != nil {
		user.Age = *in.Age
	}
	if in.Gender != nil {
		user.Gender = *in.Gender
	}
	if in.ActivityLevel != nil {
		user.ActivityLevel = *in.ActivityLevel
	}
	if in.DailyCalorieGoal != nil {
		user.DailyCalorieGoal = *in.DailyCalorieGoal
	}
	if in.ProteinGoal != nil {
		user.ProteinGoal = *in.ProteinGoal
	}
	if in.CarbsGoal != nil {
		user.CarbsGoal = *in.CarbsGoal
	}
	if in.FatsGoal != nil {
		user.FatsGoal = *in.FatsGoal
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CalculateTDEE reads the fresh profile and delegates to the estimator.
// utils.ErrIncompleteProfile means the user needs to fill in their metrics,
// not that anything failed server-side.
func (s *UserService) CalculateTDEE(userID uint) (*utils.TDEEResult, error) {
	user, err := s.Get(userID)
	if err != nil {
		return nil, err
	}
	return utils.CalculateTDEE(user)
}
