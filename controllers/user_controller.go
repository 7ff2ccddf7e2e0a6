package controllers

import (
	"errors"
	"net/http"

	"github.com/Adam-Aviv/calorie-tracker-api/services"
	"github.com/Adam-Aviv/calorie-tracker-api/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	Svc *services.UserService
}

func NewUserController(svc *services.UserService) *UserController {
	return &UserController{Svc: svc}
}

// ProfileUpdateBody mirrors the whitelist of editable profile fields.
type ProfileUpdateBody struct {
	Name             *string  `json:"name"`
	CurrentWeight    *float64 `json:"currentWeight" binding:"omitempty,gte=0"`
	GoalWeight       *float64 `json:"goalWeight" binding:"omitempty,gte=0"`
	Height           *float64 `json:"height" binding:"omitempty,gte=0"`
	Age              *int     `json:"age" binding:"omitempty,gte=0"`
	Gender           *string  `json:"gender" binding:"omitempty,oneof=male female other"`
	ActivityLevel    *string  `json:"activityLevel" binding:"omitempty,oneof=sedentary light moderate active very_active"`
	DailyCalorieGoal *float64 `json:"dailyCalorieGoal" binding:"omitempty,gte=0"`
	ProteinGoal      *float64 `json:"proteinGoal" binding:"omitempty,gte=0"`
	CarbsGoal        *float64 `json:"carbsGoal" binding:"omitempty,gte=0"`
	FatsGoal         *float64 `json:"fatsGoal" binding:"omitempty,gte=0"`
}

func (h *UserController) GetProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	user, err := h.Svc.Get(userID)
	if err != nil {
		respondNotFoundOrError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

func (h *UserController) UpdateProfile(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	var body ProfileUpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  utils.FormatValidationErrors(err),
		})
		return
	}

	user, err := h.Svc.UpdateProfile(userID, services.ProfileUpdateInput{
		Name:             body.Name,
		CurrentWeight:    body.CurrentWeight,
		GoalWeight:       body.GoalWeight,
		Height:           body.Height,
		Age:              body.Age,
		Gender:           body.Gender,
		ActivityLevel:    body.ActivityLevel,
		DailyCalorieGoal: body.DailyCalorieGoal,
		ProteinGoal:      body.ProteinGoal,
		CarbsGoal:        body.CarbsGoal,
		FatsGoal:         body.FatsGoal,
	})
	if err != nil {
		respondNotFoundOrError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// CalculateTDEE is a client-correctable 400 when the profile lacks the
// inputs, never a server error.
func (h *UserController) CalculateTDEE(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	result, err := h.Svc.CalculateTDEE(userID)
	if err != nil {
		if errors.Is(err, utils.ErrIncompleteProfile) {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"message": "Please update your weight, height, age and activity level to calculate TDEE",
			})
			return
		}
		respondNotFoundOrError(c, err, "User not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": result})
}
