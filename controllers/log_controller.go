package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Adam-Aviv/calorie-tracker-api/services"
	"github.com/Adam-Aviv/calorie-tracker-api/utils"

	"github.com/gin-gonic/gin"
)

type LogController struct {
	Svc *services.LogService
}

func NewLogController(svc *services.LogService) *LogController {
	return &LogController{Svc: svc}
}

type LogCreateInput struct {
	FoodID   uint    `json:"foodId" binding:"required"`
	Date     string  `json:"date" binding:"required"`
	MealType string  `json:"mealType" binding:"required,oneof=breakfast lunch dinner snack"`
	Servings float64 `json:"servings" binding:"omitempty,gte=0.1"`
	Notes    string  `json:"notes"`
}

type LogUpdateBody struct {
	Date     *string  `json:"date"`
	MealType *string  `json:"mealType" binding:"omitempty,oneof=breakfast lunch dinner snack"`
	Servings *float64 `json:"servings" binding:"omitempty,gte=0.1"`
	Notes    *string  `json:"notes"`
}

// GET /api/logs?startDate=&endDate=&mealType=
func (h *LogController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	var start, end *time.Time
	if v := c.Query("startDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid startDate"})
			return
		}
		start = &t
	}
	if v := c.Query("endDate"); v != "" {
		t, err := parseDate(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid endDate"})
			return
		}
		end = &t
	}

	logs, err := h.Svc.List(c.Request.Context(), userID, start, end, c.Query("mealType"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": logs})
}

// GET /api/logs/daily/:date returns the day's logs plus the computed summary.
func (h *LogController) Daily(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	date, err := parseDate(c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid date"})
		return
	}

	logs, err := h.Svc.ListForDay(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	summary, err := h.Svc.DailySummary(c.Request.Context(), userID, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"logs":    logs,
			"summary": summary,
		},
	})
}

// GET /api/logs/summary/:startDate/:endDate
func (h *LogController) RangeSummary(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	start, err := parseDate(c.Param("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid startDate"})
		return
	}
	end, err := parseDate(c.Param("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid endDate"})
		return
	}
	if end.Before(start) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "endDate must be on/after startDate"})
		return
	}

	summary, err := h.Svc.RangeSummary(c.Request.Context(), userID, start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}

func (h *LogController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	var input LogCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  utils.FormatValidationErrors(err),
		})
		return
	}

	date, err := parseDate(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid date"})
		return
	}

	log, err := h.Svc.Create(c.Request.Context(), userID, services.LogInput{
		FoodID:   input.FoodID,
		Date:     date,
		MealType: input.MealType,
		Servings: input.Servings,
		Notes:    input.Notes,
	})
	if err != nil {
		respondNotFoundOrError(c, err, "Food not found")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": log})
}

func (h *LogController) Update(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Log not found"})
		return
	}

	var body LogUpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  utils.FormatValidationErrors(err),
		})
		return
	}

	in := services.LogUpdateInput{
		MealType: body.MealType,
		Servings: body.Servings,
		Notes:    body.Notes,
	}
	if body.Date != nil {
		t, err := parseDate(*body.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid date"})
			return
		}
		in.Date = &t
	}

	log, err := h.Svc.Update(c.Request.Context(), userID, uint(id), in)
	if err != nil {
		respondNotFoundOrError(c, err, "Log not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": log})
}

func (h *LogController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Log not found"})
		return
	}

	if err := h.Svc.Delete(c.Request.Context(), userID, uint(id)); err != nil {
		respondNotFoundOrError(c, err, "Log not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Log deleted successfully"})
}
