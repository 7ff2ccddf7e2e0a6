package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/Adam-Aviv/calorie-tracker-api/services"
	"github.com/Adam-Aviv/calorie-tracker-api/utils"

	"github.com/gin-gonic/gin"
)

type WeightController struct {
	Svc *services.WeightService
}

func NewWeightController(svc *services.WeightService) *WeightController {
	return &WeightController{Svc: svc}
}

type WeightCreateInput struct {
	Weight float64 `json:"weight" binding:"required,gt=0"`
	Date   string  `json:"date" binding:"required"`
	Notes  string  `json:"notes"`
}

type WeightUpdateBody struct {
	Weight *float64 `json:"weight" binding:"omitempty,gt=0"`
	Date   *string  `json:"date"`
	Notes  *string  `json:"notes"`
}

// GET /api/weight?startDate=&endDate=&limit=
func (h *WeightController) List(c *gin.Context) {
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
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))

	entries, err := h.Svc.List(userID, start, end, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entries})
}

func (h *WeightController) Latest(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	entry, err := h.Svc.Latest(userID)
	if err != nil {
		respondNotFoundOrError(c, err, "No weight entries found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entry})
}

// GET /api/weight/trend/:days
func (h *WeightController) Trend(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	days, err := strconv.Atoi(c.Param("days"))
	if err != nil || days < 1 {
		days = 30
	}

	entries, stats, err := h.Svc.Trend(c.Request.Context(), userID, days)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"trend": entries,
			"stats": stats,
		},
	})
}

func (h *WeightController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	var input WeightCreateInput
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

	entry, err := h.Svc.Create(userID, services.WeightInput{
		Weight: input.Weight,
		Date:   date,
		Notes:  input.Notes,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": entry})
}

func (h *WeightController) Update(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Weight entry not found"})
		return
	}

	var body WeightUpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  utils.FormatValidationErrors(err),
		})
		return
	}

	in := services.WeightUpdateInput{
		Weight: body.Weight,
		Notes:  body.Notes,
	}
	if body.Date != nil {
		t, err := parseDate(*body.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "invalid date"})
			return
		}
		in.Date = &t
	}

	entry, err := h.Svc.Update(userID, uint(id), in)
	if err != nil {
		respondNotFoundOrError(c, err, "Weight entry not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": entry})
}

func (h *WeightController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Weight entry not found"})
		return
	}

	if err := h.Svc.Delete(userID, uint(id)); err != nil {
		respondNotFoundOrError(c, err, "Weight entry not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Weight entry deleted successfully"})
}
