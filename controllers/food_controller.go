package controllers

import (
	"net/http"
	"strconv"

	"github.com/Adam-Aviv/calorie-tracker-api/services"
	"github.com/Adam-Aviv/calorie-tracker-api/utils"

	"github.com/gin-gonic/gin"
)

type FoodController struct {
	Svc *services.FoodService
}

func NewFoodController(svc *services.FoodService) *FoodController {
	return &FoodController{Svc: svc}
}

type FoodCreateInput struct {
	Name        string   `json:"name" binding:"required"`
	Calories    *float64 `json:"calories" binding:"required,gte=0"`
	Protein     *float64 `json:"protein" binding:"required,gte=0"`
	Carbs       *float64 `json:"carbs" binding:"required,gte=0"`
	Fats        *float64 `json:"fats" binding:"required,gte=0"`
	ServingSize float64  `json:"servingSize" binding:"omitempty,gte=0"`
	ServingUnit string   `json:"servingUnit"`
	Barcode     string   `json:"barcode"`
	ImageBase64 string   `json:"imageBase64"`
	Category    string   `json:"category" binding:"omitempty,oneof=protein carbs fats vegetables fruits dairy snacks drinks other"`
	IsPublic    bool     `json:"isPublic"`
}

type FoodUpdateBody struct {
	Name        *string  `json:"name"`
	Calories    *float64 `json:"calories" binding:"omitempty,gte=0"`
	Protein     *float64 `json:"protein" binding:"omitempty,gte=0"`
	Carbs       *float64 `json:"carbs" binding:"omitempty,gte=0"`
	Fats        *float64 `json:"fats" binding:"omitempty,gte=0"`
	ServingSize *float64 `json:"servingSize" binding:"omitempty,gte=0"`
	ServingUnit *string  `json:"servingUnit"`
	Barcode     *string  `json:"barcode"`
	ImageBase64 *string  `json:"imageBase64"`
	Category    *string  `json:"category" binding:"omitempty,oneof=protein carbs fats vegetables fruits dairy snacks drinks other"`
	IsPublic    *bool    `json:"isPublic"`
}

// GET /api/foods?search=&category=&page=&limit=
func (h *FoodController) List(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	foods, pagination, err := h.Svc.List(userID, services.FoodListQuery{
		Search:   c.Query("search"),
		Category: c.Query("category"),
		Page:     page,
		Limit:    limit,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       foods,
		"pagination": pagination,
	})
}

func (h *FoodController) Get(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Food not found"})
		return
	}

	food, err := h.Svc.Get(userID, uint(id))
	if err != nil {
		respondNotFoundOrError(c, err, "Food not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": food})
}

func (h *FoodController) Create(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	var input FoodCreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  utils.FormatValidationErrors(err),
		})
		return
	}

	var imageURL string
	if input.ImageBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(input.ImageBase64, "food-images/food")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to upload image"})
			return
		}
		imageURL = url
	}

	food, err := h.Svc.Create(userID, services.FoodInput{
		Name:        input.Name,
		Calories:    *input.Calories,
		Protein:     *input.Protein,
		Carbs:       *input.Carbs,
		Fats:        *input.Fats,
		ServingSize: input.ServingSize,
		ServingUnit: input.ServingUnit,
		Barcode:     input.Barcode,
		ImageURL:    imageURL,
		Category:    input.Category,
		IsPublic:    input.IsPublic,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": food})
}

func (h *FoodController) Update(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Food not found"})
		return
	}

	var body FoodUpdateBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Validation failed",
			"errors":  utils.FormatValidationErrors(err),
		})
		return
	}

	in := services.FoodUpdateInput{
		Name:        body.Name,
		Calories:    body.Calories,
		Protein:     body.Protein,
		Carbs:       body.Carbs,
		Fats:        body.Fats,
		ServingSize: body.ServingSize,
		ServingUnit: body.ServingUnit,
		Barcode:     body.Barcode,
		Category:    body.Category,
		IsPublic:    body.IsPublic,
	}
	if body.ImageBase64 != nil && *body.ImageBase64 != "" {
		url, err := utils.UploadBase64ImageToS3(*body.ImageBase64, "food-images/food")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Failed to upload image"})
			return
		}
		in.ImageURL = &url
	}

	food, err := h.Svc.Update(userID, uint(id), in)
	if err != nil {
		respondNotFoundOrError(c, err, "Food not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": food})
}

func (h *FoodController) Delete(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "unauthorized"})
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Food not found"})
		return
	}

	if err := h.Svc.Delete(userID, uint(id)); err != nil {
		respondNotFoundOrError(c, err, "Food not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Food deleted successfully"})
}
