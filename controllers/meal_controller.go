package controllers

import (
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kthiza/protein-tracking-app/pipeline"
	"github.com/kthiza/protein-tracking-app/services"
)

// Estimates with overall confidence below this (or with no items at all)
// are flagged so the client can prompt the user to confirm or enter the
// meal manually.
const confirmThreshold = 0.5

var timeNow = time.Now

var (
	estimator *pipeline.Estimator
	vision    *services.VisionService
	mealSvc   *services.MealService
)

// Init wires the startup-loaded collaborators. The estimator is built once
// against validated tables; handlers never construct it per request.
func Init(est *pipeline.Estimator, vis *services.VisionService, meals *services.MealService) {
	estimator = est
	vision = vis
	mealSvc = meals
}

type estimateResponse struct {
	EstimateID        string `json:"estimate_id"`
	*pipeline.MealEstimate
	NeedsConfirmation bool `json:"needs_confirmation"`
}

func buildResponse(est *pipeline.MealEstimate) estimateResponse {
	return estimateResponse{
		EstimateID:        uuid.NewString(),
		MealEstimate:      est,
		NeedsConfirmation: len(est.Items) == 0 || est.OverallConfidence < confirmThreshold,
	}
}

// EstimateMeal runs the pipeline for callers that already hold labels.
// Nothing is persisted.
func EstimateMeal(c *gin.Context) {
	var body struct {
		Labels []pipeline.RawLabel `json:"labels"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "detail": err.Error()})
		return
	}
	// An empty list is a valid "nothing detected" request; an absent field
	// is not.
	if body.Labels == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "labels is required"})
		return
	}

	est, err := estimator.Estimate(body.Labels)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, buildResponse(est))
}

// UploadMeal sends a photo to the labeling service, runs the pipeline over
// the returned labels (merged with any manually entered food names) and
// persists the estimate.
func UploadMeal(c *gin.Context) {
	var body struct {
		ImageBase64 string   `json:"image_base64" binding:"required"`
		FoodItems   []string `json:"food_items"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input", "detail": err.Error()})
		return
	}

	labels, err := vision.DetectLabels(c.Request.Context(), body.ImageBase64)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Label detection failed", "detail": err.Error()})
		return
	}

	// Manual entries count as certain; they rank above anything detected.
	for _, name := range body.FoodItems {
		labels = append(labels, pipeline.RawLabel{Text: name, Confidence: 1.0})
	}

	est, err := estimator.Estimate(labels)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp := buildResponse(est)
	meal, err := mealSvc.RecordEstimate(resp.EstimateID, est)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"meal_id":  meal.ID,
		"estimate": resp,
	})
}

func ListMeals(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	meals, err := mealSvc.ListMeals(limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meals)
}

func Dashboard(c *gin.Context) {
	summary, err := mealSvc.Summary(timeNow())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// FoodSuggestions lists the canonical foods the nutrient table knows, for
// the manual-entry picker.
func FoodSuggestions(c *gin.Context) {
	foods := estimator.Tables().Foods
	names := make([]string, 0, len(foods))
	for name := range foods {
		names = append(names, name)
	}
	sort.Strings(names)
	c.JSON(http.StatusOK, gin.H{
		"foods":       names,
		"total_foods": len(names),
	})
}
