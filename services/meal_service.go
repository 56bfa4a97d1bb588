package services

import (
	"time"

	"github.com/kthiza/protein-tracking-app/config"
	"github.com/kthiza/protein-tracking-app/models"
	"github.com/kthiza/protein-tracking-app/pipeline"
)

// MealService persists accepted estimates and serves the dashboard reads.
// The pipeline itself never touches the database; this is the
// meal-persistence collaborator sitting on its output.
type MealService struct{}

func NewMealService() *MealService {
	return &MealService{}
}

// RecordEstimate stores one estimate as a meal row with item snapshots.
func (s *MealService) RecordEstimate(estimateID string, est *pipeline.MealEstimate) (*models.Meal, error) {
	meal := &models.Meal{
		EstimateID:        estimateID,
		TotalProtein:      est.TotalProteinG,
		TotalCalories:     est.TotalCaloriesKcal,
		OverallConfidence: est.OverallConfidence,
	}
	if err := config.DB.Create(meal).Error; err != nil {
		return nil, err
	}

	for _, it := range est.Items {
		mi := &models.MealItem{
			MealID:     meal.ID,
			FoodName:   it.FoodName,
			PortionG:   it.PortionG,
			Protein:    it.ProteinG,
			Calories:   it.CaloriesKcal,
			Confidence: it.Confidence,
		}
		if err := config.DB.Create(mi).Error; err != nil {
			return nil, err
		}
	}

	// reload with items
	var populated models.Meal
	if err := config.DB.Preload("Items").
		First(&populated, meal.ID).Error; err != nil {
		return nil, err
	}
	return &populated, nil
}

func (s *MealService) ListMeals(limit int) ([]models.Meal, error) {
	if limit <= 0 {
		limit = 20
	}
	var meals []models.Meal
	err := config.DB.
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Find(&meals).Error
	return meals, err
}

// DailySummary aggregates today's and the trailing week's recorded meals.
type DailySummary struct {
	TodayProtein  float64 `json:"today_protein_g"`
	TodayCalories float64 `json:"today_calories_kcal"`
	TodayMeals    int64   `json:"today_meals"`
	WeekProtein   float64 `json:"week_protein_g"`
	WeekCalories  float64 `json:"week_calories_kcal"`
	WeekMeals     int64   `json:"week_meals"`
}

func (s *MealService) Summary(now time.Time) (*DailySummary, error) {
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	weekStart := dayStart.AddDate(0, 0, -7)

	var out DailySummary

	type totals struct {
		Protein  float64
		Calories float64
		Count    int64
	}

	var today totals
	err := config.DB.Model(&models.Meal{}).
		Select("COALESCE(SUM(total_protein),0) AS protein, COALESCE(SUM(total_calories),0) AS calories, COUNT(*) AS count").
		Where("created_at >= ?", dayStart).
		Scan(&today).Error
	if err != nil {
		return nil, err
	}

	var week totals
	err = config.DB.Model(&models.Meal{}).
		Select("COALESCE(SUM(total_protein),0) AS protein, COALESCE(SUM(total_calories),0) AS calories, COUNT(*) AS count").
		Where("created_at >= ?", weekStart).
		Scan(&week).Error
	if err != nil {
		return nil, err
	}

	out.TodayProtein = today.Protein
	out.TodayCalories = today.Calories
	out.TodayMeals = today.Count
	out.WeekProtein = week.Protein
	out.WeekCalories = week.Calories
	out.WeekMeals = week.Count
	return &out, nil
}
