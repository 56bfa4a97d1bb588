package models

import (
	"gorm.io/gorm"
)

// One analyzed meal photo, snapshotting the pipeline's estimate
type Meal struct {
	gorm.Model
	EstimateID        string `gorm:"type:varchar(36);uniqueIndex;not null"`
	TotalProtein      float64
	TotalCalories     float64
	OverallConfidence float64
	Items             []MealItem
}

// Each MealItem stores one detected food at its assigned portion
type MealItem struct {
	gorm.Model
	MealID uint
	Meal   Meal

	FoodName   string `gorm:"not null"`
	PortionG   float64
	Protein    float64
	Calories   float64
	Confidence float64
}
