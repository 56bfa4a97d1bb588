package pipeline

// RawLabel is one label returned by the external image-labeling service.
// Confidence is a ranking signal only; the service does not guarantee it
// stays within [0,1].
type RawLabel struct {
	Text       string  `json:"text"`
	Confidence float64 `json:"confidence"`
}

// CanonicalFood is one entry of the nutrient table.
type CanonicalFood struct {
	Name            string  `yaml:"-" json:"name"`
	ProteinPer100g  float64 `yaml:"protein_per_100g" json:"protein_per_100g"`
	CaloriesPer100g float64 `yaml:"calories_per_100g" json:"calories_per_100g"`
	DefaultPortionG float64 `yaml:"default_portion_g" json:"default_portion_g"`
}

// DetectedItem is a food resolved for one specific meal, with its assigned
// serving weight. SourceConfidence carries the originating label confidence
// through unchanged.
type DetectedItem struct {
	Food             CanonicalFood
	PortionG         float64
	SourceConfidence float64
}

// ItemEstimate is the per-item slice of the final output. ProteinG and
// CaloriesKcal are this item's own contribution at its portion.
type ItemEstimate struct {
	FoodName     string  `json:"food_name"`
	PortionG     float64 `json:"portion_g"`
	ProteinG     float64 `json:"protein_g"`
	CaloriesKcal float64 `json:"calories_kcal"`
	Confidence   float64 `json:"confidence"`
}

// MealEstimate is the pipeline's final output. Items are ordered by
// descending source confidence. Empty Items with zero totals is the valid
// "no food detected" outcome, not an error.
type MealEstimate struct {
	Items             []ItemEstimate `json:"items"`
	TotalProteinG     float64        `json:"total_protein_g"`
	TotalCaloriesKcal float64        `json:"total_calories_kcal"`
	OverallConfidence float64        `json:"overall_confidence"`
}
