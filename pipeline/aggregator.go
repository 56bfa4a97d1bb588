package pipeline

import (
	"math"
	"sort"
)

// Aggregate computes the meal-level totals and assembles the final
// MealEstimate. Items are ordered by descending source confidence, ties
// broken by canonical name so repeated runs are byte-identical.
//
// Totals are summed at full precision and rounded to one decimal only for
// display. Per-item confidences pass through unclamped (they are a ranking
// signal, not a probability); only the aggregate overall_confidence is
// clamped to [0,1].
func Aggregate(items []DetectedItem) *MealEstimate {
	sorted := make([]DetectedItem, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].SourceConfidence != sorted[j].SourceConfidence {
			return sorted[i].SourceConfidence > sorted[j].SourceConfidence
		}
		return sorted[i].Food.Name < sorted[j].Food.Name
	})

	est := &MealEstimate{Items: make([]ItemEstimate, 0, len(sorted))}
	var protein, calories, confidence float64
	for _, it := range sorted {
		itemProtein := it.Food.ProteinPer100g * it.PortionG / 100
		itemCalories := it.Food.CaloriesPer100g * it.PortionG / 100
		protein += itemProtein
		calories += itemCalories
		confidence += it.SourceConfidence

		est.Items = append(est.Items, ItemEstimate{
			FoodName:     it.Food.Name,
			PortionG:     round1(it.PortionG),
			ProteinG:     round1(itemProtein),
			CaloriesKcal: round1(itemCalories),
			Confidence:   it.SourceConfidence,
		})
	}

	est.TotalProteinG = round1(protein)
	est.TotalCaloriesKcal = round1(calories)
	if len(sorted) > 0 {
		est.OverallConfidence = clamp01(confidence / float64(len(sorted)))
	}
	return est
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func clamp01(f float64) float64 {
	return math.Min(1, math.Max(0, f))
}
