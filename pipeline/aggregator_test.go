package pipeline

import (
	"math"
	"testing"
)

func TestAggregateTotalsAndPerItemContributions(t *testing.T) {
	t.Parallel()

	beef := CanonicalFood{Name: "beef", ProteinPer100g: 26.0, CaloriesPer100g: 250}
	spaghetti := CanonicalFood{Name: "spaghetti", ProteinPer100g: 5.0, CaloriesPer100g: 158}

	est := Aggregate([]DetectedItem{
		{Food: beef, PortionG: 100, SourceConfidence: 0.95},
		{Food: spaghetti, PortionG: 200, SourceConfidence: 0.97},
	})

	if est.TotalProteinG != 36.0 {
		t.Errorf("total protein = %v, want 36.0", est.TotalProteinG)
	}
	wantCal := round1(250.0 + 316.0)
	if est.TotalCaloriesKcal != wantCal {
		t.Errorf("total calories = %v, want %v", est.TotalCaloriesKcal, wantCal)
	}

	// Per-item contributions sum to the total (conservation).
	var sum float64
	for _, it := range est.Items {
		sum += it.ProteinG
	}
	if math.Abs(sum-est.TotalProteinG) > 0.05 {
		t.Errorf("per-item protein sums to %v, total is %v", sum, est.TotalProteinG)
	}
}

func TestAggregateOrdersByConfidenceThenName(t *testing.T) {
	t.Parallel()

	a := CanonicalFood{Name: "apple", ProteinPer100g: 0.3, CaloriesPer100g: 52}
	b := CanonicalFood{Name: "banana", ProteinPer100g: 1.1, CaloriesPer100g: 89}
	c := CanonicalFood{Name: "cheese", ProteinPer100g: 25, CaloriesPer100g: 402}

	est := Aggregate([]DetectedItem{
		{Food: b, PortionG: 100, SourceConfidence: 0.8},
		{Food: c, PortionG: 50, SourceConfidence: 0.9},
		{Food: a, PortionG: 100, SourceConfidence: 0.8},
	})

	want := []string{"cheese", "apple", "banana"}
	for i, name := range want {
		if est.Items[i].FoodName != name {
			t.Fatalf("item %d = %q, want %q (items %+v)", i, est.Items[i].FoodName, name, est.Items)
		}
	}
}

func TestAggregateClampsOverallConfidenceOnly(t *testing.T) {
	t.Parallel()

	beef := CanonicalFood{Name: "beef", ProteinPer100g: 26, CaloriesPer100g: 250}

	est := Aggregate([]DetectedItem{
		{Food: beef, PortionG: 150, SourceConfidence: 1.4},
	})
	if est.OverallConfidence != 1.0 {
		t.Errorf("overall confidence = %v, want clamp to 1.0", est.OverallConfidence)
	}
	if est.Items[0].Confidence != 1.4 {
		t.Errorf("item confidence = %v, want unclamped 1.4", est.Items[0].Confidence)
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	t.Parallel()

	est := Aggregate(nil)
	if len(est.Items) != 0 {
		t.Fatalf("expected no items, got %d", len(est.Items))
	}
	if est.TotalProteinG != 0 || est.TotalCaloriesKcal != 0 || est.OverallConfidence != 0 {
		t.Errorf("expected zero totals, got %+v", est)
	}
}

func TestAggregateNonNegative(t *testing.T) {
	t.Parallel()

	lettuce := CanonicalFood{Name: "lettuce", ProteinPer100g: 0, CaloriesPer100g: 0}
	est := Aggregate([]DetectedItem{
		{Food: lettuce, PortionG: 80, SourceConfidence: 0.3},
	})
	if est.TotalProteinG < 0 || est.TotalCaloriesKcal < 0 {
		t.Errorf("negative totals: %+v", est)
	}
	for _, it := range est.Items {
		if it.PortionG <= 0 {
			t.Errorf("%s: portion %v not positive", it.FoodName, it.PortionG)
		}
	}
}
