package pipeline

import "testing"

func TestAssignDefaultPortion(t *testing.T) {
	t.Parallel()

	p := NewPortionAssigner(mustValidate(t, newTestTables()))

	items := p.Assign([]ResolvedItem{{Name: "chicken breast", Confidence: 0.9}})
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].PortionG != 150 {
		t.Errorf("expected default portion 150g, got %v", items[0].PortionG)
	}
	if items[0].SourceConfidence != 0.9 {
		t.Errorf("confidence not carried through: %v", items[0].SourceConfidence)
	}
}

func TestAssignDishSharePortion(t *testing.T) {
	t.Parallel()

	p := NewPortionAssigner(mustValidate(t, newTestTables()))

	items := p.Assign([]ResolvedItem{
		{Name: "spaghetti", Confidence: 0.97, Dish: "pasta-with-meat", Share: 2.0 / 3.0, DishWeightG: 300},
		{Name: "beef", Confidence: 0.95, Dish: "pasta-with-meat", Share: 1.0 / 3.0, DishWeightG: 300},
	})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	const eps = 1e-9
	if diff := items[0].PortionG - 200; diff > eps || diff < -eps {
		t.Errorf("spaghetti portion = %v, want 200", items[0].PortionG)
	}
	if diff := items[1].PortionG - 100; diff > eps || diff < -eps {
		t.Errorf("beef portion = %v, want 100", items[1].PortionG)
	}
}

func TestAssignAlwaysPositive(t *testing.T) {
	t.Parallel()

	tables := mustValidate(t, newTestTables())
	p := NewPortionAssigner(tables)

	resolved := make([]ResolvedItem, 0, len(tables.Foods))
	for name := range tables.Foods {
		resolved = append(resolved, ResolvedItem{Name: name, Confidence: 0.5})
	}
	for _, it := range p.Assign(resolved) {
		if it.PortionG <= 0 {
			t.Errorf("%s: non-positive portion %v", it.Food.Name, it.PortionG)
		}
	}
}
