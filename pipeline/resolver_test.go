package pipeline

import "testing"

func TestResolveDeduplicatesKeepingHighestConfidence(t *testing.T) {
	t.Parallel()

	r := NewResolver(mustValidate(t, newTestTables()))

	items := r.Resolve([]Candidate{
		{Name: "beef", Confidence: 0.70},
		{Name: "beef", Confidence: 0.92},
		{Name: "beef", Confidence: 0.85},
	})
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Confidence != 0.92 {
		t.Errorf("expected confidence 0.92, got %v", items[0].Confidence)
	}
}

func TestResolveDishPatternMatch(t *testing.T) {
	t.Parallel()

	r := NewResolver(mustValidate(t, newTestTables()))

	items := r.Resolve([]Candidate{
		{Name: "spaghetti", Confidence: 0.97},
		{Name: "beef", Confidence: 0.95},
	})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, it := range items {
		if it.Dish != "pasta-with-meat" {
			t.Errorf("%s: expected dish pasta-with-meat, got %q", it.Name, it.Dish)
		}
		if it.DishWeightG != 300 {
			t.Errorf("%s: expected dish weight 300, got %v", it.Name, it.DishWeightG)
		}
	}
}

func TestResolveUnmatchedFoodsPassThrough(t *testing.T) {
	t.Parallel()

	r := NewResolver(mustValidate(t, newTestTables()))

	items := r.Resolve([]Candidate{
		{Name: "chicken breast", Confidence: 0.9},
		{Name: "rice", Confidence: 0.85},
	})
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	for _, it := range items {
		if it.Dish != "" {
			t.Errorf("%s: expected single item, got dish %q", it.Name, it.Dish)
		}
	}
}

func TestResolvePartialDishLeavesExtrasSingle(t *testing.T) {
	t.Parallel()

	r := NewResolver(mustValidate(t, newTestTables()))

	items := r.Resolve([]Candidate{
		{Name: "spaghetti", Confidence: 0.97},
		{Name: "beef", Confidence: 0.95},
		{Name: "salad", Confidence: 0.80},
	})
	byName := map[string]ResolvedItem{}
	for _, it := range items {
		byName[it.Name] = it
	}
	if byName["spaghetti"].Dish != "pasta-with-meat" || byName["beef"].Dish != "pasta-with-meat" {
		t.Errorf("pattern foods should carry the dish, got %+v", byName)
	}
	if byName["salad"].Dish != "" {
		t.Errorf("salad should stay a single item, got dish %q", byName["salad"].Dish)
	}
}

func TestResolveLargestPatternWins(t *testing.T) {
	t.Parallel()

	tables := newTestTables()
	tables.Patterns = append(tables.Patterns, DishPattern{
		Name:         "pasta-meat-salad",
		Priority:     9,
		Foods:        []string{"spaghetti", "beef", "salad"},
		TotalWeightG: 400,
		Shares:       map[string]float64{"spaghetti": 0.5, "beef": 0.25, "salad": 0.25},
	})
	r := NewResolver(mustValidate(t, tables))

	items := r.Resolve([]Candidate{
		{Name: "spaghetti", Confidence: 0.97},
		{Name: "beef", Confidence: 0.95},
		{Name: "salad", Confidence: 0.80},
	})
	for _, it := range items {
		if it.Dish != "pasta-meat-salad" {
			t.Errorf("%s: expected the 3-food pattern, got %q", it.Name, it.Dish)
		}
	}
}

func TestResolvePriorityBreaksTies(t *testing.T) {
	t.Parallel()

	tables := newTestTables()
	tables.Patterns = []DishPattern{
		{
			Name:         "beef-and-rice",
			Priority:     3,
			Foods:        []string{"beef", "rice"},
			TotalWeightG: 350,
			Shares:       map[string]float64{"beef": 0.4, "rice": 0.6},
		},
		{
			Name:         "rice-and-salad",
			Priority:     4,
			Foods:        []string{"rice", "salad"},
			TotalWeightG: 300,
			Shares:       map[string]float64{"rice": 0.6, "salad": 0.4},
		},
	}
	r := NewResolver(mustValidate(t, tables))

	items := r.Resolve([]Candidate{
		{Name: "beef", Confidence: 0.9},
		{Name: "rice", Confidence: 0.9},
		{Name: "salad", Confidence: 0.9},
	})
	byName := map[string]ResolvedItem{}
	for _, it := range items {
		byName[it.Name] = it
	}
	if byName["beef"].Dish != "beef-and-rice" || byName["rice"].Dish != "beef-and-rice" {
		t.Errorf("expected beef-and-rice (lower declared priority) to win, got %+v", byName)
	}
	if byName["salad"].Dish != "" {
		t.Errorf("salad should not join the applied pattern, got %q", byName["salad"].Dish)
	}
}

func TestResolveCapKeepsHighestConfidence(t *testing.T) {
	t.Parallel()

	tables := newTestTables()
	tables.Patterns = nil
	r := NewResolver(mustValidate(t, tables))

	items := r.Resolve([]Candidate{
		{Name: "beef", Confidence: 0.95},
		{Name: "rice", Confidence: 0.90},
		{Name: "egg", Confidence: 0.85},
		{Name: "tuna", Confidence: 0.80},
		{Name: "bread", Confidence: 0.75},
		{Name: "salad", Confidence: 0.70},
	})
	if len(items) != 4 {
		t.Fatalf("expected cap of 4 items, got %d", len(items))
	}
	for _, it := range items {
		if it.Name == "bread" || it.Name == "salad" {
			t.Errorf("low-confidence item %q should have been dropped", it.Name)
		}
	}
}
