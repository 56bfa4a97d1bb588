package pipeline

import (
	"fmt"
	"math"
	"sort"
)

const shareSumTolerance = 1e-6

// DishPattern maps a co-occurring set of canonical foods to a composite
// plate with a fixed total weight split between its components.
//
// Priority is an explicit, declared ordering: when two patterns with the
// same number of required foods both match, the lower priority value wins.
type DishPattern struct {
	Name         string             `yaml:"name"`
	Priority     int                `yaml:"priority"`
	Foods        []string           `yaml:"foods"`
	TotalWeightG float64            `yaml:"total_weight_g"`
	Shares       map[string]float64 `yaml:"shares"`
}

// Tables bundles the static lookup data the pipeline runs against: the
// nutrient table, the synonym table, the non-food denylist and the dish
// patterns. Loaded once at startup and read-only afterwards, so concurrent
// estimates need no locking.
type Tables struct {
	Foods    map[string]CanonicalFood `yaml:"foods"`
	Synonyms map[string]string        `yaml:"synonyms"`
	Denylist []string                 `yaml:"denylist"`
	Patterns []DishPattern            `yaml:"patterns"`
	MaxItems int                      `yaml:"max_items"`

	denySet map[string]struct{}
}

// Validate checks configuration integrity so that a table error surfaces at
// startup, never at request time. It also fills in derived state (food
// names, denylist set) and must be called before the tables are used.
func (t *Tables) Validate() error {
	if len(t.Foods) == 0 {
		return fmt.Errorf("tables: nutrient table is empty")
	}
	if t.MaxItems <= 0 {
		return fmt.Errorf("tables: max_items must be positive, got %d", t.MaxItems)
	}

	for name, f := range t.Foods {
		f.Name = name
		if f.ProteinPer100g < 0 || f.CaloriesPer100g < 0 {
			return fmt.Errorf("tables: food %q has negative nutrient values", name)
		}
		if f.DefaultPortionG <= 0 {
			return fmt.Errorf("tables: food %q has non-positive default portion", name)
		}
		t.Foods[name] = f
	}

	for alias, target := range t.Synonyms {
		if _, ok := t.Foods[target]; !ok {
			return fmt.Errorf("tables: synonym %q points at unknown food %q", alias, target)
		}
	}

	t.denySet = make(map[string]struct{}, len(t.Denylist))
	for _, d := range t.Denylist {
		if _, ok := t.Foods[d]; ok {
			return fmt.Errorf("tables: %q is both a food and a denylist entry", d)
		}
		t.denySet[d] = struct{}{}
	}

	seenPriority := make(map[int]string, len(t.Patterns))
	for _, p := range t.Patterns {
		if len(p.Foods) < 2 {
			return fmt.Errorf("tables: pattern %q needs at least 2 foods", p.Name)
		}
		if p.TotalWeightG <= 0 {
			return fmt.Errorf("tables: pattern %q has non-positive total weight", p.Name)
		}
		if prev, dup := seenPriority[p.Priority]; dup {
			return fmt.Errorf("tables: patterns %q and %q share priority %d", prev, p.Name, p.Priority)
		}
		seenPriority[p.Priority] = p.Name

		sum := 0.0
		for _, name := range p.Foods {
			if _, ok := t.Foods[name]; !ok {
				return fmt.Errorf("tables: pattern %q references unknown food %q", p.Name, name)
			}
			share, ok := p.Shares[name]
			if !ok {
				return fmt.Errorf("tables: pattern %q has no share for %q", p.Name, name)
			}
			if share <= 0 {
				return fmt.Errorf("tables: pattern %q has non-positive share for %q", p.Name, name)
			}
			sum += share
		}
		if len(p.Shares) != len(p.Foods) {
			return fmt.Errorf("tables: pattern %q has shares for foods outside its set", p.Name)
		}
		if math.Abs(sum-1.0) > shareSumTolerance {
			return fmt.Errorf("tables: pattern %q shares sum to %.6f, want 1", p.Name, sum)
		}
	}

	// Largest required set first, declared priority breaking ties, so the
	// resolver can take the first match.
	sort.SliceStable(t.Patterns, func(i, j int) bool {
		if len(t.Patterns[i].Foods) != len(t.Patterns[j].Foods) {
			return len(t.Patterns[i].Foods) > len(t.Patterns[j].Foods)
		}
		return t.Patterns[i].Priority < t.Patterns[j].Priority
	})

	return nil
}

func (t *Tables) food(name string) (CanonicalFood, bool) {
	f, ok := t.Foods[name]
	return f, ok
}

func (t *Tables) denied(text string) bool {
	_, ok := t.denySet[text]
	return ok
}
