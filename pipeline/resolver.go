package pipeline

import "sort"

// Candidate is a canonical food surviving normalization, paired with the
// confidence of the label it came from.
type Candidate struct {
	Name       string
	Confidence float64
}

// ResolvedItem is one food after dish-pattern resolution. Dish is empty for
// independent single items; otherwise Share and DishWeightG carry the
// matched pattern's portion split.
type ResolvedItem struct {
	Name        string
	Confidence  float64
	Dish        string
	Share       float64
	DishWeightG float64
}

// Resolver decides whether the detected foods form a recognized composite
// dish and bounds the number of principal items per meal.
type Resolver struct {
	tables *Tables
}

func NewResolver(t *Tables) *Resolver {
	return &Resolver{tables: t}
}

// Resolve collapses duplicate foods (keeping the highest confidence), trims
// the candidate set to the configured item cap, and applies the best
// matching dish pattern.
//
// Pattern selection: required food set must be a subset of the detected
// set; the largest set wins, with the pattern's declared priority breaking
// ties. At most one pattern is applied per meal; remaining foods pass
// through as single items at their default portions.
func (r *Resolver) Resolve(candidates []Candidate) []ResolvedItem {
	merged := make(map[string]float64, len(candidates))
	for _, c := range candidates {
		if conf, seen := merged[c.Name]; !seen || c.Confidence > conf {
			merged[c.Name] = c.Confidence
		}
	}

	deduped := make([]Candidate, 0, len(merged))
	for name, conf := range merged {
		deduped = append(deduped, Candidate{Name: name, Confidence: conf})
	}
	// Highest confidence first; protein density then name keep the trim
	// deterministic when confidences tie.
	sort.Slice(deduped, func(i, j int) bool {
		a, b := deduped[i], deduped[j]
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		ap := r.tables.Foods[a.Name].ProteinPer100g
		bp := r.tables.Foods[b.Name].ProteinPer100g
		if ap != bp {
			return ap > bp
		}
		return a.Name < b.Name
	})

	// Over-detection guard: drop everything past the cap silently.
	if len(deduped) > r.tables.MaxItems {
		deduped = deduped[:r.tables.MaxItems]
	}

	present := make(map[string]struct{}, len(deduped))
	for _, c := range deduped {
		present[c.Name] = struct{}{}
	}

	// Patterns are sorted by (set size desc, priority asc) at validation
	// time, so the first subset match is the winner.
	var matched *DishPattern
	for i := range r.tables.Patterns {
		p := &r.tables.Patterns[i]
		if subset(p.Foods, present) {
			matched = p
			break
		}
	}

	items := make([]ResolvedItem, 0, len(deduped))
	for _, c := range deduped {
		item := ResolvedItem{Name: c.Name, Confidence: c.Confidence}
		if matched != nil {
			if share, ok := matched.Shares[c.Name]; ok {
				item.Dish = matched.Name
				item.Share = share
				item.DishWeightG = matched.TotalWeightG
			}
		}
		items = append(items, item)
	}
	return items
}

func subset(required []string, present map[string]struct{}) bool {
	for _, name := range required {
		if _, ok := present[name]; !ok {
			return false
		}
	}
	return true
}
