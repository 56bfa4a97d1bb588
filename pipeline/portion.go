package pipeline

// PortionAssigner turns resolved foods into absolute gram weights. Pure
// arithmetic over already-resolved data.
type PortionAssigner struct {
	tables *Tables
}

func NewPortionAssigner(t *Tables) *PortionAssigner {
	return &PortionAssigner{tables: t}
}

// Assign gives every resolved item its serving weight: the dish share of
// the plate weight when a pattern matched, otherwise the food's default
// portion. Items whose food is missing from the nutrient table are skipped;
// table validation makes that unreachable in a running process.
func (p *PortionAssigner) Assign(items []ResolvedItem) []DetectedItem {
	out := make([]DetectedItem, 0, len(items))
	for _, it := range items {
		food, ok := p.tables.food(it.Name)
		if !ok {
			continue
		}
		portion := food.DefaultPortionG
		if it.Dish != "" {
			portion = it.DishWeightG * it.Share
		}
		out = append(out, DetectedItem{
			Food:             food,
			PortionG:         portion,
			SourceConfidence: it.Confidence,
		})
	}
	return out
}
