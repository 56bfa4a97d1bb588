// Package pipeline turns the noisy label set returned by an image-labeling
// service into a deduplicated list of food items with portion sizes and
// aggregate protein/calorie totals.
//
// The whole pipeline is pure: per-request data in, MealEstimate out, with
// the only shared state being the read-only lookup tables loaded at
// startup. Concurrent estimates need no locking.
package pipeline

import (
	"fmt"
	"math"
	"strings"
)

// Estimator is the pipeline orchestrator and the only type external
// callers invoke. Construct once at startup with validated tables.
type Estimator struct {
	tables     *Tables
	normalizer *Normalizer
	resolver   *Resolver
	portions   *PortionAssigner
}

// NewEstimator validates the tables and wires the pipeline stages. A table
// integrity error here must abort startup; serving requests against a
// partially populated table is never acceptable.
func NewEstimator(t *Tables) (*Estimator, error) {
	if t == nil {
		t = DefaultTables()
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &Estimator{
		tables:     t,
		normalizer: NewNormalizer(t),
		resolver:   NewResolver(t),
		portions:   NewPortionAssigner(t),
	}, nil
}

// Estimate runs the full pipeline for one meal. An empty result with zero
// totals means no food was detected; the caller decides how to surface
// that (typically a manual-entry prompt). The only error condition is
// malformed input.
func (e *Estimator) Estimate(labels []RawLabel) (*MealEstimate, error) {
	candidates := make([]Candidate, 0, len(labels))
	for i, l := range labels {
		if strings.TrimSpace(l.Text) == "" {
			return nil, fmt.Errorf("pipeline: label %d has empty text", i)
		}
		if math.IsNaN(l.Confidence) || math.IsInf(l.Confidence, 0) {
			return nil, fmt.Errorf("pipeline: label %q has invalid confidence", l.Text)
		}
		name, ok := e.normalizer.Normalize(l.Text)
		if !ok {
			continue
		}
		candidates = append(candidates, Candidate{Name: name, Confidence: l.Confidence})
	}

	resolved := e.resolver.Resolve(candidates)
	detected := e.portions.Assign(resolved)
	return Aggregate(detected), nil
}

// Tables exposes the read-only lookup tables, mainly for callers that want
// to report which foods the service knows about.
func (e *Estimator) Tables() *Tables {
	return e.tables
}
