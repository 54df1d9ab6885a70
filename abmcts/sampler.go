package abmcts

import (
	"math/rand"

	"github.com/angrysky56/cognitive-graph-engine/models"
)

// HeuristicSource is the provenance tag for nodes produced without a
// model ensemble.
const HeuristicSource = "heuristic"

// Sampler supplies the stochastic inputs of expansion: the confidence
// assigned to a new child and the provenance tag recorded on it. It is
// pluggable so tests and reproducible runs can pin both.
type Sampler interface {
	// Confidence draws a 0..1 confidence for a newly expanded child.
	Confidence() float64

	// PickSource chooses the GeneratedBy tag for a new child from the
	// configured ensemble by weighted random selection. An empty
	// ensemble yields HeuristicSource.
	PickSource(ensemble []models.WeightedModel) string
}

// randSampler is the default Sampler, backed by a seeded math/rand
// source so an episode replays identically under the same seed.
type randSampler struct {
	rng *rand.Rand
}

// NewSampler creates the default seeded sampler.
func NewSampler(seed int64) Sampler {
	return &randSampler{rng: rand.New(rand.NewSource(seed))}
}

func (s *randSampler) Confidence() float64 {
	return s.rng.Float64()
}

func (s *randSampler) PickSource(ensemble []models.WeightedModel) string {
	if len(ensemble) == 0 {
		return HeuristicSource
	}
	var total float64
	for _, m := range ensemble {
		if m.Weight > 0 {
			total += m.Weight
		}
	}
	if total <= 0 {
		return ensemble[0].ID
	}
	target := s.rng.Float64() * total
	for _, m := range ensemble {
		if m.Weight <= 0 {
			continue
		}
		target -= m.Weight
		if target <= 0 {
			return m.ID
		}
	}
	return ensemble[len(ensemble)-1].ID
}

// FixedSampler is a deterministic Sampler that always reports the same
// confidence and always attributes children to the first ensemble
// member. Intended for tests and reproducible demos.
type FixedSampler struct {
	// Value is the confidence returned for every child.
	Value float64
}

// Confidence returns the fixed value.
func (s FixedSampler) Confidence() float64 { return s.Value }

// PickSource returns the first member's id, or HeuristicSource.
func (s FixedSampler) PickSource(ensemble []models.WeightedModel) string {
	if len(ensemble) == 0 {
		return HeuristicSource
	}
	return ensemble[0].ID
}
