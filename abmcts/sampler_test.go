package abmcts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angrysky56/cognitive-graph-engine/models"
)

func TestSeededSamplerIsReproducible(t *testing.T) {
	a := NewSampler(99)
	b := NewSampler(99)

	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Confidence(), b.Confidence())
	}
}

func TestSamplerConfidenceRange(t *testing.T) {
	s := NewSampler(1)
	for i := 0; i < 100; i++ {
		c := s.Confidence()
		assert.GreaterOrEqual(t, c, 0.0)
		assert.Less(t, c, 1.0)
	}
}

func TestWeightedPickSource(t *testing.T) {
	ensemble := []models.WeightedModel{
		{ID: "heavy", Weight: 9},
		{ID: "light", Weight: 1},
	}

	s := NewSampler(7)
	counts := map[string]int{}
	for i := 0; i < 1000; i++ {
		counts[s.PickSource(ensemble)]++
	}

	require.Equal(t, 1000, counts["heavy"]+counts["light"],
		"every pick lands on a configured member")
	assert.Greater(t, counts["heavy"], counts["light"])
}

func TestPickSourceEdgeCases(t *testing.T) {
	s := NewSampler(0)

	t.Run("empty ensemble", func(t *testing.T) {
		assert.Equal(t, HeuristicSource, s.PickSource(nil))
	})

	t.Run("all weights zero", func(t *testing.T) {
		ensemble := []models.WeightedModel{{ID: "a"}, {ID: "b"}}
		assert.Equal(t, "a", s.PickSource(ensemble))
	})

	t.Run("negative weights are ignored", func(t *testing.T) {
		ensemble := []models.WeightedModel{
			{ID: "bogus", Weight: -5},
			{ID: "real", Weight: 2},
		}
		for i := 0; i < 50; i++ {
			assert.Equal(t, "real", s.PickSource(ensemble))
		}
	})
}

func TestFixedSampler(t *testing.T) {
	s := FixedSampler{Value: 0.42}

	assert.Equal(t, 0.42, s.Confidence())
	assert.Equal(t, HeuristicSource, s.PickSource(nil))
	assert.Equal(t, "first", s.PickSource([]models.WeightedModel{
		{ID: "first", Weight: 1},
		{ID: "second", Weight: 99},
	}))
}
