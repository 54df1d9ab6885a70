package abmcts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angrysky56/cognitive-graph-engine/models"
)

func replyWith(content string) models.Client {
	return models.ClientFunc(func(ctx context.Context, prompt string) (*models.Response, error) {
		return &models.Response{Content: content}, nil
	})
}

func failWith(err error) models.Client {
	return models.ClientFunc(func(ctx context.Context, prompt string) (*models.Response, error) {
		return nil, err
	})
}

func ensembleConfig(members ...models.WeightedModel) Config {
	return Config{
		Algorithm:      AlgorithmMultiModel,
		MaxTime:        time.Hour,
		MaxSimulations: 10,
		MultiLLM: MultiLLMConfig{
			Enabled:     true,
			Models:      members,
			CallTimeout: time.Second,
		},
	}
}

func TestHeuristicReward(t *testing.T) {
	engine := newTestEngine(Config{MaxTime: time.Hour}, NewRegistry())

	t.Run("unvisited node gets the full novelty term", func(t *testing.T) {
		node := testNode("n", 0, 0, 0.5, 2)
		node.State.Metadata.Score = 0.5
		// (0.5 + 1/(1+0)) * 0.5 = 0.75
		result := engine.simulateHeuristic(node)
		assert.InDelta(t, 0.75, result.Reward, 1e-12)
		assert.InDelta(t, 0.5, result.Confidence, 1e-12)
	})

	t.Run("novelty decays with visits", func(t *testing.T) {
		node := testNode("n", 4, 0.5, 0.5, 2)
		node.State.Metadata.Score = 0.5
		// (0.5 + 1/5) * 0.5 = 0.35
		result := engine.simulateHeuristic(node)
		assert.InDelta(t, 0.35, result.Reward, 1e-12)
	})

	t.Run("reward is clamped to one", func(t *testing.T) {
		node := testNode("n", 0, 0, 1.0, 2)
		node.State.Metadata.Score = 1.0
		result := engine.simulateHeuristic(node)
		assert.Equal(t, 1.0, result.Reward)
	})
}

func TestEnsembleWeightedMerge(t *testing.T) {
	engine := newTestEngine(ensembleConfig(
		models.WeightedModel{ID: "small", Weight: 1, Client: replyWith("0.2")},
		models.WeightedModel{ID: "large", Weight: 3, Client: replyWith("0.8")},
	), NewRegistry())

	node := testNode("n", 0, 0, 0.5, 2)
	result, err := engine.simulateEnsemble(context.Background(), node)
	require.NoError(t, err)

	// (0.2*1 + 0.8*3) / 4
	assert.InDelta(t, 0.65, result.Reward, 1e-12)
	assert.InDelta(t, defaultModelConfidence, result.Confidence, 1e-12,
		"models that report no confidence default")
}

func TestEnsembleExcludesFailingMember(t *testing.T) {
	engine := newTestEngine(ensembleConfig(
		models.WeightedModel{ID: "up", Weight: 2, Client: replyWith("0.6")},
		models.WeightedModel{ID: "down", Weight: 5, Client: failWith(errors.New("timeout"))},
	), NewRegistry())

	node := testNode("n", 0, 0, 0.5, 2)
	result, err := engine.simulateEnsemble(context.Background(), node)
	require.NoError(t, err)

	assert.InDelta(t, 0.6, result.Reward, 1e-12,
		"the failing member's weight must not dilute the merge")
}

func TestEnsembleAllMembersFail(t *testing.T) {
	engine := newTestEngine(ensembleConfig(
		models.WeightedModel{ID: "a", Weight: 1, Client: failWith(errors.New("down"))},
		models.WeightedModel{ID: "b", Weight: 1, Client: failWith(errors.New("down"))},
	), NewRegistry())

	node := testNode("n", 0, 0, 0.5, 2)

	t.Run("simulateEnsemble reports the failure", func(t *testing.T) {
		_, err := engine.simulateEnsemble(context.Background(), node)
		assert.ErrorIs(t, err, ErrModelCallFailed)
	})

	t.Run("simulate degrades to the heuristic", func(t *testing.T) {
		node.State.Metadata.Score = 0.5
		result := engine.simulate(context.Background(), node)
		assert.InDelta(t, 0.75, result.Reward, 1e-12)
	})
}

func TestEnsembleWithoutModels(t *testing.T) {
	engine := newTestEngine(ensembleConfig(), NewRegistry())

	_, err := engine.simulateEnsemble(context.Background(), testNode("n", 0, 0, 0.5, 2))
	assert.ErrorIs(t, err, ErrNoModels)
}

func TestEnsembleReportedConfidenceWins(t *testing.T) {
	confident := models.ClientFunc(func(ctx context.Context, prompt string) (*models.Response, error) {
		return &models.Response{Content: "0.9", Confidence: 0.4}, nil
	})
	engine := newTestEngine(ensembleConfig(
		models.WeightedModel{ID: "m", Weight: 1, Client: confident},
	), NewRegistry())

	result, err := engine.simulateEnsemble(context.Background(), testNode("n", 0, 0, 0.5, 2))
	require.NoError(t, err)
	assert.InDelta(t, 0.4, result.Confidence, 1e-12)
}

func TestScoreFromResponse(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    float64
	}{
		{"bare decimal", "0.85", 0.85},
		{"decimal with prose", "I'd rate this 0.7 because it is sound.", 0.7},
		{"percentage style", "Score: 85 out of 100", 0.85},
		{"small integer clamps to one", "8", 1},
		{"negative clamps to zero", "-3", 0},
		{"leading plus", "+0.25", 0.25},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, scoreFromResponse(tc.content), 1e-12)
		})
	}
}

func TestSentimentFallback(t *testing.T) {
	t.Run("neutral prose is the baseline", func(t *testing.T) {
		assert.InDelta(t, 0.5, scoreFromResponse("hard to say"), 1e-12)
	})

	t.Run("positive keywords raise the score", func(t *testing.T) {
		assert.InDelta(t, 0.7, scoreFromResponse("a clear and coherent step"), 1e-12)
	})

	t.Run("negative keywords lower the score", func(t *testing.T) {
		assert.InDelta(t, 0.3, scoreFromResponse("weak and unclear reasoning"), 1e-12)
	})

	t.Run("floor holds under a pile-on", func(t *testing.T) {
		assert.InDelta(t, 0.1,
			scoreFromResponse("poor, bad, weak, invalid, unclear, wrong"), 1e-12)
	})
}

func TestEvaluationPromptIncludesPath(t *testing.T) {
	node := testNode("n", 0, 0, 0.5, 2)
	node.State.Content = "final answer"
	node.State.Metadata.Path = []string{"decompose", "refine"}

	prompt := evaluationPrompt(node)
	assert.Contains(t, prompt, "decompose -> refine")
	assert.Contains(t, prompt, "final answer")
}
