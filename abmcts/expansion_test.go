package abmcts

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func adaptiveConfig(min, max int, threshold float64) Config {
	return Config{
		MaxTime:        time.Hour,
		MaxSimulations: 100,
		AdaptiveBranching: AdaptiveBranchingConfig{
			Enabled:             true,
			MinBranching:        min,
			MaxBranching:        max,
			ConfidenceThreshold: threshold,
		},
	}
}

func TestBranchingFactorStaysInBounds(t *testing.T) {
	engine := newTestEngine(adaptiveConfig(2, 6, 0.7), NewRegistry())

	for confidence := 0.0; confidence <= 1.0; confidence += 0.1 {
		for depth := 0; depth <= 12; depth++ {
			b := engine.branchingFor(confidence, depth)
			assert.GreaterOrEqual(t, b, 2)
			assert.LessOrEqual(t, b, 6)
		}
	}
}

func TestBranchingFactorValues(t *testing.T) {
	engine := newTestEngine(adaptiveConfig(1, 5, 0.7), NewRegistry())

	t.Run("high confidence at the root widens", func(t *testing.T) {
		// round(1 + 4*1.5*1.0) = 7, clamped to 5.
		assert.Equal(t, 5, engine.branchingFor(0.9, 0))
	})

	t.Run("low confidence deep in the tree narrows", func(t *testing.T) {
		// round(1 + 4*0.8*0.5) = round(2.6) = 3.
		assert.Equal(t, 3, engine.branchingFor(0.3, 5))
	})

	t.Run("depth penalty floors at 0.5", func(t *testing.T) {
		assert.Equal(t, engine.branchingFor(0.3, 5), engine.branchingFor(0.3, 50))
	})
}

func TestBranchingDisabledUsesMax(t *testing.T) {
	cfg := adaptiveConfig(1, 4, 0.7)
	cfg.AdaptiveBranching.Enabled = false
	engine := newTestEngine(cfg, NewRegistry())

	assert.Equal(t, 4, engine.branchingFor(0.1, 20))
}

func TestExpandSkipsFailingAction(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("ok", scoredAction(0.5)))
	require.NoError(t, registry.Register("broken", func(ctx context.Context, parent *State) (*State, float64, error) {
		return nil, 0, errors.New("boom")
	}))

	cfg := adaptiveConfig(2, 2, 0.7)
	engine := newTestEngine(cfg, registry)
	tree := engine.InitTree(NewState("x"))

	created := engine.expand(context.Background(), tree, tree.Root())

	require.Len(t, created, 1)
	assert.Equal(t, "ok", created[0].Action)
	assert.True(t, tree.Root().FullyExpanded,
		"all candidates consumed in this pass")
}

func TestExpandSkipsUnregisteredAction(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("real", scoredAction(0.5)))

	engine := newTestEngine(adaptiveConfig(2, 2, 0.7), registry)
	tree := engine.InitTree(NewState("x"))
	// Simulate an action that was unregistered after node creation.
	tree.Root().AvailableActions = append(tree.Root().AvailableActions, "ghost")

	created := engine.expand(context.Background(), tree, tree.Root())

	require.Len(t, created, 1)
	assert.Equal(t, "real", created[0].Action)
	assert.True(t, tree.Root().FullyExpanded)
}

func TestExpandWithNoCandidatesMarksFullyExpanded(t *testing.T) {
	engine := newTestEngine(adaptiveConfig(1, 3, 0.7), NewRegistry())
	tree := engine.InitTree(NewState("x"))

	created := engine.expand(context.Background(), tree, tree.Root())

	assert.Empty(t, created)
	assert.True(t, tree.Root().FullyExpanded)
	assert.Empty(t, tree.Root().Children)
}

func TestExpandNeverDuplicatesAnAction(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("a", scoredAction(0.5)))
	require.NoError(t, registry.Register("b", scoredAction(0.5)))
	require.NoError(t, registry.Register("c", scoredAction(0.5)))

	// Branching factor 1 forces one child per pass.
	engine := newTestEngine(adaptiveConfig(1, 1, 0.7), registry)
	tree := engine.InitTree(NewState("x"))
	root := tree.Root()

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		engine.expand(ctx, tree, root)
	}

	require.Len(t, root.Children, 3)
	seen := map[string]bool{}
	for _, childID := range root.Children {
		action := tree.Node(childID).Action
		assert.False(t, seen[action], "action %q expanded twice", action)
		seen[action] = true
	}
	assert.True(t, root.FullyExpanded)
}

func TestExpandedChildMetadata(t *testing.T) {
	registry := NewRegistry()
	require.NoError(t, registry.Register("refine", scoredAction(0.42)))

	engine := newTestEngine(adaptiveConfig(1, 3, 0.7), registry)

	parentState := NewState("the question")
	tree := engine.InitTree(parentState)
	created := engine.expand(context.Background(), tree, tree.Root())
	require.Len(t, created, 1)

	child := created[0]
	assert.Equal(t, 1, child.State.Metadata.Depth)
	assert.Equal(t, []string{"refine"}, child.State.Metadata.Path)
	assert.Equal(t, []string{"the question"}, child.State.Context)
	assert.InDelta(t, 0.42, child.State.Metadata.Score, 1e-12)
	assert.InDelta(t, 0.5, child.Confidence, 1e-12, "fixed sampler confidence")
	assert.Equal(t, []string{"refine"}, child.AvailableActions)
	assert.Equal(t, HeuristicSource, child.GeneratedBy)
	assert.Zero(t, child.Visits)
	assert.False(t, child.FullyExpanded)

	assert.Equal(t, 2, tree.Stats.TotalNodes)
	assert.Equal(t, 1, tree.Stats.MaxDepth)
}

func TestActionReceivesClonedParentState(t *testing.T) {
	registry := NewRegistry()
	var received *State
	require.NoError(t, registry.Register("probe", func(ctx context.Context, parent *State) (*State, float64, error) {
		received = parent
		parent.Content = "mutated"
		return NewState("child"), 0.5, nil
	}))

	engine := newTestEngine(adaptiveConfig(1, 1, 0.7), registry)
	tree := engine.InitTree(NewState("pristine"))

	engine.expand(context.Background(), tree, tree.Root())

	require.NotNil(t, received)
	assert.NotSame(t, tree.Root().State, received)
	assert.Equal(t, "pristine", tree.Root().State.Content,
		"mutating the handed-in state must not touch the tree")
}
