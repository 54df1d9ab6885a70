package abmcts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/angrysky56/cognitive-graph-engine/log"
)

// Engine drives one search episode at a time. It is configured once and
// can run any number of trees sequentially; a single Tree must only ever
// be stepped by one goroutine.
type Engine struct {
	cfg      Config
	registry *Registry
	sampler  Sampler
	logger   log.Logger
}

// Option customizes an Engine.
type Option func(*Engine)

// WithSampler replaces the default seeded sampler.
func WithSampler(sampler Sampler) Option {
	return func(e *Engine) {
		if sampler != nil {
			e.sampler = sampler
		}
	}
}

// WithLogger replaces the package-default logger.
func WithLogger(logger log.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates an engine over the given action registry. Zero
// config fields are filled with defaults; MaxTime is taken literally,
// so a zero time budget terminates immediately.
func NewEngine(cfg Config, registry *Registry, opts ...Option) *Engine {
	if registry == nil {
		registry = NewRegistry()
	}
	e := &Engine{
		cfg:      cfg.withDefaults(),
		registry: registry,
		sampler:  NewSampler(cfg.Seed),
		logger:   log.GetDefaultLogger(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// InitTree creates a fresh search tree around the given initial state.
// A nil initial state yields an empty root. The previous tree for a
// problem instance is simply discarded; trees are never reused.
func (e *Engine) InitTree(initial *State) *Tree {
	if initial == nil {
		initial = NewState("")
	}
	if initial.ID == "" {
		initial.ID = uuid.New().String()
	}
	confidence := initial.Metadata.Confidence
	if confidence == 0 {
		confidence = e.sampler.Confidence()
		initial.Metadata.Confidence = confidence
	}

	root := &Node{
		ID:               initial.ID,
		Children:         []string{},
		State:            initial,
		AvailableActions: e.registry.Names(),
		GeneratedBy:      HeuristicSource,
		Confidence:       confidence,
		BranchingFactor:  e.branchingFor(confidence, 0),
	}

	tree := &Tree{
		RootID: root.ID,
		Nodes:  map[string]*Node{root.ID: root},
		Stats: TreeStats{
			TotalNodes: 1,
			StartTime:  time.Now(),
		},
	}
	return tree
}

// Step runs one search iteration: select, expand if needed, simulate,
// backpropagate. The tree is mutated in place. Action and model
// failures are recovered locally and never abort the step; the only
// returned error is context cancellation.
func (e *Engine) Step(ctx context.Context, tree *Tree) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	node := e.selectNode(tree)

	if !node.FullyExpanded {
		e.expand(ctx, tree, node)
	}

	result := e.simulate(ctx, node)
	e.backpropagate(tree, node, result.Reward)

	tree.Stats.TotalSimulations++
	if result.Reward > tree.Stats.BestScore {
		tree.Stats.BestScore = result.Reward
	}

	e.logger.Debug("step %d: node=%s action=%q depth=%d reward=%.3f",
		tree.Stats.TotalSimulations, node.ID, node.Action,
		node.State.Metadata.Depth, result.Reward)
	return nil
}

// Run repeats Step until the termination policy signals stop, then
// returns the top-k ranked states. Termination is checked between
// steps only; a step in flight always completes.
func (e *Engine) Run(ctx context.Context, tree *Tree, k int) ([]RankedState, error) {
	for !e.ShouldTerminate(tree) {
		if err := e.Step(ctx, tree); err != nil {
			return e.TopK(tree, k), err
		}
	}
	return e.TopK(tree, k), nil
}

// ShouldTerminate reports whether the episode's time or simulation
// budget is spent.
func (e *Engine) ShouldTerminate(tree *Tree) bool {
	if time.Since(tree.Stats.StartTime) >= e.cfg.MaxTime {
		return true
	}
	return tree.Stats.TotalSimulations >= e.cfg.MaxSimulations
}
