package abmcts

import (
	"context"
	"math"

	"github.com/google/uuid"
)

// Confidence and depth shaping of the adaptive branching factor.
const (
	highConfidenceFactor = 1.5
	lowConfidenceFactor  = 0.8
	depthPenaltyStep     = 0.1
	depthPenaltyFloor    = 0.5
)

// expand materializes up to branchingFactor new children for a node.
// Candidate actions are the node's available actions minus those already
// represented among its children, in registration order. Unregistered
// and failing actions are skipped without aborting the pass; when the
// pass consumes every remaining candidate the node is marked fully
// expanded.
func (e *Engine) expand(ctx context.Context, tree *Tree, node *Node) []*Node {
	expanded := node.expandedActions(tree)
	candidates := make([]string, 0, len(node.AvailableActions))
	for _, name := range node.AvailableActions {
		if !expanded[name] {
			candidates = append(candidates, name)
		}
	}

	if len(candidates) == 0 {
		node.FullyExpanded = true
		return nil
	}

	take := e.branchingFor(node.Confidence, node.State.Metadata.Depth)
	if take > len(candidates) {
		take = len(candidates)
	}

	var created []*Node
	for _, name := range candidates[:take] {
		fn := e.registry.Get(name)
		if fn == nil {
			e.logger.Warn("expand: action %q listed but not registered, skipping", name)
			continue
		}

		childState, score, err := fn(ctx, node.State.Clone())
		if err != nil {
			e.logger.Warn("expand: action %q failed: %v", name, err)
			continue
		}
		if childState == nil {
			e.logger.Warn("expand: action %q returned no state, skipping", name)
			continue
		}

		created = append(created, e.attachChild(tree, node, name, childState, score))
	}

	if take == len(candidates) {
		node.FullyExpanded = true
	}
	return created
}

// attachChild normalizes a freshly generated state into a child node and
// inserts it into the tree.
func (e *Engine) attachChild(tree *Tree, parent *Node, action string, state *State, score float64) *Node {
	if state.ID == "" || tree.Node(state.ID) != nil {
		state.ID = uuid.New().String()
	}
	state.Context = append(append([]string(nil), parent.State.Context...), parent.State.Content)
	state.Metadata.Depth = parent.State.Metadata.Depth + 1
	state.Metadata.Path = append(append([]string(nil), parent.State.Metadata.Path...), action)
	state.Metadata.Score = score

	confidence := e.sampler.Confidence()
	state.Metadata.Confidence = confidence

	child := &Node{
		ID:               state.ID,
		ParentID:         parent.ID,
		Children:         []string{},
		State:            state,
		Action:           action,
		AvailableActions: e.registry.Names(),
		GeneratedBy:      e.sampler.PickSource(e.cfg.MultiLLM.Models),
		Confidence:       confidence,
		BranchingFactor:  e.branchingFor(confidence, state.Metadata.Depth),
	}
	tree.attach(child)
	return child
}

// branchingFor computes the adaptive branching factor for a node with
// the given confidence and depth, clamped to the configured window.
func (e *Engine) branchingFor(confidence float64, depth int) int {
	ab := e.cfg.AdaptiveBranching
	if !ab.Enabled {
		return ab.MaxBranching
	}

	confidenceFactor := lowConfidenceFactor
	if confidence >= ab.ConfidenceThreshold {
		confidenceFactor = highConfidenceFactor
	}

	depthPenalty := 1 - depthPenaltyStep*float64(depth)
	if depthPenalty < depthPenaltyFloor {
		depthPenalty = depthPenaltyFloor
	}

	span := float64(ab.MaxBranching - ab.MinBranching)
	b := int(math.Round(float64(ab.MinBranching) + span*confidenceFactor*depthPenalty))

	if b < ab.MinBranching {
		b = ab.MinBranching
	}
	if b > ab.MaxBranching {
		b = ab.MaxBranching
	}
	return b
}
