package abmcts

import (
	"math"
	"sort"
	"time"
)

// RankedState is one entry of the anytime result ranking.
type RankedState struct {
	// State is the ranked reasoning artifact.
	State *State

	// AverageReward is the node's running average at ranking time.
	AverageReward float64

	// Visits is how often the node was touched by backpropagation.
	Visits int

	// NodeID refers back into the tree for inspection.
	NodeID string
}

// TopK ranks all visited nodes by average reward, descending, and
// returns the first k. An empty result means the search was
// inconclusive, not that it failed. Calling TopK twice without an
// intervening Step yields identical ordering and values.
func (e *Engine) TopK(tree *Tree, k int) []RankedState {
	ranked := make([]RankedState, 0, len(tree.Nodes))
	for _, node := range tree.Nodes {
		if node.Visits == 0 {
			continue
		}
		ranked = append(ranked, RankedState{
			State:         node.State,
			AverageReward: node.AverageReward,
			Visits:        node.Visits,
			NodeID:        node.ID,
		})
	}

	// Node ids break ties so the ordering is stable across calls
	// despite map iteration order.
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].AverageReward != ranked[j].AverageReward {
			return ranked[i].AverageReward > ranked[j].AverageReward
		}
		return ranked[i].NodeID < ranked[j].NodeID
	})

	if k >= 0 && k < len(ranked) {
		ranked = ranked[:k]
	}
	return ranked
}

// SearchStats is the episode report produced by Engine.SearchStats.
type SearchStats struct {
	TreeStats

	// Elapsed is the wall-clock time since tree initialization.
	Elapsed time.Duration

	// AverageDepth is the mean depth across all nodes.
	AverageDepth float64

	// ConvergenceRate estimates how stable the top-level decision is:
	// max(0, 1 - sqrt(variance of the root children's average
	// rewards)), 1.0 when fewer than two root children have been
	// visited.
	ConvergenceRate float64
}

// SearchStats reports aggregate statistics for the episode so far.
func (e *Engine) SearchStats(tree *Tree) SearchStats {
	stats := SearchStats{
		TreeStats: tree.Stats,
		Elapsed:   time.Since(tree.Stats.StartTime),
	}

	var depthSum int
	for _, node := range tree.Nodes {
		depthSum += node.State.Metadata.Depth
	}
	if len(tree.Nodes) > 0 {
		stats.AverageDepth = float64(depthSum) / float64(len(tree.Nodes))
	}

	stats.ConvergenceRate = e.convergenceRate(tree)
	return stats
}

// convergenceRate is computed only from the root's direct children, as
// a proxy for whether the top-level decision has stabilized.
func (e *Engine) convergenceRate(tree *Tree) float64 {
	root := tree.Root()
	if root == nil {
		return 1.0
	}

	rewards := make([]float64, 0, len(root.Children))
	for _, childID := range root.Children {
		if child := tree.Node(childID); child != nil && child.Visits > 0 {
			rewards = append(rewards, child.AverageReward)
		}
	}
	if len(rewards) < 2 {
		return 1.0
	}

	var mean float64
	for _, r := range rewards {
		mean += r
	}
	mean /= float64(len(rewards))

	var variance float64
	for _, r := range rewards {
		variance += (r - mean) * (r - mean)
	}
	variance /= float64(len(rewards))

	rate := 1 - math.Sqrt(variance)
	if rate < 0 {
		rate = 0
	}
	return rate
}
