package abmcts

import "math"

// Per-child priority shaping on top of plain UCB1: a small bonus for
// confident children and a small penalty for wide fan-outs.
const (
	confidenceBonusWeight  = 0.1
	branchingPenaltyWeight = 0.05
)

// selectNode descends from the root to the next node needing work. A
// node with no children needs expansion; a node that is not fully
// expanded is returned immediately so every registered action gets at
// least one child before deep exploitation; otherwise descent follows
// the highest-priority child.
func (e *Engine) selectNode(tree *Tree) *Node {
	node := tree.Root()
	for {
		if len(node.Children) == 0 || !node.FullyExpanded {
			return node
		}
		next := e.bestChild(tree, node)
		if next == nil {
			return node
		}
		node = next
	}
}

// bestChild returns the argmax child by selection priority. An
// unvisited child has infinite priority and short-circuits the scan.
func (e *Engine) bestChild(tree *Tree, parent *Node) *Node {
	var best *Node
	bestPriority := math.Inf(-1)
	for _, childID := range parent.Children {
		child := tree.Node(childID)
		if child == nil {
			continue
		}
		if child.Visits == 0 {
			return child
		}
		if p := e.priority(parent, child); p > bestPriority {
			bestPriority = p
			best = child
		}
	}
	return best
}

// priority computes the enhanced UCB1 score:
//
//	avgReward + C*sqrt(ln(parentVisits)/childVisits)
//	          + confidence*0.1 - ln(branchingFactor)*0.05
func (e *Engine) priority(parent, child *Node) float64 {
	if child.Visits == 0 {
		return math.Inf(1)
	}

	exploration := 0.0
	if parent.Visits > 0 {
		exploration = e.cfg.ExplorationConstant *
			math.Sqrt(math.Log(float64(parent.Visits))/float64(child.Visits))
	}

	branching := child.BranchingFactor
	if branching < 1 {
		branching = 1
	}

	return child.AverageReward +
		exploration +
		child.Confidence*confidenceBonusWeight -
		math.Log(float64(branching))*branchingPenaltyWeight
}
