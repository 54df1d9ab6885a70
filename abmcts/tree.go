package abmcts

import "time"

// TreeStats aggregates episode-level statistics for one search tree.
type TreeStats struct {
	// TotalNodes is the number of nodes in the table, root included.
	TotalNodes int `json:"total_nodes"`

	// MaxDepth is the depth of the deepest node ever created.
	MaxDepth int `json:"max_depth"`

	// TotalSimulations counts completed simulation/backpropagation passes.
	TotalSimulations int `json:"total_simulations"`

	// StartTime is when the tree was initialized.
	StartTime time.Time `json:"start_time"`

	// BestScore is the highest simulation reward observed so far.
	BestScore float64 `json:"best_score"`
}

// Tree owns every node of one search episode in a flat table keyed by id.
// Trees are never shared between episodes: a fresh problem instance gets
// a fresh tree and the old one is discarded.
type Tree struct {
	// RootID is the id of the root node.
	RootID string `json:"root_id"`

	// Nodes is the id-keyed node table. The tree exclusively owns every
	// node; callers must not retain node pointers across steps.
	Nodes map[string]*Node `json:"nodes"`

	// Stats holds aggregate episode statistics.
	Stats TreeStats `json:"stats"`
}

// Node returns the node with the given id, or nil if it does not exist.
func (t *Tree) Node(id string) *Node {
	return t.Nodes[id]
}

// Root returns the root node.
func (t *Tree) Root() *Node {
	return t.Nodes[t.RootID]
}

// attach inserts a new node into the table, links it to its parent and
// updates the node-count and depth statistics.
func (t *Tree) attach(node *Node) {
	t.Nodes[node.ID] = node
	if parent := t.Nodes[node.ParentID]; parent != nil {
		parent.Children = append(parent.Children, node.ID)
	}
	t.Stats.TotalNodes = len(t.Nodes)
	if depth := node.State.Metadata.Depth; depth > t.Stats.MaxDepth {
		t.Stats.MaxDepth = depth
	}
}

// SubtreeVisits returns the cumulative visit count of the subtree rooted
// at the given node id, the node itself included.
func (t *Tree) SubtreeVisits(id string) int {
	node := t.Node(id)
	if node == nil {
		return 0
	}
	total := node.Visits
	for _, childID := range node.Children {
		total += t.SubtreeVisits(childID)
	}
	return total
}

// Depth returns the recorded depth of the node with the given id.
func (t *Tree) Depth(id string) int {
	if node := t.Node(id); node != nil {
		return node.State.Metadata.Depth
	}
	return 0
}
