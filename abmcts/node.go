package abmcts

// Node is a single entry in the flat node table of a Tree.
//
// Parent and children are id references rather than pointers, which
// removes cycle risk and keeps the whole tree trivially inspectable.
type Node struct {
	// ID uniquely identifies the node within its tree.
	ID string `json:"id"`

	// ParentID is empty for the root node.
	ParentID string `json:"parent_id,omitempty"`

	// Children holds child node ids in creation order.
	Children []string `json:"children"`

	// State is the reasoning artifact this node wraps.
	State *State `json:"state"`

	// Visits counts how many backpropagation walks touched this node.
	Visits int `json:"visits"`

	// TotalReward is the cumulative reward accumulated by backpropagation.
	TotalReward float64 `json:"total_reward"`

	// AverageReward is TotalReward/Visits, recomputed on every update.
	// Undefined (zero) while Visits == 0.
	AverageReward float64 `json:"average_reward"`

	// Action is the label that produced this node, empty for the root.
	Action string `json:"action,omitempty"`

	// FullyExpanded is set once every name in AvailableActions is
	// represented by some child's action label.
	FullyExpanded bool `json:"fully_expanded"`

	// AvailableActions is the snapshot of registered action names taken
	// when the node was created.
	AvailableActions []string `json:"available_actions"`

	// GeneratedBy identifies the model or source that produced the node.
	GeneratedBy string `json:"generated_by"`

	// Confidence is a 0..1 estimate assigned at creation time.
	Confidence float64 `json:"confidence"`

	// BranchingFactor is the adaptive fan-out assigned to this node for
	// its own future expansion.
	BranchingFactor int `json:"branching_factor"`
}

// addReward folds a simulation reward into the node's running statistics.
// Visits only ever increases within an episode.
func (n *Node) addReward(reward float64) {
	n.Visits++
	n.TotalReward += reward
	n.AverageReward = n.TotalReward / float64(n.Visits)
}

// expandedActions reports the action labels already represented among
// the node's children, resolved against the given tree.
func (n *Node) expandedActions(t *Tree) map[string]bool {
	expanded := make(map[string]bool, len(n.Children))
	for _, childID := range n.Children {
		if child := t.Node(childID); child != nil && child.Action != "" {
			expanded[child.Action] = true
		}
	}
	return expanded
}
