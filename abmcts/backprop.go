package abmcts

// backpropagate walks from the simulated node to the root inclusive,
// incrementing visits, accumulating the reward and recomputing the
// running average at every node on the path.
func (e *Engine) backpropagate(tree *Tree, node *Node, reward float64) {
	for n := node; n != nil; n = tree.Node(n.ParentID) {
		n.addReward(reward)
	}
}
