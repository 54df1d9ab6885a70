// Package abmcts implements adaptive-branching Monte Carlo tree search
// over a space of reasoning actions.
//
// A search episode owns a single Tree. Each call to Engine.Step runs one
// MCTS iteration: a UCB1-guided descent selects the next node needing
// work, the expansion policy materializes an adaptive number of children
// through registered action functions, the simulation policy scores the
// resulting node (heuristically or through a weighted model ensemble),
// and the reward is backpropagated to the root. The caller loops until
// Engine.ShouldTerminate reports that the time or simulation budget is
// spent, then ranks the visited states with Engine.TopK.
//
// The engine enforces single-writer discipline: one logical stepper per
// Tree. Only the ensemble simulation fans out goroutines, and those are
// read-only with respect to tree state.
package abmcts
