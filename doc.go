// Cognitive Graph Engine - Adaptive-Branching Tree Search for Reasoning in Go
//
// This module implements an adaptive-branching Monte Carlo tree search
// over reasoning states: candidate actions expand a tree of reasoning
// steps, a confidence-scaled UCB policy decides where to look next, and
// either a closed-form heuristic or a weighted model ensemble scores
// what it finds.
//
// # Packages
//
//   - abmcts: the search engine (tree, policies, engine surface)
//   - models: the model evaluation capability and provider adapters
//   - ingest: loaders and chunking that turn source material into seed states
//   - vecstore: embedding-backed similarity lookup for context enrichment
//   - prebuilt: ready-made action builders (model-backed, retrieval-backed)
//   - episodes: archival of finished episodes' ranked results
//   - log: leveled logging shared by all packages
//
// # Quick start
//
//	registry := abmcts.NewRegistry()
//	registry.Register("decompose", myDecomposeAction)
//
//	engine := abmcts.NewEngine(abmcts.DefaultConfig(), registry)
//	tree := engine.InitTree(abmcts.NewState("the problem"))
//
//	results, err := engine.Run(ctx, tree, 3)
//
// See examples/reasoning_search for a complete episode including
// archival.
package cge
