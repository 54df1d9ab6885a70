// Package prebuilt provides ready-made action builders for the search
// engine: model-backed state transformations and retrieval-backed
// context enrichment. Applications register these into an
// abmcts.Registry instead of writing action functions from scratch.
package prebuilt
