// Package vecstore provides the vector-similarity lookup used to pull
// supporting context into a search episode. It deliberately stays at
// the boundary: an Embedder capability, an in-memory cosine store, and
// nothing resembling a full retrieval subsystem.
package vecstore
