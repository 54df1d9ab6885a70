// Package ingest turns raw source material into search-ready states.
//
// Loaders read text, HTML and Markdown sources into Documents, the
// splitter cuts long documents into chunks that fit a reasoning prompt,
// and SeedState converts a chunk into the initial state of a search
// episode.
package ingest
