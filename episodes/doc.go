// Package episodes archives the extracted results of finished search
// episodes. Only the ranked outcomes and aggregate statistics are
// stored; search trees themselves are discarded with the episode.
//
// Four backends share one Store interface: an in-memory map for tests
// and demos, SQLite for single-process deployments, Redis for shared
// caches with expiry, and Postgres for durable multi-writer archives.
package episodes
