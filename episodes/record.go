package episodes

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/angrysky56/cognitive-graph-engine/abmcts"
)

// ErrNotFound is returned when no record exists under the given id.
var ErrNotFound = errors.New("episodes: record not found")

// Result is one ranked outcome of an episode, flattened for storage.
type Result struct {
	NodeID        string  `json:"node_id"`
	Content       string  `json:"content"`
	AverageReward float64 `json:"average_reward"`
	Visits        int     `json:"visits"`
}

// Record is the archived outcome of one search episode.
type Record struct {
	ID        string             `json:"id"`
	Problem   string             `json:"problem"`
	Results   []Result           `json:"results"`
	Stats     abmcts.SearchStats `json:"stats"`
	CreatedAt time.Time          `json:"created_at"`
}

// NewRecord flattens a finished episode's ranking into a Record.
func NewRecord(problem string, ranked []abmcts.RankedState, stats abmcts.SearchStats) *Record {
	results := make([]Result, len(ranked))
	for i, r := range ranked {
		results[i] = Result{
			NodeID:        r.NodeID,
			Content:       r.State.Content,
			AverageReward: r.AverageReward,
			Visits:        r.Visits,
		}
	}
	return &Record{
		ID:        uuid.New().String(),
		Problem:   problem,
		Results:   results,
		Stats:     stats,
		CreatedAt: time.Now().UTC(),
	}
}

// Store archives episode records.
type Store interface {
	// Save inserts or replaces a record.
	Save(ctx context.Context, record *Record) error

	// Load returns the record with the given id, or ErrNotFound.
	Load(ctx context.Context, id string) (*Record, error)

	// List returns all records, oldest first.
	List(ctx context.Context) ([]*Record, error)

	// Delete removes a record. Deleting a missing id is not an error.
	Delete(ctx context.Context, id string) error
}
