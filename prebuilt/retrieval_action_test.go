package prebuilt

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/angrysky56/cognitive-graph-engine/abmcts"
	"github.com/angrysky56/cognitive-graph-engine/ingest"
	"github.com/angrysky56/cognitive-graph-engine/vecstore"
)

type stubStore struct {
	results []vecstore.Result
	err     error
	query   string
	k       int
}

func (s *stubStore) Add(ctx context.Context, docs []ingest.Document) error { return nil }

func (s *stubStore) Search(ctx context.Context, query string, k int) ([]vecstore.Result, error) {
	s.query = query
	s.k = k
	return s.results, s.err
}

func TestRetrievalActionEnrichesContent(t *testing.T) {
	store := &stubStore{results: []vecstore.Result{
		{Document: ingest.Document{ID: "a", Content: "fact one"}, Score: 0.92},
		{Document: ingest.Document{ID: "b", Content: "fact two"}, Score: 0.40},
	}}

	action := NewRetrievalAction(store, 2)
	parent := abmcts.NewState("what causes tides?")

	state, score, err := action(context.Background(), parent)
	require.NoError(t, err)

	assert.Equal(t, "what causes tides?", store.query)
	assert.Equal(t, 2, store.k)

	assert.Contains(t, state.Content, "what causes tides?")
	assert.Contains(t, state.Content, "fact one")
	assert.Contains(t, state.Content, "fact two")
	assert.InDelta(t, 0.92, score, 1e-12, "best hit similarity becomes the score")
}

func TestRetrievalActionFailures(t *testing.T) {
	parent := abmcts.NewState("q")

	t.Run("store error", func(t *testing.T) {
		store := &stubStore{err: errors.New("index offline")}
		_, _, err := NewRetrievalAction(store, 3)(context.Background(), parent)
		assert.ErrorIs(t, err, abmcts.ErrActionFailed)
	})

	t.Run("no hits", func(t *testing.T) {
		store := &stubStore{}
		_, _, err := NewRetrievalAction(store, 3)(context.Background(), parent)
		assert.ErrorIs(t, err, abmcts.ErrActionFailed)
	})
}

func TestRetrievalActionClampsScore(t *testing.T) {
	store := &stubStore{results: []vecstore.Result{
		{Document: ingest.Document{ID: "a", Content: "x"}, Score: 1.7},
	}}

	_, score, err := NewRetrievalAction(store, 1)(context.Background(), abmcts.NewState("q"))
	require.NoError(t, err)
	assert.Equal(t, 1.0, score)
}
