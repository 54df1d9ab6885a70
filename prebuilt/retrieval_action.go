package prebuilt

import (
	"context"
	"fmt"
	"strings"

	"github.com/angrysky56/cognitive-graph-engine/abmcts"
	"github.com/angrysky56/cognitive-graph-engine/vecstore"
)

// NewRetrievalAction builds an action that enriches the parent state
// with the k most similar chunks from the store. The enriched content
// keeps the parent reasoning and appends the retrieved passages; the
// action's score is the best hit's similarity, so stronger matches make
// more promising branches.
func NewRetrievalAction(store vecstore.Store, k int) abmcts.ActionFunc {
	return func(ctx context.Context, parent *abmcts.State) (*abmcts.State, float64, error) {
		results, err := store.Search(ctx, parent.Content, k)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", abmcts.ErrActionFailed, err)
		}
		if len(results) == 0 {
			return nil, 0, fmt.Errorf("%w: no similar passages found", abmcts.ErrActionFailed)
		}

		var b strings.Builder
		b.WriteString(parent.Content)
		b.WriteString("\n\nRelevant passages:\n")
		for _, r := range results {
			fmt.Fprintf(&b, "- %s\n", r.Document.Content)
		}

		score := results[0].Score
		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}
		return abmcts.NewState(b.String()), score, nil
	}
}
