package prebuilt

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/angrysky56/cognitive-graph-engine/abmcts"
	"github.com/angrysky56/cognitive-graph-engine/models"
)

// fallbackScore is assumed when a model reply carries no score line.
const fallbackScore = 0.5

// ModelActionConfig shapes a model-backed action.
type ModelActionConfig struct {
	// Instruction tells the model how to transform the reasoning,
	// e.g. "Decompose the problem into smaller sub-problems".
	Instruction string

	// MaxContext limits how many trailing context entries are included
	// in the prompt. Zero means all of them.
	MaxContext int
}

// NewModelAction builds an action that asks the model to transform the
// parent state per the instruction. The model is asked to end its reply
// with a "Score:" line; a reply without one gets a neutral score.
func NewModelAction(client models.Client, cfg ModelActionConfig) abmcts.ActionFunc {
	return func(ctx context.Context, parent *abmcts.State) (*abmcts.State, float64, error) {
		resp, err := client.Generate(ctx, buildPrompt(cfg, parent))
		if err != nil {
			return nil, 0, fmt.Errorf("%w: %v", abmcts.ErrModelCallFailed, err)
		}

		content, score := splitScoredReply(resp.Content)
		if content == "" {
			return nil, 0, fmt.Errorf("%w: model returned empty content", abmcts.ErrActionFailed)
		}
		return abmcts.NewState(content), score, nil
	}
}

func buildPrompt(cfg ModelActionConfig, parent *abmcts.State) string {
	var b strings.Builder
	b.WriteString(cfg.Instruction)
	b.WriteString("\n\n")

	history := parent.Context
	if cfg.MaxContext > 0 && len(history) > cfg.MaxContext {
		history = history[len(history)-cfg.MaxContext:]
	}
	if len(history) > 0 {
		b.WriteString("Previous steps:\n")
		for _, entry := range history {
			fmt.Fprintf(&b, "- %s\n", entry)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Current reasoning:\n%s\n\n", parent.Content)
	b.WriteString("Reply with the transformed reasoning, then a final line of the form\n")
	b.WriteString("Score: <number between 0.0 and 1.0>\n")
	return b.String()
}

var scoreLinePattern = regexp.MustCompile(`(?im)^\s*score:\s*([-+]?\d+(?:\.\d+)?)\s*$`)

// splitScoredReply strips the trailing score line from a reply and
// returns the remaining content with the parsed score.
func splitScoredReply(reply string) (string, float64) {
	score := fallbackScore
	matches := scoreLinePattern.FindAllStringSubmatchIndex(reply, -1)
	if len(matches) > 0 {
		last := matches[len(matches)-1]
		if value, err := strconv.ParseFloat(reply[last[2]:last[3]], 64); err == nil {
			if value > 1 {
				value /= 100
			}
			if value < 0 {
				value = 0
			}
			if value > 1 {
				value = 1
			}
			score = value
		}
		reply = reply[:last[0]] + reply[last[1]:]
	}
	return strings.TrimSpace(reply), score
}
