package abmcts

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/angrysky56/cognitive-graph-engine/models"
)

// defaultModelConfidence is assumed when a model reports none.
const defaultModelConfidence = 0.8

// SimulationResult is the outcome of scoring one node.
type SimulationResult struct {
	// Reward is the node's estimated value in 0..1.
	Reward float64

	// Confidence is the evaluator's confidence in the reward, 0..1.
	Confidence float64
}

// simulate scores a node with the configured algorithm. Ensemble
// failures degrade to the single-model heuristic rather than aborting
// the step.
func (e *Engine) simulate(ctx context.Context, node *Node) SimulationResult {
	if e.cfg.Algorithm == AlgorithmMultiModel && e.cfg.MultiLLM.Enabled {
		result, err := e.simulateEnsemble(ctx, node)
		if err == nil {
			return result
		}
		e.logger.Warn("simulate: ensemble unavailable (%v), falling back to heuristic", err)
	}
	return e.simulateHeuristic(node)
}

// simulateHeuristic is the closed-form single-model estimate: the raw
// action score plus a novelty term that decays with visits, scaled by
// the node's confidence.
func (e *Engine) simulateHeuristic(node *Node) SimulationResult {
	novelty := 1 / (1 + float64(node.Visits))
	reward := clamp01((node.State.Metadata.Score + novelty) * node.Confidence)
	return SimulationResult{Reward: reward, Confidence: node.Confidence}
}

// simulateEnsemble fans one evaluation call out per configured model,
// joins the results and merges them deterministically: scores averaged
// by weight, confidences averaged unweighted across responders. A
// failing member is excluded; if every member fails an error is
// returned so the caller can degrade.
func (e *Engine) simulateEnsemble(ctx context.Context, node *Node) (SimulationResult, error) {
	ensemble := e.cfg.MultiLLM.Models
	if len(ensemble) == 0 {
		return SimulationResult{}, ErrNoModels
	}

	prompt := evaluationPrompt(node)

	type memberResult struct {
		index      int
		score      float64
		confidence float64
		err        error
	}

	results := make(chan memberResult, len(ensemble))
	var wg sync.WaitGroup
	for i, member := range ensemble {
		wg.Add(1)
		go func(idx int, m models.WeightedModel) {
			defer wg.Done()
			callCtx, cancel := context.WithTimeout(ctx, e.cfg.MultiLLM.CallTimeout)
			defer cancel()

			resp, err := m.Client.Generate(callCtx, prompt)
			if err != nil {
				results <- memberResult{index: idx, err: err}
				return
			}

			confidence := resp.Confidence
			if confidence == 0 {
				confidence = defaultModelConfidence
			}
			results <- memberResult{
				index:      idx,
				score:      scoreFromResponse(resp.Content),
				confidence: confidence,
			}
		}(i, member)
	}
	wg.Wait()
	close(results)

	// Merge in member order so the outcome is independent of goroutine
	// scheduling.
	merged := make([]*memberResult, len(ensemble))
	for r := range results {
		r := r
		merged[r.index] = &r
	}

	var weightedSum, weightTotal, confidenceSum float64
	responders := 0
	for i, r := range merged {
		if r == nil {
			continue
		}
		if r.err != nil {
			e.logger.Warn("simulate: model %q failed: %v", ensemble[i].ID, r.err)
			continue
		}
		weightedSum += r.score * ensemble[i].Weight
		weightTotal += ensemble[i].Weight
		confidenceSum += r.confidence
		responders++
	}

	if responders == 0 || weightTotal == 0 {
		return SimulationResult{}, fmt.Errorf("all %d members failed: %w", len(ensemble), ErrModelCallFailed)
	}

	return SimulationResult{
		Reward:     clamp01(weightedSum / weightTotal),
		Confidence: clamp01(confidenceSum / float64(responders)),
	}, nil
}

// evaluationPrompt is the fixed quality-judgment prompt sent to every
// ensemble member.
func evaluationPrompt(node *Node) string {
	var b strings.Builder
	b.WriteString("Rate the quality of the following reasoning step on a scale from 0.0 to 1.0.\n")
	b.WriteString("Reply with a single number first, then any justification.\n\n")
	if len(node.State.Metadata.Path) > 0 {
		fmt.Fprintf(&b, "Action path: %s\n", strings.Join(node.State.Metadata.Path, " -> "))
	}
	fmt.Fprintf(&b, "Content:\n%s\n", node.State.Content)
	return b.String()
}

var numberPattern = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)

// scoreFromResponse extracts a numeric score from a model reply: the
// first decimal token, with values above 10 treated as percentages.
// Replies without a numeric token fall back to the sentiment heuristic.
func scoreFromResponse(content string) float64 {
	if match := numberPattern.FindString(content); match != "" {
		if value, err := strconv.ParseFloat(match, 64); err == nil {
			if value > 10 {
				value /= 100
			}
			return clamp01(value)
		}
	}
	return sentimentScore(content)
}

var (
	positiveKeywords = []string{
		"excellent", "good", "strong", "valid", "promising",
		"clear", "coherent", "insightful", "relevant", "sound",
	}
	negativeKeywords = []string{
		"poor", "bad", "weak", "invalid", "unclear",
		"wrong", "flawed", "incoherent", "irrelevant", "vague",
	}
)

// sentimentScore is the parse-failure fallback: start from a 0.5
// baseline and nudge by 0.1 per matched keyword, floored at 0.1.
func sentimentScore(content string) float64 {
	lowered := strings.ToLower(content)
	score := 0.5
	for _, kw := range positiveKeywords {
		if strings.Contains(lowered, kw) {
			score += 0.1
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(lowered, kw) {
			score -= 0.1
		}
	}
	if score < 0.1 {
		score = 0.1
	}
	return clamp01(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
