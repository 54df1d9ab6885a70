package abmcts

import (
	"math"
	"time"

	"github.com/angrysky56/cognitive-graph-engine/models"
)

// Algorithm selects how nodes are scored during simulation.
type Algorithm string

const (
	// AlgorithmSingleModel scores nodes with the closed-form heuristic.
	AlgorithmSingleModel Algorithm = "single-model"

	// AlgorithmMultiModel scores nodes with a weighted model ensemble,
	// degrading to the heuristic when every model call fails.
	AlgorithmMultiModel Algorithm = "multi-model"
)

// AdaptiveBranchingConfig controls the confidence/depth-adaptive fan-out
// assigned to nodes at expansion time.
type AdaptiveBranchingConfig struct {
	// Enabled turns adaptive branching on. When off, every node gets
	// MaxBranching children.
	Enabled bool

	// MinBranching is the lower clamp for the branching factor.
	MinBranching int

	// MaxBranching is the upper clamp for the branching factor.
	MaxBranching int

	// ConfidenceThreshold separates the widening (1.5) from the
	// narrowing (0.8) confidence factor.
	ConfidenceThreshold float64
}

// MultiLLMConfig configures the evaluation ensemble.
type MultiLLMConfig struct {
	// Enabled turns ensemble simulation on.
	Enabled bool

	// Models are the ensemble members with their averaging weights.
	Models []models.WeightedModel

	// CallTimeout bounds each individual model call. Default 30s.
	CallTimeout time.Duration
}

// Config holds all recognized engine options.
type Config struct {
	// Algorithm picks the simulation mode. Default single-model.
	Algorithm Algorithm

	// ExplorationConstant is the UCB1 C. Default sqrt(2).
	ExplorationConstant float64

	// MaxTime is the wall-clock budget for one episode. A zero budget
	// terminates immediately after tree initialization.
	MaxTime time.Duration

	// MaxSimulations is the simulation budget for one episode.
	// Default 100.
	MaxSimulations int

	// AdaptiveBranching controls per-node fan-out.
	AdaptiveBranching AdaptiveBranchingConfig

	// MultiLLM configures ensemble simulation.
	MultiLLM MultiLLMConfig

	// Seed drives the default sampler for child confidence draws and
	// provenance picks, making episodes reproducible.
	Seed int64
}

// DefaultConfig returns a config with the standard budgets and
// branching window.
func DefaultConfig() Config {
	return Config{
		Algorithm:           AlgorithmSingleModel,
		ExplorationConstant: math.Sqrt2,
		MaxTime:             30 * time.Second,
		MaxSimulations:      100,
		AdaptiveBranching: AdaptiveBranchingConfig{
			Enabled:             true,
			MinBranching:        1,
			MaxBranching:        5,
			ConfidenceThreshold: 0.7,
		},
		MultiLLM: MultiLLMConfig{
			CallTimeout: 30 * time.Second,
		},
	}
}

// withDefaults fills unset fields, leaving the explicit time budget
// alone: MaxTime == 0 is a meaningful "terminate immediately" value.
func (c Config) withDefaults() Config {
	if c.Algorithm == "" {
		c.Algorithm = AlgorithmSingleModel
	}
	if c.ExplorationConstant == 0 {
		c.ExplorationConstant = math.Sqrt2
	}
	if c.MaxSimulations == 0 {
		c.MaxSimulations = 100
	}
	if c.AdaptiveBranching.MinBranching == 0 {
		c.AdaptiveBranching.MinBranching = 1
	}
	if c.AdaptiveBranching.MaxBranching == 0 {
		c.AdaptiveBranching.MaxBranching = 5
	}
	if c.AdaptiveBranching.ConfidenceThreshold == 0 {
		c.AdaptiveBranching.ConfidenceThreshold = 0.7
	}
	if c.MultiLLM.CallTimeout == 0 {
		c.MultiLLM.CallTimeout = 30 * time.Second
	}
	return c
}
