package abmcts

import "github.com/google/uuid"

// StateMetadata carries the search-time bookkeeping attached to a state.
type StateMetadata struct {
	// Depth is the distance from the root state (root is 0).
	Depth int `json:"depth"`

	// Path is the ordered list of action labels taken from the root.
	Path []string `json:"path"`

	// Score is the raw value returned by the action that produced this state.
	Score float64 `json:"score"`

	// Confidence is a 0..1 estimate of how trustworthy the state is.
	Confidence float64 `json:"confidence"`
}

// State is a single reasoning artifact produced by an action function.
type State struct {
	// ID uniquely identifies the state.
	ID string `json:"id"`

	// Content is the opaque text payload of the state.
	Content string `json:"content"`

	// Context is the ordered list of prior contents leading to this state.
	Context []string `json:"context"`

	// Metadata holds depth, path, score and confidence.
	Metadata StateMetadata `json:"metadata"`
}

// NewState creates a root-level state around the given content.
func NewState(content string) *State {
	return &State{
		ID:      uuid.New().String(),
		Content: content,
		Context: []string{},
		Metadata: StateMetadata{
			Path: []string{},
		},
	}
}

// Clone returns a deep copy of the state. Action functions receive the
// parent state as immutable input; the engine hands them a clone so a
// misbehaving action cannot alias tree-owned data across branches.
func (s *State) Clone() *State {
	if s == nil {
		return nil
	}
	clone := *s
	clone.Context = append([]string(nil), s.Context...)
	clone.Metadata.Path = append([]string(nil), s.Metadata.Path...)
	return &clone
}
