package abmcts

import (
	"context"
	"fmt"
)

// ActionFunc generates a successor state from a parent state and reports
// a raw score for it. The parent is nil when seeding a root state. Action
// functions must treat the parent as immutable input and return a fresh
// State; they receive only the parent, never the tree.
type ActionFunc func(ctx context.Context, parent *State) (*State, float64, error)

// Registry maps action names to their generating functions. New action
// types are added by registering new functions; registration order is
// preserved and drives expansion order.
type Registry struct {
	names   []string
	actions map[string]ActionFunc
}

// NewRegistry creates an empty action registry.
func NewRegistry() *Registry {
	return &Registry{
		actions: make(map[string]ActionFunc),
	}
}

// Register adds an action under a unique name. Registering the same name
// twice is an error; all registration happens before search begins.
func (r *Registry) Register(name string, fn ActionFunc) error {
	if name == "" {
		return fmt.Errorf("action name must not be empty")
	}
	if fn == nil {
		return fmt.Errorf("action %q: function must not be nil", name)
	}
	if _, exists := r.actions[name]; exists {
		return fmt.Errorf("action %q: %w", name, ErrActionRegistered)
	}
	r.names = append(r.names, name)
	r.actions[name] = fn
	return nil
}

// Get returns the function registered under name, or nil.
func (r *Registry) Get(name string) ActionFunc {
	return r.actions[name]
}

// Names returns a snapshot of the registered action names in
// registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of registered actions.
func (r *Registry) Len() int {
	return len(r.names)
}
