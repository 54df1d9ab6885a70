package abmcts

import "errors"

var (
	// ErrActionRegistered is returned when registering a duplicate action name.
	ErrActionRegistered = errors.New("action already registered")

	// ErrActionNotRegistered is reported when a name listed in a node's
	// available actions has no registered function at expansion time.
	// The expansion policy skips the name and continues.
	ErrActionNotRegistered = errors.New("action not registered")

	// ErrActionFailed is reported when an action function returns an
	// error; the failing candidate is skipped, the step continues.
	ErrActionFailed = errors.New("action execution failed")

	// ErrModelCallFailed is reported when an ensemble member fails. The
	// member is excluded from the weighted average; if every member
	// fails the simulation degrades to single-model mode for that step.
	ErrModelCallFailed = errors.New("model call failed")

	// ErrNoModels is returned when multi-model simulation is enabled
	// but no models are configured.
	ErrNoModels = errors.New("no models configured")
)
