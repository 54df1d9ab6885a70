package models

import "context"

// Response is the result of a single model evaluation call.
type Response struct {
	// Content is the raw text the model produced.
	Content string

	// Confidence is the model's self-reported confidence in 0..1.
	// Zero means the model reported none; consumers apply their own
	// default in that case.
	Confidence float64
}

// Client is the single-method capability consumed by the search engine:
// send a prompt, get text back. Implementations must be safe for
// concurrent use, as ensemble simulation fans calls out in parallel.
type Client interface {
	Generate(ctx context.Context, prompt string) (*Response, error)
}

// ClientFunc adapts a plain function to the Client interface.
type ClientFunc func(ctx context.Context, prompt string) (*Response, error)

// Generate calls f.
func (f ClientFunc) Generate(ctx context.Context, prompt string) (*Response, error) {
	return f(ctx, prompt)
}

// WeightedModel is one member of an evaluation ensemble.
type WeightedModel struct {
	// ID identifies the model in node provenance and logs.
	ID string

	// Weight scales this model's score in the ensemble average.
	Weight float64

	// Client performs the actual evaluation calls.
	Client Client
}
