// Package models defines the narrow model-evaluation capability the
// search engine consumes — "evaluate content, return text" — together
// with adapters for langchaingo models and the OpenAI API.
//
// The engine never manages model lifecycle, authentication or retries
// beyond a single call; that belongs to the client implementations here
// or to whatever the caller plugs in.
package models
