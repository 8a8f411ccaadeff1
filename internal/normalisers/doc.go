// Package normalisers holds the transforms that turn raw GitHub payloads
// into domain values.
//
//   - events: issue entries (edge-wrapped or bare) into sorted events
//   - locations: an untrusted venue array into valid venues plus diagnostics
//
// Both are pure apart from the injected facet parser and hold no state
// between calls.
package normalisers
