// Package domain defines the core entities served by gitevents.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Event: An approved event issue with its talks and reactions
//   - Talk: A sub-issue of an event, with its author
//   - Location: A validated venue from the organisation's locations file
//   - Discussion, Team, User, Organization: normalised GitHub entities
//
// All entities are value objects. They are built fresh for each call,
// never mutated afterwards and never persisted.
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
