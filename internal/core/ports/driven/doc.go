// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - Transport: Executes GraphQL documents against GitHub
//   - QueryProvider: Resolves a logical query name to document text
//   - FacetParser: Extracts issue-form fields from an issue body
//   - EventNormaliser: Turns raw issue entries into ordered events
//   - LocationValidator: Partitions an untrusted venue list
//
// # Optional Interfaces
//
//   - TokenProvider: Supplies credentials to the Transport adapter
//   - ConfigStore: Application configuration
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or normaliser package
package driven
