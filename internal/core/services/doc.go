// Package services implements the driving port interfaces.
//
// Every read follows the same steps: check required arguments before any
// I/O, fetch the named GraphQL document, execute it through the transport,
// decode the payload and normalise it into domain values. Failures are
// wrapped with the operation that failed; missing arguments and file
// errors are returned as they are.
package services
