// Package errors provides the classified error primitives used across docnav.
//
// A ClassifiedError carries a category (config, navigation, docs, ...), a
// severity and a retry hint next to the message and cause, so the CLI can pick
// an exit code and log level without string matching.
//
// Example usage:
//
//	err := errors.NavigationError("navigation rule does not match any page").
//		WithContext("path", rulePath).
//		WithCause(unmatched).
//		Build()
package errors
