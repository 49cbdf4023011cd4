// Package giterror classifies errors reported by the GitHub GraphQL API.
// It centralizes the logic for identifying different kinds of upstream
// failures, both the typed error entries inside a GraphQL response and
// transport-level errors, eliminating string-based error checking throughout
// the codebase.
package giterror
