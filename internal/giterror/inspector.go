package giterror

import "strings"

// Inspector provides methods for classifying GitHub API errors. GraphQL
// error entries are classified by their machine-readable type field with a
// message fallback for entries that omit it; transport errors can only be
// classified by message.
type Inspector interface {
	// IsNotFound reports whether the entry says a queried entity does not
	// exist or is not visible to the credential.
	IsNotFound(entryType, message string) bool

	// IsRateLimited reports whether the entry is a primary or secondary
	// rate limit rejection.
	IsRateLimited(entryType, message string) bool

	// IsAuthError reports whether the entry represents an authentication
	// or authorization failure.
	IsAuthError(entryType, message string) bool

	// IsNetworkError reports whether err represents a network connectivity
	// failure rather than an upstream-reported one.
	IsNetworkError(err error) bool
}

// GitHubErrorInspector implements the Inspector interface for GitHub API
// errors.
type GitHubErrorInspector struct{}

// NewInspector creates a new GitHubErrorInspector.
func NewInspector() Inspector {
	return &GitHubErrorInspector{}
}

// IsNotFound checks for the NOT_FOUND entry type GitHub attaches when a
// login, repository, or ref cannot be resolved.
func (i *GitHubErrorInspector) IsNotFound(entryType, message string) bool {
	if entryType == "NOT_FOUND" {
		return true
	}
	msg := strings.ToLower(message)
	return strings.Contains(msg, "could not resolve to a") ||
		strings.Contains(msg, "not found")
}

// IsRateLimited checks for primary (RATE_LIMITED) and secondary rate limit
// rejections.
func (i *GitHubErrorInspector) IsRateLimited(entryType, message string) bool {
	if entryType == "RATE_LIMITED" {
		return true
	}
	msg := strings.ToLower(message)
	return strings.Contains(msg, "rate limit") ||
		strings.Contains(msg, "secondary limit")
}

// IsAuthError checks for authentication and authorization failures.
func (i *GitHubErrorInspector) IsAuthError(entryType, message string) bool {
	if entryType == "FORBIDDEN" || entryType == "INSUFFICIENT_SCOPES" {
		return true
	}
	msg := strings.ToLower(message)
	return strings.Contains(msg, "bad credentials") ||
		strings.Contains(msg, "401") ||
		strings.Contains(msg, "unauthorized") ||
		strings.Contains(msg, "forbidden")
}

// IsNetworkError checks if the error is a network connectivity error.
func (i *GitHubErrorInspector) IsNetworkError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "connection refused") ||
		strings.Contains(msg, "no such host") ||
		strings.Contains(msg, "timeout") ||
		strings.Contains(msg, "temporary failure") ||
		strings.Contains(msg, "dial tcp") ||
		strings.Contains(msg, "tls handshake") ||
		strings.Contains(msg, "network is unreachable")
}
