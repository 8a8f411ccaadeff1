// Package auth provides driven.TokenProvider implementations for the
// GitHub API: a static personal access token, a GitHub App installation
// and unauthenticated access.
package auth
