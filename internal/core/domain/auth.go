package domain

import "time"

// AuthMethod is how requests to GitHub are authenticated.
type AuthMethod string

const (
	// AuthMethodPAT uses a personal access token.
	AuthMethodPAT AuthMethod = "pat"
	// AuthMethodApp uses a GitHub App installation token.
	AuthMethodApp AuthMethod = "app"
	// AuthMethodNone sends unauthenticated requests.
	AuthMethodNone AuthMethod = "none"
)

// String returns the string representation.
func (m AuthMethod) String() string {
	return string(m)
}

// InstallationToken is a short-lived GitHub App installation token.
type InstallationToken struct {
	Token     string
	ExpiresAt time.Time
}

// IsExpired reports whether the token expires within buffer.
// A zero expiry never expires.
func (t *InstallationToken) IsExpired(buffer time.Duration) bool {
	if t == nil || t.Token == "" {
		return true
	}
	if t.ExpiresAt.IsZero() {
		return false
	}
	return time.Now().Add(buffer).After(t.ExpiresAt)
}
