// Package credentials models a user's authentication against one of the
// Seven Bridges API platforms. A credential's identity is the pair of
// platform subdomain and username; tokens are interchangeable secrets
// that never participate in identity.
package credentials

import (
	"github.com/rabix/sb-credentials/internal/platform"
)

// User is the external user record a credential refers to. The credential
// layer holds a shared reference and only ever consumes Username.
type User struct {
	Username string `yaml:"username" json:"username"`
	Email    string `yaml:"email,omitempty" json:"email,omitempty"`
}

// Identifier carries the raw fields needed to build a Credential. Any
// value shaped like this can be adapted via From.
type Identifier struct {
	URL   string
	Token string
	User  *User
}

// Credential binds a user to a platform endpoint through an auth token.
type Credential struct {
	URL   string `yaml:"url" json:"url"`
	Token string `yaml:"token,omitempty" json:"token,omitempty"`
	User  *User  `yaml:"user" json:"user"`

	// ID is the identity hash cached at construction time. UpdateToMatch
	// deliberately leaves it untouched, so it can lag behind Hash();
	// consumers that need current identity must use Hash().
	ID string `yaml:"id" json:"id"`
}

// New builds a credential and caches its identity hash. Construction
// never fails; use EnsureValidURL and EnsureValidToken for opt-in
// format checks.
func New(url, token string, user *User) *Credential {
	c := &Credential{
		URL:   url,
		Token: token,
		User:  user,
	}
	c.ID = c.Hash()
	return c
}

// From adapts an identifier into a credential. Returns nil for a nil
// identifier; performs no validation.
func From(id *Identifier) *Credential {
	if id == nil {
		return nil
	}
	return New(id.URL, id.Token, id.User)
}

// Hash returns the identity hash "<subdomain>_<username>", recomputed
// from the current field values.
func (c *Credential) Hash() string {
	username := ""
	if c.User != nil {
		username = c.User.Username
	}
	return platform.Subdomain(c.URL) + "_" + username
}

// Equals reports whether two credentials refer to the same user on the
// same platform. Differing tokens do not affect the result.
func (c *Credential) Equals(other *Credential) bool {
	if other == nil {
		return false
	}
	return c.Hash() == other.Hash()
}

// IsSimilar compares two possibly-absent credentials: true when both are
// nil, false when exactly one is, identity comparison otherwise.
func IsSimilar(a, b *Credential) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Equals(b)
}

// UpdateToMatch copies URL, Token and User from other in place, so a
// stored credential can be refreshed while callers keep their reference.
// The cached ID is intentionally not recomputed.
func (c *Credential) UpdateToMatch(other *Credential) {
	c.URL = other.URL
	c.Token = other.Token
	c.User = other.User
}
