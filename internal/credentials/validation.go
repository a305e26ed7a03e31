package credentials

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

var (
	// Auth tokens are 32 lowercase hex characters: a UUID in its
	// undashed form. The grouping mirrors the 8-4-4-4-12 layout even
	// though no separators are accepted.
	tokenPattern = regexp.MustCompile(`^[0-9a-f]{8}[0-9a-f]{4}[0-9a-f]{4}[0-9a-f]{4}[0-9a-f]{12}$`)

	// Platform URLs must be HTTPS endpoints under sbgenomics.com. Vendor
	// domains registered in the platform table (e.g. api.sevenbridges.cn)
	// do not match this pattern; callers that accept them must consult
	// the registry first.
	urlPattern = regexp.MustCompile(`^(https://)(.+)(\.sbgenomics\.com)$`)
)

// InvalidTokenError reports a token that fails the hex-UUID format check.
type InvalidTokenError struct {
	Token string
}

func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token format: %q is not a 32-character lowercase hex token", e.Token)
}

// InvalidURLError reports a URL that fails the platform endpoint check.
type InvalidURLError struct {
	URL string
}

func (e *InvalidURLError) Error() string {
	return fmt.Sprintf("invalid platform URL: %q must match https://<subdomain>.sbgenomics.com", e.URL)
}

// IsValidToken reports whether token is a 32-character lowercase hex
// string.
func IsValidToken(token string) bool {
	return tokenPattern.MatchString(token)
}

// IsValidURL reports whether url is an HTTPS sbgenomics.com endpoint.
func IsValidURL(url string) bool {
	return urlPattern.MatchString(url)
}

// EnsureValidToken returns an InvalidTokenError when the token fails the
// format check. Construction does not call this; validation is opt-in.
func EnsureValidToken(token string) error {
	if !IsValidToken(token) {
		return &InvalidTokenError{Token: token}
	}
	return nil
}

// EnsureValidURL returns an InvalidURLError when the URL fails the
// endpoint check. Construction does not call this; validation is opt-in.
func EnsureValidURL(url string) error {
	if !IsValidURL(url) {
		return &InvalidURLError{URL: url}
	}
	return nil
}

// NormalizeToken converts a canonically dashed UUID into the undashed
// lowercase form the platforms issue. Anything that does not parse as a
// UUID is returned unchanged, trimmed of surrounding whitespace.
func NormalizeToken(token string) string {
	trimmed := strings.TrimSpace(token)
	parsed, err := uuid.Parse(trimmed)
	if err != nil {
		return trimmed
	}
	return strings.ReplaceAll(parsed.String(), "-", "")
}
