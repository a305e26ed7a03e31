package credentials

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsValidToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected bool
	}{
		{
			name:     "undashed lowercase uuid",
			token:    "550e8400e29b41d4a716446655440000",
			expected: true,
		},
		{
			name:     "not a token",
			token:    "not-a-token",
			expected: false,
		},
		{
			name:     "uppercase hex rejected",
			token:    "550E8400E29B41D4A716446655440000",
			expected: false,
		},
		{
			name:     "dashed uuid rejected",
			token:    "550e8400-e29b-41d4-a716-446655440000",
			expected: false,
		},
		{
			name:     "too short",
			token:    "550e8400e29b41d4a71644665544000",
			expected: false,
		},
		{
			name:     "too long",
			token:    "550e8400e29b41d4a7164466554400001",
			expected: false,
		},
		{
			name:     "empty",
			token:    "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidToken(tt.token))
		})
	}
}

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{
			name:     "production endpoint",
			url:      "https://api.sbgenomics.com",
			expected: true,
		},
		{
			name:     "scheme mismatch",
			url:      "http://api.sbgenomics.com",
			expected: false,
		},
		{
			// Registered in the platform table but outside the literal
			// sbgenomics.com pattern; callers consult the registry first.
			name:     "vendor domain rejected by pattern",
			url:      "https://api.sevenbridges.cn",
			expected: false,
		},
		{
			name:     "unregistered subdomain accepted",
			url:      "https://foo.sbgenomics.com",
			expected: true,
		},
		{
			name:     "trailing path rejected",
			url:      "https://api.sbgenomics.com/v2",
			expected: false,
		},
		{
			name:     "missing subdomain rejected",
			url:      "https://.sbgenomics.com",
			expected: false,
		},
		{
			name:     "empty",
			url:      "",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidURL(tt.url))
		})
	}
}

func TestEnsureValidToken(t *testing.T) {
	assert.NoError(t, EnsureValidToken("550e8400e29b41d4a716446655440000"))

	err := EnsureValidToken("not-a-token")
	require.Error(t, err)

	var tokenErr *InvalidTokenError
	require.True(t, errors.As(err, &tokenErr))
	assert.Equal(t, "not-a-token", tokenErr.Token)
}

func TestEnsureValidURL(t *testing.T) {
	assert.NoError(t, EnsureValidURL("https://api.sbgenomics.com"))

	err := EnsureValidURL("http://api.sbgenomics.com")
	require.Error(t, err)

	var urlErr *InvalidURLError
	require.True(t, errors.As(err, &urlErr))
	assert.Equal(t, "http://api.sbgenomics.com", urlErr.URL)
}

func TestNormalizeToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{
			name:     "dashed uuid undashed",
			token:    "550e8400-e29b-41d4-a716-446655440000",
			expected: "550e8400e29b41d4a716446655440000",
		},
		{
			name:     "uppercase uuid lowercased",
			token:    "550E8400-E29B-41D4-A716-446655440000",
			expected: "550e8400e29b41d4a716446655440000",
		},
		{
			name:     "already normalized",
			token:    "550e8400e29b41d4a716446655440000",
			expected: "550e8400e29b41d4a716446655440000",
		},
		{
			name:     "surrounding whitespace trimmed",
			token:    "  550e8400-e29b-41d4-a716-446655440000\n",
			expected: "550e8400e29b41d4a716446655440000",
		},
		{
			name:     "unparseable input passed through",
			token:    "not-a-token",
			expected: "not-a-token",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeToken(tt.token))
		})
	}
}
