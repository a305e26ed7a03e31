package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_CachesIdentityHash(t *testing.T) {
	cred := New("https://api.sbgenomics.com", "550e8400e29b41d4a716446655440000", &User{Username: "ivan"})

	assert.Equal(t, "api_ivan", cred.ID)
	assert.Equal(t, "api_ivan", cred.Hash())
}

func TestNew_NeverFails(t *testing.T) {
	// Construction performs no validation; garbage in, credential out.
	cred := New("not-a-url", "not-a-token", nil)
	require.NotNil(t, cred)
	assert.Equal(t, "_", cred.Hash())
}

func TestFrom(t *testing.T) {
	t.Run("nil identifier", func(t *testing.T) {
		assert.Nil(t, From(nil))
	})

	t.Run("identifier fields carried over", func(t *testing.T) {
		user := &User{Username: "ivan"}
		cred := From(&Identifier{
			URL:   "https://cgc-api.sbgenomics.com",
			Token: "550e8400e29b41d4a716446655440000",
			User:  user,
		})
		require.NotNil(t, cred)
		assert.Equal(t, "https://cgc-api.sbgenomics.com", cred.URL)
		assert.Equal(t, "550e8400e29b41d4a716446655440000", cred.Token)
		assert.Same(t, user, cred.User)
		assert.Equal(t, "cgc-api_ivan", cred.ID)
	})
}

func TestEquals(t *testing.T) {
	base := New("https://api.sbgenomics.com", "550e8400e29b41d4a716446655440000", &User{Username: "ivan"})

	tests := []struct {
		name     string
		other    *Credential
		expected bool
	}{
		{
			name:     "nil other",
			other:    nil,
			expected: false,
		},
		{
			name:     "same platform and user, different token",
			other:    New("https://api.sbgenomics.com", "ffffffffffffffffffffffffffffffff", &User{Username: "ivan"}),
			expected: true,
		},
		{
			name:     "same user on different platform",
			other:    New("https://cgc-api.sbgenomics.com", "550e8400e29b41d4a716446655440000", &User{Username: "ivan"}),
			expected: false,
		},
		{
			name:     "different user on same platform",
			other:    New("https://api.sbgenomics.com", "550e8400e29b41d4a716446655440000", &User{Username: "maria"}),
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, base.Equals(tt.other))
		})
	}
}

func TestIsSimilar(t *testing.T) {
	credA := New("https://api.sbgenomics.com", "550e8400e29b41d4a716446655440000", &User{Username: "ivan"})
	credB := New("https://api.sbgenomics.com", "ffffffffffffffffffffffffffffffff", &User{Username: "ivan"})
	credC := New("https://eu-api.sbgenomics.com", "550e8400e29b41d4a716446655440000", &User{Username: "ivan"})

	tests := []struct {
		name     string
		a, b     *Credential
		expected bool
	}{
		{"both absent", nil, nil, true},
		{"only first present", credA, nil, false},
		{"only second present", nil, credA, false},
		{"same identity", credA, credB, true},
		{"different identity", credA, credC, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSimilar(tt.a, tt.b))
		})
	}
}

func TestUpdateToMatch(t *testing.T) {
	cred := New("https://api.sbgenomics.com", "550e8400e29b41d4a716446655440000", &User{Username: "ivan"})
	replacement := New("https://cgc-api.sbgenomics.com", "ffffffffffffffffffffffffffffffff", &User{Username: "maria"})

	cred.UpdateToMatch(replacement)

	assert.Equal(t, replacement.URL, cred.URL)
	assert.Equal(t, replacement.Token, cred.Token)
	assert.Same(t, replacement.User, cred.User)

	// The cached ID keeps its pre-update value while Hash reflects the
	// new fields. Locked in deliberately; see the Credential.ID doc.
	assert.Equal(t, "api_ivan", cred.ID)
	assert.Equal(t, "cgc-api_maria", cred.Hash())
}
