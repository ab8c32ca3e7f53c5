package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/nathan/user-management-api/internal/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_EmptySecret(t *testing.T) {
	_, err := token.NewManager("", time.Hour)
	assert.ErrorIs(t, err, token.ErrSigning)
}

func TestManager_RoundTrip(t *testing.T) {
	m, err := token.NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	subjects := []string{
		"alice@x.com",
		"bob@example.com",
		"user+tag@sub.domain.org",
	}

	for _, subject := range subjects {
		t.Run(subject, func(t *testing.T) {
			signed, err := m.Issue(subject)
			require.NoError(t, err)
			require.NotEmpty(t, signed)

			got, err := m.Verify(signed)
			require.NoError(t, err)
			assert.Equal(t, subject, got)
		})
	}
}

func TestManager_Expiry(t *testing.T) {
	m, err := token.NewManager("test-secret", 0)
	require.NoError(t, err)

	signed, err := m.Issue("alice@x.com")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, err = m.Verify(signed)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestManager_TamperedSignature(t *testing.T) {
	m, err := token.NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	signed, err := m.Issue("alice@x.com")
	require.NoError(t, err)

	parts := strings.Split(signed, ".")
	require.Len(t, parts, 3)

	// Flip the last character of the signature segment
	sig := []byte(parts[2])
	if sig[len(sig)-1] == 'A' {
		sig[len(sig)-1] = 'B'
	} else {
		sig[len(sig)-1] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = m.Verify(tampered)
	assert.ErrorIs(t, err, token.ErrInvalidToken)
}

func TestManager_Verify_Invalid(t *testing.T) {
	m, err := token.NewManager("test-secret", time.Hour)
	require.NoError(t, err)

	other, err := token.NewManager("other-secret", time.Hour)
	require.NoError(t, err)

	foreign, err := other.Issue("alice@x.com")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty token", token: ""},
		{name: "malformed token", token: "notavalidjwt"},
		{name: "garbage segments", token: "aaa.bbb.ccc"},
		{name: "signed with different secret", token: foreign},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := m.Verify(tt.token)
			assert.ErrorIs(t, err, token.ErrInvalidToken)
		})
	}
}
