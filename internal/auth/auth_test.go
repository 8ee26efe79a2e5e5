package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAuthenticateIssuesToken(t *testing.T) {
	hash, err := HashPassword("letmein-123")
	require.NoError(t, err)
	s := NewService("owner@veewell.com", hash)
	require.True(t, s.Enabled())

	token, user, err := s.Authenticate(context.Background(), " Owner@Veewell.com ", "letmein-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	require.Equal(t, "owner@veewell.com", user.Email)

	got, ok := s.UserForToken(token)
	require.True(t, ok)
	require.Equal(t, user, got)

	s.Revoke(token)
	_, ok = s.UserForToken(token)
	require.False(t, ok)
}

func TestAuthenticateRejectsBadCredentials(t *testing.T) {
	hash, err := HashPassword("letmein-123")
	require.NoError(t, err)
	s := NewService("owner@veewell.com", hash)

	_, _, err = s.Authenticate(context.Background(), "owner@veewell.com", "wrong")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, err = s.Authenticate(context.Background(), "someone@else.com", "letmein-123")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestDisabledGateRefusesLogin(t *testing.T) {
	s := NewService("owner@veewell.com", "")
	require.False(t, s.Enabled())
	_, _, err := s.Authenticate(context.Background(), "owner@veewell.com", "anything")
	require.ErrorIs(t, err, ErrInvalidCredentials)
}
