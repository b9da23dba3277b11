package jwt

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestHMACService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour, WithIssuer("jobboard"))
	userID := uuid.New()

	tok, err := svc.GenerateAccessToken(userID, "ada@example.com", "recruiter")
	require.NoError(t, err)

	claims, err := svc.ValidateAccessToken(tok)
	require.NoError(t, err)
	require.Equal(t, userID, claims.UserID)
	require.Equal(t, "ada@example.com", claims.Email)
	require.Equal(t, "recruiter", claims.Role)
	require.Equal(t, TokenTypeAccess, claims.TokenType)
	require.Equal(t, "jobboard", claims.Issuer)
	require.NotEmpty(t, claims.ID)
}

func TestHMACService_RefreshToken(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)

	tok, err := svc.GenerateRefreshToken(uuid.New())
	require.NoError(t, err)

	claims, err := svc.ValidateRefreshToken(tok)
	require.NoError(t, err)
	require.Equal(t, TokenTypeRefresh, claims.TokenType)
	require.Empty(t, claims.Role)
}

func TestHMACService_TokenTypesDoNotCross(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)

	access, err := svc.GenerateAccessToken(uuid.New(), "", "candidate")
	require.NoError(t, err)
	refresh, err := svc.GenerateRefreshToken(uuid.New())
	require.NoError(t, err)

	_, err = svc.ValidateRefreshToken(access)
	require.ErrorIs(t, err, ErrTokenInvalid)
	_, err = svc.ValidateAccessToken(refresh)
	require.ErrorIs(t, err, ErrTokenInvalid)

	// Same secret for both types still rejects on the type claim.
	shared := NewHMACService("same", "same", time.Minute, time.Hour)
	refresh, err = shared.GenerateRefreshToken(uuid.New())
	require.NoError(t, err)
	_, err = shared.ValidateAccessToken(refresh)
	require.ErrorIs(t, err, ErrWrongTokenType)
}

func TestHMACService_Expired(t *testing.T) {
	svc := NewHMACService("access-secret", "refresh-secret", time.Minute, time.Hour)
	issued := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return issued }

	tok, err := svc.GenerateAccessToken(uuid.New(), "", "candidate")
	require.NoError(t, err)

	svc.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = svc.ValidateAccessToken(tok)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestHMACService_ForeignSecretOrIssuer(t *testing.T) {
	a := NewHMACService("a", "b", time.Minute, time.Hour, WithIssuer("one"))
	b := NewHMACService("c", "d", time.Minute, time.Hour, WithIssuer("one"))
	c := NewHMACService("a", "b", time.Minute, time.Hour, WithIssuer("two"))

	tok, err := a.GenerateAccessToken(uuid.New(), "", "admin")
	require.NoError(t, err)

	_, err = b.ValidateAccessToken(tok)
	require.ErrorIs(t, err, ErrTokenInvalid)
	_, err = c.ValidateAccessToken(tok)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestHMACService_MissingConfiguration(t *testing.T) {
	svc := NewHMACService("", "refresh", time.Minute, time.Hour)
	_, err := svc.GenerateAccessToken(uuid.New(), "", "admin")
	require.ErrorIs(t, err, ErrTokenInvalid)

	svc = NewHMACService("access", "refresh", 0, time.Hour)
	_, err = svc.GenerateAccessToken(uuid.New(), "", "admin")
	require.ErrorIs(t, err, ErrTokenInvalid)
}
