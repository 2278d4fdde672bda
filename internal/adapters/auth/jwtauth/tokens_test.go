package jwtauth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/SoYuDev/petalth-crm/internal/ports/auth"
)

func TestTokens_IssueAndParse(t *testing.T) {
	tok := NewTokens(Config{Secret: "test-secret", Expiry: time.Hour})

	signed, err := tok.Issue("ana@example.com", map[string]any{"rol": "OWNER"})
	require.NoError(t, err)
	require.NotEmpty(t, signed)

	subject, err := tok.Parse(signed)
	require.NoError(t, err)
	require.Equal(t, "ana@example.com", subject)
}

func TestTokens_Parse_Expired(t *testing.T) {
	issuedAt := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	tok := NewTokens(Config{Secret: "test-secret", Expiry: 30 * time.Minute})
	tok.now = func() time.Time { return issuedAt }

	signed, err := tok.Issue("ana@example.com", nil)
	require.NoError(t, err)

	// Avanzamos el reloj más allá de exp.
	tok.now = func() time.Time { return issuedAt.Add(31 * time.Minute) }

	_, err = tok.Parse(signed)
	require.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokens_Parse_WrongSecret(t *testing.T) {
	issuer := NewTokens(Config{Secret: "secret-a", Expiry: time.Hour})
	other := NewTokens(Config{Secret: "secret-b", Expiry: time.Hour})

	signed, err := issuer.Issue("ana@example.com", nil)
	require.NoError(t, err)

	_, err = other.Parse(signed)
	require.ErrorIs(t, err, ErrTokenInvalid)
}

func TestTokens_Parse_Garbage(t *testing.T) {
	tok := NewTokens(Config{Secret: "test-secret", Expiry: time.Hour})

	_, err := tok.Parse("not-a-jwt")
	require.ErrorIs(t, err, ErrTokenInvalid)
}

type stubAccounts struct {
	byEmail map[string]Account
}

func (s stubAccounts) ActiveAccount(_ context.Context, email string) (Account, error) {
	acc, ok := s.byEmail[email]
	if !ok {
		return Account{}, errors.New("account not found or inactive")
	}
	return acc, nil
}

func TestVerifier_Verify_LoadsClaimsFromAccount(t *testing.T) {
	tok := NewTokens(Config{Secret: "test-secret", Expiry: time.Hour})
	v := NewVerifier(tok, stubAccounts{byEmail: map[string]Account{
		"ana@example.com": {ID: 7, Email: "ana@example.com", Rol: auth.RolOwner},
	}})

	signed, err := tok.Issue("ana@example.com", nil)
	require.NoError(t, err)

	claims, err := v.Verify(context.Background(), signed)
	require.NoError(t, err)
	require.Equal(t, int64(7), claims.UserID)
	require.Equal(t, "ana@example.com", claims.Email)
	require.Equal(t, auth.RolOwner, claims.Rol)
}

func TestVerifier_Verify_RejectsUnknownAccount(t *testing.T) {
	// Token válido pero la cuenta ya no existe (o fue desactivada):
	// el verifier debe rechazarlo aunque la firma sea correcta.
	tok := NewTokens(Config{Secret: "test-secret", Expiry: time.Hour})
	v := NewVerifier(tok, stubAccounts{byEmail: map[string]Account{}})

	signed, err := tok.Issue("borrado@example.com", nil)
	require.NoError(t, err)

	_, err = v.Verify(context.Background(), signed)
	require.Error(t, err)
}
