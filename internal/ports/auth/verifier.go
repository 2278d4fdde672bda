package auth

import "context"

// AuthVerifier verifica un token y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// TokenIssuer emite un token firmado para un subject (email) con claims extra.
type TokenIssuer interface {
	Issue(subject string, extra map[string]any) (string, error)
}
