package jwtauth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SoYuDev/petalth-crm/internal/ports/auth"
)

// Account es la vista mínima del usuario que necesita el verifier.
type Account struct {
	ID    int64
	Email string
	Rol   auth.Rol
}

// AccountSource carga la cuenta activa asociada a un email.
// Debe fallar si el usuario no existe o está desactivado.
type AccountSource interface {
	ActiveAccount(ctx context.Context, email string) (Account, error)
}

// Verifier implementa auth.AuthVerifier: valida el token y carga el usuario
// desde la BDD para confirmar que sigue existiendo y activo.
type Verifier struct {
	tokens   *Tokens
	accounts AccountSource
}

func NewVerifier(tokens *Tokens, accounts AccountSource) *Verifier {
	return &Verifier{tokens: tokens, accounts: accounts}
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	if v == nil || v.tokens == nil {
		return auth.Claims{}, errors.New("jwtauth: verifier not configured")
	}

	subject, err := v.tokens.Parse(strings.TrimSpace(token))
	if err != nil {
		return auth.Claims{}, err
	}

	acc, err := v.accounts.ActiveAccount(ctx, subject)
	if err != nil {
		return auth.Claims{}, fmt.Errorf("jwtauth: load account: %w", err)
	}

	return auth.Claims{
		UserID: acc.ID,
		Email:  acc.Email,
		Rol:    acc.Rol,
	}, nil
}
