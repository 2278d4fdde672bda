package jwtauth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrTokenExpired = errors.New("token expired")
	ErrTokenInvalid = errors.New("token invalid")
)

// Config del emisor de tokens. Secret viene de config, no de un global.
type Config struct {
	Secret string
	Expiry time.Duration
}

// Tokens emite y parsea tokens firmados con HMAC-SHA256.
// Sin refresh ni revocación: un token vale hasta su expiración natural.
type Tokens struct {
	secret []byte
	expiry time.Duration
	now    func() time.Time
}

func NewTokens(cfg Config) *Tokens {
	expiry := cfg.Expiry
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &Tokens{
		secret: []byte(cfg.Secret),
		expiry: expiry,
		now:    time.Now,
	}
}

// Issue genera un token con sub (email), iat, exp, jti y claims extra opcionales.
func (t *Tokens) Issue(subject string, extra map[string]any) (string, error) {
	now := t.now()

	claims := jwt.MapClaims{
		"sub": subject,
		"iat": now.Unix(),
		"exp": now.Add(t.expiry).Unix(),
		"jti": uuid.NewString(),
	}
	for k, v := range extra {
		claims[k] = v
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Parse verifica firma y expiración y devuelve el subject.
func (t *Tokens) Parse(token string) (string, error) {
	parsed, err := jwt.Parse(token, func(tok *jwt.Token) (any, error) {
		if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return t.secret, nil
	}, jwt.WithTimeFunc(t.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrTokenInvalid
	}
	return subject, nil
}
