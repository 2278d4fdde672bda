package users

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/SoYuDev/petalth-crm/internal/ports/auth"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("user not found")
)

// Service gestiona la lógica para acceso y creación de usuarios.
type Service struct {
	repo   Repository
	tokens auth.TokenIssuer
}

func NewService(repo Repository, tokens auth.TokenIssuer) *Service {
	return &Service{repo: repo, tokens: tokens}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
	Address   string
}

// AuthResult es lo que devolvemos tras register/login: resumen del usuario + token.
type AuthResult struct {
	UserID    int64
	Token     string
	Email     string
	FirstName string
	Rol       auth.Rol
	Message   string
}

// Register crea User + Owner (mismo id) y devuelve el token para entrar
// directamente sin tener que loguearse.
func (s *Service) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || strings.TrimSpace(in.Password) == "" || strings.TrimSpace(in.FirstName) == "" {
		return AuthResult{}, ErrInvalidInput
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("users: check email: %w", err)
	}
	if exists {
		return AuthResult{}, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return AuthResult{}, fmt.Errorf("users: hash password: %w", err)
	}

	u := User{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     email,
		Password:  string(hash),
		// Rol OWNER por defecto: todo el que se registra es dueño de mascotas.
		Rol:    auth.RolOwner,
		Active: true,
	}
	o := Owner{
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	}

	saved, err := s.repo.CreateWithOwner(ctx, u, o)
	if err != nil {
		return AuthResult{}, err
	}

	return s.authResult(saved, "Register exitoso")
}

// Login verifica credenciales contra el hash almacenado.
// Email desconocido, cuenta inactiva o password incorrecta devuelven el mismo
// error para no filtrar qué emails existen.
func (s *Service) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return AuthResult{}, ErrInvalidCredentials
	}

	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if !u.Active {
		return AuthResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}

	return s.authResult(u, "Login exitoso")
}

func (s *Service) authResult(u User, msg string) (AuthResult, error) {
	token, err := s.tokens.Issue(u.Email, map[string]any{
		"rol": string(u.Rol),
		"uid": u.ID,
	})
	if err != nil {
		return AuthResult{}, fmt.Errorf("users: issue token: %w", err)
	}

	return AuthResult{
		UserID:    u.ID,
		Token:     token,
		Email:     u.Email,
		FirstName: u.FirstName,
		Rol:       u.Rol,
		Message:   msg,
	}, nil
}

// ActiveByEmail devuelve el usuario si existe y sigue activo.
// Lo usa el verifier de tokens para cargar al principal en cada request.
func (s *Service) ActiveByEmail(ctx context.Context, email string) (User, error) {
	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return User{}, ErrNotFound
	}
	if !u.Active {
		return User{}, ErrNotFound
	}
	return u, nil
}

// OwnerIDByEmail resuelve el Owner del usuario autenticado.
// Expuesto como método simple para que otros módulos (pets) no importen
// el modelo completo y se eviten ciclos.
func (s *Service) OwnerIDByEmail(ctx context.Context, email string) (int64, error) {
	u, err := s.repo.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return 0, ErrNotFound
	}
	o, err := s.repo.GetOwner(ctx, u.ID)
	if err != nil {
		return 0, ErrNotFound
	}
	return o.ID, nil
}

// OwnerEmail devuelve el email del dueño (user y owner comparten id).
func (s *Service) OwnerEmail(ctx context.Context, ownerID int64) (string, error) {
	u, err := s.repo.GetByID(ctx, ownerID)
	if err != nil {
		return "", ErrNotFound
	}
	return u.Email, nil
}

// OwnerName devuelve el nombre a mostrar del dueño ("First Last").
func (s *Service) OwnerName(ctx context.Context, ownerID int64) (string, error) {
	u, err := s.repo.GetByID(ctx, ownerID)
	if err != nil {
		return "", ErrNotFound
	}
	return u.FullName(), nil
}
