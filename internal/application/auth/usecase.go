package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/jortegav/retailos-api/internal/application/dto"
	"github.com/jortegav/retailos-api/internal/domain"
	"github.com/jortegav/retailos-api/internal/domain/entity"
	"github.com/jortegav/retailos-api/internal/domain/repository"
	"github.com/jortegav/retailos-api/pkg/jwt"
)

// JWTConfig parámetros de emisión de tokens.
type JWTConfig struct {
	Secret     string
	Issuer     string
	ExpMinutes int
}

// UseCase registro e inicio de sesión de cuentas de negocio.
type UseCase struct {
	repo repository.UserRepository
	jwt  JWTConfig
}

// NewUseCase construye el caso de uso de autenticación.
func NewUseCase(repo repository.UserRepository, jwtCfg JWTConfig) *UseCase {
	return &UseCase{repo: repo, jwt: jwtCfg}
}

// Signup registra una cuenta nueva. El email es único global; la contraseña
// se guarda con bcrypt. Devuelve el token de la sesión recién creada.
func (uc *UseCase) Signup(ctx context.Context, in dto.SignupRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" || in.BusinessName == "" {
		return nil, domain.ErrInvalidInput
	}
	if len(in.Password) < 6 {
		return nil, fmt.Errorf("contraseña muy corta: %w", domain.ErrInvalidInput)
	}

	existing, err := uc.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%s: %w", email, domain.ErrEmailAlreadyExists)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("generando hash: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.New().String(),
		Email:        email,
		PasswordHash: string(hash),
		Name:         in.Name,
		BusinessName: in.BusinessName,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(user); err != nil {
		return nil, err
	}
	return uc.issueToken(user)
}

// Login valida credenciales y emite un token. Credenciales malas devuelven
// ErrUnauthorized sin distinguir email inexistente de contraseña errada.
func (uc *UseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := uc.repo.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.issueToken(user)
}

// Me devuelve el perfil del usuario autenticado.
func (uc *UseCase) Me(ctx context.Context, userID string) (*dto.UserResponse, error) {
	user, err := uc.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (uc *UseCase) issueToken(user *entity.User) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwt.Secret, user.ID, user.BusinessName, uc.jwt.Issuer, uc.jwt.ExpMinutes)
	if err != nil {
		return nil, fmt.Errorf("emitiendo token: %w", err)
	}
	return &dto.AuthResponse{Token: token, User: toUserResponse(user)}, nil
}

func toUserResponse(u *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		BusinessName: u.BusinessName,
		CreatedAt:    u.CreatedAt,
	}
}
