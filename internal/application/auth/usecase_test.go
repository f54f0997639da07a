package auth_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jortegav/retailos-api/internal/application/auth"
	"github.com/jortegav/retailos-api/internal/application/dto"
	"github.com/jortegav/retailos-api/internal/domain"
	"github.com/jortegav/retailos-api/internal/domain/entity"
	pkgjwt "github.com/jortegav/retailos-api/pkg/jwt"
)

type memUserRepo struct {
	users map[string]*entity.User // por ID
}

func (r *memUserRepo) Create(u *entity.User) error {
	cu := *u
	r.users[u.ID] = &cu
	return nil
}

func (r *memUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cu := *u
	return &cu, nil
}

func (r *memUserRepo) FindByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			cu := *u
			return &cu, nil
		}
	}
	return nil, nil
}

const testSecret = "test-secret-key-for-unit-tests"

func newAuthUC() (*memUserRepo, *auth.UseCase) {
	repo := &memUserRepo{users: make(map[string]*entity.User)}
	uc := auth.NewUseCase(repo, auth.JWTConfig{
		Secret:     testSecret,
		Issuer:     "retailos-test",
		ExpMinutes: 60,
	})
	return repo, uc
}

func signupReq() dto.SignupRequest {
	return dto.SignupRequest{
		Email:        "dueno@tienda.co",
		Password:     "secreta123",
		Name:         "Dueño",
		BusinessName: "Tienda Central",
	}
}

func TestSignup_CreaCuentaYEmiteToken(t *testing.T) {
	repo, uc := newAuthUC()

	out, err := uc.Signup(context.Background(), signupReq())
	require.NoError(t, err)

	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "dueno@tienda.co", out.User.Email)
	assert.Equal(t, "Tienda Central", out.User.BusinessName)

	// El token trae el user_id y la razón social
	userID, businessName, err := pkgjwt.Parse(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, "Tienda Central", businessName)

	// La contraseña nunca se guarda en plano
	stored := repo.users[out.User.ID]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestSignup_EmailDuplicadoRechazado(t *testing.T) {
	_, uc := newAuthUC()
	ctx := context.Background()

	_, err := uc.Signup(ctx, signupReq())
	require.NoError(t, err)

	// Mismo email con otra capitalización
	req := signupReq()
	req.Email = "DUENO@tienda.co"
	_, err = uc.Signup(ctx, req)
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestSignup_Validaciones(t *testing.T) {
	_, uc := newAuthUC()
	ctx := context.Background()

	req := signupReq()
	req.Email = ""
	_, err := uc.Signup(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = signupReq()
	req.Password = "corta"
	_, err = uc.Signup(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	req = signupReq()
	req.BusinessName = ""
	_, err = uc.Signup(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestLogin_CredencialesCorrectas(t *testing.T) {
	_, uc := newAuthUC()
	ctx := context.Background()

	_, err := uc.Signup(ctx, signupReq())
	require.NoError(t, err)

	out, err := uc.Login(ctx, dto.LoginRequest{Email: "dueno@tienda.co", Password: "secreta123"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
}

// Email inexistente y contraseña errada devuelven el mismo error, sin filtrar
// cuál de los dos falló.
func TestLogin_CredencialesMalasIndistinguibles(t *testing.T) {
	_, uc := newAuthUC()
	ctx := context.Background()

	_, err := uc.Signup(ctx, signupReq())
	require.NoError(t, err)

	_, errPassword := uc.Login(ctx, dto.LoginRequest{Email: "dueno@tienda.co", Password: "equivocada"})
	_, errEmail := uc.Login(ctx, dto.LoginRequest{Email: "nadie@tienda.co", Password: "secreta123"})

	assert.ErrorIs(t, errPassword, domain.ErrUnauthorized)
	assert.ErrorIs(t, errEmail, domain.ErrUnauthorized)
}
