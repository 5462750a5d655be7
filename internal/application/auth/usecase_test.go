package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stock-ledger-api/internal/application/auth"
	"github.com/jhoicas/stock-ledger-api/internal/application/dto"
	"github.com/jhoicas/stock-ledger-api/internal/domain"
	"github.com/jhoicas/stock-ledger-api/internal/domain/entity"
	"github.com/jhoicas/stock-ledger-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/stock-ledger-api/pkg/jwt"
)

func newAuthUC() (*auth.AuthUseCase, *memory.UserRepo) {
	repo := memory.NewUserRepository()
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "test-secret",
		ExpMinutes: 60,
		Issuer:     "stock-ledger-test",
	})
	return uc, repo
}

func TestRegisterUser_CreaConRolPorDefecto(t *testing.T) {
	uc, repo := newAuthUC()

	user, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "ana@example.com",
		Password: "secreta123",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.RoleVendedor, user.Role, "rol por defecto es vendedor")
	assert.Equal(t, "active", user.Status)
	assert.Equal(t, "ana@example.com", user.Name, "sin nombre usa el email")

	// El hash persiste, nunca la contraseña en claro.
	stored, err := repo.FindByEmail("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEqual(t, "secreta123", stored.PasswordHash)
	assert.NotEmpty(t, stored.PasswordHash)
}

func TestRegisterUser_EmailDuplicado(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "otra-clave"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_TokenConUserIDYRol(t *testing.T) {
	uc, _ := newAuthUC()
	registered, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "jefe@example.com", Password: "secreta123", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "jefe@example.com", Password: "secreta123"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, registered.ID, out.User.ID)

	userID, role, err := pkgjwt.Parse("test-secret", out.Token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_CredencialesInvalidas(t *testing.T) {
	uc, _ := newAuthUC()
	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "ana@example.com", Password: "secreta123"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "equivocada"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nadie@example.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_CuentaInactiva(t *testing.T) {
	repo := memory.NewUserRepository()
	hash, err := bcrypt.GenerateFromPassword([]byte("secreta123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, repo.Create(&entity.User{
		ID: "u1", Email: "ana@example.com", PasswordHash: string(hash),
		Name: "Ana", Role: entity.RoleVendedor, Status: "suspended",
	}))
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: "test-secret", ExpMinutes: 60, Issuer: "t"})

	_, err = uc.Login(dto.LoginRequest{Email: "ana@example.com", Password: "secreta123"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
