package auth_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/ErnestoSESB/E-commerce/internal/application/auth"
	"github.com/ErnestoSESB/E-commerce/internal/application/dto"
	"github.com/ErnestoSESB/E-commerce/internal/domain"
	"github.com/ErnestoSESB/E-commerce/internal/domain/entity"
	"github.com/ErnestoSESB/E-commerce/internal/domain/listing"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fake de repositorio de usuarios
// ──────────────────────────────────────────────────────────────────────────────

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	// findErr fuerza un fallo en FindByEmail para simular una BD caída.
	findErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindByEmail(email string) (*entity.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.byEmail[email], nil
}

func (r *fakeUserRepo) List(criteria *listing.UserCriteria, limit, offset int) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.byEmail {
		out = append(out, u)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(u *entity.User) error {
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) Delete(id string) error {
	for email, u := range r.byEmail {
		if u.ID == id {
			delete(r.byEmail, email)
		}
	}
	return nil
}

func buildAuthUC(repo *fakeUserRepo) *auth.AuthUseCase {
	return auth.NewAuthUseCase(repo, auth.JWTConfig{
		Secret:     "secret-de-test",
		ExpMinutes: 60,
		Issuer:     "test",
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Register
// ──────────────────────────────────────────────────────────────────────────────

func TestRegister_CreaClienteConHashBcrypt(t *testing.T) {
	repo := newFakeUserRepo()
	uc := buildAuthUC(repo)

	out, err := uc.Register(dto.RegisterRequest{
		Email:    "ana@tienda.com",
		Password: "supersecreta",
		Name:     "Ana",
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, string(entity.RoleClient), out.Role, "todo registro inicia como client")
	assert.False(t, out.IsStaff)

	stored := repo.byEmail["ana@tienda.com"]
	require.NotNil(t, stored)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("supersecreta")))
}

func TestRegister_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	repo.byEmail["ana@tienda.com"] = &entity.User{ID: "u1", Email: "ana@tienda.com"}
	uc := buildAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@tienda.com", Password: "supersecreta"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

// Un fallo de BD en la búsqueda de email se propaga: nunca debe leerse como
// "email disponible" y seguir con el alta.
func TestRegister_FalloDeBusquedaSePropaga(t *testing.T) {
	repo := newFakeUserRepo()
	repo.findErr = errors.New("conexión perdida")
	uc := buildAuthUC(repo)

	_, err := uc.Register(dto.RegisterRequest{Email: "ana@tienda.com", Password: "supersecreta"})
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrEmailAlreadyExists)
	assert.Empty(t, repo.byEmail, "no debe crearse ningún usuario")
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func TestLogin_PasswordIncorrecta(t *testing.T) {
	repo := newFakeUserRepo()
	hash, err := bcrypt.GenerateFromPassword([]byte("supersecreta"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.byEmail["ana@tienda.com"] = &entity.User{
		ID:           "u1",
		Email:        "ana@tienda.com",
		Role:         entity.RoleClient,
		PasswordHash: string(hash),
	}
	uc := buildAuthUC(repo)

	_, err = uc.Login(dto.LoginRequest{Email: "ana@tienda.com", Password: "otra"}, "")
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	out, err := uc.Login(dto.LoginRequest{Email: "ana@tienda.com", Password: "supersecreta"}, "10.0.0.1")
	require.NoError(t, err)
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, "10.0.0.1", repo.byEmail["ana@tienda.com"].LastLoginIP)
}

func TestLogin_UsuarioInexistente(t *testing.T) {
	uc := buildAuthUC(newFakeUserRepo())

	_, err := uc.Login(dto.LoginRequest{Email: "nadie@tienda.com", Password: "x"}, "")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
