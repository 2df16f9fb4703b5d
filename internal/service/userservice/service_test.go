package userservice_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"govendas/internal/domain"
	apperror "govendas/internal/errors"
	"govendas/internal/pkg/logger"
	"govendas/internal/service/userservice"
)

// MockUserRepository é uma implementação mock da interface UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateToken(userID string, userRole string) (string, error) {
	args := m.Called(userID, userRole)
	return args.String(0), args.Error(1)
}

func TestRegister_FirstUserIsAdmin(t *testing.T) {
	repo := new(MockUserRepository)
	svc := userservice.NewService(repo, new(MockTokenService), logger.NewNop())

	repo.On("Count", mock.Anything).Return(0, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
		return u.Role == domain.RoleAdmin && u.Email == "ana@loja.com" &&
			bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("segredo1")) == nil
	})).Return(domain.User{ID: "u1", Email: "ana@loja.com", Role: domain.RoleAdmin}, nil)

	user, err := svc.Register(context.Background(), domain.UserRegistration{Email: " ana@loja.com ", Password: "segredo1"})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, user.Role)
	repo.AssertExpectations(t)
}

func TestRegister_LaterUsersAreRegular(t *testing.T) {
	repo := new(MockUserRepository)
	svc := userservice.NewService(repo, new(MockTokenService), logger.NewNop())

	repo.On("Count", mock.Anything).Return(1, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(u domain.User) bool { return u.Role == domain.RoleUser })).
		Return(domain.User{ID: "u2", Role: domain.RoleUser}, nil)

	user, err := svc.Register(context.Background(), domain.UserRegistration{Email: "bo@loja.com", Password: "segredo1"})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleUser, user.Role)
}

func TestRegister_Validation(t *testing.T) {
	repo := new(MockUserRepository)
	svc := userservice.NewService(repo, new(MockTokenService), logger.NewNop())

	for _, reg := range []domain.UserRegistration{
		{Email: "", Password: "segredo1"},
		{Email: "sem-arroba", Password: "segredo1"},
		{Email: "ana@loja.com", Password: "123"},
	} {
		_, err := svc.Register(context.Background(), reg)
		assert.IsType(t, &apperror.ValidationError{}, err)
	}
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestRegister_DuplicateEmailPropagatesConflict(t *testing.T) {
	repo := new(MockUserRepository)
	svc := userservice.NewService(repo, new(MockTokenService), logger.NewNop())

	repo.On("Count", mock.Anything).Return(1, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(domain.User{}, apperror.NewConflictError("E-mail já cadastrado"))

	_, err := svc.Register(context.Background(), domain.UserRegistration{Email: "ana@loja.com", Password: "segredo1"})
	assert.IsType(t, &apperror.ConflictError{}, err)
}

func TestLogin_Success(t *testing.T) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenService)
	svc := userservice.NewService(repo, tokens, logger.NewNop())

	hash, err := bcrypt.GenerateFromPassword([]byte("segredo1"), bcrypt.MinCost)
	require.NoError(t, err)

	repo.On("FindByEmail", mock.Anything, "ana@loja.com").Return(domain.User{ID: "u1", PasswordHash: string(hash), Role: domain.RoleAdmin}, nil)
	tokens.On("GenerateToken", "u1", "admin").Return("jwt-token", nil)

	tok, err := svc.Login(context.Background(), "ana@loja.com", "segredo1")

	require.NoError(t, err)
	assert.Equal(t, "jwt-token", tok)
	tokens.AssertExpectations(t)
}

func TestLogin_Failures(t *testing.T) {
	repo := new(MockUserRepository)
	tokens := new(MockTokenService)
	svc := userservice.NewService(repo, tokens, logger.NewNop())

	hash, _ := bcrypt.GenerateFromPassword([]byte("segredo1"), bcrypt.MinCost)
	repo.On("FindByEmail", mock.Anything, "ana@loja.com").Return(domain.User{ID: "u1", PasswordHash: string(hash)}, nil)
	repo.On("FindByEmail", mock.Anything, "ninguem@loja.com").Return(domain.User{}, apperror.NewNotFoundError("não encontrado"))
	repo.On("FindByEmail", mock.Anything, "erro@loja.com").Return(domain.User{}, apperror.NewDBError("Falha", errors.New("timeout")))

	_, err := svc.Login(context.Background(), "ana@loja.com", "errada")
	assert.IsType(t, &apperror.UnauthorizedError{}, err)

	_, err = svc.Login(context.Background(), "ninguem@loja.com", "segredo1")
	assert.IsType(t, &apperror.UnauthorizedError{}, err)

	_, err = svc.Login(context.Background(), "", "")
	assert.IsType(t, &apperror.UnauthorizedError{}, err)

	_, err = svc.Login(context.Background(), "erro@loja.com", "segredo1")
	assert.IsType(t, &apperror.InternalError{}, err)

	tokens.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}
