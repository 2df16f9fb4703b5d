package userrepo

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"govendas/internal/domain"
	apperror "govendas/internal/errors"
	"govendas/internal/pkg/kvstore"
	"govendas/internal/pkg/logger"
	"govendas/internal/repository/documentrepo"
)

// DocumentKey é a chave da lista de operadores.
const DocumentKey = "users"

// UserRepository persiste operadores como um único documento JSON.
// O mutex serializa leitura-modificação-escrita dentro do processo.
type UserRepository struct {
	mu     sync.Mutex
	coll   *documentrepo.Collection[domain.User]
	logger logger.Logger
}

// NewUserRepository cria uma nova instância do UserRepository.
func NewUserRepository(store kvstore.Store, timeout time.Duration, log logger.Logger) *UserRepository {
	return &UserRepository{
		coll:   documentrepo.NewCollection[domain.User](store, DocumentKey, timeout, log),
		logger: log,
	}
}

// Save insere um novo operador. E-mail já cadastrado (sem diferenciar maiúsculas) é ConflictError.
func (r *UserRepository) Save(ctx context.Context, user domain.User) (domain.User, error) {
	r.logger.Debug("Iniciando Save de usuário no repositório.", map[string]interface{}{"email": user.Email})

	r.mu.Lock()
	defer r.mu.Unlock()

	users, err := r.coll.Load(ctx)
	if err != nil {
		return domain.User{}, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, user.Email) {
			r.logger.Info("E-mail já cadastrado.", map[string]interface{}{"email": user.Email})
			return domain.User{}, apperror.NewConflictError(fmt.Sprintf("E-mail '%s' já cadastrado", user.Email))
		}
	}

	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt

	if err := r.coll.Save(ctx, append(users, user)); err != nil {
		return domain.User{}, err
	}

	r.logger.Info("Usuário salvo com sucesso no repositório.", map[string]interface{}{"user_id": user.ID, "email": user.Email})
	return user, nil
}

// FindByEmail busca um operador pelo e-mail.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	users, err := r.coll.Load(ctx)
	if err != nil {
		return domain.User{}, err
	}

	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}

	r.logger.Info("Usuário não encontrado por email.", map[string]interface{}{"email": email})
	return domain.User{}, apperror.NewNotFoundError(fmt.Sprintf("Usuário com email '%s' não encontrado", email))
}

// Count retorna quantos operadores existem (usado para promover o primeiro a admin).
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	users, err := r.coll.Load(ctx)
	if err != nil {
		return 0, err
	}
	return len(users), nil
}
