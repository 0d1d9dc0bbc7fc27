package postgres

import (
	"context"

	"haven/internal/domain/repository"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// txScope binds the identity repositories to one open transaction.
type txScope struct {
	tx *gorm.DB
}

func (s txScope) UserRepo() repository.UserRepository { return NewUserRepository(s.tx) }

func (s txScope) AuthRepo() repository.AuthRepository { return NewAuthRepository(s.tx) }

type gormTransactionManager struct {
	db *gorm.DB
}

// NewTransactionManager runs registration-style writes atomically.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute commits when fn returns nil and rolls back otherwise, including
// when fn panics. fn's own error is returned unwrapped so callers can match
// domain errors.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txScope{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}

	return errors.Wrap(err, "identity transaction")
}
