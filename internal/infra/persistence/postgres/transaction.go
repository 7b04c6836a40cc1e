package postgres

import (
	"context"

	"ondeta/internal/domain/repository"
	"ondeta/internal/errors"

	"gorm.io/gorm"
)

type txManager struct {
	db *gorm.DB
}

// NewTransactionManager adapts gorm's Transaction helper, which already
// rolls back on error or panic, to repository.TransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &txManager{db: db}
}

func (m *txManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	var fnErr error
	err := m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txScope{tx: tx})

		return fnErr
	})
	if err != nil && fnErr == nil {
		return errors.Wrap(err, "transaction")
	}

	return err
}

// txScope binds repositories to one *gorm.DB transaction handle.
type txScope struct {
	tx *gorm.DB
}

func (s txScope) UserRepo() repository.UserRepository {
	return NewUserRepository(s.tx)
}
