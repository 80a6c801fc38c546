package tx

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Transactor runs fn inside a database transaction.
type Transactor interface {
	WithTx(ctx context.Context, fn func(ctx context.Context, tx *gorm.DB) error) error
}

type Manager struct {
	DB *gorm.DB
}

const maxRetries = 5

var ErrRetryExhausted = errors.New("transaction retry exhausted")

// WithTx runs fn at READ COMMITTED and reruns it when Postgres aborts the
// transaction with a deadlock (40P01) or serialization failure (40001).
func (m *Manager) WithTx(
	ctx context.Context,
	fn func(ctx context.Context, tx *gorm.DB) error,
) error {

	for i := 0; i < maxRetries; i++ {
		err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			return fn(ctx, tx)
		}, &sql.TxOptions{Isolation: sql.LevelReadCommitted})

		if isRetryable(err) {
			continue
		}
		return err
	}

	return ErrRetryExhausted
}

const (
	serializationFailure = "40001"
	deadlockDetected     = "40P01"
)

func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Code == serializationFailure || pqErr.Code == deadlockDetected
}
