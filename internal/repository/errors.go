package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// PostgreSQL error codes
const (
	uniqueViolation           = "23505"
	foreignKeyViolation       = "23503"
	invalidTextRepresentation = "22P02"
)

// translate maps driver and gorm errors onto the model sentinels. notFound is
// returned for gorm.ErrRecordNotFound so callers keep the entity in the message.
func translate(err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notFound
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case uniqueViolation:
			return fmt.Errorf("%w: %s", model.ErrConflict, pqErr.Constraint)
		case foreignKeyViolation:
			return fmt.Errorf("%w: %s", model.ErrInvalidReference, pqErr.Constraint)
		case invalidTextRepresentation:
			return fmt.Errorf("%w: %s", model.ErrInvalidInput, pqErr.Message)
		}
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", model.ErrConflict, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", model.ErrInvalidReference, err)
	}

	// sqlite without error translation
	msg := err.Error()
	switch {
	case strings.Contains(msg, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %s", model.ErrConflict, msg)
	case strings.Contains(msg, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %s", model.ErrInvalidReference, msg)
	}
	return err
}
