package gql

import (
	"context"
	"errors"

	"github.com/SARVESHVARADKAR123/blog-graphql/internal/model"
	"github.com/SARVESHVARADKAR123/blog-graphql/internal/observability"
	"go.uber.org/zap"
)

// Values of extensions.code.
const (
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeBadUserInput = "BAD_USER_INPUT"
	CodeInternal     = "INTERNAL_SERVER_ERROR"
)

// Error is returned from resolvers. graphql-go copies Extensions into the
// formatted error entry.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Extensions() map[string]interface{} {
	return map[string]interface{}{"code": e.Code}
}

// MapError converts service errors into resolver errors. Unknown errors are
// logged and replaced by a generic message.
func MapError(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}

	var gqlErr *Error
	if errors.As(err, &gqlErr) {
		return gqlErr
	}

	switch {
	case errors.Is(err, model.ErrNotFound):
		return &Error{Code: CodeNotFound, Message: err.Error(), Err: err}
	case errors.Is(err, model.ErrConflict):
		return &Error{Code: CodeConflict, Message: err.Error(), Err: err}
	case errors.Is(err, model.ErrInvalidReference), errors.Is(err, model.ErrInvalidInput):
		return &Error{Code: CodeBadUserInput, Message: err.Error(), Err: err}
	}

	observability.GetLogger(ctx).Error("resolver failed", zap.Error(err))
	return &Error{Code: CodeInternal, Message: "internal server error", Err: err}
}
