package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/azizulsheikh/studio/internal/models"
	"github.com/azizulsheikh/studio/internal/storage"
	"github.com/azizulsheikh/studio/pkg/api"
)

var errInternal = errors.New("internal error")

// toConnectError maps a fund error onto a Connect error. Storage failures are
// logged with detail and reported to the caller as a generic internal error.
func toConnectError(procedure string, err error) error {
	var validationErr *models.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return api.NewFieldError(validationErr, validationErr.Fields)
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, context.Canceled):
		return connect.NewError(connect.CodeCanceled, err)
	case errors.Is(err, context.DeadlineExceeded):
		return connect.NewError(connect.CodeDeadlineExceeded, err)
	default:
		slog.Error(procedure+" failed", "error", err)
		return connect.NewError(connect.CodeInternal, errInternal)
	}
}

func requireID(field, id string) error {
	if id == "" {
		validationErr := models.NewValidationError(field, "This field is required.")
		return api.NewFieldError(validationErr, validationErr.Fields)
	}
	return nil
}
