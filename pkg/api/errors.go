package api

import (
	"encoding/json"
	"errors"

	"connectrpc.com/connect"
)

// FieldErrorsHeader carries field-level validation messages as a JSON object
// on InvalidArgument errors.
const FieldErrorsHeader = "Field-Errors"

// NewFieldError builds an InvalidArgument error with fields attached as
// FieldErrorsHeader metadata.
func NewFieldError(err error, fields map[string]string) *connect.Error {
	connectErr := connect.NewError(connect.CodeInvalidArgument, err)
	if encoded, mErr := json.Marshal(fields); mErr == nil {
		connectErr.Meta().Set(FieldErrorsHeader, string(encoded))
	}
	return connectErr
}

// FieldErrors decodes the field messages attached to an error returned by a
// client. It returns nil if err carries none.
func FieldErrors(err error) map[string]string {
	var connectErr *connect.Error
	if !errors.As(err, &connectErr) {
		return nil
	}
	raw := connectErr.Meta().Get(FieldErrorsHeader)
	if raw == "" {
		return nil
	}
	var fields map[string]string
	if json.Unmarshal([]byte(raw), &fields) != nil {
		return nil
	}
	return fields
}
