package layout

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

var (
	ErrInvalidConfiguration = errors.New("layout: invalid configuration")
	ErrInvalidGeometry      = errors.New("layout: geometry cannot be negative")
	ErrPlacementNotFound    = errors.New("layout: placement not found")
	ErrEmptyEventName       = errors.New("layout: event name required")
	ErrUnknownRef           = errors.New("layout: session event references an unknown placement")
	ErrEmptySessionEvent    = errors.New("layout: session event carries no action")
)

const (
	invalidConfigurationCode = "INVALID_CONFIGURATION"
	invalidGeometryCode      = "INVALID_GEOMETRY"
	exportValidationCode     = "EXPORT_VALIDATION_FAILED"
)

func wrapValidationError(err error, message, code string) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, message).
		WithTextCode(code)
}
