package handlers

import (
	"errors"

	"grenzgaenger_service/internal/domain/entities"
)

// validationCause returns the field-level error behind a use case sentinel so
// the response details name the offending fields.
func validationCause(err error) error {
	var vErr *entities.ValidationError
	if errors.As(err, &vErr) {
		return vErr
	}
	return err
}
