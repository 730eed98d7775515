package validators

import (
	"errors"
	"strings"
)

var (
	// ErrValidation is the cause every validation failure matches with errors.Is.
	ErrValidation = errors.New("validation error")

	ErrUnsupportedType  = errors.New("unsupported type for validation")
	ErrUnknownField     = errors.New("unknown field for validation")
	ErrNoFieldsToUpdate = errors.New("at least one field must be provided for update")
)

// ValidationErrors is the ordered list of violation messages collected from
// one or more request parts. Its Error form joins them with ",".
type ValidationErrors []string

func (e ValidationErrors) Error() string {
	return strings.Join(e, ",")
}

// Is lets callers match any ValidationErrors against ErrValidation.
func (e ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}

// Join merges the violations of several validation results into one
// ValidationErrors. Nil errors are skipped; a non-validation error is
// returned unchanged.
func Join(errs ...error) error {
	var joined ValidationErrors
	for _, err := range errs {
		if err == nil {
			continue
		}

		var ve ValidationErrors
		if errors.As(err, &ve) {
			joined = append(joined, ve...)
			continue
		}
		if errors.Is(err, ErrValidation) || errors.Is(err, ErrNoFieldsToUpdate) || errors.Is(err, ErrUnknownField) {
			joined = append(joined, err.Error())
			continue
		}

		return err
	}

	if len(joined) == 0 {
		return nil
	}
	return joined
}

// Invalid wraps a single message as a validation failure.
func Invalid(msg string) error {
	return ValidationErrors{msg}
}
