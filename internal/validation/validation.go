package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	validTag = "validate"
	nameTag  = "flag"
)

// ErrInvalidValue is wrapped by every error returned by Struct.
var ErrInvalidValue = errors.New("invalid value")

// Validator checks structs carrying `validate` tags, and reports their
// fields by the name in their `flag` tag.
type Validator struct {
	validate *validator.Validate
}

// New returns a validator using go-playground/validator.
func New() *Validator {
	return NewWith(validator.New())
}

// NewWith wraps an existing go-playground validator, so that callers
// may register their own validations beforehand.
func NewWith(validate *validator.Validate) *Validator {
	validate.SetTagName(validTag)
	validate.RegisterTagNameFunc(flagName)

	return &Validator{validate: validate}
}

// Struct validates all tagged fields of data, which must be a struct or a
// pointer to one. All failing fields are reported in a single error.
func (v *Validator) Struct(data any) error {
	err := v.validate.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fieldErr := range fieldErrs {
		errs = append(errs, &invalidVarError{
			fieldName:    fieldErr.Field(),
			fieldValue:   fmt.Sprintf("%v", fieldErr.Value()),
			tag:          fieldErr.Tag(),
			param:        fieldErr.Param(),
			validatorErr: fieldErr,
		})
	}

	return errors.Join(errs...)
}

// flagName names a field after the first word of its `flag` tag.
func flagName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get(nameTag), ",")
	if name == "-" {
		return ""
	}

	if name == "" {
		return strings.ToLower(field.Name)
	}

	return name
}
