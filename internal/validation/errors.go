package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// invalidVarError wraps an error raised by validator on a struct field,
// and automatically modifies the error string for more efficient ones.
type invalidVarError struct {
	fieldName    string
	fieldValue   string // This is the string representation of the value
	tag          string
	param        string
	validatorErr error
}

var retag = regexp.MustCompile(`the '.*' tag`)

// Error implements the Error interface, but replacing some identifiable
// validation errors with more efficient messages, more adapted to CLI.
func (err *invalidVarError) Error() string {
	switch err.tag {
	case "oneof":
		choices := strings.Join(strings.Fields(err.param), ", ")
		return fmt.Sprintf("--%s: `%s` is not one of %s", err.fieldName, err.fieldValue, choices)
	case "required":
		return fmt.Sprintf("--%s is required", err.fieldName)
	}

	// Match the part containing the tag name
	matched := retag.FindString(err.validatorErr.Error())
	if matched != "" {
		parts := strings.Split(matched, " ")
		if len(parts) > 1 {
			return fmt.Sprintf("--%s: `%s` is not a valid %s", err.fieldName, err.fieldValue, strings.Trim(parts[1], "'"))
		}
	}

	// Or simply replace the empty key with the field name.
	return strings.ReplaceAll(err.validatorErr.Error(), "''", fmt.Sprintf("'%s'", err.fieldName))
}

// Unwrap makes the error match ErrInvalidValue.
func (err *invalidVarError) Unwrap() error {
	return ErrInvalidValue
}
