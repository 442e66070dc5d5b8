package vcmp

import "strings"

// ValidationError reports a single failed check on an instance's
// attribute state.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return e.Field + " " + e.Message
}

// ValidationErrors collects failures from one validation pass. A
// validator returns it from Validate so the render path surfaces every
// failure at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, ve := range e {
		parts = append(parts, ve.Error())
	}
	return "vcmp: validation failed: " + strings.Join(parts, "; ")
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(b *Base) error

// Validate calls f.
func (f ValidatorFunc) Validate(b *Base) error {
	return f(b)
}

// RequireAttrs returns a validator that fails when any of the named
// attributes is unset. Failures report under the instance's model name.
func RequireAttrs(names ...string) Validator {
	return ValidatorFunc(func(b *Base) error {
		var errs ValidationErrors
		for _, name := range names {
			if !b.Attrs().Has(name) {
				errs = append(errs, ValidationError{
					Field:   b.ModelName() + "." + name,
					Message: "is required",
				})
			}
		}
		if len(errs) > 0 {
			return errs
		}
		return nil
	})
}
