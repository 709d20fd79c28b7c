package objcgo

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var goIdentPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// NewValidator returns a validator with the objcgo rules registered:
//
//	goident: the field is a valid Go identifier
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation("goident", func(fl validator.FieldLevel) bool {
		return goIdentPattern.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}
