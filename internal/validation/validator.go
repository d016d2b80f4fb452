package validation

import (
	"github.com/go-playground/validator/v10"
)

// Validator adapts validator/v10 to echo's Validator interface.
type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}
