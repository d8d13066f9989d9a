package validation

import (
	"github.com/go-playground/validator/v10"

	"librarymgmt/model"
)

type Validator struct {
	v *validator.Validate
}

func New() *Validator {
	return &Validator{v: NewValidate()}
}

// NewValidate builds a validator with the project's custom tags
// registered.
func NewValidate() *validator.Validate {
	v := validator.New()
	// "genre" restricts a field to the closed genre set
	_ = v.RegisterValidation("genre", func(fl validator.FieldLevel) bool {
		return model.Genre(fl.Field().String()).Valid()
	})
	return v
}

func (v *Validator) Validate(i interface{}) error {
	return v.v.Struct(i)
}
