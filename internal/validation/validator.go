// Package validation provides review form validation using the
// validator/v10 library, collecting every invalid field instead of
// stopping at the first.
package validation

import (
	"errors"
	"reflect"

	"github.com/go-playground/validator/v10"

	"book-club-server/internal/domain"
)

// Validator wraps go-playground/validator with domain error conversion.
type Validator struct {
	v *validator.Validate
}

// New creates a validator configured for our domain.
func New() *Validator {
	v := validator.New()

	// Use JSON tag names in error messages
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := fld.Tag.Get("json")
		if name == "" {
			return fld.Name
		}
		for i := 0; i < len(name); i++ {
			if name[i] == ',' {
				return name[:i]
			}
		}
		return name
	})

	return &Validator{v: v}
}

// Validate validates a struct and returns domain.ValidationErrors with
// one user-facing message per invalid field, or nil when valid.
func (v *Validator) Validate(s any) domain.ValidationErrors {
	err := v.v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return domain.ValidationErrors{"form": "dados inválidos"}
	}

	fieldErrors := make(domain.ValidationErrors, len(validationErrs))
	for _, e := range validationErrs {
		fieldErrors[e.Field()] = friendlyMessage(e)
	}
	return fieldErrors
}

// friendlyMessage renders the user-facing message for one field error.
// Messages are pt-BR because they are shown verbatim in the club's UI.
func friendlyMessage(e validator.FieldError) string {
	switch e.Field() {
	case "bookId":
		return "Selecione um livro"
	case "rating":
		if e.Tag() == "max" {
			return "A nota máxima é 5"
		}
		return "A nota é obrigatória"
	case "text":
		switch e.Tag() {
		case "min":
			return "Mínimo de " + e.Param() + " caracteres"
		case "max":
			return "Máximo de " + e.Param() + " caracteres"
		default:
			return "A resenha é obrigatória"
		}
	default:
		return "Campo inválido"
	}
}
