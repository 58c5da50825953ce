// internal/utils/validator.go
package utils

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("slug", validateSlug)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateSlug(fl validator.FieldLevel) bool {
	return IsValidSlug(fl.Field().String())
}

type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Message string `json:"message"`
}

func GetValidationErrors(err error) []ValidationError {
	var validationErrors []ValidationError

	if validationErrs, ok := err.(validator.ValidationErrors); ok {
		for _, e := range validationErrs {
			validationErrors = append(validationErrors, ValidationError{
				Field:   strings.ToLower(e.Field()),
				Tag:     e.Tag(),
				Message: getValidationMessage(e),
			})
		}
	}

	return validationErrors
}

func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return e.Field() + " é obrigatório"
	case "email":
		return "Formato de email inválido"
	case "min":
		return e.Field() + " deve ter pelo menos " + e.Param() + " caracteres"
	case "max":
		return e.Field() + " deve ter no máximo " + e.Param() + " caracteres"
	case "slug":
		return "O link deve conter apenas letras minúsculas, números e hifens"
	case "eqfield":
		return "As senhas não conferem"
	default:
		return e.Field() + " é inválido"
	}
}
