package client

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/aposenior/gestao/core"
)

var (
	educationTag  = "education_level"
	educationText = "invalid education level"

	employmentTag  = "employment_status"
	employmentText = "invalid employment status"

	statusTag  = "client_status"
	statusText = "status must be Ativo or Inativo"
)

// RegisterValidators registers the client-specific validation tags.
func RegisterValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(educationTag, educationValidation)
	core.RegisterCustomTranslation(validate, translator, educationTag, educationText)

	_ = validate.RegisterValidation(employmentTag, employmentValidation)
	core.RegisterCustomTranslation(validate, translator, employmentTag, employmentText)

	_ = validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(validate, translator, statusTag, statusText)
}

func educationValidation(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "" || core.OneOf(v, EducationLevels)
}

func employmentValidation(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "" || core.OneOf(v, EmploymentStatuses)
}

func statusValidation(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "" || core.OneOf(v, Statuses)
}
