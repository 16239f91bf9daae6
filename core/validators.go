package core

import (
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// custom validation tags & texts
	phoneTag  = "phone_pt"
	phoneText = "must have exactly 9 digits"

	nifTag  = "nif"
	nifText = "must have exactly 9 digits"

	postalTag   = "postal_pt"
	postalText  = "must match the format XXXX-XXX"
	postalRegex = regexp.MustCompile(`^\d{4}-\d{3}$`)

	emailTag  = "email_"
	emailText = "has an invalid format"
	// RFC-lite on purpose; full RFC 5322 is overkill for data entry.
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

	dateTag  = "date_pt"
	dateText = "must be a DD/MM/YYYY date"

	clockTag  = "clock"
	clockText = "must be an HH:MM time"

	requiredTag  = "required"
	requiredText = "this field is required"
)

// NewValidator returns a ready-to-use validator with its english translator.
func NewValidator() (*validator.Validate, ut.Translator) {
	validate := validator.New()
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	InitValidators(validate, translator)
	return validate, translator
}

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = validate.RegisterValidation(phoneTag, phoneValidation)
	RegisterCustomTranslation(validate, translator, phoneTag, phoneText)

	_ = validate.RegisterValidation(nifTag, nifValidation)
	RegisterCustomTranslation(validate, translator, nifTag, nifText)

	_ = validate.RegisterValidation(postalTag, postalValidation)
	RegisterCustomTranslation(validate, translator, postalTag, postalText)

	_ = validate.RegisterValidation(emailTag, emailValidation)
	RegisterCustomTranslation(validate, translator, emailTag, emailText)

	_ = validate.RegisterValidation(dateTag, dateValidation)
	RegisterCustomTranslation(validate, translator, dateTag, dateText)

	_ = validate.RegisterValidation(clockTag, clockValidation)
	RegisterCustomTranslation(validate, translator, clockTag, clockText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Field predicates. An empty value is valid: "required" is a separate rule.

// IsValidPhone checks for exactly 9 digits once spaces are stripped.
func IsValidPhone(phone string) bool {
	if phone == "" {
		return true
	}
	cleaned := strings.ReplaceAll(phone, " ", "")
	return isDigits(cleaned) && len(cleaned) == 9
}

// IsValidNIF checks a Portuguese tax id: exactly 9 digits.
func IsValidNIF(nif string) bool {
	if nif == "" {
		return true
	}
	cleaned := CleanString(nif)
	return isDigits(cleaned) && len(cleaned) == 9
}

// IsValidPostalCode checks the XXXX-XXX format.
func IsValidPostalCode(pc string) bool {
	if pc == "" {
		return true
	}
	return postalRegex.MatchString(CleanString(pc))
}

// IsValidEmail checks a local-part@domain.tld shape, no whitespace.
func IsValidEmail(email string) bool {
	if email == "" {
		return true
	}
	return emailRegex.MatchString(CleanString(email))
}

// IsValidDate checks the DD/MM/YYYY boundary format.
func IsValidDate(s string) bool {
	if s == "" {
		return true
	}
	_, ok := ParseDate(s)
	return ok
}

// IsValidClock checks the HH:MM 24-hour boundary format.
func IsValidClock(s string) bool {
	if s == "" {
		return true
	}
	_, ok := ParseClock(s)
	return ok
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Custom Global Validators

func phoneValidation(fl validator.FieldLevel) bool {
	return IsValidPhone(fl.Field().String())
}

func nifValidation(fl validator.FieldLevel) bool {
	return IsValidNIF(fl.Field().String())
}

func postalValidation(fl validator.FieldLevel) bool {
	return IsValidPostalCode(fl.Field().String())
}

func emailValidation(fl validator.FieldLevel) bool {
	return IsValidEmail(fl.Field().String())
}

func dateValidation(fl validator.FieldLevel) bool {
	return IsValidDate(fl.Field().String())
}

func clockValidation(fl validator.FieldLevel) bool {
	return IsValidClock(fl.Field().String())
}
