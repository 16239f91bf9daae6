package class

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/aposenior/gestao/core"
)

var (
	roomTag  = "room"
	roomText = "invalid room"

	weekdayTag  = "weekday_pt"
	weekdayText = "invalid day of week"

	levelTag  = "class_level"
	levelText = "invalid level"

	statusTag  = "class_status"
	statusText = "status must be Ativa or Inativa"
)

// RegisterValidators registers the class-specific validation tags.
func RegisterValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(roomTag, roomValidation)
	core.RegisterCustomTranslation(validate, translator, roomTag, roomText)

	_ = validate.RegisterValidation(weekdayTag, weekdayValidation)
	core.RegisterCustomTranslation(validate, translator, weekdayTag, weekdayText)

	_ = validate.RegisterValidation(levelTag, levelValidation)
	core.RegisterCustomTranslation(validate, translator, levelTag, levelText)

	_ = validate.RegisterValidation(statusTag, statusValidation)
	core.RegisterCustomTranslation(validate, translator, statusTag, statusText)
}

func roomValidation(fl validator.FieldLevel) bool {
	return core.OneOf(fl.Field().String(), Rooms)
}

func weekdayValidation(fl validator.FieldLevel) bool {
	return core.OneOf(fl.Field().String(), Weekdays)
}

func levelValidation(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "" || core.OneOf(v, Levels)
}

func statusValidation(fl validator.FieldLevel) bool {
	v := fl.Field().String()
	return v == "" || core.OneOf(v, Statuses)
}
