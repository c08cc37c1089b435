package validators

import (
	"reflect"
	"strings"

	"appointment-scheduler/cmd/internal/utils"
	"github.com/go-playground/validator/v10"
)

// New returns a validator that reports fields by their json name and knows
// the custom tags used by request structs.
func New() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)
	_ = validate.RegisterValidation("iso8601", IsIso8601)
	return validate
}

func IsIso8601(fl validator.FieldLevel) bool {
	if fl.Field().Kind() != reflect.String {
		return false
	}
	_, err := utils.ParseIso8601(fl.Field().String())
	return err == nil
}

func jsonName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
