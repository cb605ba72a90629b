package validator

import (
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cellmap-service/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("location", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseLocation(fl.Field().String())
		return err == nil
	})
	_ = validate.RegisterValidation("metric", func(fl validator.FieldLevel) bool {
		_, err := domain.ParseMetric(fl.Field().String())
		return err == nil
	})
}

// Validate - валидация структуры
func Validate(s interface{}) error {
	return validate.Struct(s)
}

// FailedFields - имена полей (json-теги не учитываются), не прошедших валидацию
func FailedFields(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return fields
}
