package requestresponse

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// в ошибках используем имена полей из json-тегов
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate : проверяет DTO по тегам validate и возвращает читаемое описание ошибок
func Validate(request interface{}) error {
	err := validate.Struct(request)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s: failed on '%s'", fieldErr.Field(), fieldErr.Tag()))
	}
	return errors.New(strings.Join(fields, "; "))
}
