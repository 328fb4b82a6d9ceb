package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/SergeyBogomolovv/food-donation-service/internal/entities"
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// New возвращает валидатор с зарегистрированным тегом notblank
// и именами полей, взятыми из json-тегов.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", validators.NotBlank)
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// ToEntity переводит ошибки validator в *entities.ValidationError.
// Ошибки другого типа возвращаются как есть.
func ToEntity(err error) error {
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}

	res := &entities.ValidationError{
		Message: "invalid request",
		Fields:  make(map[string]string, len(ve)),
	}
	for _, fe := range ve {
		res.Fields[fe.Field()] = fe.Tag()
	}
	return res
}
