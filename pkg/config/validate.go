package config

import (
	stderrors "errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/hovertip/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(tomlName)
	_ = v.RegisterValidation("template", func(fl validator.FieldLevel) bool {
		return errors.ValidateTemplate(fl.Field().String()) == nil
	})
	_ = v.RegisterValidation("datefmt", func(fl validator.FieldLevel) bool {
		return errors.ValidateDateFormat(fl.Field().String()) == nil
	})
	return v
}

// Validate checks c and reports the first offending key.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !stderrors.As(err, &verrs) || len(verrs) == 0 {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "validate config")
	}
	fe := verrs[0]
	return errors.New(errors.ErrCodeInvalidConfig, "%s: %s", fe.Namespace(), describe(fe))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "template":
		return errors.UserMessage(errors.ValidateTemplate(fmt.Sprint(fe.Value())))
	case "datefmt":
		return errors.UserMessage(errors.ValidateDateFormat(fmt.Sprint(fe.Value())))
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "lte":
		return fmt.Sprintf("must be at most %s", fe.Param())
	}
	return fmt.Sprintf("failed %q", fe.Tag())
}

// tomlName reports fields by their file key so messages match what users
// wrote.
func tomlName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
	if name == "-" {
		return ""
	}
	return name
}
