// Package validate checks request bodies against their struct tags.
package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var v = newValidator()

// decimal is the literal form NUMERIC columns accept. ParseFloat alone also
// takes hex floats, underscores, "Inf" and exponents.
var decimal = regexp.MustCompile(`^(\d+(\.\d*)?|\.\d+)$`)

func newValidator() *validator.Validate {
	val := validator.New(validator.WithRequiredStructEnabled())
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})
	_ = val.RegisterValidation("fraction", fraction)
	return val
}

// fraction accepts decimal strings between 0 and 1 inclusive, e.g. "0.05".
func fraction(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if !decimal.MatchString(raw) {
		return false
	}
	f, err := strconv.ParseFloat(raw, 64)
	return err == nil && f >= 0 && f <= 1
}

// Struct validates s and returns a single error listing every failed field,
// or nil.
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, message(fe))
	}
	return errors.New(strings.Join(messages, ", "))
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be less than or equal to %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "numeric":
		return fmt.Sprintf("%s must be numeric", field)
	case "fraction":
		return fmt.Sprintf("%s must be a number between 0 and 1", field)
	case "lowercase":
		return fmt.Sprintf("%s must be lowercase", field)
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}
