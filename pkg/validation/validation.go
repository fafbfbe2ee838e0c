// Package validation wires the shared validator instance and turns its
// errors into the field-to-messages map the API exposes.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator configured for the domain entities: violation
// keys use the json field names so API clients can match them to payload
// fields directly.
func New() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	return v
}

// Violations flattens a validator error into a complete field-to-messages
// map. Non-validator errors yield a single catch-all entry so the caller
// always has something to render.
func Violations(err error) map[string][]string {
	out := make(map[string][]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		out["_"] = []string{err.Error()}
		return out
	}

	for _, fe := range verrs {
		field := violationField(fe)
		out[field] = append(out[field], violationMessage(fe))
	}
	return out
}

// violationField strips the struct prefix from the namespace, keeping
// nested paths such as medias[0].path.
func violationField(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This value should not be blank."
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("This value is too short. It should have %s characters or more.", fe.Param())
		}
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("This collection should contain %s elements or more.", fe.Param())
		}
		return fmt.Sprintf("This value should be %s or more.", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("This value is too long. It should have %s characters or less.", fe.Param())
		}
		return fmt.Sprintf("This value should be %s or less.", fe.Param())
	case "email":
		return "This value is not a valid email address."
	case "url":
		return "This value is not a valid URL."
	case "oneof":
		return fmt.Sprintf("This value should be one of: %s.", strings.Join(strings.Split(fe.Param(), " "), ", "))
	default:
		return fmt.Sprintf("This value failed the %q constraint.", fe.Tag())
	}
}
