package validator

import (
	"airline/shared/failure"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	validate = val.New(val.WithRequiredStructEnabled())

	seatNumberPattern = regexp.MustCompile(`^[0-9]{1,3}[A-Z]$`)
)

// IsSeatNumber reports whether s is 1-3 digits followed by one uppercase letter, e.g. "12A".
func IsSeatNumber(s string) bool {
	return seatNumberPattern.MatchString(s)
}

func init() {
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		if name == "" {
			return field.Name
		}

		return name
	})

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		return fl.Field().IsZero()
	})
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("seatnumber", func(fl val.FieldLevel) bool {
		return IsSeatNumber(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}
}

// Validate decodes JSON from r into data and then validates it.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	if err := Decode(r, data); err != nil {
		return err
	}

	return ValidateStruct(data)
}

// Decode reads JSON from r into data without validating it.
func Decode[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)
	if err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
