package validator

import (
	"errors"
	"strings"
	"unicode"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required":   "{field} is required",
		"gte":        "{field} must be greater than or equal to {param}",
		"lte":        "{field} must be less than or equal to {param}",
		"oneof":      "{field} must be one of {param}",
		"max":        "{field} must be less than or equal to {param}",
		"min":        "{field} must be greater than or equal to {param}",
		"email":      "{field} must be a valid email address",
		"uuid":       "{field} must be a valid UUID",
		"gtfield":    "{field} must be after {param}",
		"nefield":    "{field} must differ from {param}",
		"unique":     "{field} must not contain duplicates",
		"seatnumber": "{field} must be 1-3 digits followed by an uppercase letter",
		"datetime":   "{field} must match the format {param}",
	}
)

// message renders the first failing rule of err as a client-facing sentence.
func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			errStr := messages[valErr.Tag()]
			if errStr == "" {
				continue
			}

			param := valErr.Param()
			if strings.HasSuffix(valErr.Tag(), "field") {
				param = snakeCase(param)
			}

			errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
			errStr = strings.ReplaceAll(errStr, "{param}", param)

			return errStr
		}

		return valErrors.Error()
	}

	return err.Error()
}

// snakeCase turns a Go field name such as OriginAirportID into origin_airport_id.
func snakeCase(name string) string {
	runes := []rune(name)

	var b strings.Builder

	for i, r := range runes {
		if unicode.IsUpper(r) {
			prevLower := i > 0 && unicode.IsLower(runes[i-1])
			nextLower := i > 0 && i+1 < len(runes) && unicode.IsLower(runes[i+1])

			if prevLower || nextLower {
				b.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		b.WriteRune(r)
	}

	return b.String()
}
