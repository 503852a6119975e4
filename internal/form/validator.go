package form

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Field names a form input. Values match the JSON names used by the API.
type Field string

const (
	FieldSongID       Field = "songId"
	FieldTitle        Field = "title"
	FieldBody         Field = "body"
	FieldRating       Field = "rating"
	FieldAgreeToTerms Field = "agreeToTerms"
)

// Errors maps a field to its error message. A valid form has no entries.
type Errors map[Field]string

// Valid reports whether no field has an error.
func (e Errors) Valid() bool {
	return len(e) == 0
}

// Get returns the message for f, or "".
func (e Errors) Get(f Field) string {
	return e[f]
}

// Has reports whether f has an error.
func (e Errors) Has(f Field) bool {
	_, ok := e[f]
	return ok
}

var validate = newValidator()

// newValidator builds the rule engine shared by every form.
//
// Besides the stock rules it registers:
//   - notblank: non-empty after trimming whitespace
//   - trimmin=N: at least N characters after trimming
//   - trimmax=N: at most N characters after trimming
//
// Field names in errors come from the json tag.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("trimmin", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		return err == nil && trimmedLen(fl.Field().String()) >= n
	})
	_ = v.RegisterValidation("trimmax", func(fl validator.FieldLevel) bool {
		n, err := strconv.Atoi(fl.Param())
		return err == nil && trimmedLen(fl.Field().String()) <= n
	})

	return v
}

func trimmedLen(s string) int {
	return utf8.RuneCountInString(strings.TrimSpace(s))
}

// check validates s and translates each failing rule through messages,
// which is keyed by "field.rule". Only the first failing rule of a field is
// reported.
func check(s any, messages map[string]string) Errors {
	out := Errors{}

	err := validate.Struct(s)
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable on a programming error (non-struct input).
		panic(err)
	}

	for _, fe := range verrs {
		field := Field(fe.Field())
		if out.Has(field) {
			continue
		}
		msg, ok := messages[string(field)+"."+fe.Tag()]
		if !ok {
			msg = messages[string(field)]
		}
		out[field] = msg
	}
	return out
}
