package utils

import (
	"errors"
	"reflect"
	"strings"
	"unicode"

	"Go-Receitas-API/domain"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	Validate = NewValidator()
}

// NewValidator returns a validator that reports json field names and knows
// the "password" and "bcrypt" rules.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// registration only fails on an empty tag or nil func
	_ = v.RegisterValidation("password", validatePassword)
	_ = v.RegisterValidation("bcrypt", validateBcryptLength)

	return v
}

// validatePassword requires at least one letter and one digit.
func validatePassword(fl validator.FieldLevel) bool {
	var hasLetter, hasDigit bool
	for _, r := range fl.Field().String() {
		switch {
		case unicode.IsLetter(r):
			hasLetter = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}
	return hasLetter && hasDigit
}

// bcrypt rejects passwords longer than 72 bytes, whatever their character count.
const maxBcryptBytes = 72

func validateBcryptLength(fl validator.FieldLevel) bool {
	return len(fl.Field().String()) <= maxBcryptBytes
}

// ValidationFields flattens validator errors into the response shape. It
// returns nil for errors that did not come from the validator.
func ValidationFields(err error) []domain.ValidationField {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	fields := make([]domain.ValidationField, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domain.ValidationField{
			Field: fieldPath(fe),
			Rule:  fe.Tag(),
			Param: fe.Param(),
		})
	}
	return fields
}

// fieldPath drops the top-level struct name from the namespace, so
// "RecipeRequest.ingredientes[2]" becomes "ingredientes[2]".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
