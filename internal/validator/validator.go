// Package validator turns raw form input into field-keyed error messages.
//
// Every entity has one pure function (Cliente, Mascota, ...) that receives the
// resolved raw strings of a submission and returns an Errors map. Fields are
// checked independently so all problems are reported together; within a field
// the first failing rule wins, and a blank required field skips the rest of
// its rules.
package validator

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"unicode"

	playground "github.com/go-playground/validator/v10"
)

// Errors maps a form field name to a human-readable message. An empty map
// means the input is acceptable.
type Errors map[string]string

// Valid reports whether no field failed.
func (e Errors) Valid() bool { return len(e) == 0 }

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, k := range slices.Sorted(maps.Keys(e)) {
		parts = append(parts, fmt.Sprintf("%s: %s", k, e[k]))
	}
	return "validacion: " + strings.Join(parts, "; ")
}

// Validator accumulates field errors for one submission.
type Validator struct {
	Errors Errors
}

func New() *Validator {
	return &Validator{Errors: make(Errors)}
}

// AddError records key as failing with message. The first failure for a field
// is the one reported.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
	}
}

// Check adds an error for key only when ok is false.
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Required records message for a blank value and reports whether the value is
// present, so callers only run the format rules on submitted data:
//
//	if v.Required("price", d.Price, msg) { ... }
func (v *Validator) Required(key, value, message string) bool {
	if value == "" {
		v.AddError(key, message)
		return false
	}
	return true
}

// Max records a length error when value has more than n characters and
// reports whether it fits.
func (v *Validator) Max(key, value string, n int) bool {
	if Is(value, fmt.Sprintf("max=%d", n)) {
		return true
	}
	v.AddError(key, MsgLargoMaximo(n))
	return false
}

// tags runs single-value checks expressed as go-playground validator tags.
var tags = playground.New()

func init() {
	_ = tags.RegisterValidation("alphaspace", func(fl playground.FieldLevel) bool {
		for _, r := range fl.Field().String() {
			if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
				return false
			}
		}
		return true
	})
}

// Is reports whether value satisfies the validator tag, e.g. "number" or
// "startswith=54".
func Is(value, tag string) bool {
	return tags.Var(value, tag) == nil
}
