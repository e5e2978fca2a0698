package validation

import (
	"regexp"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	// E164-like phone: optional +, digits 7-15 length
	phoneRegex = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

	// http(s) URLs only; rejects javascript: and friends
	linkRegex = regexp.MustCompile(`^https?://\S+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("http_url", HTTPURL)
	_ = v.RegisterValidation("future_date", FutureDate)
}

// ValidPhone validates a phone number structure
func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return phoneRegex.MatchString(val)
}

// HTTPURL validates that a string is an absolute http(s) URL
func HTTPURL(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return linkRegex.MatchString(val)
}

// FutureDate validates that a time.Time field is strictly in the future.
// Zero values pass so the tag composes with optional fields.
func FutureDate(fl validator.FieldLevel) bool {
	t, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	if t.IsZero() {
		return true
	}
	return t.After(time.Now())
}
