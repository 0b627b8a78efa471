package dto

import (
	"errors"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	phonePattern   = regexp.MustCompile(`^\+91 \d{10}$`)
	potencyPattern = regexp.MustCompile(`^\d+[A-Za-z]+$`)
	measurePattern = regexp.MustCompile(`^\d+(ml|g)$`)
)

// NewValidator returns a validator with the application's custom rules
// registered: inphone (Indian phone format), potency (digits then letters),
// measure (digits then ml|g) and strongpw (mixed-class password).
func NewValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("inphone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("potency", func(fl validator.FieldLevel) bool {
		return potencyPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("measure", func(fl validator.FieldLevel) bool {
		return measurePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpw", func(fl validator.FieldLevel) bool {
		return isStrongPassword(fl.Field().String())
	})
	return v
}

// Go's regexp has no lookaheads, so the four character-class requirements are
// checked in a single pass instead.
func isStrongPassword(password string) bool {
	var lower, upper, digit, special bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}

// ValidationMessage flattens validator violations into the single joined
// message the API returns with a 400.
func ValidationMessage(err error) string {
	var violations validator.ValidationErrors
	if !errors.As(err, &violations) {
		return "Invalid request!"
	}
	messages := make([]string, 0, len(violations))
	for _, violation := range violations {
		messages = append(messages, fieldMessage(violation))
	}
	return strings.Join(messages, ", ")
}

func fieldMessage(violation validator.FieldError) string {
	field := violation.Field()
	switch violation.Tag() {
	case "email":
		return "Invalid email!"
	case "inphone":
		return "Phone number must be in the format +91 9876543210"
	case "potency":
		return "Invalid potency format. Expected format is numeric followed by letters (e.g., '30C', '200C', '1M', '10M')."
	case "measure":
		return "Invalid size format. Expected format is numeric followed by 'ml' or 'g' (e.g., '500ml', '200g')."
	case "strongpw":
		return "Password must contain at least one lowercase letter, one uppercase letter, one number, and one special character."
	case "min":
		switch field {
		case "Name":
			return "Name is too short"
		case "Password", "NewPassword":
			return "Password must be 8 characters long"
		}
	case "required":
		return field + " is required!"
	}
	return field + " is invalid!"
}
