package validation

import "github.com/go-playground/validator/v10"

// Length bounds enforced by the services on top of request binding.
var (
	// Username length bounds
	UsernameMinLength = 2
	UsernameMaxLength = 50

	// Group name length bounds
	GroupNameMinLength = 1
	GroupNameMaxLength = 100
)

var validate = validator.New()

// IsEmail reports whether the (already lower-cased) credential looks like an email.
func IsEmail(credential string) bool {
	return validate.Var(credential, "required,email") == nil
}
