package middleware

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FormatBindingError translates validator errors raised while binding a
// request body into the messages the API promises per endpoint. Errors that
// are not field validation failures (malformed JSON, wrong types) get the
// endpoint's fallback message.
func FormatBindingError(err error, fallback string) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fallback
	}
	return formatFieldError(fieldErrs[0])
}

func formatFieldError(e validator.FieldError) string {
	switch e.StructNamespace() {
	case "LoginRequest.Credential":
		return "credential is required"
	case "CreateGroupRequest.SchoolID":
		return "school_id and group_name are required"
	case "CreateGroupRequest.GroupName", "UpdateGroupRequest.GroupName":
		if e.Tag() == "max" {
			return fmt.Sprintf("group_name must be %s characters or less", e.Param())
		}
		return "group_name cannot be empty"
	case "GenerateStudentsRequest.Count":
		return "Count must be a number between 1 and 10000"
	case "ASTRequest.SchoolID", "ASTRequest.SchoolName":
		return "schoolId and schoolName are required"
	}

	switch e.Tag() {
	case "required":
		return e.Field() + " is required"
	case "min":
		return e.Field() + " must be at least " + e.Param()
	case "max":
		return e.Field() + " must be at most " + e.Param()
	case "email":
		return e.Field() + " must be a valid email address"
	default:
		return e.Field() + " validation failed: " + e.Tag()
	}
}
