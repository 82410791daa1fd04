package dto

import (
	"encoding/json"

	"github.com/nmcleod/rollcall/internal/app/models"
)

// GenerateOptions are the optional synthetic-generation knobs.
type GenerateOptions struct {
	// LastNameSuffix is appended to every generated last name.
	LastNameSuffix string `json:"last_name_suffix"`
	// Level fixes the year label for the whole batch when non-empty.
	Level string `json:"level"`
	// InvalidNSNs is how many records receive a deliberately bad check digit.
	InvalidNSNs int `json:"invalid_nsns"`
}

// GenerateStudentsRequest asks for a batch of synthetic students.
type GenerateStudentsRequest struct {
	Count   int              `json:"count" binding:"required,min=1,max=10000"`
	Options *GenerateOptions `json:"options"`
}

// StudentListResponse is returned by student listing and generation endpoints.
type StudentListResponse struct {
	Success  bool             `json:"success"`
	Count    int              `json:"count"`
	Students []models.Student `json:"students"`
}

// UpdateStudentRequest is decoded as a raw field map so unknown field names
// can be rejected rather than silently dropped.
type UpdateStudentRequest map[string]json.RawMessage

// Code is a static reference-data entry (ethnicity or language).
type Code struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

// CodeListResponse is returned by the reference-data endpoints.
type CodeListResponse struct {
	Success bool   `json:"success"`
	Codes   []Code `json:"codes"`
}
