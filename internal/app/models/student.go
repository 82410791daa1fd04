package models

// Student is a roster entry, usually synthetic. NSN is a 9-digit checksummed
// identifier, globally unique.
type Student struct {
	StudentID string `json:"student_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Level     string `json:"level"`
	Ethnicity string `json:"ethnicity"`
	Gender    string `json:"gender"`
	NSN       string `json:"nsn"`
	Language  string `json:"language,omitempty"`
}
