package models

// School represents one school directory entry. The whole table is replaced on
// each directory import.
type School struct {
	ID          int64  `json:"id"`
	SchoolID    string `json:"school_id"`
	SchoolName  string `json:"school_name"`
	Address     string `json:"address,omitempty"`
	Suburb      string `json:"suburb,omitempty"`
	Town        string `json:"town,omitempty"`
	Postcode    string `json:"postcode,omitempty"`
	Phone       string `json:"phone,omitempty"`
	Email       string `json:"email,omitempty"`
	Website     string `json:"website,omitempty"`
	Principal   string `json:"principal,omitempty"`
	SchoolType  string `json:"school_type,omitempty"`
	Authority   string `json:"authority,omitempty"`
	Decile      int    `json:"decile"`
	RollNumber  int    `json:"roll_number"`
	Gender      string `json:"gender,omitempty"`
	IsPrimary   bool   `json:"is_primary"`
	IsSecondary bool   `json:"is_secondary"`
	IsComposite bool   `json:"is_composite"`
	OrgCode     string `json:"org_code,omitempty"`
	Takiwa      string `json:"takiwa,omitempty"`
	LocalBody   string `json:"local_body,omitempty"`
}
