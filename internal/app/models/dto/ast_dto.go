package dto

// ASTRequest selects the school (and optionally one group) to export.
type ASTRequest struct {
	SchoolID   string `json:"schoolId" binding:"required"`
	SchoolName string `json:"schoolName" binding:"required"`
	GroupID    string `json:"groupId"`
}
