package dto

import "github.com/nmcleod/rollcall/internal/app/models"

// CreateGroupRequest creates a group under a favorited school.
type CreateGroupRequest struct {
	SchoolID  string `json:"school_id" binding:"required"`
	GroupName string `json:"group_name" binding:"required,max=100"`
}

// UpdateGroupRequest renames a group.
type UpdateGroupRequest struct {
	GroupName string `json:"group_name" binding:"required,max=100"`
}

// GroupResponse wraps a single group.
type GroupResponse struct {
	Success bool          `json:"success"`
	Group   *models.Group `json:"group"`
}

// GroupListResponse is returned by GET /groups/school/:schoolId.
type GroupListResponse struct {
	Success bool           `json:"success"`
	Count   int            `json:"count"`
	Groups  []models.Group `json:"groups"`
}

// UserGroupsResponse is returned by GET /groups/user, keyed by school_id.
type UserGroupsResponse struct {
	Success bool                      `json:"success"`
	Total   int                       `json:"total"`
	Groups  map[string][]models.Group `json:"groups"`
}
