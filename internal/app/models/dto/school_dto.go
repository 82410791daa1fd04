package dto

import "github.com/nmcleod/rollcall/internal/app/models"

// SchoolListResponse is returned by GET /schools.
type SchoolListResponse struct {
	Schools []models.School `json:"schools"`
	Count   int             `json:"count"`
}

// SchoolImportResponse is returned by the refresh and upload endpoints.
type SchoolImportResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Count   int    `json:"count"`
}

// FavoriteListResponse is returned by GET /my-schools.
type FavoriteListResponse struct {
	Success bool                    `json:"success"`
	Count   int                     `json:"count"`
	Schools []models.FavoriteSchool `json:"schools"`
}

// FavoriteCheckResponse is returned by GET /my-schools/check/:schoolId.
type FavoriteCheckResponse struct {
	Success  bool `json:"success"`
	IsInList bool `json:"isInList"`
}

// SchoolIDsResponse is returned by GET /my-schools/school-ids for batch checks.
type SchoolIDsResponse struct {
	Success   bool     `json:"success"`
	SchoolIDs []string `json:"schoolIds"`
}
