package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/nmcleod/rollcall/internal/app/models/dto"
	"github.com/nmcleod/rollcall/internal/app/services"
	"github.com/nmcleod/rollcall/internal/middleware"
)

// SchoolController handles the school directory endpoints
type SchoolController struct {
	schoolService services.SchoolService
}

// NewSchoolController creates a new SchoolController
func NewSchoolController(schoolService services.SchoolService) *SchoolController {
	return &SchoolController{schoolService: schoolService}
}

// GetAll lists the whole directory
func (c *SchoolController) GetAll(ctx *gin.Context) {
	resp, err := c.schoolService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Refresh reloads the directory from the configured national-directory URL
func (c *SchoolController) Refresh(ctx *gin.Context) {
	resp, err := c.schoolService.Refresh(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Upload replaces the directory from an uploaded CSV file
func (c *SchoolController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("csvFile")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("No file uploaded"))
		return
	}

	if fileHeader.Size > c.schoolService.MaxUploadSize() {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("File too large"))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	isCSV := strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".csv") ||
		contentType == "text/csv" ||
		contentType == "application/vnd.ms-excel"
	if !isCSV {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Only CSV files are allowed"))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Failed to read uploaded file"))
		return
	}
	defer file.Close()

	resp, err := c.schoolService.ImportCSV(ctx, file)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// DeleteAll empties the directory
func (c *SchoolController) DeleteAll(ctx *gin.Context) {
	if err := c.schoolService.DeleteAll(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("All schools deleted"))
}
