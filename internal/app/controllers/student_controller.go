package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nmcleod/rollcall/internal/app/models/dto"
	"github.com/nmcleod/rollcall/internal/app/services"
	"github.com/nmcleod/rollcall/internal/middleware"
)

// StudentController handles the flat roster endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{studentService: studentService}
}

// GetAll lists every student
func (c *StudentController) GetAll(ctx *gin.Context) {
	resp, err := c.studentService.GetAll(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Generate creates a batch of synthetic students outside any group
func (c *StudentController) Generate(ctx *gin.Context) {
	var req dto.GenerateStudentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.FormatBindingError(err, "count is required")))
		return
	}

	resp, err := c.studentService.Generate(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Update applies a partial edit to one student
func (c *StudentController) Update(ctx *gin.Context) {
	var req dto.UpdateStudentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid request body"))
		return
	}

	if err := c.studentService.Update(ctx, ctx.Param("studentId"), req); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student updated successfully"))
}

// DeleteAll empties the roster
func (c *StudentController) DeleteAll(ctx *gin.Context) {
	if err := c.studentService.DeleteAll(ctx); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("All students deleted"))
}

// EthnicityCodes returns the static ethnicity reference table
func (c *StudentController) EthnicityCodes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.studentService.EthnicityCodes())
}

// LanguageCodes returns the static language reference table
func (c *StudentController) LanguageCodes(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.studentService.LanguageCodes())
}
