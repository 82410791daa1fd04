package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nmcleod/rollcall/internal/app/models/dto"
	"github.com/nmcleod/rollcall/internal/app/services"
	"github.com/nmcleod/rollcall/internal/middleware"
)

// ASTController handles AST CSV exports
type ASTController struct {
	astService services.ASTService
}

// NewASTController creates a new ASTController
func NewASTController(astService services.ASTService) *ASTController {
	return &ASTController{astService: astService}
}

func (c *ASTController) export(ctx *gin.Context) *services.ASTExport {
	var req dto.ASTRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.FormatBindingError(err, "schoolId and schoolName are required")))
		return nil
	}

	result, err := c.astService.Export(ctx, middleware.UserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return nil
	}

	return result
}

// Generate returns the AST CSV inline
func (c *ASTController) Generate(ctx *gin.Context) {
	result := c.export(ctx)
	if result == nil {
		return
	}

	ctx.Data(http.StatusOK, "text/csv", []byte(result.Content))
}

// Download returns the AST CSV as an attachment with a dated filename
func (c *ASTController) Download(ctx *gin.Context) {
	result := c.export(ctx)
	if result == nil {
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	ctx.Data(http.StatusOK, "text/csv", []byte(result.Content))
}
