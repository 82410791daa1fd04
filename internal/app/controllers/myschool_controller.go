package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nmcleod/rollcall/internal/app/models/dto"
	"github.com/nmcleod/rollcall/internal/app/services"
	"github.com/nmcleod/rollcall/internal/middleware"
)

// MySchoolController handles a user's school list
type MySchoolController struct {
	favoriteService services.FavoriteService
}

// NewMySchoolController creates a new MySchoolController
func NewMySchoolController(favoriteService services.FavoriteService) *MySchoolController {
	return &MySchoolController{favoriteService: favoriteService}
}

// List returns the caller's schools joined with directory data
func (c *MySchoolController) List(ctx *gin.Context) {
	resp, err := c.favoriteService.List(ctx, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Add puts a school on the caller's list
func (c *MySchoolController) Add(ctx *gin.Context) {
	schoolID := ctx.Param("schoolId")

	if err := c.favoriteService.Add(ctx, middleware.UserID(ctx), schoolID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("School added to your list"))
}

// Remove takes a school off the caller's list
func (c *MySchoolController) Remove(ctx *gin.Context) {
	schoolID := ctx.Param("schoolId")

	if err := c.favoriteService.Remove(ctx, middleware.UserID(ctx), schoolID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("School removed from your list"))
}

// Check reports whether one school is on the caller's list
func (c *MySchoolController) Check(ctx *gin.Context) {
	resp, err := c.favoriteService.Check(ctx, middleware.UserID(ctx), ctx.Param("schoolId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// SchoolIDs returns the ids on the caller's list for batch checks
func (c *MySchoolController) SchoolIDs(ctx *gin.Context) {
	resp, err := c.favoriteService.SchoolIDs(ctx, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}
