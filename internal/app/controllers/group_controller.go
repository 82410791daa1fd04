package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nmcleod/rollcall/internal/app/models/dto"
	"github.com/nmcleod/rollcall/internal/app/services"
	"github.com/nmcleod/rollcall/internal/middleware"
)

// GroupController handles group and membership endpoints
type GroupController struct {
	groupService services.GroupService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService services.GroupService) *GroupController {
	return &GroupController{groupService: groupService}
}

// GetBySchool lists the caller's groups for one school
func (c *GroupController) GetBySchool(ctx *gin.Context) {
	resp, err := c.groupService.GetBySchool(ctx, middleware.UserID(ctx), ctx.Param("schoolId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GetUserGroups lists every group the caller owns, keyed by school
func (c *GroupController) GetUserGroups(ctx *gin.Context) {
	resp, err := c.groupService.GetAllByUser(ctx, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Create makes a group under a school on the caller's list
func (c *GroupController) Create(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.FormatBindingError(err, "school_id and group_name are required")))
		return
	}

	resp, err := c.groupService.Create(ctx, middleware.UserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Update renames a group
func (c *GroupController) Update(ctx *gin.Context) {
	var req dto.UpdateGroupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.FormatBindingError(err, "group_name is required")))
		return
	}

	if err := c.groupService.Rename(ctx, middleware.UserID(ctx), ctx.Param("groupId"), req.GroupName); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Group updated successfully"))
}

// Delete removes a group and purges members left without any group
func (c *GroupController) Delete(ctx *gin.Context) {
	if err := c.groupService.Delete(ctx, middleware.UserID(ctx), ctx.Param("groupId")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Group deleted successfully"))
}

// GetStudents lists a group's members
func (c *GroupController) GetStudents(ctx *gin.Context) {
	resp, err := c.groupService.GetStudents(ctx, middleware.UserID(ctx), ctx.Param("groupId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// GenerateStudents creates synthetic students inside a group
func (c *GroupController) GenerateStudents(ctx *gin.Context) {
	var req dto.GenerateStudentsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.FormatBindingError(err, "count is required")))
		return
	}

	resp, err := c.groupService.GenerateStudents(ctx, middleware.UserID(ctx), ctx.Param("groupId"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// RemoveStudent takes a student out of a group
func (c *GroupController) RemoveStudent(ctx *gin.Context) {
	err := c.groupService.RemoveStudent(ctx, middleware.UserID(ctx),
		ctx.Param("groupId"), ctx.Param("studentId"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Student removed from group"))
}
