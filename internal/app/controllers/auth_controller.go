package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nmcleod/rollcall/internal/app/models/dto"
	"github.com/nmcleod/rollcall/internal/app/services"
	"github.com/nmcleod/rollcall/internal/middleware"
)

// AuthController handles login and identity endpoints
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login resolves or creates the user behind a credential and issues a token
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(middleware.FormatBindingError(err, "credential is required")))
		return
	}

	resp, err := c.authService.Login(ctx, req.Credential)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Me returns the identity behind the presented token
func (c *AuthController) Me(ctx *gin.Context) {
	resp, err := c.authService.Me(ctx, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// Logout acknowledges a logout. Tokens are stateless; the client discards its
// copy.
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Logged out"))
}
