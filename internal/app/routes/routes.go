package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nmcleod/rollcall/internal/app/controllers"
	"github.com/nmcleod/rollcall/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	schoolController *controllers.SchoolController,
	mySchoolController *controllers.MySchoolController,
	groupController *controllers.GroupController,
	studentController *controllers.StudentController,
	astController *controllers.ASTController,
	authMiddleware *middleware.AuthMiddleware,
) {
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	v1 := router.Group("/api/v1")

	// --- Public routes ---
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
	}

	// The directory itself is public; mutating it is not.
	v1.GET("/schools", schoolController.GetAll)

	// --- Authenticated routes ---
	authenticated := v1.Group("")
	authenticated.Use(authMiddleware.JWTAuth())
	{
		authenticated.GET("/auth/me", authController.Me)
		authenticated.POST("/auth/logout", authController.Logout)

		schools := authenticated.Group("/schools")
		{
			schools.POST("/refresh", schoolController.Refresh)
			schools.POST("/upload", schoolController.Upload)
			schools.DELETE("", schoolController.DeleteAll)
		}

		mySchools := authenticated.Group("/my-schools")
		{
			mySchools.GET("", mySchoolController.List)
			mySchools.GET("/school-ids", mySchoolController.SchoolIDs)
			mySchools.GET("/check/:schoolId", mySchoolController.Check)
			mySchools.POST("/:schoolId", mySchoolController.Add)
			mySchools.DELETE("/:schoolId", mySchoolController.Remove)
		}

		groups := authenticated.Group("/groups")
		{
			groups.GET("/school/:schoolId", groupController.GetBySchool)
			groups.GET("/user", groupController.GetUserGroups)
			groups.POST("", groupController.Create)
			groups.PUT("/:groupId", groupController.Update)
			groups.DELETE("/:groupId", groupController.Delete)
			groups.GET("/:groupId/students", groupController.GetStudents)
			groups.POST("/:groupId/students/generate", groupController.GenerateStudents)
			groups.DELETE("/:groupId/students/:studentId", groupController.RemoveStudent)
		}

		students := authenticated.Group("/students")
		{
			students.GET("", studentController.GetAll)
			students.POST("/generate", studentController.Generate)
			students.PUT("/:studentId", studentController.Update)
			students.DELETE("", studentController.DeleteAll)
			students.GET("/ethnicity-codes", studentController.EthnicityCodes)
			students.GET("/language-codes", studentController.LanguageCodes)
		}

		ast := authenticated.Group("/ast")
		{
			ast.POST("/generate", astController.Generate)
			ast.POST("/download", astController.Download)
		}
	}
}
