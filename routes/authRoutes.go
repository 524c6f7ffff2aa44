package routes

import (
	"github.com/gin-gonic/gin"

	"shomadhan-be/controllers"
	"shomadhan-be/middlewares"
)

// AuthRoutes sets up the citizen and operator authentication routes
func AuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", controllers.RegisterUser)
		auth.POST("/login", controllers.LoginUser)
		auth.GET("/me", middlewares.AuthMiddleware(), controllers.GetMe)
		auth.POST("/logout", controllers.LogoutUser)
	}

	r.POST("/api/admin/login", controllers.LoginAdmin)
	r.POST("/api/agent/login", controllers.LoginAgent)
}
