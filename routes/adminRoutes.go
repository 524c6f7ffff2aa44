package routes

import (
	"github.com/gin-gonic/gin"

	"shomadhan-be/controllers"
	"shomadhan-be/middlewares"
	"shomadhan-be/models"
)

// AdminRoutes sets up the operator-only management routes
func AdminRoutes(r *gin.Engine) {
	admins := middlewares.RequireRole(models.RolePoliticianAdmin, models.RoleDeveloperAdmin)
	operators := middlewares.RequireRole(models.RoleAgent, models.RolePoliticianAdmin, models.RoleDeveloperAdmin)

	admin := r.Group("/api/admin", middlewares.AuthMiddleware())
	{
		agents := admin.Group("/agents", admins)
		{
			agents.GET("", controllers.GetAllAgents)
			agents.POST("", controllers.CreateAgent)
			agents.PATCH("/:id", controllers.UpdateAgent)
			agents.DELETE("/:id", controllers.DeleteAgent)
		}

		activities := admin.Group("/activities", operators)
		{
			activities.GET("", controllers.GetAllActivities)
			activities.POST("", controllers.CreateActivity)
			activities.PATCH("/:id", controllers.UpdateActivity)
			activities.DELETE("/:id", controllers.DeleteActivity)
		}

		admin.POST("/carousel", admins, controllers.AddCarouselImage)
	}

	r.GET("/api/stats", middlewares.AuthMiddleware(), operators, controllers.GetStats)
}
