package routes

import (
	"github.com/gin-gonic/gin"

	"shomadhan-be/controllers"
)

// PublicRoutes sets up the unauthenticated read endpoints for the home page
func PublicRoutes(r *gin.Engine) {
	r.GET("/api/catalogs", controllers.GetCatalogs)
	r.GET("/api/stats/public", controllers.GetPublicStats)
	r.GET("/api/activities/public", controllers.GetPublishedActivities)
	r.GET("/api/carousel", controllers.GetCarouselImages)
}
