package routes

import (
	"github.com/gin-gonic/gin"

	"shomadhan-be/controllers"
	"shomadhan-be/middlewares"
	"shomadhan-be/models"
)

// ComplaintRoutes sets up the complaint lifecycle routes. Submission and
// tracking are public; transitions and the browse view are operator-only.
func ComplaintRoutes(r *gin.Engine) {
	complaint := r.Group("/api/complaints")
	{
		complaint.POST("",
			middlewares.OptionalAuthMiddleware(),
			middlewares.ComplaintRateLimiter(5),
			controllers.SubmitComplaint)

		complaint.GET("/user", middlewares.AuthMiddleware(), controllers.GetUserComplaints)

		complaint.GET("",
			middlewares.AuthMiddleware(),
			middlewares.RequireRole(models.RoleAgent, models.RolePoliticianAdmin, models.RoleDeveloperAdmin),
			controllers.GetAllComplaints)

		complaint.GET("/:trackingId", controllers.TrackComplaint)

		complaint.PATCH("/:trackingId/status",
			middlewares.AuthMiddleware(),
			controllers.UpdateComplaintStatus)
	}
}
