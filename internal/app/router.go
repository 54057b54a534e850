package app

import (
	"training_portal_backend/internal/config"
	"training_portal_backend/internal/middleware"
	"training_portal_backend/internal/model"
	"training_portal_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user, repos.presence))
	{
		authGroup.GET("/profile", c.auth.GetProfile)

		authGroup.GET("/courses", c.course.GetAllCourses)
		authGroup.GET("/courses/:id", c.course.GetCourseByID)

		authGroup.PUT("/progress/:courseId", c.progress.UpdateProgress)
		authGroup.GET("/progress", c.progress.GetUserProgress)

		authGroup.GET("/badges", c.badge.GetUserBadges)

		// Instructor-or-admin reads on other users' progress.
		staff := authGroup.Group("/")
		staff.Use(middleware.RoleMiddleware(model.Instructor))
		{
			staff.GET("/courses/:id/progress/:userId", c.course.GetUserCourseProgress)
		}

		admin := authGroup.Group("/")
		admin.Use(middleware.RoleMiddleware(model.Admin))
		{
			admin.GET("/users", c.user.GetAllUsers)
			admin.GET("/badges/all", c.badge.GetAllBadges)
			admin.GET("/stats/dashboard", c.stats.GetDashboardStats)
			admin.GET("/stats/export", c.stats.ExportData)
		}
	}
}
