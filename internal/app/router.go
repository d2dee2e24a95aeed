package app

import (
	"course_review_backend/docs"
	"course_review_backend/internal/config"
	"course_review_backend/internal/middleware"
	"course_review_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 1. public, no login required
	a.registerPublicRoutes(router, c, cfg)

	// 2. authenticated
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.POST("/reviews", c.review.CreateReview)
		authGroup.PUT("/reviews/:id", c.review.ModifyReview)
		authGroup.DELETE("/reviews/:id", c.review.DeleteReview)
		authGroup.POST("/files", c.file.Upload)
	}

	// 3. administrators
	a.registerAdminRoutes(router, c, cfg)
}

func (a *App) registerPublicRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	public := router.Group("/api")
	public.Use(middleware.TryAuthMiddleware(cfg))
	{
		public.GET("/health", c.health.HealthCheck)

		public.GET("/reviews", c.review.ListReviews)
		public.GET("/reviews/:id", c.review.GetReview)

		public.GET("/evaluations", c.evaluation.GetEvaluationByType)
		public.GET("/evaluations/:id", c.evaluation.GetEvaluation)
		public.GET("/evaluations/:id/questions", c.evaluation.ListQuestions)
	}
}

func (a *App) registerAdminRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware())
	{
		admin.POST("/evaluations", c.evaluation.CreateEvaluation)
		admin.POST("/evaluations/:id/questions", c.evaluation.CreateQuestion)
		admin.POST("/questions/:id/answers", c.evaluation.CreateAnswer)
	}
}
