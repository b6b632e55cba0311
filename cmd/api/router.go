package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"skillax-backend/internal/shared/middleware"
	"skillax-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(c.Config.CORS.Origins),
	)

	api := router.Group("/api")
	{
		api.GET("/", rootStatusHandler)
		api.GET("/health", healthCheckHandler(c))

		setupPublicRoutes(api, c)
		setupAdminRoutes(api, c)
	}

	return router
}

func setupPublicRoutes(api *gin.RouterGroup, c *container.Container) {
	api.POST("/leads", c.LeadHandler.Create)
	api.POST("/contact", c.LeadHandler.SubmitContact)

	api.GET("/blogs", c.BlogHandler.ListPublished)
	api.GET("/blogs/:slug", c.BlogHandler.GetBySlug)

	api.GET("/courses", c.CourseHandler.ListActive)
	api.GET("/courses/:slug", c.CourseHandler.GetBySlug)

	api.POST("/admin/login", c.AdminHandler.Login)
	api.POST("/seed", c.AdminHandler.Seed)

	api.POST("/chat", c.ChatHandler.Send)
	api.POST("/track/pageview", c.TrackingHandler.Track)

	api.POST("/profiles", c.ProfileHandler.Create)
	api.GET("/profiles/:code", c.ProfileHandler.GetByCode)

	api.GET("/settings", c.SettingsHandler.Get)
}

func setupAdminRoutes(api *gin.RouterGroup, c *container.Container) {
	admin := api.Group("", middleware.RequireAdmin(c.JWTManager))
	{
		admin.GET("/leads", c.LeadHandler.List)
		admin.PATCH("/leads/:id/status", c.LeadHandler.UpdateStatus)
		admin.GET("/admin/leads/export", c.LeadHandler.Export)

		admin.GET("/admin/blogs", c.BlogHandler.ListAll)
		admin.POST("/blogs", c.BlogHandler.Create)
		admin.PUT("/blogs/:id", c.BlogHandler.Update)
		admin.PATCH("/blogs/:id/publish", c.BlogHandler.SetPublished)
		admin.DELETE("/blogs/:id", c.BlogHandler.Delete)

		admin.POST("/courses", c.CourseHandler.Create)
		admin.PUT("/courses/:id", c.CourseHandler.Update)
		admin.PATCH("/admin/courses/:id/status", c.CourseHandler.SetActive)

		admin.GET("/admin/me", c.AdminHandler.Me)

		admin.GET("/analytics/summary", c.AnalyticsHandler.Summary)
		admin.GET("/analytics/leads-by-source", c.AnalyticsHandler.LeadsBySource)
		admin.GET("/analytics/leads-by-interest", c.AnalyticsHandler.LeadsByInterest)
		admin.GET("/analytics/lead-conversion", c.AnalyticsHandler.LeadConversion)
		admin.GET("/analytics/page-views", c.AnalyticsHandler.PageViews)
		admin.GET("/analytics/top-pages", c.AnalyticsHandler.TopPages)
		admin.GET("/analytics/visitors-by-country", c.AnalyticsHandler.VisitorsByCountry)
		admin.GET("/analytics/profiles", c.AnalyticsHandler.Profiles)

		admin.GET("/admin/profiles", c.ProfileHandler.ListAll)
		admin.PUT("/admin/settings", c.SettingsHandler.Update)
		admin.POST("/admin/uploads", c.MediaHandler.Upload)
	}
}

func rootStatusHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Skillax Digital Marketing Academy API",
		"status":  "active",
	})
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 5*time.Second)
		defer cancel()

		status := http.StatusOK
		dbStatus := "up"
		if err := c.DB.HealthCheck(checkCtx); err != nil {
			dbStatus = "down"
			status = http.StatusServiceUnavailable
		}

		redisStatus := "up"
		if err := c.Cache.Ping(checkCtx); err != nil {
			redisStatus = "down"
			status = http.StatusServiceUnavailable
		}

		overall := "healthy"
		if status != http.StatusOK {
			overall = "degraded"
		}
		ctx.JSON(status, gin.H{
			"status":   overall,
			"database": dbStatus,
			"redis":    redisStatus,
			"db_pool":  c.DB.Stats(),
		})
	}
}
