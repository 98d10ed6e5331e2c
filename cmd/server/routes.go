package main

import (
	"github.com/gin-gonic/gin"
	"startup-nexus.backend/internal/domain/entities"
	"startup-nexus.backend/internal/interfaces/http/handlers"
	"startup-nexus.backend/internal/interfaces/http/middleware"
)

type routeDeps struct {
	authHandler        *handlers.AuthHandler
	jobHandler         *handlers.JobHandler
	investorHandler    *handlers.InvestorHandler
	applicationHandler *handlers.ApplicationHandler
	startupHandler     *handlers.StartupHandler
	preferenceHandler  *handlers.PreferenceHandler
	checkoutHandler    *handlers.CheckoutHandler
	adminHandler       *handlers.AdminHandler
	authMiddleware     gin.HandlerFunc
	optionalAuth       gin.HandlerFunc
	rateLimit          gin.HandlerFunc
}

func registerAPIV1Routes(r *gin.Engine, d routeDeps) {
	if d.optionalAuth == nil {
		d.optionalAuth = func(c *gin.Context) { c.Next() }
	}
	if d.rateLimit == nil {
		d.rateLimit = func(c *gin.Context) { c.Next() }
	}
	startupOrAdmin := middleware.RequireRole(entities.UserRoleStartup, entities.UserRoleAdmin)

	v1 := r.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/signup", d.rateLimit, d.authHandler.Signup)
			auth.POST("/login", d.rateLimit, d.authHandler.Login)
			auth.POST("/refresh", d.rateLimit, d.authHandler.Refresh)
			auth.POST("/logout", d.authHandler.Logout)
			auth.GET("/me", d.authMiddleware, d.authHandler.Me)
		}

		// Job board (public read)
		jobs := v1.Group("/jobs")
		{
			jobs.GET("", d.jobHandler.ListPublicJobs)
			jobs.GET("/:id", d.jobHandler.GetPublicJob)
			jobs.POST("/:id/applications", d.rateLimit, d.optionalAuth, d.applicationHandler.Apply)
		}

		// Job management (startups and admins)
		jobsManage := v1.Group("/jobs")
		jobsManage.Use(d.authMiddleware, startupOrAdmin)
		{
			jobsManage.POST("", d.jobHandler.CreateJob)
			jobsManage.PUT("/:id", d.jobHandler.UpdateJob)
			jobsManage.DELETE("/:id", d.jobHandler.DeleteJob)
			jobsManage.GET("/:id/applications", d.applicationHandler.ListJobApplications)
		}

		v1.PUT("/applications/:id/status", d.authMiddleware, startupOrAdmin, d.applicationHandler.UpdateStatus)

		// Investor directory
		investors := v1.Group("/investors")
		{
			investors.GET("", d.investorHandler.ListPublicInvestors)
			investors.POST("", d.rateLimit, d.investorHandler.CreateInvestor)
		}

		// Public startups
		startups := v1.Group("/startups")
		{
			startups.GET("", d.startupHandler.ListStartups)
			startups.GET("/:id", d.startupHandler.GetStartup)
		}

		// Startup dashboard
		dashboard := v1.Group("/dashboard")
		dashboard.Use(d.authMiddleware)
		{
			dashboard.GET("/jobs", startupOrAdmin, d.jobHandler.ListMyJobs)
			dashboard.GET("/applications", middleware.RequireRole(entities.UserRoleStartup), d.applicationHandler.ListStartupApplications)
			dashboard.GET("/startup", middleware.RequireRole(entities.UserRoleStartup), d.startupHandler.GetMyStartup)
			dashboard.PUT("/startup", middleware.RequireRole(entities.UserRoleStartup), d.startupHandler.SaveMyStartup)
		}

		// Logged-in user routes
		me := v1.Group("/me")
		me.Use(d.authMiddleware)
		{
			me.GET("/applications", d.applicationHandler.ListMyApplications)
		}

		settings := v1.Group("/settings")
		settings.Use(d.authMiddleware)
		{
			settings.GET("/language", d.preferenceHandler.GetLanguage)
			settings.PUT("/language", d.preferenceHandler.SetLanguage)
		}

		checkout := v1.Group("/checkout")
		checkout.Use(d.authMiddleware)
		{
			checkout.POST("", middleware.IdempotencyMiddleware(), d.checkoutHandler.CreateCheckout)
			checkout.GET("/:id", d.checkoutHandler.GetCheckout)
			checkout.POST("/:id/cancel", d.checkoutHandler.CancelCheckout)
		}

		// Admin routes (protected)
		admin := v1.Group("/admin")
		admin.Use(d.authMiddleware, middleware.RequireAdmin())
		{
			admin.GET("/moderation", d.adminHandler.ModerationQueue)

			admin.GET("/jobs", d.jobHandler.ListAllJobs)
			admin.PUT("/jobs/:id/moderation", d.jobHandler.ModerateJob)

			admin.GET("/investors", d.investorHandler.ListAllInvestors)
			admin.PUT("/investors/:id/moderation", d.investorHandler.ModerateInvestor)
			admin.DELETE("/investors/:id", d.investorHandler.DeleteInvestor)

			admin.GET("/users", d.adminHandler.ListUsers)
			admin.POST("/users/cleanup", d.adminHandler.CleanupFakeUsers)
			admin.POST("/users/:id/ban", d.adminHandler.ToggleBan)
			admin.DELETE("/users/:id", d.adminHandler.DeleteUser)

			admin.DELETE("/purge/:collection", d.adminHandler.Purge)
			admin.GET("/stats", d.adminHandler.Stats)
		}
	}
}
