package main

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"startup-nexus.backend/pkg/metrics"
)

const (
	serviceName    = "startup-nexus-backend"
	serviceVersion = "0.1.0"
)

// applyCORSMiddleware echoes allowed origins. An empty list or "*" allows any origin.
func applyCORSMiddleware(r *gin.Engine, allowed []string) {
	r.Use(func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" && (len(allowed) == 0 || slices.Contains(allowed, "*") || slices.Contains(allowed, origin)) {
			c.Header("Access-Control-Allow-Origin", origin)
			c.Header("Access-Control-Allow-Credentials", "true")
			c.Header("Vary", "Origin")
		}
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Session-Id, X-Request-ID, Idempotency-Key")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func registerHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
			"version": serviceVersion,
		})
	})
}

func registerMetricsRoute(r *gin.Engine, reg *metrics.Registry) {
	r.GET("/metrics", gin.WrapH(reg.Handler()))
}
