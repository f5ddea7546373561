package main

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/internal/shared/middleware"
	"github.com/gabriotz/Desafio-Backend-Sistema-de-Biblioteca-Digital/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", healthCheckHandler(c))

		setupUserRoutes(v1, c)
		setupAuthorRoutes(v1, c)
		setupMaterialRoutes(v1, c)
	}

	return router
}

func setupUserRoutes(v1 *gin.RouterGroup, c *container.Container) {
	users := v1.Group("/users")
	{
		users.POST("/register", c.UserHandler.Register)
		users.POST("/login", c.UserHandler.Login)
		users.GET("/profile", middleware.AuthMiddleware(c.JWTManager), c.UserHandler.GetProfile)
	}
}

func setupAuthorRoutes(v1 *gin.RouterGroup, c *container.Container) {
	authors := v1.Group("/authors")
	authors.Use(middleware.AuthMiddleware(c.JWTManager))
	{
		authors.POST("", c.AuthorHandler.Create)
	}
}

func setupMaterialRoutes(v1 *gin.RouterGroup, c *container.Container) {
	materials := v1.Group("/materials")
	{
		// Public read paths
		materials.GET("", c.MaterialHandler.List)
		materials.GET("/:id", c.MaterialHandler.GetByID)

		// Mutations require an authenticated user
		auth := materials.Group("")
		auth.Use(middleware.AuthMiddleware(c.JWTManager))
		{
			auth.POST("", c.MaterialHandler.Create)
			auth.PATCH("/:id", c.MaterialHandler.Update)
			auth.DELETE("/:id", c.MaterialHandler.Delete)
		}
	}
}

// healthCheckHandler reports service status plus database and cache health
func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "up"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "down"
		}

		cacheStatus := "up"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		if dbStatus == "down" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":      "ok",
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
			"timestamp":   time.Now().UTC().Format(time.RFC3339),
			"database":    dbStatus,
			"cache":       cacheStatus,
		})
	}
}
