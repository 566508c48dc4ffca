package server

import (
  "github.com/gin-contrib/cors"
  "github.com/gin-gonic/gin"
  "go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

  "github.com/hansik-dev/menuboard-backend/internal/handlers"
  "github.com/hansik-dev/menuboard-backend/internal/middleware"
)

type RouterConfig struct {
  ServiceName     string
  AuthHandler     *handlers.AuthHandler
  AuthMiddleware  *middleware.AuthMiddleware
  CategoryHandler *handlers.CategoryHandler
  MenuHandler     *handlers.MenuHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
  router := gin.Default()

  router.Use(cors.New(cors.Config{
    AllowOrigins: []string{
      "http://localhost:3000",
      "http://localhost:5173",
    },
    AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
    AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
    AllowCredentials: true,
  }))
  router.Use(otelgin.Middleware(cfg.ServiceName))

  router.GET("/healthcheck", handlers.HealthCheck)

  // Public reads and auth entry points.
  router.POST("/auth/register", cfg.AuthHandler.Register)
  router.POST("/auth/login", cfg.AuthHandler.Login)
  router.GET("/categories", cfg.CategoryHandler.List)
  router.GET("/categories/:categoryId/menus", cfg.MenuHandler.ListByCategory)
  router.GET("/categories/:categoryId/menus/:menuId", cfg.MenuHandler.GetByID)

  // Everything that mutates requires a token.
  protected := router.Group("/")
  protected.Use(cfg.AuthMiddleware.RequireAuth())
  protected.POST("/auth/refresh", cfg.AuthHandler.Refresh)
  protected.POST("/categories", cfg.CategoryHandler.Create)
  protected.PATCH("/categories/:categoryId", cfg.CategoryHandler.Update)
  protected.DELETE("/categories/:categoryId", cfg.CategoryHandler.Delete)
  protected.POST("/categories/:categoryId/menus", cfg.MenuHandler.Create)
  protected.PATCH("/categories/:categoryId/menus/:menuId", cfg.MenuHandler.Update)
  protected.DELETE("/categories/:categoryId/menus/:menuId", cfg.MenuHandler.Delete)

  return router
}
