package main

import (
  "context"
  "fmt"
  "os"

  "github.com/joho/godotenv"

  "github.com/hansik-dev/menuboard-backend/internal/app"
  "github.com/hansik-dev/menuboard-backend/internal/db"
  "github.com/hansik-dev/menuboard-backend/internal/handlers"
  "github.com/hansik-dev/menuboard-backend/internal/logger"
  "github.com/hansik-dev/menuboard-backend/internal/middleware"
  "github.com/hansik-dev/menuboard-backend/internal/observability"
  "github.com/hansik-dev/menuboard-backend/internal/repos"
  "github.com/hansik-dev/menuboard-backend/internal/server"
  "github.com/hansik-dev/menuboard-backend/internal/services"
)

const serviceName = "menuboard-backend"

func main() {
  godotenv.Load()

  // Logger
  logMode := os.Getenv("LOG_MODE")
  if logMode == "" {
    logMode = "development"
  }
  log, err := logger.New(logMode)
  if err != nil {
    fmt.Printf("Failed to init logger: %v\n", err)
    os.Exit(1)
  }
  defer log.Sync()

  // Config
  cfg := app.LoadConfig(log)

  // Tracing
  otelShutdown := observability.InitOTel(context.Background(), log, observability.OtelConfig{
    ServiceName: serviceName,
    Environment: cfg.Environment,
  })
  if otelShutdown != nil {
    defer otelShutdown(context.Background())
  }

  // Postgres
  postgresService, err := db.NewPostgresService(log)
  if err != nil {
    log.Error("Postgres init failed", "error", err)
    os.Exit(1)
  }
  if err = postgresService.AutoMigrateAll(); err != nil {
    log.Error("Postgres auto migration failed", "error", err)
    os.Exit(1)
  }
  thePG := postgresService.DB()

  // Repos
  log.Info("Setting up repos...")
  userRepo := repos.NewUserRepo(thePG, log)
  userTokenRepo := repos.NewUserTokenRepo(thePG, log)
  categoryRepo := repos.NewCategoryRepo(thePG, log)
  menuRepo := repos.NewMenuRepo(thePG, log)
  userEventRepo := repos.NewUserEventRepo(thePG, log)

  // Services
  log.Info("Setting up services...")
  authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
  categoryService := services.NewCategoryService(thePG, log, categoryRepo, userEventRepo)
  menuService := services.NewMenuService(thePG, log, categoryRepo, menuRepo, userRepo, userEventRepo)

  // Handlers
  log.Info("Setting up handlers...")
  authHandler := handlers.NewAuthHandler(authService)
  categoryHandler := handlers.NewCategoryHandler(categoryService)
  menuHandler := handlers.NewMenuHandler(menuService)

  // Middleware
  authMiddleware := middleware.NewAuthMiddleware(log, authService)

  // Router
  log.Info("Setting up router...")
  router := server.NewRouter(server.RouterConfig{
    ServiceName:     serviceName,
    AuthHandler:     authHandler,
    AuthMiddleware:  authMiddleware,
    CategoryHandler: categoryHandler,
    MenuHandler:     menuHandler,
  })

  log.Info("Server listening", "port", cfg.Port)
  if err := router.Run(":" + cfg.Port); err != nil {
    log.Error("Server failed", "error", err)
    os.Exit(1)
  }
}
