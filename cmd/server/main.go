package main

import (
	"log"
	"net/http"

	_ "foodhub/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"foodhub/internal/auth"
	"foodhub/internal/cache"
	"foodhub/internal/config"
	"foodhub/internal/db"
	"foodhub/internal/handler"
	"foodhub/internal/model"
	"foodhub/internal/repository"
	"foodhub/internal/router"
	"foodhub/internal/service"
)

// @title FoodHub Account API
// @version 1.0
// @description User account backend: registration, login, profile, profile image upload, and a per-user food list.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey TokenAuth
// @in header
// @name authorization
// @description Raw access token, no Bearer scheme.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.FoodList{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	foodListRepo := repository.NewFoodListRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	profileService := service.NewProfileService(userRepo, cacheClient, cfg.UploadDir)
	foodListService := service.NewFoodListService(foodListRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	foodListHandler := handler.NewFoodListHandler(foodListService)

	// Register routes
	router.Register(
		e,
		cfg,
		jwtService,
		authHandler,
		profileHandler,
		foodListHandler,
	)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
