package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/ecotoken/platform-api/internal/apperr"
	"github.com/ecotoken/platform-api/internal/application/services"
	"github.com/ecotoken/platform-api/internal/config"
	"github.com/ecotoken/platform-api/internal/delivery/handler"
	"github.com/ecotoken/platform-api/internal/delivery/middleware"
	"github.com/ecotoken/platform-api/internal/infrastructure"
	"github.com/ecotoken/platform-api/internal/infrastructure/db/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
	cfg := config.Load()

	db, err := postgres.Open(cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("connect database: %v", err)
	}
	if err := postgres.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	redisClient, err := infrastructure.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("connect redis: %v", err)
	}
	defer redisClient.Close()

	// infrastructure
	jwtService := infrastructure.NewJWTService(cfg.AdminJWTSecret, cfg.UserJWTSecret, cfg.SessionTTL)
	selections := infrastructure.NewRedisSiteSelectionStore(redisClient)
	mailer := infrastructure.NewMailer(cfg.EmailAPIKey, cfg.EmailSender)

	// repositories
	users := postgres.NewUserRepository(db)
	roles := postgres.NewRoleRepository(db)
	sites := postgres.NewSiteRepository(db)
	locations := postgres.NewLocationRepository(db)
	projects := postgres.NewProjectRepository(db)
	admins := postgres.NewAdminUserRepository(db)

	// services
	userService := services.NewUserService(users, roles, mailer)
	siteService := services.NewSiteService(sites, selections)
	locationService := services.NewLocationService(locations)
	projectService := services.NewProjectService(projects)
	authService := services.NewAuthService(admins, users, jwtService)

	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = apperr.HTTPErrorHandler
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())

	loginLimiter := middleware.NewRateLimiter(cfg.LoginRatePerMinute, cfg.LoginBurst)

	handler.Register(e, handler.Handlers{
		Auth:      handler.NewAuthHandler(authService, cfg.SessionTTL),
		Users:     handler.NewUserHandler(userService),
		Sites:     handler.NewSiteHandler(siteService),
		Locations: handler.NewLocationHandler(locationService),
		Projects:  handler.NewProjectHandler(projectService),
	},
		middleware.ResolveSessions(jwtService, sites),
		middleware.RequireAdmin(selections),
		middleware.RequireUser(),
		loginLimiter.Middleware(),
	)

	go func() {
		if err := e.Start(cfg.HTTPAddr); err != nil {
			log.Printf("server stopped: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("shutdown: %v", err)
	}
}
