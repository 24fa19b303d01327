package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"datamarket/docs"
	"datamarket/internal/auth"
	"datamarket/internal/cache"
	"datamarket/internal/config"
	"datamarket/internal/db"
	"datamarket/internal/handler"
	"datamarket/internal/logger"
	"datamarket/internal/repository"
	"datamarket/internal/router"
	"datamarket/internal/service"
)

// @title Data Marketplace User API
// @version 1.0
// @description User accounts for the AI + Blockchain Data Marketplace: signup, login and CRUD with JWT authentication.
// @host localhost:5000
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}
	if err := logger.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		logrus.Fatalf("setup logger: %v", err)
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN)
	if err != nil {
		logrus.Fatalf("database init: %v", err)
	}

	if cfg.ResetDB {
		logrus.Warn("RESET_DB=true detected, dropping all tables")
		if err := db.Reset(gormDB); err != nil {
			logrus.Warnf("drop tables (may not exist): %v", err)
		}
	}
	if err := db.Migrate(gormDB); err != nil {
		logrus.Fatalf("migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		logrus.WithError(err).Warn("redis unreachable, serving without cache")
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	healthRepo := repository.NewHealthRepository(gormDB)

	// Initialize auth components
	hasher := auth.NewBcryptHasher(cfg.BcryptCost)
	jwtService := auth.NewJWTService(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, hasher, jwtService)
	userService := service.NewUserService(userRepo, hasher, cacheClient)
	statusService := service.NewStatusService(healthRepo)

	e := echo.New()
	e.HideBanner = true

	router.Register(
		e,
		jwtService,
		handler.NewAuthHandler(authService, userService),
		handler.NewUserHandler(userService),
		handler.NewHealthHandler(statusService),
	)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "http://"), "https://")
	}
	logrus.Infof("Swagger documentation available at: http://%s/swagger/index.html", docs.SwaggerInfo.Host)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		addr := ":" + cfg.ServerPort
		logrus.Infof("server listening on %s", addr)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatalf("server start: %v", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("server shutdown")
	}
}
