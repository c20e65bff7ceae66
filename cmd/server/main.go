package main

import (
	"context"
	"net/http"

	"ibdesk/internal/backoffice"
	"ibdesk/internal/config"
	"ibdesk/internal/handlers"
	"ibdesk/internal/middleware"
	"ibdesk/internal/repo"
	"ibdesk/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar)
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN, cfg.UserDBPath)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	auditRepo := repo.NewAuditRepository(gormDB)
	userService := service.NewUserService(userRepo)
	auditService := service.NewAuditService(auditRepo, sugar)

	// на пустой базе заводим стартовые учётки операторов
	if err := userService.Seed(ctx, service.DefaultSeedUsers); err != nil {
		sugar.Fatalw("failed to seed users", "error", err)
	}

	boClient := backoffice.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, sugar)

	h := handlers.NewHandler(userService, auditService, boClient, sugar, cfg)

	sugar.Infow("Starting server",
		"addr", cfg.ListenAddr,
	)
	sugar.Infow("Config",
		"ListenAddr", cfg.ListenAddr,
		"APIBaseURL", cfg.APIBaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
	)

	if err := http.ListenAndServe(cfg.ListenAddr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
