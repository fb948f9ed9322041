package main

import (
	"DocKeeper/internal/auth"
	"DocKeeper/internal/config"
	"DocKeeper/internal/handlers"
	"DocKeeper/internal/middleware"
	"DocKeeper/internal/objstore"
	"DocKeeper/internal/repo"
	"DocKeeper/internal/service"
	"context"
	"net/http"
	"time"

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
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	blobStore, err := objstore.NewS3Store(ctx, cfg)
	if err != nil {
		sugar.Fatalw("failed to initialize object storage", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	cardRepo := repo.NewCardRepository(gormDB)

	tokens := auth.NewTokenManager(cfg.AuthSecret, time.Duration(cfg.TokenTTLMin)*time.Minute)

	userService := service.NewUserService(userRepo)
	cardService := service.NewCardService(cardRepo, blobStore, sugar)

	h := handlers.NewHandler(userService, cardService, tokens, sugar, cfg)

	addr := cfg.RunAddress

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"RunAddress", cfg.RunAddress,
		"S3Endpoint", cfg.S3Endpoint,
		"S3Bucket", cfg.S3Bucket,
		"TokenTTLMin", cfg.TokenTTLMin,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
