package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/clipworks/video-portal-api/internal/config"
	"github.com/clipworks/video-portal-api/internal/handler"
	"github.com/clipworks/video-portal-api/internal/repository"
	"github.com/clipworks/video-portal-api/internal/server"
	"github.com/clipworks/video-portal-api/internal/usecase"
	"github.com/clipworks/video-portal-api/shared/auth"
	"github.com/clipworks/video-portal-api/shared/logger"
	"github.com/clipworks/video-portal-api/shared/mongodb"
	"github.com/clipworks/video-portal-api/shared/validator"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// A .env file is optional; real environments set variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	appLogger := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})

	ctx := context.Background()

	client, err := mongodb.Connect(ctx, cfg.Mongo.URI)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			appLogger.Error().Err(err).Msg("failed to disconnect from mongodb")
		}
	}()

	appLogger.Info().Str("database", config.DatabaseName).Msg("connected to mongodb")

	db := client.Database(config.DatabaseName)

	userRepo := repository.NewUserMongoRepository(db)
	fileRepo := repository.NewFileMongoRepository(db)
	tokenHistoryRepo := repository.NewTokenHistoryMongoRepository(db)
	sessionRepo := repository.NewSessionMongoRepository(db)

	jwtAuth := auth.NewJWTAuthenticator(cfg.Token.Secret, cfg.Token.Issuer)

	accountUsecase := usecase.NewAccountUsecase(userRepo, tokenHistoryRepo)
	videoUsecase := usecase.NewVideoUsecase(fileRepo, cfg.UploadRoot)
	adminUsecase := usecase.NewAdminUsecase(userRepo, fileRepo)
	authUsecase := usecase.NewAuthUsecase(userRepo, sessionRepo, jwtAuth, cfg.Token.ExpiresIn)

	validate, err := validator.New()
	if err != nil {
		return err
	}

	h := handler.New(handler.Dependencies{
		Logger:     appLogger,
		Validator:  validate,
		Account:    accountUsecase,
		Video:      videoUsecase,
		Admin:      adminUsecase,
		Auth:       authUsecase,
		UploadRoot: cfg.UploadRoot,
	})

	return server.New(cfg, appLogger, h, jwtAuth, authUsecase).Run()
}
