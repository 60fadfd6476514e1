// @title        Event Portal Access API
// @version      1.0
// @description  Event-scoped authorization, role administration and session views.
// @BasePath     /
//
// @securityDefinitions.apikey  SessionAuth
// @in                          header
// @name                        Authorization
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/eventportal/access-service/internal/api"
	mongorepo "github.com/eventportal/access-service/internal/infrastructure/db/mongo"
	redisstore "github.com/eventportal/access-service/internal/infrastructure/db/redis"
	"github.com/eventportal/access-service/internal/pkg/config"
	"github.com/eventportal/access-service/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	_ = godotenv.Load()

	cfg := config.MustLoad()
	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: "event-portal-access",
	})

	ctx := context.Background()

	client, db, err := mongorepo.Connect(ctx, mongorepo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() { _ = client.Disconnect(context.Background()) }()

	err = mongorepo.EnsureIndexes(ctx,
		mongorepo.NewUserRepository(db),
		mongorepo.NewEventRepository(db),
		mongorepo.NewEventRoleRepository(db),
		mongorepo.NewRoleAuditRepository(db),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("mongo index setup failed")
	}

	rdb, err := redisstore.Connect(ctx, redisstore.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connect failed")
	}
	defer func() { _ = rdb.Close() }()

	e := api.NewRouter(db, rdb, cfg, logger.Component("api"))

	go func() {
		log.Info().Str("port", cfg.Port).Msg("http listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("http server failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("http shutdown failed")
	}
}
