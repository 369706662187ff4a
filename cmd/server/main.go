package main

import (
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/civicdesk/complaint-portal/internal/config"
	"github.com/civicdesk/complaint-portal/internal/database"
	"github.com/civicdesk/complaint-portal/internal/handler"
	"github.com/civicdesk/complaint-portal/internal/policy"
	"github.com/civicdesk/complaint-portal/internal/queue"
	"github.com/civicdesk/complaint-portal/internal/repository"
	"github.com/civicdesk/complaint-portal/internal/router"
	"github.com/civicdesk/complaint-portal/internal/service/queuepub"
	"github.com/civicdesk/complaint-portal/pkg/logger"
)

func main() {
	_ = godotenv.Load() // optional; real deployments set the environment directly

	cfg := config.Load()
	log := logger.New(cfg.Env)

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Warn().Msg("redis unavailable; response cache and rate limiting disabled")
	}

	users := repository.NewUserRepo(db)
	complaints := repository.NewComplaintRepo(db)
	assignments := repository.NewAssignmentRepo(db)
	messages := repository.NewMessageRepo(db)

	table := policy.Default()
	events := queuepub.New(log)

	h := router.Handlers{
		Auth:        handler.NewAuthHandler(cfg, users),
		Users:       handler.NewUserHandler(users),
		Complaints:  handler.NewComplaintHandler(table, complaints),
		Assignments: handler.NewAssignmentHandler(table, assignments, complaints, users, events),
		Messages:    handler.NewMessageHandler(table, messages, users),
		Admin:       handler.NewAdminHandler(users, complaints),
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, h, rdb)

	go func() {
		if err := queue.StartEventsConsumer(log); err != nil {
			log.Error().Err(err).Msg("events consumer stopped")
		}
	}()

	addr := ":" + cfg.Port
	log.Info().Str("addr", addr).Str("env", cfg.Env).Msg("listening")
	if err := e.Start(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
