// Command seed-admin creates an administrator account without going
// through the HTTP API. Signup can also create admins when given
// userType "admin"; this command covers deployments where the API is
// not reachable yet or signup is fronted by a stricter proxy:
//
//	seed-admin -name "Ops" -email ops@example.com -password secret -phone 555-0100
package main

import (
	"context"
	"errors"
	"flag"
	"time"

	"github.com/joho/godotenv"

	"github.com/civicdesk/complaint-portal/internal/auth"
	"github.com/civicdesk/complaint-portal/internal/config"
	"github.com/civicdesk/complaint-portal/internal/database"
	"github.com/civicdesk/complaint-portal/internal/model"
	"github.com/civicdesk/complaint-portal/internal/repository"
	"github.com/civicdesk/complaint-portal/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	name := flag.String("name", "", "admin display name")
	email := flag.String("email", "", "admin email (unique)")
	password := flag.String("password", "", "admin password")
	phone := flag.String("phone", "", "admin contact phone")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.Env)

	if *name == "" || *email == "" || *password == "" || *phone == "" {
		log.Fatal().Msg("-name, -email, -password and -phone are all required")
	}

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatal().Err(err).Msg("db connect failed")
	}
	defer db.Close()

	hash, err := auth.HashPassword(*password, cfg.BcryptCost)
	if err != nil {
		log.Fatal().Err(err).Msg("hash password failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	id, err := repository.NewUserRepo(db).Create(ctx, *name, *email, hash, *phone, model.RoleAdmin)
	if err != nil {
		if errors.Is(err, repository.ErrEmailExists) {
			log.Fatal().Str("email", *email).Msg("an account with this email already exists")
		}
		log.Fatal().Err(err).Msg("create admin failed")
	}
	log.Info().Uint64("id", id).Str("email", *email).Msg("admin account created")
}
