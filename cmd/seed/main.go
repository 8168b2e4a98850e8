// Command seed creates the bootstrap super-admin and prints its API key.
// Safe to run repeatedly: an existing admin keeps its current key.
package main

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/cema-health/records-api/config"
	"github.com/cema-health/records-api/internal/model"
	"github.com/cema-health/records-api/internal/repository/postgres"
	apperrors "github.com/cema-health/records-api/pkg/errors"
	"github.com/cema-health/records-api/pkg/token"
)

func main() {
	name := flag.String("name", "Dr. Admin", "display name of the bootstrap admin")
	email := flag.String("email", "admin@cema-health.example", "email of the bootstrap admin")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	ctx := context.Background()
	doctors := postgres.NewDoctorRepository(db)
	keys := postgres.NewAPIKeyRepository(db)

	admin, err := doctors.GetByEmail(ctx, *email)
	switch {
	case err == nil:
		fmt.Println("admin already seeded:", admin.Email)
	case apperrors.CodeOf(err) == apperrors.ErrNotFound:
		admin = &model.Doctor{
			ID:      uuid.New(),
			Name:    *name,
			Email:   *email,
			IsAdmin: true,
		}
		if err := doctors.Create(ctx, admin); err != nil {
			log.Fatal().Err(err).Msg("failed to create admin")
		}
		fmt.Println("admin seeded:", admin.Email)
	default:
		log.Fatal().Err(err).Msg("failed to look up admin")
	}

	existing, err := keys.ListByDoctor(ctx, admin.ID)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to list api keys")
	}
	for _, k := range existing {
		if k.IsActive {
			fmt.Println("existing API key:", k.Key)
			return
		}
	}

	key, err := token.NewGenerator().Generate()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to generate api key")
	}
	if _, err := keys.Rotate(ctx, admin.ID, key); err != nil {
		log.Fatal().Err(err).Msg("failed to store api key")
	}
	fmt.Println("API key seeded:", key)
}
