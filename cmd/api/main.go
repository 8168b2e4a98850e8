package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/cema-health/records-api/config"
	"github.com/cema-health/records-api/internal/email"
	adminHandler "github.com/cema-health/records-api/internal/handler/admin"
	authHandler "github.com/cema-health/records-api/internal/handler/auth"
	clientHandler "github.com/cema-health/records-api/internal/handler/client"
	enrollmentHandler "github.com/cema-health/records-api/internal/handler/enrollment"
	programHandler "github.com/cema-health/records-api/internal/handler/program"
	"github.com/cema-health/records-api/internal/middleware"
	"github.com/cema-health/records-api/internal/repository/postgres"
	"github.com/cema-health/records-api/internal/router"
	clientService "github.com/cema-health/records-api/internal/service/client"
	doctorService "github.com/cema-health/records-api/internal/service/doctor"
	enrollmentService "github.com/cema-health/records-api/internal/service/enrollment"
	eventService "github.com/cema-health/records-api/internal/service/event"
	programService "github.com/cema-health/records-api/internal/service/program"
	"github.com/cema-health/records-api/pkg/logger"
	"github.com/cema-health/records-api/pkg/metrics"
	"github.com/cema-health/records-api/pkg/token"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	appLogger := logger.NewLogger(nil)

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer db.Close()

	// Repositories
	doctorRepo := postgres.NewDoctorRepository(db)
	keyRepo := postgres.NewAPIKeyRepository(db)
	clientRepo := postgres.NewClientRepository(db)
	programRepo := postgres.NewProgramRepository(db)
	enrollmentRepo := postgres.NewEnrollmentRepository(db)
	outboxRepo := postgres.NewOutboxRepository(db)

	// Services
	events := eventService.NewService(outboxRepo, appLogger)
	emailSvc := email.NewSMTPService(cfg.SMTP)
	doctorSvc := doctorService.NewService(doctorRepo, keyRepo, token.NewGenerator(), emailSvc, events, appLogger)
	clientSvc := clientService.NewService(clientRepo, events)
	programSvc := programService.NewService(programRepo, events)
	enrollmentSvc := enrollmentService.NewService(enrollmentRepo, clientRepo, programRepo, events)

	// HTTP plumbing
	authMiddleware := middleware.NewAuthMiddleware(keyRepo, doctorRepo)
	programCache := middleware.NewResponseCache(cfg.Cache.TTL)
	m := metrics.NewMetrics("records_api")

	r := router.NewRouter(
		authMiddleware,
		authHandler.NewHandler(),
		clientHandler.NewHandler(clientSvc),
		programHandler.NewHandler(programSvc, programCache),
		enrollmentHandler.NewHandler(enrollmentSvc),
		adminHandler.NewHandler(doctorSvc),
		m,
		middleware.DefaultCORSConfig(),
	)
	r.Setup()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		appLogger.Info("starting server", "port", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error(err, "forced shutdown")
	}
}
