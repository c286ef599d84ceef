// Command server runs the adoption platform HTTP API.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/adoptme/adoptme-api/internal/config"
	"github.com/adoptme/adoptme-api/internal/platform/logger"
	"github.com/adoptme/adoptme-api/internal/platform/mongodb"
	"github.com/adoptme/adoptme-api/internal/redact"
	"github.com/adoptme/adoptme-api/internal/service"
	"github.com/adoptme/adoptme-api/internal/service/auth"
)

// shutdownTimeout bounds how long in-flight requests get to finish.
const shutdownTimeout = 10 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server error: %s\n", redact.Error(err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}

	log, err := logger.Setup(logger.LoggerConfig{Level: cfg.Server.LogLevel})
	if err != nil {
		return fmt.Errorf("set up logger: %w", err)
	}

	log.Info("starting server",
		"port", cfg.Server.Port,
		"env", cfg.Server.Env,
		"database", cfg.Database.Name)

	ctx := context.Background()
	client, db, err := mongodb.Connect(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Error("failed to disconnect from mongodb", "error", redact.Error(err))
		}
	}()

	if err := mongodb.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	users := mongodb.NewMongoUserStore(db)
	pets := mongodb.NewMongoPetStore(db)
	adoptions := mongodb.NewMongoAdoptionStore(db)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("create jwt service: %w", err)
	}

	sessions := service.NewSessionService(users, jwtService, auth.NewBcryptHasher(), auth.NewBcryptVerifier())
	userService := service.NewUserService(users)
	petService := service.NewPetService(pets)
	adoptionService := service.NewAdoptionService(users, pets, adoptions)

	router := newRouter(routerDeps{
		cfg:       cfg,
		log:       log,
		users:     users,
		pets:      pets,
		sessions:  sessions,
		userSvc:   userService,
		petSvc:    petService,
		adoptions: adoptionService,
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case sig := <-stop:
		log.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
