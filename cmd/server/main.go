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
	"github.com/sirupsen/logrus"

	"github.com/hongminglow/kanizsa-users/internal/auth"
	"github.com/hongminglow/kanizsa-users/internal/config"
	"github.com/hongminglow/kanizsa-users/internal/logging"
	"github.com/hongminglow/kanizsa-users/internal/server"
	"github.com/hongminglow/kanizsa-users/internal/storage/memory"
)

func main() {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("load config: %v", err)
	}

	log := logging.New(os.Stdout, cfg.LogLevel)
	if envErr != nil {
		log.Info("no .env file found; relying on existing environment")
	}

	hasher, err := auth.NewPasswordHasher(cfg.BcryptCost)
	if err != nil {
		log.Fatalf("init password hasher: %v", err)
	}
	tokens, err := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
	if err != nil {
		log.Fatalf("init token manager: %v", err)
	}

	userStore := memory.NewUserStore()
	defer userStore.Close()

	svc := auth.NewService(userStore, hasher, tokens, log)
	if cfg.SeedDemoUser {
		seedDemoUser(svc, log)
	}

	srv := server.New(cfg, svc, log)

	go func() {
		log.WithField("addr", cfg.HTTPAddress()).Info("identity service listening")
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http server error: %v", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		log.WithError(err).Error("graceful shutdown error")
	}
}

func seedDemoUser(svc *auth.Service, log logrus.FieldLogger) {
	id, err := svc.Register(context.Background(), "user1@example.com", "password123", "John Doe")
	if err != nil {
		log.WithError(err).Warn("seed demo user")
		return
	}
	log.WithField("user_id", id).Warn("demo user seeded; do not enable in production")
}
