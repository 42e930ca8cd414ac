package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"parcelo/internal/commons"
	configpkg "parcelo/internal/config"
	"parcelo/internal/deliveryman"
	"parcelo/internal/file"
	"parcelo/internal/infrastructure/logger"
	"parcelo/internal/infrastructure/mysql"
	"parcelo/internal/mail"
	"parcelo/internal/order"
	"parcelo/internal/recipient"
	"parcelo/internal/server"
	"parcelo/internal/session"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	mailer := mail.New(cfg.Mail, zapLogger)

	ctrls := server.Controllers{
		Order:       order.NewModule(db, mailer, zapLogger),
		Deliveryman: deliveryman.NewModule(db, zapLogger),
		Recipient:   recipient.NewModule(db, zapLogger),
		File:        file.NewModule(db, cfg.Upload, zapLogger),
		Session:     session.NewModule(db, cfg.Auth, zapLogger),
	}

	router := server.NewRouter(ctrls, cfg.Upload.Dir, zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}

// loadConfig reads the yaml file named by CONFIG_FILE when set, otherwise
// builds the configuration from environment variables.
func loadConfig() (*configpkg.Config, error) {
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		return commons.LoadConfig(path)
	}
	return configpkg.Load()
}
