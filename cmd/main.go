package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/ukydev/printer-maintenance/internal/analysis"
	"github.com/ukydev/printer-maintenance/internal/auth"
	"github.com/ukydev/printer-maintenance/internal/config"
	"github.com/ukydev/printer-maintenance/internal/db"
	"github.com/ukydev/printer-maintenance/internal/handlers"
	"github.com/ukydev/printer-maintenance/internal/intake"
	"github.com/ukydev/printer-maintenance/internal/stock"
)

func main() {
	cfg := config.Load()

	client, err := db.ConnectMongo(cfg.MongoURI)
	if err != nil {
		log.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer client.Disconnect(context.Background())
	log.Info("Connected to MongoDB")

	database := client.Database(cfg.MongoDB)
	store := db.NewStore(db.NewMongoBlobStore(database))

	seedCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := store.Seed(seedCtx); err != nil {
		cancel()
		log.WithError(err).Fatal("Failed to seed store")
	}
	cancel()

	authService, err := auth.NewService(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.WithError(err).Fatal("Failed to create auth service")
	}

	var analyzer analysis.Analyzer
	if cfg.AnalysisAPIKey != "" {
		remote, err := analysis.NewClient(cfg.AnalysisAPIKey, cfg.AnalysisBaseURL, cfg.AnalysisModel, cfg.AnalysisTimeout)
		if err != nil {
			log.WithError(err).Fatal("Invalid analysis configuration")
		}
		analyzer = remote
	} else {
		log.Warn("No analysis API key configured, using local fallback only")
	}

	router := handlers.NewRouter(handlers.RouterDeps{
		Store:       store,
		Engine:      stock.NewEngine(),
		Gateway:     analysis.NewGateway(analyzer, store),
		AuthService: authService,
		Users:       &db.MongoUserCollection{Collection: database.Collection("users")},
	})

	if cfg.MQTTBroker != "" {
		subscriber := intake.NewSubscriber(cfg.MQTTBroker, cfg.MQTTTopic, store)
		if err := subscriber.Start(); err != nil {
			log.WithError(err).Warn("Incident intake unavailable, continuing without MQTT")
		} else {
			defer subscriber.Stop()
		}
	}

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		log.WithField("port", cfg.Port).Info("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	log.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}
