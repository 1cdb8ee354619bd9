package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hanamurayama/timelytogether-web-portal/internal/config"
	"github.com/hanamurayama/timelytogether-web-portal/internal/infrastructure/dynamo"
	"github.com/hanamurayama/timelytogether-web-portal/internal/infrastructure/memstore"
	"github.com/hanamurayama/timelytogether-web-portal/internal/infrastructure/smtp"
	"github.com/hanamurayama/timelytogether-web-portal/internal/infrastructure/sns"
	"github.com/hanamurayama/timelytogether-web-portal/internal/schedule"
	transporthttp "github.com/hanamurayama/timelytogether-web-portal/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	// The reference timezone is load-bearing for every date comparison;
	// refuse to start with a bad name rather than silently fall back to UTC.
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		log.Fatalf("invalid TIMEZONE %q: %v", cfg.Timezone, err)
	}
	resolver := schedule.NewResolver(loc, time.Duration(cfg.ScreenBufferMinutes)*time.Minute)

	// Reminder store: in-memory by default, DynamoDB when configured.
	var repo transporthttp.ReminderRepository
	switch cfg.StoreBackend {
	case "dynamo":
		client := dynamo.NewClient(cfg)
		dynamo.Bootstrap(context.Background(), client, cfg.DynamoTables)
		repo = dynamo.NewReminderRepo(client, cfg.DynamoTables.Reminders)
	case "memory":
		repo = memstore.NewReminderRepo()
	default:
		log.Fatalf("unknown STORE_BACKEND %q (want memory or dynamo)", cfg.StoreBackend)
	}

	// SMTP mailer.
	mailer := smtp.NewMailer(cfg)

	// SNS SMS sender (optional — graceful fallback).
	var smsSender sns.SMSSender
	if cfg.FamilySMSNumber != "" {
		if sender, err := sns.NewSender(cfg); err == nil {
			smsSender = sender
		} else {
			log.Printf("WARN: SNS sender not available: %v", err)
		}
	}

	deps := &transporthttp.Deps{
		ReminderRepo:    repo,
		Resolver:        resolver,
		Mailer:          mailer,
		SMSSender:       smsSender,
		DefaultEmail:    cfg.DefaultNotificationEmail,
		FamilySMSNumber: cfg.FamilySMSNumber,
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s, tz=%s)", cfg.AppPort, cfg.AppEnv, cfg.Timezone)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
