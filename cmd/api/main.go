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

	"github.com/joho/godotenv"
	"github.com/prelimpro/go-api/internal/application/reminder"
	"github.com/prelimpro/go-api/internal/config"
	"github.com/prelimpro/go-api/internal/infrastructure/dynamo"
	jwtinfra "github.com/prelimpro/go-api/internal/infrastructure/jwt"
	s3infra "github.com/prelimpro/go-api/internal/infrastructure/s3"
	"github.com/prelimpro/go-api/internal/infrastructure/smtp"
	"github.com/prelimpro/go-api/internal/infrastructure/sns"
	"github.com/prelimpro/go-api/internal/pkg/logger"
	"github.com/prelimpro/go-api/internal/statute"
	transporthttp "github.com/prelimpro/go-api/internal/transport/http"
	"go.uber.org/zap"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg := config.Load()

	zlog := logger.New(cfg.LogLevel, cfg.LogFormat)
	defer zlog.Sync() //nolint:errcheck

	table := statute.Builtin()

	// Bootstrap DynamoDB tables (creates them if they don't exist).
	dynamoClient := dynamo.NewClient(cfg)
	dynamo.Bootstrap(context.Background(), dynamoClient, cfg.DynamoTables, zlog)

	// JWT provider (optional — graceful fallback if keys are missing).
	var jwtProvider *jwtinfra.Provider
	if p, err := jwtinfra.NewProvider(cfg); err == nil {
		jwtProvider = p
	} else {
		zlog.Warn("JWT provider not available, authenticated routes are open", zap.Error(err))
	}

	// S3 store for archived notice documents.
	s3Client := s3infra.NewClient(cfg)
	s3Store := s3infra.NewStore(s3Client, cfg.S3BucketName)

	// SMTP mailer.
	mailer := smtp.NewMailer(cfg)

	// SNS SMS sender (optional — graceful fallback).
	var smsSender sns.SMSSender
	if sender, err := sns.NewSender(cfg); err == nil {
		smsSender = sender
	} else {
		zlog.Warn("SNS sender not available, reminder dispatch disabled", zap.Error(err))
	}

	projectRepo := dynamo.NewProjectRepo(dynamoClient, cfg.DynamoTables.Projects)
	noticeRepo := dynamo.NewNoticeRepo(dynamoClient, cfg.DynamoTables.Notices)
	reminderRepo := dynamo.NewReminderRepo(dynamoClient, cfg.DynamoTables.Reminders)

	deps := &transporthttp.Deps{
		Table:        table,
		ProjectRepo:  projectRepo,
		NoticeRepo:   noticeRepo,
		ReminderRepo: reminderRepo,
		S3Store:      s3Store,
		Mailer:       mailer,
		SMSSender:    smsSender,
		JWTProvider:  jwtProvider,
		Logger:       zlog,
	}

	router := transporthttp.NewRouter(cfg, deps)

	// Background reminder dispatcher: delivers due SMS reminders on a fixed tick.
	dispatchCtx, stopDispatch := context.WithCancel(context.Background())
	defer stopDispatch()
	if smsSender != nil {
		reminderSvc := reminder.NewService(reminderRepo, projectRepo, smsSender, zlog)
		go func() {
			ticker := time.NewTicker(cfg.ReminderDispatchEvery)
			defer ticker.Stop()
			for {
				select {
				case <-dispatchCtx.Done():
					return
				case <-ticker.C:
					sent, err := reminderSvc.DispatchDue(dispatchCtx)
					if err != nil {
						zlog.Warn("reminder dispatch failed", zap.Error(err))
						continue
					}
					if sent > 0 {
						zlog.Info("reminders dispatched", zap.Int("count", sent))
					}
				}
			}
		}()
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.AppPort),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		zlog.Info("server starting", zap.String("port", cfg.AppPort), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	stopDispatch()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		zlog.Fatal("forced shutdown", zap.Error(err))
	}
	zlog.Info("server stopped")
}
