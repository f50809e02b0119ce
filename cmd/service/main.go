package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	kafkalib "github.com/s21platform/kafka-lib"
	logger_lib "github.com/s21platform/logger-lib"
	"github.com/s21platform/metrics-lib/pkg"

	"github.com/s21platform/dialog-service/internal/client/centrifugo"
	"github.com/s21platform/dialog-service/internal/config"
	"github.com/s21platform/dialog-service/internal/databus/auth"
	"github.com/s21platform/dialog-service/internal/dialog"
	"github.com/s21platform/dialog-service/internal/infra"
	"github.com/s21platform/dialog-service/internal/pkg/jwt"
	"github.com/s21platform/dialog-service/internal/pkg/tx"
	"github.com/s21platform/dialog-service/internal/pkg/validator"
	db "github.com/s21platform/dialog-service/internal/repository/postgres"
	"github.com/s21platform/dialog-service/internal/rest"
)

const accountEventConsumerGroupID = "dialog-session-tracker"

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	dbRepo := db.New(cfg)
	defer dbRepo.Close()

	listener := db.NewListener(cfg, dbRepo, logger)
	store := &db.Store{Repository: dbRepo, Listener: listener}

	centrifugeClient := centrifugo.New(cfg)
	defer centrifugeClient.Close()

	metrics, err := pkg.NewMetrics(cfg.Metrics.Host, cfg.Metrics.Port, cfg.Service.Name, cfg.Platform.Env)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to connect graphite: %v", err))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	ctx = context.WithValue(ctx, config.KeyMetrics, metrics)
	ctx = context.WithValue(ctx, config.KeyLogger, logger)

	hub := dialog.NewHub(ctx, store, centrifugeClient, logger)
	defer hub.Shutdown()

	consumerConfig := kafkalib.DefaultConsumerConfig(
		cfg.Kafka.Host,
		cfg.Kafka.Port,
		cfg.Kafka.AccountTopic,
		accountEventConsumerGroupID,
	)
	consumer, err := kafkalib.NewConsumer(consumerConfig, metrics)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create consumer: %v", err))
	}

	accountHandler := auth.New(hub)
	consumer.RegisterHandler(ctx, func(ctx context.Context, in []byte) error {
		accountHandler.Handler(ctx, in)
		return nil
	})

	vldtr := validator.New()
	jwtGenerator := jwt.New(cfg.Centrifuge.JWTSecret)

	handler := rest.New(dbRepo, hub, vldtr, jwtGenerator)
	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.AuthInterceptorHTTP(next)
	})
	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(func(next http.Handler) http.Handler {
		return tx.TxMiddlewareHTTP(dbRepo)(next)
	})

	rest.Attach(router, handler)
	httpServer := &http.Server{
		Handler: router,
	}

	tcpListener, err := net.Listen("tcp", fmt.Sprintf(":%s", cfg.Service.Port))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to start TCP listener: %v", err))
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.Serve(tcpListener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := listener.Run(gCtx); err != nil {
			return fmt.Errorf("postgres listener error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		hub.Shutdown()
		return httpServer.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
